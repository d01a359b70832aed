package models

import "time"

// CropDB represents a crop record row in the database
type CropDB struct {
	CropID        int64     `json:"crop_id" db:"crop_id"`               // Serial primary key, defines insertion order
	Username      string    `json:"username" db:"username"`             // Owning user
	CropName      string    `json:"crop_name" db:"crop_name"`           // Crop name, e.g. Wheat
	PlantDate     time.Time `json:"plant_date" db:"plant_date"`         // Planting date
	ExpectedYield float64   `json:"expected_yield" db:"expected_yield"` // Expected yield in tons, non-negative
	Location      string    `json:"location" db:"location"`             // Field location
	Disease       string    `json:"disease" db:"disease"`               // Detected disease label, empty if none attached
	SuggestedCure string    `json:"suggested_cure" db:"suggested_cure"` // Cure text for the detected disease
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}
