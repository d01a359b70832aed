package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/middlewares"
	"github.com/agrovision/gw-crop-manager/internal/models"
)

// CropLister defines the interface that the crop service must implement.
type CropLister interface {
	List(ctx context.Context, username string) ([]models.CropDB, error)
}

// CropRecord represents one crop record in a listing response
// swagger:model CropRecord
type CropRecord struct {
	// Crop name
	// default: Wheat
	CropName string `json:"crop_name"`

	// Planting date, YYYY-MM-DD
	// default: 2024-01-01
	PlantDate string `json:"plant_date"`

	// Expected yield in tons
	// default: 2.5
	ExpectedYield float64 `json:"expected_yield"`

	// Field location
	// default: Field A
	Location string `json:"location"`

	// Detected disease label, empty if none attached
	// default: Powdery
	Disease string `json:"disease"`

	// Suggested cure for the detected disease
	// default: Apply fungicide and remove affected leaves.
	SuggestedCure string `json:"suggested_cure"`
}

// ListCropsResponse represents a crop listing response
// swagger:model ListCropsResponse
type ListCropsResponse struct {
	// The user's crop records in insertion order
	Crops []CropRecord `json:"crops"`
}

// ListCropsErrorResponse represents an error response for listing crop records
// swagger:model ListCropsErrorResponse
type ListCropsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListCropsHandler returns an HTTP handler for listing the user's crop records.
// @Summary List crop records
// @Description Returns all crop records of the current user in insertion order
// @Tags crops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ListCropsResponse "Crop records"
// @Failure 401 {object} handlers.ListCropsErrorResponse "Unauthorized"
// @Router /crops [get]
func NewListCropsHandler(svc CropLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		crops, err := svc.List(r.Context(), session.Username)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListCropsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ListCropsResponse{Crops: make([]CropRecord, 0, len(crops))}
		for _, c := range crops {
			resp.Crops = append(resp.Crops, CropRecord{
				CropName:      c.CropName,
				PlantDate:     c.PlantDate.Format(plantDateLayout),
				ExpectedYield: c.ExpectedYield,
				Location:      c.Location,
				Disease:       c.Disease,
				SuggestedCure: c.SuggestedCure,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
