package models

// Prediction is a cached classification result, bridging the predict step
// and the later crop-save step. Username pins the result to the session
// that produced it.
type Prediction struct {
	PredictionID  string    `json:"prediction_id"`  // Handle returned by the predict endpoint
	Username      string    `json:"username"`       // Owner of the prediction
	Disease       string    `json:"disease"`        // Predicted disease label
	SuggestedCure string    `json:"suggested_cure"` // Cure text for the label
	Confidences   []float64 `json:"confidences"`    // Full probability vector from the model
}
