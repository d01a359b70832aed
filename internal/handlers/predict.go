package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/agrovision/gw-crop-manager/internal/facades"
	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/middlewares"
	"github.com/agrovision/gw-crop-manager/internal/models"
)

// maxImageSize bounds the multipart upload (10 MiB).
const maxImageSize = 10 << 20

// Predicter defines the interface that the prediction service must implement.
type Predicter interface {
	Predict(ctx context.Context, username string, imageBytes []byte) (*models.Prediction, error)
}

// PredictResponse represents a successful classification response
// swagger:model PredictResponse
type PredictResponse struct {
	// Prediction handle, pass it to the crop save endpoint
	PredictionID string `json:"prediction_id"`

	// Predicted disease label
	// default: Powdery
	Disease string `json:"disease"`

	// Suggested cure for the predicted disease
	// default: Apply fungicide and remove affected leaves.
	SuggestedCure string `json:"suggested_cure"`

	// Full probability vector from the model
	Confidences []float64 `json:"confidences"`
}

// PredictErrorResponse represents an error response for classification
// swagger:model PredictErrorResponse
type PredictErrorResponse struct {
	// Error message
	// default: Classification failed
	Error string `json:"error"`
}

// NewPredictHandler returns an HTTP handler for leaf image classification.
// @Summary Classify a crop leaf image
// @Description Runs the disease classifier on an uploaded image and returns the label, cure text, and a prediction handle
// @Tags crops
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Leaf image (jpeg or png)"
// @Success 200 {object} handlers.PredictResponse "Classification result"
// @Failure 400 {object} handlers.PredictErrorResponse "Missing or undecodable image"
// @Failure 401 {object} handlers.PredictErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.PredictErrorResponse "Model server unavailable"
// @Router /predict [post]
func NewPredictHandler(svc Predicter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PredictErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PredictErrorResponse{
				Error: "image file is required",
			})
			return
		}
		defer file.Close()

		imageBytes, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded image", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PredictErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		prediction, err := svc.Predict(r.Context(), session.Username, imageBytes)
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrBadImage):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PredictErrorResponse{
					Error: "Image could not be decoded",
				})
			default:
				logger.Log.Errorw("classification failed", "err", err)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(PredictErrorResponse{
					Error: "Classification failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PredictResponse{
			PredictionID:  prediction.PredictionID,
			Disease:       prediction.Disease,
			SuggestedCure: prediction.SuggestedCure,
			Confidences:   prediction.Confidences,
		})
	}
}
