package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/middlewares"
	"github.com/agrovision/gw-crop-manager/internal/services"
)

// plantDateLayout is the wire format for planting dates.
const plantDateLayout = "2006-01-02"

// CropSaver defines the interface that the crop service must implement.
type CropSaver interface {
	Save(ctx context.Context, username, cropName string, plantDate time.Time, expectedYield float64, location, predictionID string) error
}

// SaveCropRequest represents the JSON body for saving a crop record
// swagger:model SaveCropRequest
type SaveCropRequest struct {
	// Crop name
	// required: true
	// default: Wheat
	CropName string `json:"crop_name"`

	// Planting date, YYYY-MM-DD
	// required: true
	// default: 2024-01-01
	PlantDate string `json:"plant_date"`

	// Expected yield in tons, non-negative
	// required: true
	// default: 2.5
	ExpectedYield float64 `json:"expected_yield"`

	// Field location
	// required: true
	// default: Field A
	Location string `json:"location"`

	// Prediction handle from the predict endpoint; omit to save without disease annotation
	PredictionID string `json:"prediction_id,omitempty"`
}

// SaveCropResponse represents a successful save response
// swagger:model SaveCropResponse
type SaveCropResponse struct {
	// Success message
	// default: Crop data saved successfully
	Message string `json:"message"`
}

// SaveCropErrorResponse represents an error response for saving a crop record
// swagger:model SaveCropErrorResponse
type SaveCropErrorResponse struct {
	// Error message
	// default: Expected yield must be non-negative
	Error string `json:"error"`
}

// NewSaveCropHandler returns an HTTP handler for saving a crop record.
// @Summary Save a crop record
// @Description Stores a crop record for the current user, optionally annotated with a prediction result
// @Tags crops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param saveCropRequest body handlers.SaveCropRequest true "Crop record"
// @Success 201 {object} handlers.SaveCropResponse "Crop record saved"
// @Failure 400 {object} handlers.SaveCropErrorResponse "Invalid yield, date, or prediction handle"
// @Failure 401 {object} handlers.SaveCropErrorResponse "Unauthorized"
// @Router /crops [post]
func NewSaveCropHandler(svc CropSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middlewares.GetSessionFromContext(r.Context())
		if session == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req SaveCropRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveCropErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		plantDate, err := time.Parse(plantDateLayout, req.PlantDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SaveCropErrorResponse{
				Error: "plant_date must be formatted as YYYY-MM-DD",
			})
			return
		}

		err = svc.Save(r.Context(), session.Username, req.CropName, plantDate, req.ExpectedYield, req.Location, req.PredictionID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidYield):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SaveCropErrorResponse{
					Error: "Expected yield must be non-negative",
				})
			case errors.Is(err, services.ErrPredictionNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SaveCropErrorResponse{
					Error: "Prediction not found or expired",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SaveCropErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveCropResponse{
			Message: "Crop data saved successfully",
		})
	}
}
