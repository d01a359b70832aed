package services

import (
	"context"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/models"
	"github.com/google/uuid"
)

// Classifier wraps the disease-detection model boundary.
type Classifier interface {
	Classify(ctx context.Context, imageBytes []byte) (string, []float64, error) // Returns best label and full probability vector
	CureFor(label string) string                                                // Static cure lookup
}

// PredictionCacheWriter stores classification results under a handle.
type PredictionCacheWriter interface {
	SetPrediction(ctx context.Context, p models.Prediction) error
}

// PredictionService classifies uploaded images and caches the result under
// a fresh prediction ID so the save step can reference it explicitly.
type PredictionService struct {
	classifier Classifier
	cache      PredictionCacheWriter
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(classifier Classifier, cache PredictionCacheWriter) *PredictionService {
	return &PredictionService{
		classifier: classifier,
		cache:      cache,
	}
}

// Predict classifies an image for a user and returns the cached prediction,
// including the handle the crop-save step accepts. Classifier failures
// propagate to the caller as recoverable errors.
func (s *PredictionService) Predict(ctx context.Context, username string, imageBytes []byte) (*models.Prediction, error) {
	label, confidences, err := s.classifier.Classify(ctx, imageBytes)
	if err != nil {
		logger.Log.Errorw("classification failed", "username", username, "error", err)
		return nil, err
	}

	p := models.Prediction{
		PredictionID:  uuid.NewString(),
		Username:      username,
		Disease:       label,
		SuggestedCure: s.classifier.CureFor(label),
		Confidences:   confidences,
	}

	if err := s.cache.SetPrediction(ctx, p); err != nil {
		logger.Log.Errorw("failed to cache prediction", "username", username, "error", err)
		return nil, err
	}

	logger.Log.Infow("prediction cached",
		"username", username,
		"prediction_id", p.PredictionID,
		"disease", p.Disease,
	)

	return &p, nil
}
