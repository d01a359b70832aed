package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/agrovision/gw-crop-manager/internal/models"
	"github.com/agrovision/gw-crop-manager/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPredictionService_Predict(t *testing.T) {
	imageBytes := []byte("fake image data")

	t.Run("successful prediction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClassifier := services.NewMockClassifier(ctrl)
		mockCache := services.NewMockPredictionCacheWriter(ctrl)

		svc := services.NewPredictionService(mockClassifier, mockCache)

		confidences := []float64{0.1, 0.8, 0.1}
		mockClassifier.EXPECT().
			Classify(gomock.Any(), imageBytes).
			Return(models.DiseasePowdery, confidences, nil)
		mockClassifier.EXPECT().
			CureFor(models.DiseasePowdery).
			Return("Apply fungicide and remove affected leaves.")

		var cached models.Prediction
		mockCache.EXPECT().
			SetPrediction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.Prediction) error {
				cached = p
				return nil
			})

		p, err := svc.Predict(context.Background(), "alice", imageBytes)
		assert.NoError(t, err)
		assert.Equal(t, models.DiseasePowdery, p.Disease)
		assert.Equal(t, "Apply fungicide and remove affected leaves.", p.SuggestedCure)
		assert.Equal(t, confidences, p.Confidences)
		assert.Equal(t, "alice", p.Username)

		// The handle must be a valid UUID and match what was cached.
		_, err = uuid.Parse(p.PredictionID)
		assert.NoError(t, err)
		assert.Equal(t, *p, cached)
	})

	t.Run("classifier error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClassifier := services.NewMockClassifier(ctrl)
		mockCache := services.NewMockPredictionCacheWriter(ctrl)

		svc := services.NewPredictionService(mockClassifier, mockCache)

		mockClassifier.EXPECT().
			Classify(gomock.Any(), imageBytes).
			Return("", nil, errors.New("model unavailable"))

		p, err := svc.Predict(context.Background(), "alice", imageBytes)
		assert.EqualError(t, err, "model unavailable")
		assert.Nil(t, p)
	})

	t.Run("cache error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClassifier := services.NewMockClassifier(ctrl)
		mockCache := services.NewMockPredictionCacheWriter(ctrl)

		svc := services.NewPredictionService(mockClassifier, mockCache)

		mockClassifier.EXPECT().
			Classify(gomock.Any(), imageBytes).
			Return(models.DiseaseHealthy, []float64{0.9, 0.05, 0.05}, nil)
		mockClassifier.EXPECT().
			CureFor(models.DiseaseHealthy).
			Return("No action needed, keep monitoring the crop.")
		mockCache.EXPECT().
			SetPrediction(gomock.Any(), gomock.Any()).
			Return(errors.New("redis down"))

		p, err := svc.Predict(context.Background(), "alice", imageBytes)
		assert.EqualError(t, err, "redis down")
		assert.Nil(t, p)
	})
}
