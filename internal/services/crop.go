package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrInvalidYield is returned when a crop record carries a negative expected yield.
	ErrInvalidYield = errors.New("expected yield must be non-negative")
	// ErrPredictionNotFound is returned when a prediction handle is missing,
	// expired, or owned by another user.
	ErrPredictionNotFound = errors.New("prediction not found or expired")
)

// CropWriter defines methods for writing crop records.
type CropWriter interface {
	Save(ctx context.Context, username, cropName string, plantDate time.Time, expectedYield float64, location, disease, suggestedCure string) error
}

// CropReader defines methods for reading a user's crop records.
type CropReader interface {
	ListByUsername(ctx context.Context, username string) ([]models.CropDB, error) // Records in insertion order
}

// PredictionCacheReader resolves prediction handles.
type PredictionCacheReader interface {
	GetPrediction(ctx context.Context, predictionID string) (*models.Prediction, error) // nil when absent or expired
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CropService handles crop record operations and Kafka publishing.
type CropService struct {
	writeRepo   CropWriter
	readRepo    CropReader
	predictions PredictionCacheReader
	kafkaWriter KafkaWriter
}

// NewCropService creates a new CropService.
func NewCropService(
	writeRepo CropWriter,
	readRepo CropReader,
	predictions PredictionCacheReader,
	kafkaWriter KafkaWriter,
) *CropService {
	return &CropService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		predictions: predictions,
		kafkaWriter: kafkaWriter,
	}
}

// publishCropSaved publishes a crop_saved event to Kafka.
// Publish failures are logged, never surfaced: the record is already durable.
func (s *CropService) publishCropSaved(ctx context.Context, event models.CropEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

// Save stores a crop record for a user. When predictionID is non-empty it
// must resolve to a cached prediction owned by the same user; its label and
// cure are attached to the record. An empty predictionID stores the record
// without disease annotation.
func (s *CropService) Save(
	ctx context.Context,
	username, cropName string,
	plantDate time.Time,
	expectedYield float64,
	location, predictionID string,
) error {
	if expectedYield < 0 {
		logger.Log.Errorw("invalid expected yield", "username", username, "expected_yield", expectedYield)
		return ErrInvalidYield
	}

	var disease, suggestedCure string
	if predictionID != "" {
		p, err := s.predictions.GetPrediction(ctx, predictionID)
		if err != nil {
			logger.Log.Errorw("failed to resolve prediction", "prediction_id", predictionID, "error", err)
			return err
		}
		if p == nil || p.Username != username {
			logger.Log.Errorw("prediction not found or not owned by user",
				"prediction_id", predictionID, "username", username)
			return ErrPredictionNotFound
		}
		disease, suggestedCure = p.Disease, p.SuggestedCure
	}

	if err := s.writeRepo.Save(ctx, username, cropName, plantDate, expectedYield, location, disease, suggestedCure); err != nil {
		logger.Log.Errorw("failed to save crop record", "username", username, "crop_name", cropName, "error", err)
		return err
	}

	event := models.CropEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Username:  username,
		CropName:  cropName,
		Disease:   disease,
		Operation: "crop_saved",
	}
	s.publishCropSaved(ctx, event)

	return nil
}

// List returns all crop records for a user in insertion order.
func (s *CropService) List(ctx context.Context, username string) ([]models.CropDB, error) {
	crops, err := s.readRepo.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list crop records", "username", username, "error", err)
		return nil, err
	}
	return crops, nil
}
