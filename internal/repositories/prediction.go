package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/models"
	"github.com/redis/go-redis/v9"
)

// PredictionCacheRepository stores classification results in Redis under a
// prediction handle, and tracks revoked session tokens. Both expire on
// their own: predictions after the configured TTL, revocation marks when
// the token itself would have expired.
type PredictionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached predictions
}

// NewPredictionCacheRepository creates a new repository instance with the prediction TTL
func NewPredictionCacheRepository(client *redis.Client, expiration time.Duration) *PredictionCacheRepository {
	return &PredictionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// SetPrediction caches a classification result under its prediction ID
func (r *PredictionCacheRepository) SetPrediction(ctx context.Context, p models.Prediction) error {
	key := fmt.Sprintf("prediction:%s", p.PredictionID)

	data, err := json.Marshal(p)
	if err != nil {
		logger.Log.Errorw("failed to marshal prediction", "key", key, "error", err)
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"disease", p.Disease,
		"result", "ok",
		"error", err,
	)

	return err
}

// GetPrediction fetches a cached prediction by ID.
// Returns nil without error when the prediction is absent or expired.
func (r *PredictionCacheRepository) GetPrediction(ctx context.Context, predictionID string) (*models.Prediction, error) {
	key := fmt.Sprintf("prediction:%s", predictionID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var p models.Prediction
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		logger.Log.Errorw("failed to unmarshal prediction", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", p.Disease,
		"error", nil,
	)

	return &p, nil
}

// RevokeToken marks a session token as revoked until it would expire anyway
func (r *PredictionCacheRepository) RevokeToken(ctx context.Context, tokenID string, until time.Time) error {
	key := fmt.Sprintf("revoked_token:%s", tokenID)

	ttl := time.Until(until)
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}

	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"result", "ok",
		"error", err,
	)

	return err
}

// IsTokenRevoked reports whether a token has been revoked by logout
func (r *PredictionCacheRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf("revoked_token:%s", tokenID)

	_, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		logger.Log.Errorw("revocation lookup failed", "key", key, "error", err)
		return false, err
	}

	return true, nil
}
