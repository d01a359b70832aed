package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/models"
	"github.com/jmoiron/sqlx"
)

// CropWriteRepository handles crop record write operations
type CropWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCropWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CropWriteRepository {
	return &CropWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one crop record. Records are immutable: there is no
// uniqueness constraint and no update path.
func (r *CropWriteRepository) Save(
	ctx context.Context,
	username, cropName string,
	plantDate time.Time,
	expectedYield float64,
	location, disease, suggestedCure string,
) error {
	query := `
		INSERT INTO crops (username, crop_name, plant_date, expected_yield, location, disease, suggested_cure, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	args := []any{username, cropName, plantDate, expectedYield, location, disease, suggestedCure}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// CropReadRepository handles crop record read operations
type CropReadRepository struct {
	db *sqlx.DB
}

func NewCropReadRepository(db *sqlx.DB) *CropReadRepository {
	return &CropReadRepository{db: db}
}

// ListByUsername returns all crop records for a user in insertion order.
// crop_id is a BIGSERIAL, so ordering by it reproduces insert order.
func (r *CropReadRepository) ListByUsername(ctx context.Context, username string) ([]models.CropDB, error) {
	const query = `
		SELECT crop_id, username, crop_name, plant_date, expected_yield, location, disease, suggested_cure, created_at
		FROM crops
		WHERE username = $1
		ORDER BY crop_id
	`

	crops := make([]models.CropDB, 0)
	err := r.db.SelectContext(ctx, &crops, query, username)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(crops),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return crops, nil
}
