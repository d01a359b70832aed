package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovision/gw-crop-manager/internal/models"
)

func newCropMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCropWriteRepository_Save(t *testing.T) {
	db, mock := newCropMockDB(t)

	plantDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO crops").
		WithArgs("john", "Wheat", plantDate, 2.5, "Field A", models.DiseasePowdery, "Apply fungicide and remove affected leaves.").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewCropWriteRepository(db, nil)
	err := repo.Save(context.Background(), "john", "Wheat", plantDate, 2.5, "Field A", models.DiseasePowdery, "Apply fungicide and remove affected leaves.")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCropWriteRepository_Save_Error(t *testing.T) {
	db, mock := newCropMockDB(t)

	plantDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO crops").
		WillReturnError(errors.New("connection reset"))

	repo := NewCropWriteRepository(db, nil)
	err := repo.Save(context.Background(), "john", "Wheat", plantDate, 2.5, "Field A", "", "")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCropWriteRepository_Save_UsesTransactionFromContext(t *testing.T) {
	db, mock := newCropMockDB(t)

	plantDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO crops").
		WithArgs("john", "Wheat", plantDate, 2.5, "Field A", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewCropWriteRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	err = repo.Save(context.Background(), "john", "Wheat", plantDate, 2.5, "Field A", "", "")
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCropReadRepository_ListByUsername(t *testing.T) {
	db, mock := newCropMockDB(t)

	now := time.Now()
	plantDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{"crop_id", "username", "crop_name", "plant_date", "expected_yield", "location", "disease", "suggested_cure", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(int64(1), "john", "Wheat", plantDate, 2.5, "Field A", models.DiseasePowdery, "Apply fungicide and remove affected leaves.", now).
		AddRow(int64(2), "john", "Barley", plantDate, 1.2, "Field B", "", "", now)

	mock.ExpectQuery("SELECT (.+) FROM crops WHERE username = \\$1 ORDER BY crop_id").
		WithArgs("john").
		WillReturnRows(rows)

	repo := NewCropReadRepository(db)
	crops, err := repo.ListByUsername(context.Background(), "john")
	assert.NoError(t, err)
	assert.Len(t, crops, 2)

	// Insertion order preserved
	assert.Equal(t, int64(1), crops[0].CropID)
	assert.Equal(t, "Wheat", crops[0].CropName)
	assert.Equal(t, models.DiseasePowdery, crops[0].Disease)
	assert.Equal(t, int64(2), crops[1].CropID)
	assert.Equal(t, "Barley", crops[1].CropName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCropReadRepository_ListByUsername_Empty(t *testing.T) {
	db, mock := newCropMockDB(t)

	columns := []string{"crop_id", "username", "crop_name", "plant_date", "expected_yield", "location", "disease", "suggested_cure", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM crops").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(columns))

	repo := NewCropReadRepository(db)
	crops, err := repo.ListByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.NotNil(t, crops)
	assert.Empty(t, crops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCropReadRepository_ListByUsername_Error(t *testing.T) {
	db, mock := newCropMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM crops").
		WithArgs("john").
		WillReturnError(errors.New("relation does not exist"))

	repo := NewCropReadRepository(db)
	crops, err := repo.ListByUsername(context.Background(), "john")
	assert.Error(t, err)
	assert.Nil(t, crops)
	assert.NoError(t, mock.ExpectationsWereMet())
}
