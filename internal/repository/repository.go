package repository

import (
	"context"
	"database/sql"
	"errors"

	"hydroponics/internal/models"
)

var (
	// ErrNotFound is returned when no row matches, including rows outside
	// the caller's scope.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate")
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, u models.User) error
}

// SystemRepo reads and writes systems. Every method taking ownerID only
// touches rows whose user_id equals it.
type SystemRepo interface {
	List(ctx context.Context, ownerID int64, f models.SystemFilter) ([]models.System, error)
	Get(ctx context.Context, ownerID, id int64) (models.System, error)
	OwnerOf(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, s models.System) (int64, error)
	Update(ctx context.Context, ownerID int64, s models.System) error
	Delete(ctx context.Context, ownerID, id int64) error
}

// MeasurementRepo reads and writes measurements scoped through the owner
// of their parent system.
type MeasurementRepo interface {
	List(ctx context.Context, ownerID int64, f models.MeasurementFilter) ([]models.Measurement, error)
	Get(ctx context.Context, ownerID, id int64) (models.Measurement, error)
	Create(ctx context.Context, m models.Measurement) (int64, error)
	Update(ctx context.Context, ownerID int64, m models.Measurement) error
	Delete(ctx context.Context, ownerID, id int64) error
}

type Repository struct {
	Auth         Authorization
	Systems      SystemRepo
	Measurements MeasurementRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:         NewUserRepository(db),
		Systems:      NewSystemSQLite(db),
		Measurements: NewMeasurementSQLite(db),
	}
}

// affectedOrNotFound maps a zero-row write to ErrNotFound.
func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
