package service

import (
	"context"
	"time"

	"hydroponics/internal/models"
	"hydroponics/internal/repository"
)

// Authorization issues and verifies bearer tokens and registers users.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (models.User, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int64, error)
}

// Profile reads and updates the caller's own user record.
type Profile interface {
	Me(ctx context.Context, userID int64) (models.User, error)
	UpdateMe(ctx context.Context, userID int64, in ProfileInput, partial bool) (models.User, error)
}

// Systems exposes owner-scoped hydroponic system operations.
type Systems interface {
	ListSystems(ctx context.Context, userID int64, f models.SystemFilter) ([]models.System, error)
	CreateSystem(ctx context.Context, userID int64, in SystemInput) (models.System, error)
	GetSystem(ctx context.Context, userID, id int64) (models.SystemDetail, error)
	UpdateSystem(ctx context.Context, userID, id int64, in SystemInput, partial bool) (models.System, error)
	DeleteSystem(ctx context.Context, userID, id int64) error
}

// Measurements exposes measurement operations scoped by parent ownership.
type Measurements interface {
	ListMeasurements(ctx context.Context, userID int64, f models.MeasurementFilter) ([]models.Measurement, error)
	CreateMeasurement(ctx context.Context, userID int64, in MeasurementInput) (models.Measurement, error)
	GetMeasurement(ctx context.Context, userID, id int64) (models.Measurement, error)
	UpdateMeasurement(ctx context.Context, userID, id int64, in MeasurementInput, partial bool) (models.Measurement, error)
	DeleteMeasurement(ctx context.Context, userID, id int64) error
}

// Config carries tunables read from the application config.
type Config struct {
	SigningKey        string
	TokenTTL          time.Duration
	MinPasswordLength int
}

// Defaults used when Config fields are zero.
const (
	DefaultTokenTTL          = 24 * time.Hour
	DefaultMinPasswordLength = 8
)

func (c Config) withDefaults() Config {
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	if c.MinPasswordLength <= 0 {
		c.MinPasswordLength = DefaultMinPasswordLength
	}
	return c
}

type Service struct {
	Authorization
	Profile
	Systems
	Measurements
}

func NewService(repos *repository.Repository, cfg Config) *Service {
	cfg = cfg.withDefaults()
	auth := NewAuthService(repos.Auth, cfg)
	return &Service{
		Authorization: auth,
		Profile:       auth,
		Systems:       NewSystemService(repos.Systems, repos.Measurements),
		Measurements:  NewMeasurementService(repos.Measurements, repos.Systems),
	}
}

// clock matches the store's microsecond precision. Tests replace it.
var clock = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
