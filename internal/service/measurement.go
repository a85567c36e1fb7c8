package service

import (
	"context"
	"errors"
	"fmt"

	"hydroponics/internal/models"
	"hydroponics/internal/repository"
)

// MeasurementInput is a create/update payload. The timestamp is always
// set by the server.
type MeasurementInput struct {
	SystemID    *int64
	PH          *models.Fixed
	Temperature *models.Fixed
	TDS         *models.Fixed
}

type MeasurementService struct {
	measurements repository.MeasurementRepo
	systems      repository.SystemRepo
}

func NewMeasurementService(measurements repository.MeasurementRepo, systems repository.SystemRepo) *MeasurementService {
	return &MeasurementService{measurements: measurements, systems: systems}
}

var _ Measurements = (*MeasurementService)(nil)

var errParentImmutable = errors.New("parent system is immutable")

func (s *MeasurementService) ListMeasurements(ctx context.Context, userID int64, f models.MeasurementFilter) ([]models.Measurement, error) {
	return s.measurements.List(ctx, userID, f)
}

// CreateMeasurement stores a reading under a system the caller owns.
// A system owned by someone else yields ErrPermissionDenied, not ErrNotFound.
func (s *MeasurementService) CreateMeasurement(ctx context.Context, userID int64, in MeasurementInput) (models.Measurement, error) {
	if err := validateMeasurement(in, false); err != nil {
		return models.Measurement{}, err
	}

	owner, err := s.systems.OwnerOf(ctx, *in.SystemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Measurement{}, Invalid("hydroponic_system",
				fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *in.SystemID))
		}
		return models.Measurement{}, err
	}
	if owner != userID {
		return models.Measurement{}, ErrPermissionDenied
	}

	m := models.Measurement{
		SystemID:    *in.SystemID,
		PH:          *in.PH,
		Temperature: *in.Temperature,
		TDS:         *in.TDS,
		Timestamp:   clock(),
	}
	id, err := s.measurements.Create(ctx, m)
	if err != nil {
		return models.Measurement{}, err
	}
	return s.measurements.Get(ctx, userID, id)
}

func (s *MeasurementService) GetMeasurement(ctx context.Context, userID, id int64) (models.Measurement, error) {
	m, err := s.measurements.Get(ctx, userID, id)
	return m, translate(err)
}

// UpdateMeasurement changes readings. A payload naming a different parent
// is rejected before anything is written.
func (s *MeasurementService) UpdateMeasurement(ctx context.Context, userID, id int64, in MeasurementInput, partial bool) (models.Measurement, error) {
	m, err := s.measurements.Get(ctx, userID, id)
	if err != nil {
		return models.Measurement{}, translate(err)
	}
	if in.SystemID != nil && *in.SystemID != m.SystemID {
		v := Invalid(NonFieldErrors, "You cannot change the hydroponic system of this measurement.")
		v.Err = errParentImmutable
		return models.Measurement{}, v
	}
	if err := validateMeasurement(in, partial); err != nil {
		return models.Measurement{}, err
	}

	if in.PH != nil {
		m.PH = *in.PH
	}
	if in.Temperature != nil {
		m.Temperature = *in.Temperature
	}
	if in.TDS != nil {
		m.TDS = *in.TDS
	}
	if err := s.measurements.Update(ctx, userID, m); err != nil {
		return models.Measurement{}, translate(err)
	}
	return s.measurements.Get(ctx, userID, id)
}

// DeleteMeasurement removes a single reading.
func (s *MeasurementService) DeleteMeasurement(ctx context.Context, userID, id int64) error {
	return translate(s.measurements.Delete(ctx, userID, id))
}

func validateMeasurement(in MeasurementInput, partial bool) error {
	v := &ValidationError{}
	if in.SystemID == nil && !partial {
		v.Add("hydroponic_system", msgRequired)
	}
	checkFixed(v, "ph", in.PH, !partial, phLimit)
	checkFixed(v, "temperature", in.Temperature, !partial, temperatureLimit)
	checkFixed(v, "tds", in.TDS, !partial, tdsLimit)
	return v.OrNil()
}
