package service

import (
	"context"
	"errors"

	"hydroponics/internal/models"
	"hydroponics/internal/repository"
)

// RecentMeasurements is how many readings a system detail embeds.
const RecentMeasurements = 10

// SystemInput is a create/update payload. It has no owner field; the
// owner is always the caller.
type SystemInput struct {
	Title    *string
	Location *string
}

type SystemService struct {
	systems      repository.SystemRepo
	measurements repository.MeasurementRepo
}

func NewSystemService(systems repository.SystemRepo, measurements repository.MeasurementRepo) *SystemService {
	return &SystemService{systems: systems, measurements: measurements}
}

var _ Systems = (*SystemService)(nil)

func (s *SystemService) ListSystems(ctx context.Context, userID int64, f models.SystemFilter) ([]models.System, error) {
	return s.systems.List(ctx, userID, f)
}

// CreateSystem stores a new system owned by userID.
func (s *SystemService) CreateSystem(ctx context.Context, userID int64, in SystemInput) (models.System, error) {
	if err := validateSystem(in, false); err != nil {
		return models.System{}, err
	}
	now := clock()
	sys := models.System{
		Title:    *in.Title,
		OwnerID:  userID,
		Location: *in.Location,
		Created:  now,
		Updated:  now,
	}
	id, err := s.systems.Create(ctx, sys)
	if err != nil {
		return models.System{}, err
	}
	sys.ID = id
	return sys, nil
}

// GetSystem returns the system with its most recent measurements, newest first.
func (s *SystemService) GetSystem(ctx context.Context, userID, id int64) (models.SystemDetail, error) {
	sys, err := s.systems.Get(ctx, userID, id)
	if err != nil {
		return models.SystemDetail{}, translate(err)
	}
	recent, err := s.measurements.List(ctx, userID, models.MeasurementFilter{
		SystemID: id,
		Ordering: []models.SortField{{Field: "timestamp", Desc: true}},
		Limit:    RecentMeasurements,
	})
	if err != nil {
		return models.SystemDetail{}, err
	}
	return models.SystemDetail{System: sys, Measurements: recent}, nil
}

// UpdateSystem replaces title and/or location. Owner and created are kept.
func (s *SystemService) UpdateSystem(ctx context.Context, userID, id int64, in SystemInput, partial bool) (models.System, error) {
	sys, err := s.systems.Get(ctx, userID, id)
	if err != nil {
		return models.System{}, translate(err)
	}
	if err := validateSystem(in, partial); err != nil {
		return models.System{}, err
	}
	if in.Title != nil {
		sys.Title = *in.Title
	}
	if in.Location != nil {
		sys.Location = *in.Location
	}
	sys.Updated = clock()
	if err := s.systems.Update(ctx, userID, sys); err != nil {
		return models.System{}, translate(err)
	}
	return sys, nil
}

// DeleteSystem removes the system and, with it, all of its measurements.
func (s *SystemService) DeleteSystem(ctx context.Context, userID, id int64) error {
	return translate(s.systems.Delete(ctx, userID, id))
}

func validateSystem(in SystemInput, partial bool) error {
	v := &ValidationError{}
	checkText(v, "title", in.Title, !partial, maxTitleLength)
	checkText(v, "location", in.Location, !partial, maxLocationLength)
	return v.OrNil()
}

// translate maps repository sentinels to service errors.
func translate(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
