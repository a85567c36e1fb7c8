package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hydroponics/internal/models"
	"hydroponics/internal/repository"
	"hydroponics/internal/repository/db"
)

type fixture struct {
	svc   *Service
	repos *repository.Repository
	alice int64
	bob   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	f := &fixture{svc: NewService(repos, testConfig), repos: repos}
	ctx := context.Background()
	if f.alice, err = repos.Auth.Create(ctx, "alice", "x"); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if f.bob, err = repos.Auth.Create(ctx, "bob", "x"); err != nil {
		t.Fatalf("create bob: %v", err)
	}
	return f
}

// stepClock makes clock() advance by one minute per call from start.
func stepClock(t *testing.T, start time.Time) {
	t.Helper()
	prev := clock
	next := start
	clock = func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
	t.Cleanup(func() { clock = prev })
}

func strPtr(s string) *string { return &s }

func (f *fixture) system(t *testing.T, owner int64, title, location string) models.System {
	t.Helper()
	s, err := f.svc.CreateSystem(context.Background(), owner, SystemInput{Title: &title, Location: &location})
	if err != nil {
		t.Fatalf("CreateSystem: %v", err)
	}
	return s
}

func TestSystemService_CreateForcesOwner(t *testing.T) {
	f := newFixture(t)
	s := f.system(t, f.alice, "Greenhouse", "London")
	if s.OwnerID != f.alice || s.ID == 0 {
		t.Fatalf("unexpected system: %+v", s)
	}
	stored, err := f.repos.Systems.Get(context.Background(), f.alice, s.ID)
	if err != nil {
		t.Fatalf("stored system: %v", err)
	}
	if stored.OwnerID != f.alice {
		t.Fatalf("owner = %d, want %d", stored.OwnerID, f.alice)
	}
}

func TestSystemService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name  string
		in    SystemInput
		field string
	}{
		{"missing title", SystemInput{Location: strPtr("x")}, "title"},
		{"blank location", SystemInput{Title: strPtr("t"), Location: strPtr("  ")}, "location"},
		{"oversize title", SystemInput{Title: strPtr(strings.Repeat("a", 101)), Location: strPtr("x")}, "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateSystem(context.Background(), f.alice, tc.in)
			var v *ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := v.Fields[tc.field]; !ok {
				t.Fatalf("expected error on %s, got %v", tc.field, v.Fields)
			}
		})
	}
	list, _ := f.svc.ListSystems(context.Background(), f.alice, models.SystemFilter{})
	if len(list) != 0 {
		t.Fatalf("invalid payloads must not persist, got %d", len(list))
	}
}

func TestSystemService_OtherUsersSystemIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.system(t, f.alice, "A", "London")

	list, err := f.svc.ListSystems(ctx, f.bob, models.SystemFilter{})
	if err != nil || len(list) != 0 {
		t.Fatalf("bob list = %v, %v", list, err)
	}
	if _, err := f.svc.GetSystem(ctx, f.bob, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetSystem: want ErrNotFound, got %v", err)
	}
	if _, err := f.svc.UpdateSystem(ctx, f.bob, s.ID, SystemInput{Title: strPtr("x")}, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateSystem: want ErrNotFound, got %v", err)
	}
	if err := f.svc.DeleteSystem(ctx, f.bob, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteSystem: want ErrNotFound, got %v", err)
	}
}

func TestSystemService_UpdatePartialAndFull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stepClock(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := f.system(t, f.alice, "System 1", "London")

	got, err := f.svc.UpdateSystem(ctx, f.alice, s.ID, SystemInput{Title: strPtr("System 2")}, true)
	if err != nil {
		t.Fatalf("partial update: %v", err)
	}
	if got.Title != "System 2" || got.Location != "London" || got.OwnerID != f.alice {
		t.Fatalf("partial update result: %+v", got)
	}
	if !got.Updated.After(s.Updated) || !got.Created.Equal(s.Created) {
		t.Fatalf("timestamps: created %v->%v updated %v->%v", s.Created, got.Created, s.Updated, got.Updated)
	}

	if _, err := f.svc.UpdateSystem(ctx, f.alice, s.ID, SystemInput{Title: strPtr("only title")}, false); err == nil {
		t.Fatalf("full update without location must fail")
	}

	got, err = f.svc.UpdateSystem(ctx, f.alice, s.ID, SystemInput{Title: strPtr("T"), Location: strPtr("Barcelona")}, false)
	if err != nil {
		t.Fatalf("full update: %v", err)
	}
	stored, _ := f.repos.Systems.Get(ctx, f.alice, s.ID)
	if stored.Title != "T" || stored.Location != "Barcelona" || stored.OwnerID != f.alice {
		t.Fatalf("stored after full update: %+v", stored)
	}
	if !stored.Updated.Equal(got.Updated) {
		t.Fatalf("stored updated %v, returned %v", stored.Updated, got.Updated)
	}
}

func TestSystemService_DetailEmbedsTenNewest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stepClock(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := f.system(t, f.alice, "S", "L")
	other := f.system(t, f.alice, "O", "L")

	var created []models.Measurement
	for i := 0; i < 12; i++ {
		m, err := f.svc.CreateMeasurement(ctx, f.alice, MeasurementInput{
			SystemID: &s.ID, PH: fixed("6"), Temperature: fixed("20"), TDS: fixed("100"),
		})
		if err != nil {
			t.Fatalf("CreateMeasurement: %v", err)
		}
		created = append(created, m)
	}
	if _, err := f.svc.CreateMeasurement(ctx, f.alice, MeasurementInput{
		SystemID: &other.ID, PH: fixed("6"), Temperature: fixed("20"), TDS: fixed("100"),
	}); err != nil {
		t.Fatalf("CreateMeasurement other: %v", err)
	}

	d, err := f.svc.GetSystem(ctx, f.alice, s.ID)
	if err != nil {
		t.Fatalf("GetSystem: %v", err)
	}
	if d.ID != s.ID || len(d.Measurements) != RecentMeasurements {
		t.Fatalf("detail: id %d, %d measurements", d.ID, len(d.Measurements))
	}
	for i, m := range d.Measurements {
		want := created[len(created)-1-i]
		if m.ID != want.ID {
			t.Fatalf("position %d: got measurement %d, want %d", i, m.ID, want.ID)
		}
	}
}

func TestSystemService_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := f.system(t, f.alice, "S", "L")
	m, err := f.svc.CreateMeasurement(ctx, f.alice, MeasurementInput{
		SystemID: &s.ID, PH: fixed("6"), Temperature: fixed("20"), TDS: fixed("100"),
	})
	if err != nil {
		t.Fatalf("CreateMeasurement: %v", err)
	}

	if err := f.svc.DeleteSystem(ctx, f.alice, s.ID); err != nil {
		t.Fatalf("DeleteSystem: %v", err)
	}
	if _, err := f.svc.GetMeasurement(ctx, f.alice, m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("measurement should be gone, got %v", err)
	}
}
