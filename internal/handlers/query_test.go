package handlers

import (
	"testing"
	"time"

	"hydroponics/internal/models"
)

func TestParseQueryTime(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-08-27T15:04:05Z", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), false},
		{"2025-08-27T17:04:05+02:00", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), false},
		{"2025-08-27T15:04:05.123456Z", time.Date(2025, 8, 27, 15, 4, 5, 123456000, time.UTC), false},
		{"2025-08-27 15:04:05", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), false},
		{"2025-08-27", time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), false},
		{"27/08/2025", time.Time{}, true},
		{"notatime", time.Time{}, true},
	}
	for _, tc := range cases {
		got, err := parseQueryTime(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%q: err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && !got.Equal(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsDateOnly(t *testing.T) {
	if !isDateOnly("2025-08-27") {
		t.Fatalf("plain date must be date-only")
	}
	for _, s := range []string{"2025-08-27T00:00:00Z", "2025-08-27 10:00:00"} {
		if isDateOnly(s) {
			t.Fatalf("%q has a time component", s)
		}
	}
}

func TestParseOrdering(t *testing.T) {
	got := parseOrdering(" -created, updated,,-")
	want := []models.SortField{{Field: "created", Desc: true}, {Field: "updated"}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	if parseOrdering("") != nil {
		t.Fatalf("empty ordering must be nil")
	}
}
