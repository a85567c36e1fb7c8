package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hydroponics/internal/models"
	"hydroponics/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"

	msgInvalidTime   = "Enter a valid date/time (RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD')."
	msgInvalidNumber = "Enter a number."
	msgInvalidID     = "Enter a whole number."
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q", s)
}

// queryParser reads optional filter parameters and collects the ones
// that fail to parse.
type queryParser struct {
	c    *gin.Context
	errs *service.ValidationError
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c, errs: &service.ValidationError{}}
}

// lower parses a lower time bound.
func (p *queryParser) lower(name string) time.Time {
	qs := strings.TrimSpace(p.c.Query(name))
	if qs == "" {
		return time.Time{}
	}
	t, err := parseQueryTime(qs)
	if err != nil {
		p.errs.Add(name, msgInvalidTime)
	}
	return t
}

// upper parses an upper time bound. A date without a time covers the
// whole day.
func (p *queryParser) upper(name string) time.Time {
	qs := strings.TrimSpace(p.c.Query(name))
	if qs == "" {
		return time.Time{}
	}
	t, err := parseQueryTime(qs)
	if err != nil {
		p.errs.Add(name, msgInvalidTime)
		return time.Time{}
	}
	if isDateOnly(qs) {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return t
}

func (p *queryParser) fixed(name string) *models.Fixed {
	qs := strings.TrimSpace(p.c.Query(name))
	if qs == "" {
		return nil
	}
	d, err := decimal.NewFromString(qs)
	if err != nil {
		p.errs.Add(name, msgInvalidNumber)
		return nil
	}
	return &models.Fixed{Decimal: d}
}

func (p *queryParser) id(name string) int64 {
	qs := strings.TrimSpace(p.c.Query(name))
	if qs == "" {
		return 0
	}
	v, err := strconv.ParseInt(qs, 10, 64)
	if err != nil || v <= 0 {
		p.errs.Add(name, msgInvalidID)
		return 0
	}
	return v
}

func (p *queryParser) err() error {
	return p.errs.OrNil()
}

// parseOrdering splits "?ordering=-created,updated". Unknown names are
// left for the store to drop.
func parseOrdering(raw string) []models.SortField {
	var out []models.SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if part == "" {
			continue
		}
		out = append(out, models.SortField{Field: part, Desc: desc})
	}
	return out
}

func parseSystemFilter(c *gin.Context) (models.SystemFilter, error) {
	p := newQueryParser(c)
	f := models.SystemFilter{
		Location:   strings.TrimSpace(c.Query("location")),
		CreatedMin: p.lower("created_min"),
		CreatedMax: p.upper("created_max"),
		UpdatedMin: p.lower("updated_min"),
		UpdatedMax: p.upper("updated_max"),
		Ordering:   parseOrdering(c.Query("ordering")),
	}
	return f, p.err()
}

func parseMeasurementFilter(c *gin.Context) (models.MeasurementFilter, error) {
	p := newQueryParser(c)
	f := models.MeasurementFilter{
		SystemID:       p.id("hydroponic_system"),
		StartDate:      p.lower("start_date"),
		EndDate:        p.upper("end_date"),
		PHMin:          p.fixed("ph_min"),
		PHMax:          p.fixed("ph_max"),
		TemperatureMin: p.fixed("temperature_min"),
		TemperatureMax: p.fixed("temperature_max"),
		TDSMin:         p.fixed("tds_min"),
		TDSMax:         p.fixed("tds_max"),
		Ordering:       parseOrdering(c.Query("ordering")),
	}
	return f, p.err()
}

// pathID reads the :id route parameter. Malformed ids are reported as
// missing records.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrNotFound
	}
	return id, nil
}
