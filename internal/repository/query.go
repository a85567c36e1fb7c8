package repository

import (
	"strings"
	"time"

	"hydroponics/internal/models"

	"github.com/shopspring/decimal"
)

// timeLayout is fixed-width so that text comparison in SQL matches time order.
const timeLayout = "2006-01-02 15:04:05.000000"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// predicates accumulates AND-ed conditions with their placeholder args.
type predicates struct {
	conds []string
	args  []any
}

func (p *predicates) add(cond string, args ...any) {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, args...)
}

func (p *predicates) timeRange(column string, from, to time.Time) {
	if !from.IsZero() {
		p.add(column+" >= ?", formatTime(from))
	}
	if !to.IsZero() {
		p.add(column+" <= ?", formatTime(to))
	}
}

// maxBoundHundredths is far outside any storable reading; bounds beyond it
// are clamped so they keep their meaning without overflowing int64.
var maxBoundHundredths = decimal.NewFromInt(1_000_000_000)

// boundHundredths converts a filter bound to the stored integer scale.
// Lower bounds round up and upper bounds round down, so a bound finer than
// hundredths never admits a value outside the requested range.
func boundHundredths(f models.Fixed, lower bool) int64 {
	d := f.Shift(models.FixedPlaces)
	if lower {
		d = d.Ceil()
	} else {
		d = d.Floor()
	}
	if d.GreaterThan(maxBoundHundredths) {
		d = maxBoundHundredths
	} else if d.LessThan(maxBoundHundredths.Neg()) {
		d = maxBoundHundredths.Neg()
	}
	return d.IntPart()
}

func (p *predicates) fixedRange(column string, lo, hi *models.Fixed) {
	if lo != nil {
		p.add(column+" >= ?", boundHundredths(*lo, true))
	}
	if hi != nil {
		p.add(column+" <= ?", boundHundredths(*hi, false))
	}
}

// containsFold adds a case-insensitive substring match.
func (p *predicates) containsFold(column, needle string) {
	if needle == "" {
		return
	}
	p.add("LOWER("+column+`) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(needle))+"%")
}

func (p *predicates) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderBy renders an ORDER BY clause from allowed public field names.
// Unknown fields are dropped; the id tiebreaker keeps paging stable.
func orderBy(fields []models.SortField, allowed map[string]string, idColumn string) string {
	var parts []string
	for _, f := range fields {
		col, ok := allowed[f.Field]
		if !ok {
			continue
		}
		if f.Desc {
			parts = append(parts, col+" DESC")
		} else {
			parts = append(parts, col+" ASC")
		}
	}
	parts = append(parts, idColumn+" DESC")
	return " ORDER BY " + strings.Join(parts, ", ")
}
