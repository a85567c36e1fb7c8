package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"hydroponics/internal/models"
)

type MeasurementSQLite struct {
	db *sql.DB
}

func NewMeasurementSQLite(db *sql.DB) *MeasurementSQLite {
	return &MeasurementSQLite{db: db}
}

var _ MeasurementRepo = (*MeasurementSQLite)(nil)

// Every read joins the parent system so the owner predicate can be applied.
const (
	selectMeasurementsSQL = `SELECT m.id, m.system_id, m.ph, m.temperature, m.tds, m.timestamp
		FROM measurements m JOIN systems s ON s.id = m.system_id`
	selectMeasurementSQL  = selectMeasurementsSQL + ` WHERE m.id = ? AND s.user_id = ?`
	insertMeasurementSQL  = `INSERT INTO measurements (system_id, ph, temperature, tds, timestamp) VALUES (?, ?, ?, ?, ?)`
	updateMeasurementSQL  = `UPDATE measurements SET ph = ?, temperature = ?, tds = ?
		WHERE id = ? AND system_id IN (SELECT id FROM systems WHERE user_id = ?)`
	deleteMeasurementSQL  = `DELETE FROM measurements
		WHERE id = ? AND system_id IN (SELECT id FROM systems WHERE user_id = ?)`
)

var measurementOrdering = map[string]string{
	"timestamp":   "m.timestamp",
	"ph":          "m.ph",
	"temperature": "m.temperature",
	"tds":         "m.tds",
}

// List returns measurements of the owner's systems matching f.
func (r *MeasurementSQLite) List(ctx context.Context, ownerID int64, f models.MeasurementFilter) ([]models.Measurement, error) {
	var p predicates
	p.add("s.user_id = ?", ownerID)
	if f.SystemID != 0 {
		p.add("m.system_id = ?", f.SystemID)
	}
	p.timeRange("m.timestamp", f.StartDate, f.EndDate)
	p.fixedRange("m.ph", f.PHMin, f.PHMax)
	p.fixedRange("m.temperature", f.TemperatureMin, f.TemperatureMax)
	p.fixedRange("m.tds", f.TDSMin, f.TDSMax)

	q := selectMeasurementsSQL + p.where() + orderBy(f.Ordering, measurementOrdering, "m.id")
	if f.Limit > 0 {
		q += " LIMIT " + strconv.Itoa(f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, p.args...)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	out := make([]models.Measurement, 0, 64)
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return out, nil
}

func (r *MeasurementSQLite) Get(ctx context.Context, ownerID, id int64) (models.Measurement, error) {
	m, err := scanMeasurement(r.db.QueryRowContext(ctx, selectMeasurementSQL, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Measurement{}, ErrNotFound
		}
		return models.Measurement{}, fmt.Errorf("select measurement %d: %w", id, err)
	}
	return m, nil
}

// Create inserts m as given. Ownership of the parent is checked by the caller.
func (r *MeasurementSQLite) Create(ctx context.Context, m models.Measurement) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertMeasurementSQL,
		m.SystemID,
		m.PH.Hundredths(),
		m.Temperature.Hundredths(),
		m.TDS.Hundredths(),
		formatTime(m.Timestamp),
	)
	if err != nil {
		return 0, fmt.Errorf("insert measurement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for measurement: %w", err)
	}
	return id, nil
}

// Update writes the readings only; parent and timestamp are fixed at creation.
func (r *MeasurementSQLite) Update(ctx context.Context, ownerID int64, m models.Measurement) error {
	res, err := r.db.ExecContext(ctx, updateMeasurementSQL,
		m.PH.Hundredths(),
		m.Temperature.Hundredths(),
		m.TDS.Hundredths(),
		m.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("update measurement %d: %w", m.ID, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("update measurement %d: %w", m.ID, err)
	}
	return nil
}

func (r *MeasurementSQLite) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteMeasurementSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete measurement %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("delete measurement %d: %w", id, err)
	}
	return nil
}

func scanMeasurement(row rowScanner) (models.Measurement, error) {
	var (
		m            models.Measurement
		ph, temp, td int64
		ts           string
	)
	if err := row.Scan(&m.ID, &m.SystemID, &ph, &temp, &td, &ts); err != nil {
		return models.Measurement{}, err
	}
	m.PH = models.NewFixed(ph)
	m.Temperature = models.NewFixed(temp)
	m.TDS = models.NewFixed(td)
	t, err := parseTime(ts)
	if err != nil {
		return models.Measurement{}, fmt.Errorf("parse timestamp: %w", err)
	}
	m.Timestamp = t
	return m, nil
}
