package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hydroponics/internal/models"
)

type SystemSQLite struct {
	db *sql.DB
}

func NewSystemSQLite(db *sql.DB) *SystemSQLite {
	return &SystemSQLite{db: db}
}

var _ SystemRepo = (*SystemSQLite)(nil)

const (
	selectSystemsSQL        = `SELECT id, title, user_id, location, created, updated FROM systems`
	selectSystemSQL         = selectSystemsSQL + ` WHERE id = ? AND user_id = ?`
	selectSystemOwnerSQL    = `SELECT user_id FROM systems WHERE id = ?`
	insertSystemSQL         = `INSERT INTO systems (title, user_id, location, created, updated) VALUES (?, ?, ?, ?, ?)`
	updateSystemSQL         = `UPDATE systems SET title = ?, location = ?, updated = ? WHERE id = ? AND user_id = ?`
	deleteSystemChildrenSQL = `DELETE FROM measurements WHERE system_id IN (SELECT id FROM systems WHERE id = ? AND user_id = ?)`
	deleteSystemSQL         = `DELETE FROM systems WHERE id = ? AND user_id = ?`
)

// systemOrdering maps public ordering names to columns.
var systemOrdering = map[string]string{
	"created": "created",
	"updated": "updated",
}

// List returns the owner's systems matching f.
func (r *SystemSQLite) List(ctx context.Context, ownerID int64, f models.SystemFilter) ([]models.System, error) {
	var p predicates
	p.add("user_id = ?", ownerID)
	p.containsFold("location", f.Location)
	p.timeRange("created", f.CreatedMin, f.CreatedMax)
	p.timeRange("updated", f.UpdatedMin, f.UpdatedMax)

	q := selectSystemsSQL + p.where() + orderBy(f.Ordering, systemOrdering, "id")

	rows, err := r.db.QueryContext(ctx, q, p.args...)
	if err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	defer rows.Close()

	out := make([]models.System, 0, 16)
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list systems: %w", err)
	}
	return out, nil
}

// Get returns the system with id if it belongs to ownerID.
func (r *SystemSQLite) Get(ctx context.Context, ownerID, id int64) (models.System, error) {
	s, err := scanSystem(r.db.QueryRowContext(ctx, selectSystemSQL, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.System{}, ErrNotFound
		}
		return models.System{}, fmt.Errorf("select system %d: %w", id, err)
	}
	return s, nil
}

// OwnerOf returns the owner of any system, regardless of the caller.
// It backs cross-entity permission checks only.
func (r *SystemSQLite) OwnerOf(ctx context.Context, id int64) (int64, error) {
	var owner int64
	if err := r.db.QueryRowContext(ctx, selectSystemOwnerSQL, id).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("select owner of system %d: %w", id, err)
	}
	return owner, nil
}

func (r *SystemSQLite) Create(ctx context.Context, s models.System) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertSystemSQL,
		s.Title, s.OwnerID, s.Location, formatTime(s.Created), formatTime(s.Updated))
	if err != nil {
		return 0, fmt.Errorf("insert system: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for system: %w", err)
	}
	return id, nil
}

// Update writes title, location and updated. Owner and created never change.
func (r *SystemSQLite) Update(ctx context.Context, ownerID int64, s models.System) error {
	res, err := r.db.ExecContext(ctx, updateSystemSQL,
		s.Title, s.Location, formatTime(s.Updated), s.ID, ownerID)
	if err != nil {
		return fmt.Errorf("update system %d: %w", s.ID, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("update system %d: %w", s.ID, err)
	}
	return nil
}

// Delete removes the system and its measurements in one transaction.
func (r *SystemSQLite) Delete(ctx context.Context, ownerID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete system %d: %w", id, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteSystemChildrenSQL, id, ownerID); err != nil {
		return fmt.Errorf("delete measurements of system %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, deleteSystemSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete system %d: %w", id, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("delete system %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete system %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSystem(row rowScanner) (models.System, error) {
	var (
		s                models.System
		created, updated string
	)
	if err := row.Scan(&s.ID, &s.Title, &s.OwnerID, &s.Location, &created, &updated); err != nil {
		return models.System{}, err
	}
	var err error
	if s.Created, err = parseTime(created); err != nil {
		return models.System{}, fmt.Errorf("parse created: %w", err)
	}
	if s.Updated, err = parseTime(updated); err != nil {
		return models.System{}, fmt.Errorf("parse updated: %w", err)
	}
	return s, nil
}
