package reports

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Listing limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// ErrNotFound is returned when no report has the requested ID
var ErrNotFound = errors.New("report not found")

// Repository handles report database operations
// Database: reports.db (reports table)
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new report repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "reports").Logger(),
	}
}

// Create assigns an ID and creation time and stores the report
func (r *Repository) Create(report *Report) error {
	report.ID = uuid.New().String()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO reports (id, kind, label, input, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, report.ID, report.Kind, report.Label, string(report.Input), string(report.Result), report.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	r.log.Debug().Str("id", report.ID).Str("kind", report.Kind).Msg("Report saved")
	return nil
}

// GetByID returns a report with its payloads
func (r *Repository) GetByID(id string) (*Report, error) {
	var report Report
	var input, result string
	var createdAt int64

	err := r.db.QueryRow(`
		SELECT id, kind, label, input, result, created_at
		FROM reports WHERE id = ?
	`, id).Scan(&report.ID, &report.Kind, &report.Label, &input, &result, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	report.Input = []byte(input)
	report.Result = []byte(result)
	report.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &report, nil
}

// List returns report summaries, newest first. An empty kind lists every kind.
func (r *Repository) List(kind string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := "SELECT id, kind, label, created_at FROM reports"
	args := []interface{}{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, kind)
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		var createdAt int64
		if err := rows.Scan(&s.ID, &s.Kind, &s.Label, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return summaries, nil
}

// Delete removes a report
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Debug().Str("id", id).Msg("Report deleted")
	return nil
}

// Count returns the number of saved reports
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM reports").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return n, nil
}
