package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/civicgrid/triage/internal/domain"
)

// ErrNotFound indicates the requested complaint does not exist.
var ErrNotFound = errors.New("complaint not found")

// ComplaintsRepository handles database operations for complaints.
type ComplaintsRepository struct {
	db *sqlx.DB
}

// NewComplaintsRepository creates a new complaints repository.
func NewComplaintsRepository(db *sqlx.DB) *ComplaintsRepository {
	return &ComplaintsRepository{db: db}
}

// Create inserts a new complaint record.
func (r *ComplaintsRepository) Create(ctx context.Context, c *domain.Complaint) error {
	query := r.db.Rebind(`
		INSERT INTO complaints (
			id, description, gps, area, voice_path, image_path, paper_path,
			category, priority, status, department, sla, eta, insight, zone,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Description, c.GPS, c.Area, c.VoicePath, c.ImagePath, c.PaperPath,
		c.Category, c.Priority, c.Status, c.Department, c.SLA, c.ETA, c.Insight, c.Zone,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID retrieves a complaint by its id.
func (r *ComplaintsRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	var c domain.Complaint
	query := r.db.Rebind(`SELECT * FROM complaints WHERE id = ?`)

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return &c, nil
}

// List retrieves the most recent complaints, newest first.
func (r *ComplaintsRepository) List(ctx context.Context, limit int) ([]domain.Complaint, error) {
	var out []domain.Complaint
	query := r.db.Rebind(`
		SELECT * FROM complaints
		ORDER BY created_at DESC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return out, nil
}

// ListPending retrieves submitted complaints awaiting triage, oldest
// first so the backlog drains in order.
func (r *ComplaintsRepository) ListPending(ctx context.Context, limit int) ([]domain.Complaint, error) {
	var out []domain.Complaint
	query := r.db.Rebind(`
		SELECT * FROM complaints
		WHERE status = ?
		ORDER BY created_at ASC
		LIMIT ?
	`)

	if err := r.db.SelectContext(ctx, &out, query, domain.StatusSubmitted, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending complaints: %w", err)
	}
	return out, nil
}

// UpdateAnalysis stores the triage verdict on a complaint and moves it
// to PENDING dispatch.
func (r *ComplaintsRepository) UpdateAnalysis(ctx context.Context, id string, out *domain.AnalysisOutput, description string) error {
	now := time.Now().UTC()
	query := r.db.Rebind(`
		UPDATE complaints
		SET description = ?, category = ?, priority = ?, status = ?,
		    department = ?, sla = ?, eta = ?, insight = ?, zone = ?, area = ?,
		    updated_at = ?, analyzed_at = ?
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query,
		description, out.Category, out.Priority, domain.StatusPending,
		out.Department, out.SLA, out.ETA, out.Insight, out.Zone, out.Zone,
		now, now, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update complaint analysis: %w", err)
	}
	if affected, raErr := res.RowsAffected(); raErr == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed records that triage could not be completed.
func (r *ComplaintsRepository) MarkFailed(ctx context.Context, id string) error {
	query := r.db.Rebind(`
		UPDATE complaints
		SET status = ?, updated_at = ?
		WHERE id = ?
	`)

	if _, err := r.db.ExecContext(ctx, query, domain.StatusFailed, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("failed to mark complaint failed: %w", err)
	}
	return nil
}

// CountByStatus returns the number of complaints in one status.
func (r *ComplaintsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM complaints WHERE status = ?`)

	if err := r.db.GetContext(ctx, &count, query, status); err != nil {
		return 0, fmt.Errorf("failed to count complaints: %w", err)
	}
	return count, nil
}
