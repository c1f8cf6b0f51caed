package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

const leadColumns = `id, dealership_id, assigned_to, customer_name, customer_email,
	customer_phone, vehicle_interest, source, notes, priority, status, created_at, updated_at`

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Store(ctx context.Context, l *domain.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.DealershipID,
		l.AssignedTo,
		l.CustomerName,
		l.CustomerEmail,
		l.CustomerPhone,
		l.VehicleInterest,
		l.Source,
		l.Notes,
		l.Priority,
		l.Status,
		l.CreatedAt,
		l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("store lead: %w", err)
	}

	return nil
}

// FindByID returns the lead only when it exists within the given scope.
// A lead outside the caller's dealership is indistinguishable from a
// missing one.
func (r *leadRepository) FindByID(ctx context.Context, id uuid.UUID, scope domain.Scope) (*domain.Lead, error) {
	if scope.Empty {
		return nil, domain.ErrNotFound
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	args := []interface{}{id}

	if scope.DealershipID != nil {
		query += ` AND dealership_id = $2`
		args = append(args, *scope.DealershipID)
	}

	var l domain.Lead
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&l.ID,
		&l.DealershipID,
		&l.AssignedTo,
		&l.CustomerName,
		&l.CustomerEmail,
		&l.CustomerPhone,
		&l.VehicleInterest,
		&l.Source,
		&l.Notes,
		&l.Priority,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find lead by ID: %w", err)
	}
	return &l, nil
}

func (r *leadRepository) List(ctx context.Context, filter domain.LeadFilter) ([]*domain.Lead, error) {
	if filter.Scope.Empty {
		return nil, nil
	}

	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Scope.DealershipID != nil {
		query += fmt.Sprintf(" AND dealership_id = $%d", argIdx)
		args = append(args, *filter.Scope.DealershipID)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		var l domain.Lead
		if err := rows.Scan(
			&l.ID,
			&l.DealershipID,
			&l.AssignedTo,
			&l.CustomerName,
			&l.CustomerEmail,
			&l.CustomerPhone,
			&l.VehicleInterest,
			&l.Source,
			&l.Notes,
			&l.Priority,
			&l.Status,
			&l.CreatedAt,
			&l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *leadRepository) Update(ctx context.Context, l *domain.Lead) error {
	query := `
		UPDATE leads
		SET assigned_to = $2, customer_name = $3, customer_email = $4,
			customer_phone = $5, vehicle_interest = $6, source = $7,
			notes = $8, priority = $9, status = $10, updated_at = $11
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.AssignedTo,
		l.CustomerName,
		l.CustomerEmail,
		l.CustomerPhone,
		l.VehicleInterest,
		l.Source,
		l.Notes,
		l.Priority,
		l.Status,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}

	return nil
}

func (r *leadRepository) Count(ctx context.Context, scope domain.Scope) (int64, error) {
	if scope.Empty {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM leads`
	args := []interface{}{}

	if scope.DealershipID != nil {
		query += ` WHERE dealership_id = $1`
		args = append(args, *scope.DealershipID)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return count, nil
}

func (r *leadRepository) CountSince(ctx context.Context, scope domain.Scope, since time.Time) (int64, error) {
	if scope.Empty {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM leads WHERE created_at >= $1`
	args := []interface{}{since}

	if scope.DealershipID != nil {
		query += ` AND dealership_id = $2`
		args = append(args, *scope.DealershipID)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leads since: %w", err)
	}
	return count, nil
}

func (r *leadRepository) CountByStatus(ctx context.Context, scope domain.Scope) ([]domain.StatusCount, error) {
	if scope.Empty {
		return nil, nil
	}

	query := `SELECT status, COUNT(*) FROM leads`
	args := []interface{}{}

	if scope.DealershipID != nil {
		query += ` WHERE dealership_id = $1`
		args = append(args, *scope.DealershipID)
	}
	query += ` GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count leads by status: %w", err)
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
