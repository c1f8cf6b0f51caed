package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

type dealershipRepository struct {
	db *sql.DB
}

func NewDealershipRepository(db *sql.DB) domain.DealershipRepository {
	return &dealershipRepository{db: db}
}

func (r *dealershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Dealership, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM dealerships
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *dealershipRepository) FindDefault(ctx context.Context) (*domain.Dealership, error) {
	query := `
		SELECT id, name, address, phone, email, created_at
		FROM dealerships
		ORDER BY created_at ASC
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query))
}

func (r *dealershipRepository) Store(ctx context.Context, d *domain.Dealership) error {
	query := `
		INSERT INTO dealerships (id, name, address, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Address,
		d.Phone,
		d.Email,
		d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store dealership: %w", err)
	}

	return nil
}

func (r *dealershipRepository) scanOne(row *sql.Row) (*domain.Dealership, error) {
	var d domain.Dealership
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Address,
		&d.Phone,
		&d.Email,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find dealership: %w", err)
	}
	return &d, nil
}
