package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) domain.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Store(ctx context.Context, a *domain.Activity) error {
	query := `
		INSERT INTO activities (id, lead_id, user_id, type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.LeadID,
		a.UserID,
		a.Type,
		a.Description,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store activity: %w", err)
	}

	return nil
}

func (r *activityRepository) FindByLeadID(ctx context.Context, leadID uuid.UUID) ([]*domain.Activity, error) {
	query := `
		SELECT id, lead_id, user_id, type, description, created_at
		FROM activities
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(
			&a.ID,
			&a.LeadID,
			&a.UserID,
			&a.Type,
			&a.Description,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
