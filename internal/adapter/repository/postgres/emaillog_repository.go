package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/internal/domain"
)

type emailLogRepository struct {
	db *sql.DB
}

func NewEmailLogRepository(db *sql.DB) domain.EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Store(ctx context.Context, e *domain.EmailLog) error {
	query := `
		INSERT INTO email_logs (id, sender, subject, body, processed, lead_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Sender,
		e.Subject,
		e.Body,
		e.Processed,
		e.LeadID,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store email log: %w", err)
	}

	return nil
}

func (r *emailLogRepository) MarkProcessed(ctx context.Context, id, leadID uuid.UUID) error {
	query := `UPDATE email_logs SET processed = TRUE, lead_id = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, leadID)
	if err != nil {
		return fmt.Errorf("mark email log processed: %w", err)
	}

	return nil
}
