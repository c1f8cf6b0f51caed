package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/openlot/leadhub/internal/domain"
)

type analyticsService struct {
	leadRepo domain.LeadRepository
}

func NewAnalyticsService(leadRepo domain.LeadRepository) AnalyticsUseCase {
	return &analyticsService{leadRepo: leadRepo}
}

// Summary returns aggregate lead counts within the actor's scope: total,
// last 7 days, last 30 days, and a per-status breakdown. Statuses with no
// leads are reported as zero so the breakdown shape is stable.
func (s *analyticsService) Summary(ctx context.Context, actor Actor) (*AnalyticsSummary, error) {
	_, span := otel.Tracer("analytics-service").Start(ctx, "Summary")
	defer span.End()

	scope := actor.Scope()
	now := time.Now()

	total, err := s.leadRepo.Count(ctx, scope)
	if err != nil {
		return nil, err
	}
	last7, err := s.leadRepo.CountSince(ctx, scope, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	last30, err := s.leadRepo.CountSince(ctx, scope, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	counts, err := s.leadRepo.CountByStatus(ctx, scope)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[domain.LeadStatus]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	breakdown := make([]domain.StatusCount, 0, len(domain.LeadStatuses))
	for _, status := range domain.LeadStatuses {
		breakdown = append(breakdown, domain.StatusCount{Status: status, Count: byStatus[status]})
	}

	return &AnalyticsSummary{
		TotalLeads:      total,
		LeadsLast7Days:  last7,
		LeadsLast30Days: last30,
		StatusBreakdown: breakdown,
	}, nil
}
