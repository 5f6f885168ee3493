package service

import (
	"context"
	"fmt"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
	"go.uber.org/zap"
)

// ReviewService runs the quality critic over archived tickets.
type ReviewService struct {
	storage TicketRepository
	critic  *triage.Critic
	logger  *zap.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(storage TicketRepository, logger *zap.Logger) *ReviewService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ReviewService{
		storage: storage,
		critic:  triage.NewCritic(),
		logger:  logger,
	}
}

// ReviewBatch reviews the given tickets without touching storage.
func (s *ReviewService) ReviewBatch(tickets []triage.Ticket) triage.QualityReport {
	report := s.critic.ReviewBatch(tickets)

	s.logger.Info("tickets reviewed",
		zap.Int("total", report.TotalTickets),
		zap.Int("approved", report.Approved),
		zap.Int("rejected", report.Rejected),
		zap.Float64("average_quality_score", report.AverageQualityScore))

	return report
}

// ReviewStoredTickets loads every archived ticket and reviews it,
// returning the aggregate report and its text rendering.
func (s *ReviewService) ReviewStoredTickets(ctx context.Context) (triage.QualityReport, string, error) {
	tickets, err := s.storage.ListTickets(ctx, models.TicketFilter{})
	if err != nil {
		return triage.QualityReport{}, "", fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(tickets) == 0 {
		return triage.QualityReport{}, "", ErrNoTickets
	}

	report := s.ReviewBatch(tickets)
	return report, triage.RenderReport(report), nil
}
