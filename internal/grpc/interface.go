package grpc

import (
	"context"
	"time"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
)

// Cacher defines the cache operations the handlers use.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// TriageService runs the pipeline and serves the ticket archive.
type TriageService interface {
	ProcessFeedbackFiles(ctx context.Context, reviewsPath, emailsPath, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error)
	GetTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error)
	PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error)
}

// ReviewService runs the quality critic over the archive.
type ReviewService interface {
	ReviewStoredTickets(ctx context.Context) (triage.QualityReport, string, error)
}

// ChatService is the optional LLM passthrough.
type ChatService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}
