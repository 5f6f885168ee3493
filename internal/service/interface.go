package service

import (
	"context"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
)

// TicketRepository defines the storage operations the services need.
type TicketRepository interface {
	SaveTickets(ctx context.Context, tickets []triage.Ticket) error
	ListTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error)
	PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error)
}
