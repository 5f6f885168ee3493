package mocks

import (
	"context"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
)

// MockTicketRepository is a configurable test double for
// service.TicketRepository.
type MockTicketRepository struct {
	SaveTicketsFunc       func(ctx context.Context, tickets []triage.Ticket) error
	ListTicketsFunc       func(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error)
	PriorityBreakdownFunc func(ctx context.Context) ([]models.PriorityCount, error)
}

func (m *MockTicketRepository) SaveTickets(ctx context.Context, tickets []triage.Ticket) error {
	if m.SaveTicketsFunc != nil {
		return m.SaveTicketsFunc(ctx, tickets)
	}
	return nil
}

func (m *MockTicketRepository) ListTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTicketRepository) PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error) {
	if m.PriorityBreakdownFunc != nil {
		return m.PriorityBreakdownFunc(ctx)
	}
	return nil, nil
}
