package mocks

import (
	"context"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
)

// MockTriageService is a configurable test double for grpc.TriageService.
type MockTriageService struct {
	ProcessFeedbackFilesFunc func(ctx context.Context, reviewsPath, emailsPath, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error)
	GetTicketsFunc           func(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error)
	PriorityBreakdownFunc    func(ctx context.Context) ([]models.PriorityCount, error)
}

func (m *MockTriageService) ProcessFeedbackFiles(ctx context.Context, reviewsPath, emailsPath, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error) {
	if m.ProcessFeedbackFilesFunc != nil {
		return m.ProcessFeedbackFilesFunc(ctx, reviewsPath, emailsPath, exportPath)
	}
	return nil, triage.BatchMetrics{}, nil
}

func (m *MockTriageService) GetTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
	if m.GetTicketsFunc != nil {
		return m.GetTicketsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockTriageService) PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error) {
	if m.PriorityBreakdownFunc != nil {
		return m.PriorityBreakdownFunc(ctx)
	}
	return nil, nil
}

// MockReviewService is a configurable test double for grpc.ReviewService.
type MockReviewService struct {
	ReviewStoredTicketsFunc func(ctx context.Context) (triage.QualityReport, string, error)
}

func (m *MockReviewService) ReviewStoredTickets(ctx context.Context) (triage.QualityReport, string, error) {
	if m.ReviewStoredTicketsFunc != nil {
		return m.ReviewStoredTicketsFunc(ctx)
	}
	return triage.QualityReport{}, "", nil
}

// MockChatService is a configurable test double for grpc.ChatService.
type MockChatService struct {
	ChatFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *MockChatService) Chat(ctx context.Context, prompt string) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, prompt)
	}
	return "", nil
}
