package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/service/mocks"
	"github.com/godilite/triage-server/internal/triage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTriageService(repo TicketRepository) *TriageService {
	return NewTriageService(repo, triage.NewSequencer(), zap.NewNop(), 4)
}

func TestNewTriageService(t *testing.T) {
	t.Run("nil storage panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTriageService(nil, triage.NewSequencer(), zap.NewNop(), 4)
		})
	})

	t.Run("nil sequencer panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTriageService(&mocks.MockTicketRepository{}, nil, zap.NewNop(), 4)
		})
	})

	t.Run("worker count below one falls back to default", func(t *testing.T) {
		svc := NewTriageService(&mocks.MockTicketRepository{}, triage.NewSequencer(), zap.NewNop(), 0)
		assert.Equal(t, defaultWorkerCount, svc.workers)
	})
}

func TestProcessBatch(t *testing.T) {
	svc := newTestTriageService(&mocks.MockTicketRepository{})

	records := []triage.FeedbackRecord{
		{SourceID: "R1", SourceType: triage.SourceReview, Rating: 1, Text: "App crashes when uploading photos"},
		{SourceID: "R2", SourceType: triage.SourceReview, Text: "Buy cheap watches at www.fakewatches.com! Click here!"},
		{SourceID: "R3", SourceType: triage.SourceReview, Rating: 4, Text: "Please add dark mode"},
		{SourceID: "R4", SourceType: triage.SourceReview, Rating: 5, Text: "Amazing app, love it, works perfectly"},
		{SourceID: "E1", SourceType: triage.SourceEmail, Subject: "Refund", Text: "Terrible customer service, very disappointed, no response for weeks"},
	}

	tickets, metrics, err := svc.ProcessBatch(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, 5, metrics.TotalFeedback)
	assert.Equal(t, 1, metrics.Bugs)
	assert.Equal(t, 1, metrics.Features)
	assert.Equal(t, 1, metrics.Praise)
	assert.Equal(t, 1, metrics.Complaints)
	assert.Equal(t, 1, metrics.Spam)
	assert.Equal(t, 4, metrics.TicketsCreated)
	assert.Greater(t, metrics.ProcessingTime.Nanoseconds(), int64(0))

	require.Len(t, tickets, 4)

	// Spam is dropped; ticket IDs stay dense and input-order stable.
	assert.Equal(t, "TICK-1001", tickets[0].TicketID)
	assert.Equal(t, "TICK-1002", tickets[1].TicketID)
	assert.Equal(t, "TICK-1003", tickets[2].TicketID)
	assert.Equal(t, "TICK-1004", tickets[3].TicketID)

	bug := tickets[0]
	assert.Equal(t, "R1", bug.SourceID)
	assert.Equal(t, triage.CategoryBug, bug.Category)
	assert.True(t, strings.HasPrefix(bug.Title, "[BUG]"))
	assert.Equal(t, triage.PriorityCritical, bug.Priority)
	assert.Equal(t, "Engineering Team", bug.AssignedTo)

	feature := tickets[1]
	assert.Equal(t, "R3", feature.SourceID)
	assert.Equal(t, triage.CategoryFeature, feature.Category)
	assert.Equal(t, "[FEATURE] dark mode", feature.Title)
	assert.Equal(t, "Product Team", feature.AssignedTo)
	assert.Contains(t, feature.Tags, "enhancement")

	assert.Equal(t, triage.CategoryPraise, tickets[2].Category)
	assert.Equal(t, triage.CategoryComplaint, tickets[3].Category)
}

func TestProcessBatchEmpty(t *testing.T) {
	svc := newTestTriageService(&mocks.MockTicketRepository{})

	tickets, metrics, err := svc.ProcessBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, tickets)
	assert.Equal(t, 0, metrics.TotalFeedback)
	assert.Equal(t, 0, metrics.TicketsCreated)
}

func TestProcessFeedbackFiles(t *testing.T) {
	dir := t.TempDir()

	reviewsPath := filepath.Join(dir, "reviews.csv")
	emailsPath := filepath.Join(dir, "emails.csv")
	exportPath := filepath.Join(dir, "tickets.csv")

	reviewsCSV := "review_id,rating,review_text,user_name,date,platform\n" +
		"R1,1,App crashes when uploading photos,sam_t,2026-03-01,iOS\n" +
		"R2,4,Please add dark mode,ana,2026-03-02,Android\n"
	emailsCSV := "email_id,sender_email,subject,body\n" +
		"E1,user@example.com,Billing problem,Terrible customer service and no response for weeks\n"

	require.NoError(t, os.WriteFile(reviewsPath, []byte(reviewsCSV), 0o644))
	require.NoError(t, os.WriteFile(emailsPath, []byte(emailsCSV), 0o644))

	var saved []triage.Ticket
	repo := &mocks.MockTicketRepository{
		SaveTicketsFunc: func(_ context.Context, tickets []triage.Ticket) error {
			saved = tickets
			return nil
		},
	}
	svc := newTestTriageService(repo)

	tickets, metrics, err := svc.ProcessFeedbackFiles(context.Background(), reviewsPath, emailsPath, exportPath)
	require.NoError(t, err)

	require.Len(t, tickets, 3)
	assert.Equal(t, tickets, saved)
	assert.Equal(t, 3, metrics.TotalFeedback)

	assert.Equal(t, triage.CategoryBug, tickets[0].Category)
	// The platform column flows through the bug analysis into the ticket.
	assert.Contains(t, tickets[0].Description, "- Platform: iOS")
	assert.Equal(t, triage.CategoryFeature, tickets[1].Category)
	assert.Equal(t, triage.CategoryComplaint, tickets[2].Category)
	assert.Equal(t, "[FEEDBACK] Billing problem", tickets[2].Title)

	exported, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(exported), "ticket_id,source_id,source_type,category,title"))
	assert.Contains(t, string(exported), "TICK-1001")
}

func TestProcessFeedbackFilesErrors(t *testing.T) {
	dir := t.TempDir()
	reviewsPath := filepath.Join(dir, "reviews.csv")
	emailsPath := filepath.Join(dir, "emails.csv")
	require.NoError(t, os.WriteFile(reviewsPath, []byte("review_id,review_text\nR1,App crashes constantly\n"), 0o644))
	require.NoError(t, os.WriteFile(emailsPath, []byte("email_id,body\n"), 0o644))

	t.Run("missing input file", func(t *testing.T) {
		svc := newTestTriageService(&mocks.MockTicketRepository{})

		_, _, err := svc.ProcessFeedbackFiles(context.Background(), filepath.Join(dir, "nope.csv"), emailsPath, "")
		assert.Error(t, err)
	})

	t.Run("archive failure", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			SaveTicketsFunc: func(context.Context, []triage.Ticket) error {
				return errors.New("disk full")
			},
		}
		svc := newTestTriageService(repo)

		_, _, err := svc.ProcessFeedbackFiles(context.Background(), reviewsPath, emailsPath, "")
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestGetTickets(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		var gotFilter models.TicketFilter
		repo := &mocks.MockTicketRepository{
			ListTicketsFunc: func(_ context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
				gotFilter = filter
				return []triage.Ticket{{TicketID: "TICK-1001"}}, nil
			},
		}
		svc := newTestTriageService(repo)

		tickets, err := svc.GetTickets(context.Background(), models.TicketFilter{Category: "Bug", Priority: "High"})

		require.NoError(t, err)
		assert.Len(t, tickets, 1)
		assert.Equal(t, models.TicketFilter{Category: "Bug", Priority: "High"}, gotFilter)
	})

	t.Run("empty archive", func(t *testing.T) {
		svc := newTestTriageService(&mocks.MockTicketRepository{})

		_, err := svc.GetTickets(context.Background(), models.TicketFilter{})
		assert.ErrorIs(t, err, ErrNoTickets)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			ListTicketsFunc: func(context.Context, models.TicketFilter) ([]triage.Ticket, error) {
				return nil, errors.New("boom")
			},
		}
		svc := newTestTriageService(repo)

		_, err := svc.GetTickets(context.Background(), models.TicketFilter{})
		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestPriorityBreakdown(t *testing.T) {
	t.Run("returns counts", func(t *testing.T) {
		repo := &mocks.MockTicketRepository{
			PriorityBreakdownFunc: func(context.Context) ([]models.PriorityCount, error) {
				return []models.PriorityCount{{Priority: "Critical", Count: 2}}, nil
			},
		}
		svc := newTestTriageService(repo)

		rows, err := svc.PriorityBreakdown(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []models.PriorityCount{{Priority: "Critical", Count: 2}}, rows)
	})

	t.Run("empty archive", func(t *testing.T) {
		svc := newTestTriageService(&mocks.MockTicketRepository{})

		_, err := svc.PriorityBreakdown(context.Background())
		assert.ErrorIs(t, err, ErrNoTickets)
	})
}
