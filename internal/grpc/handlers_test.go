package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	pb "github.com/godilite/triage-server/api/v1"
	"github.com/godilite/triage-server/internal/grpc/mocks"
	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/service"
	"github.com/godilite/triage-server/internal/triage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestHandlers(t *testing.T, triageSvc TriageService, reviewSvc ReviewService, chatSvc ChatService, cache Cacher) *GRPCHandlers {
	t.Helper()
	if triageSvc == nil {
		triageSvc = &mocks.MockTriageService{}
	}
	if reviewSvc == nil {
		reviewSvc = &mocks.MockReviewService{}
	}
	return NewGRPCHandlers(triageSvc, reviewSvc, chatSvc, cache, zap.NewNop(), time.Minute, "")
}

func TestNewGRPCHandlers(t *testing.T) {
	t.Run("nil triage service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockReviewService{}, nil, nil, zap.NewNop(), time.Minute, "")
		})
	})

	t.Run("nil review service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(&mocks.MockTriageService{}, nil, nil, nil, zap.NewNop(), time.Minute, "")
		})
	})

	t.Run("non-positive ttl falls back to default", func(t *testing.T) {
		h := NewGRPCHandlers(&mocks.MockTriageService{}, &mocks.MockReviewService{}, nil, nil, zap.NewNop(), 0, "")
		assert.Equal(t, defaultCacheDuration, h.cacheTTL)
	})
}

func TestProcessFeedback(t *testing.T) {
	t.Run("requires both input paths", func(t *testing.T) {
		h := newTestHandlers(t, nil, nil, nil, nil)

		_, err := h.ProcessFeedback(context.Background(), &pb.ProcessFeedbackRequest{ReviewsPath: "reviews.csv"})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("returns batch metrics and invalidates caches", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			ProcessFeedbackFilesFunc: func(_ context.Context, reviewsPath, emailsPath, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error) {
				assert.Equal(t, "reviews.csv", reviewsPath)
				assert.Equal(t, "emails.csv", emailsPath)
				assert.Equal(t, "out.csv", exportPath)
				return nil, triage.BatchMetrics{
					TotalFeedback:  5,
					Bugs:           1,
					Features:       1,
					Praise:         1,
					Complaints:     1,
					Spam:           1,
					TicketsCreated: 4,
					ProcessingTime: 1500 * time.Millisecond,
				}, nil
			},
		}
		var deleted []string
		cache := &mocks.MockCacher{
			DelFunc: func(_ context.Context, keys ...string) error {
				deleted = keys
				return nil
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, cache)

		resp, err := h.ProcessFeedback(context.Background(), &pb.ProcessFeedbackRequest{
			ReviewsPath: "reviews.csv",
			EmailsPath:  "emails.csv",
			ExportPath:  "out.csv",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), resp.GetMetrics().GetTotalFeedback())
		assert.Equal(t, int64(4), resp.GetMetrics().GetTicketsCreated())
		assert.Equal(t, int64(1), resp.GetMetrics().GetSpam())
		assert.InDelta(t, 1.5, resp.GetMetrics().GetProcessingSeconds(), 1e-9)
		assert.Equal(t, []string{cacheKeyQualityReport, cacheKeyAllTickets}, deleted)
	})

	t.Run("configured export path is the fallback", func(t *testing.T) {
		var gotExport string
		triageSvc := &mocks.MockTriageService{
			ProcessFeedbackFilesFunc: func(_ context.Context, _, _, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error) {
				gotExport = exportPath
				return nil, triage.BatchMetrics{}, nil
			},
		}
		h := NewGRPCHandlers(triageSvc, &mocks.MockReviewService{}, nil, nil, zap.NewNop(), time.Minute, "default.csv")

		_, err := h.ProcessFeedback(context.Background(), &pb.ProcessFeedbackRequest{
			ReviewsPath: "reviews.csv",
			EmailsPath:  "emails.csv",
		})
		require.NoError(t, err)
		assert.Equal(t, "default.csv", gotExport)

		_, err = h.ProcessFeedback(context.Background(), &pb.ProcessFeedbackRequest{
			ReviewsPath: "reviews.csv",
			EmailsPath:  "emails.csv",
			ExportPath:  "override.csv",
		})
		require.NoError(t, err)
		assert.Equal(t, "override.csv", gotExport)
	})

	t.Run("storage failure maps to internal", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			ProcessFeedbackFilesFunc: func(context.Context, string, string, string) ([]triage.Ticket, triage.BatchMetrics, error) {
				return nil, triage.BatchMetrics{}, service.ErrStorageFailure
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, nil)

		_, err := h.ProcessFeedback(context.Background(), &pb.ProcessFeedbackRequest{
			ReviewsPath: "reviews.csv",
			EmailsPath:  "emails.csv",
		})

		assert.Equal(t, codes.Internal, status.Code(err))
	})
}

func TestGetTickets(t *testing.T) {
	archived := triage.Ticket{
		TicketID:    "TICK-1001",
		SourceID:    "R1",
		SourceType:  triage.SourceReview,
		Category:    triage.CategoryBug,
		Title:       "[BUG] App crashes on iOS",
		Description: "**Original Feedback:**\nApp crashes.\n",
		Priority:    triage.PriorityCritical,
		Status:      triage.StatusOpen,
		AssignedTo:  "Engineering Team",
		Tags:        "bug, ios, critical",
		CreatedAt:   time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Confidence:  0.075,
	}

	t.Run("maps tickets onto the wire format", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			GetTicketsFunc: func(_ context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
				return []triage.Ticket{archived}, nil
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, nil)

		resp, err := h.GetTickets(context.Background(), &pb.GetTicketsRequest{})
		require.NoError(t, err)

		require.Len(t, resp.GetTickets(), 1)
		got := resp.GetTickets()[0]
		assert.Equal(t, "TICK-1001", got.GetTicketId())
		assert.Equal(t, "review", got.GetSourceType())
		assert.Equal(t, "Bug", got.GetCategory())
		assert.Equal(t, "[BUG] App crashes on iOS", got.GetTitle())
		assert.Equal(t, "Critical", got.GetPriority())
		assert.Equal(t, "2026-03-15 10:30:00", got.GetCreatedAt())
		assert.InDelta(t, 0.075, got.GetConfidence(), 1e-9)
	})

	t.Run("filtered listing bypasses the cache", func(t *testing.T) {
		var gotFilter models.TicketFilter
		triageSvc := &mocks.MockTriageService{
			GetTicketsFunc: func(_ context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
				gotFilter = filter
				return []triage.Ticket{archived}, nil
			},
		}
		cacheTouched := false
		cache := &mocks.MockCacher{
			GetFunc: func(context.Context, string, any) error {
				cacheTouched = true
				return redis.Nil
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, cache)

		_, err := h.GetTickets(context.Background(), &pb.GetTicketsRequest{Category: "Bug"})
		require.NoError(t, err)

		assert.Equal(t, models.TicketFilter{Category: "Bug"}, gotFilter)
		assert.False(t, cacheTouched)
	})

	t.Run("unfiltered listing is served from cache", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			GetTicketsFunc: func(context.Context, models.TicketFilter) ([]triage.Ticket, error) {
				t.Fatal("storage must not be hit on a cache hit")
				return nil, nil
			},
		}
		cache := &mocks.MockCacher{
			GetFunc: func(_ context.Context, key string, dest any) error {
				assert.Equal(t, cacheKeyAllTickets, key)
				*(dest.(*[]triage.Ticket)) = []triage.Ticket{archived}
				return nil
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, cache)

		resp, err := h.GetTickets(context.Background(), &pb.GetTicketsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.GetTickets(), 1)
		assert.Equal(t, "TICK-1001", resp.GetTickets()[0].GetTicketId())
	})

	t.Run("empty archive maps to not found", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			GetTicketsFunc: func(context.Context, models.TicketFilter) ([]triage.Ticket, error) {
				return nil, service.ErrNoTickets
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, nil)

		_, err := h.GetTickets(context.Background(), &pb.GetTicketsRequest{})

		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestGetPriorityBreakdown(t *testing.T) {
	t.Run("maps counts onto the wire format", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			PriorityBreakdownFunc: func(context.Context) ([]models.PriorityCount, error) {
				return []models.PriorityCount{
					{Priority: "Critical", Count: 2},
					{Priority: "Low", Count: 1},
				}, nil
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, nil)

		resp, err := h.GetPriorityBreakdown(context.Background(), &pb.GetPriorityBreakdownRequest{})
		require.NoError(t, err)

		require.Len(t, resp.GetCounts(), 2)
		assert.Equal(t, "Critical", resp.GetCounts()[0].GetPriority())
		assert.Equal(t, int64(2), resp.GetCounts()[0].GetCount())
		assert.Equal(t, "Low", resp.GetCounts()[1].GetPriority())
		assert.Equal(t, int64(1), resp.GetCounts()[1].GetCount())
	})

	t.Run("empty archive maps to not found", func(t *testing.T) {
		triageSvc := &mocks.MockTriageService{
			PriorityBreakdownFunc: func(context.Context) ([]models.PriorityCount, error) {
				return nil, service.ErrNoTickets
			},
		}
		h := newTestHandlers(t, triageSvc, nil, nil, nil)

		_, err := h.GetPriorityBreakdown(context.Background(), &pb.GetPriorityBreakdownRequest{})

		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestReviewTickets(t *testing.T) {
	t.Run("maps the report onto the wire format", func(t *testing.T) {
		reviewSvc := &mocks.MockReviewService{
			ReviewStoredTicketsFunc: func(context.Context) (triage.QualityReport, string, error) {
				return triage.QualityReport{
					TotalTickets:        2,
					Approved:            1,
					Rejected:            1,
					AverageQualityScore: 95,
					TicketsWithIssues: []triage.TicketIssues{
						{TicketID: "TICK-1002", Issues: []string{"Ticket not assigned to any team"}, QualityScore: 90},
					},
				}, "=== QUALITY REVIEW REPORT ===\n", nil
			},
		}
		h := newTestHandlers(t, nil, reviewSvc, nil, nil)

		resp, err := h.ReviewTickets(context.Background(), &pb.ReviewTicketsRequest{})
		require.NoError(t, err)

		report := resp.GetReport()
		assert.Equal(t, int64(2), report.GetTotalTickets())
		assert.Equal(t, int64(1), report.GetApproved())
		assert.Equal(t, int64(1), report.GetRejected())
		assert.InDelta(t, 95.0, report.GetAverageQualityScore(), 1e-9)
		require.Len(t, report.GetTicketsWithIssues(), 1)
		assert.Equal(t, "TICK-1002", report.GetTicketsWithIssues()[0].GetTicketId())
		assert.Equal(t, int64(90), report.GetTicketsWithIssues()[0].GetQualityScore())
		assert.Contains(t, resp.GetRendered(), "QUALITY REVIEW REPORT")
	})

	t.Run("empty archive maps to not found", func(t *testing.T) {
		reviewSvc := &mocks.MockReviewService{
			ReviewStoredTicketsFunc: func(context.Context) (triage.QualityReport, string, error) {
				return triage.QualityReport{}, "", service.ErrNoTickets
			},
		}
		h := newTestHandlers(t, nil, reviewSvc, nil, nil)

		_, err := h.ReviewTickets(context.Background(), &pb.ReviewTicketsRequest{})

		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestChat(t *testing.T) {
	t.Run("unconfigured chat is unavailable", func(t *testing.T) {
		h := newTestHandlers(t, nil, nil, nil, nil)

		_, err := h.Chat(context.Background(), &pb.ChatRequest{Prompt: "hello"})

		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("empty prompt is rejected", func(t *testing.T) {
		h := newTestHandlers(t, nil, nil, &mocks.MockChatService{}, nil)

		_, err := h.Chat(context.Background(), &pb.ChatRequest{})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("returns the model reply", func(t *testing.T) {
		chatSvc := &mocks.MockChatService{
			ChatFunc: func(_ context.Context, prompt string) (string, error) {
				assert.Equal(t, "summarize the batch", prompt)
				return "Four tickets were created.", nil
			},
		}
		h := newTestHandlers(t, nil, nil, chatSvc, nil)

		resp, err := h.Chat(context.Background(), &pb.ChatRequest{Prompt: "summarize the batch"})
		require.NoError(t, err)
		assert.Equal(t, "Four tickets were created.", resp.GetReply())
	})

	t.Run("provider failure maps to internal", func(t *testing.T) {
		chatSvc := &mocks.MockChatService{
			ChatFunc: func(context.Context, string) (string, error) {
				return "", errors.New("upstream unavailable")
			},
		}
		h := newTestHandlers(t, nil, nil, chatSvc, nil)

		_, err := h.Chat(context.Background(), &pb.ChatRequest{Prompt: "hello"})

		assert.Equal(t, codes.Internal, status.Code(err))
	})
}
