package grpc

import (
	"context"
	"errors"
	"time"

	pb "github.com/godilite/triage-server/api/v1"
	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/service"
	"github.com/godilite/triage-server/internal/triage"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultCacheDuration  = 10 * time.Minute
	defaultGRPCTimeout    = 10 * time.Second
	processingGRPCTimeout = 2 * time.Minute
	chatGRPCTimeout       = 60 * time.Second

	createdAtLayout = "2006-01-02 15:04:05"
)

const (
	cacheKeyQualityReport = "grpc:quality_report"
	cacheKeyAllTickets    = "grpc:tickets:all"
)

type GRPCHandlers struct {
	pb.UnimplementedFeedbackTriageServer
	triageSvc  TriageService
	reviewSvc  ReviewService
	chatSvc    ChatService
	cache      Cacher
	logger     *zap.Logger
	sfGroup    singleflight.Group
	cacheTTL   time.Duration
	exportPath string
}

// NewGRPCHandlers initializes the gRPC handlers. chatSvc may be nil;
// the Chat RPC then reports Unavailable. exportPath is the fallback
// ticket export destination for requests that do not carry one; empty
// disables the fallback.
func NewGRPCHandlers(triageSvc TriageService, reviewSvc ReviewService, chatSvc ChatService, cache Cacher, logger *zap.Logger, ttl time.Duration, exportPath string) *GRPCHandlers {
	if triageSvc == nil {
		panic("nil TriageService provided to NewGRPCHandlers")
	}
	if reviewSvc == nil {
		panic("nil ReviewService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		triageSvc:  triageSvc,
		reviewSvc:  reviewSvc,
		chatSvc:    chatSvc,
		cache:      cache,
		logger:     logger.Named("grpc-handler"),
		cacheTTL:   ttl,
		exportPath: exportPath,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrNoTickets):
		s.logger.Info("no tickets found", zap.String("op", op))
		return status.Error(codes.NotFound, "no tickets found")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) ProcessFeedback(ctx context.Context, req *pb.ProcessFeedbackRequest) (*pb.ProcessFeedbackResponse, error) {
	if req.GetReviewsPath() == "" || req.GetEmailsPath() == "" {
		return nil, status.Error(codes.InvalidArgument, "reviews_path and emails_path are required")
	}

	ctx, cancel := context.WithTimeout(ctx, processingGRPCTimeout)
	defer cancel()

	exportPath := req.GetExportPath()
	if exportPath == "" {
		exportPath = s.exportPath
	}

	_, metrics, err := s.triageSvc.ProcessFeedbackFiles(ctx, req.GetReviewsPath(), req.GetEmailsPath(), exportPath)
	if err != nil {
		return nil, s.handleError(ctx, "ProcessFeedback", err)
	}

	s.invalidateCache(ctx)

	return &pb.ProcessFeedbackResponse{
		Metrics: &pb.BatchMetrics{
			TotalFeedback:     int64(metrics.TotalFeedback),
			Bugs:              int64(metrics.Bugs),
			Features:          int64(metrics.Features),
			Praise:            int64(metrics.Praise),
			Complaints:        int64(metrics.Complaints),
			Spam:              int64(metrics.Spam),
			TicketsCreated:    int64(metrics.TicketsCreated),
			ProcessingSeconds: metrics.ProcessingTime.Seconds(),
		},
	}, nil
}

// invalidateCache drops the report and listing keys after a batch so
// subsequent reads see the new tickets.
func (s *GRPCHandlers) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyQualityReport, cacheKeyAllTickets); err != nil {
		s.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func (s *GRPCHandlers) GetTickets(ctx context.Context, req *pb.GetTicketsRequest) (*pb.GetTicketsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	filter := models.TicketFilter{
		Category: req.GetCategory(),
		Priority: req.GetPriority(),
	}

	fetch := func(fetchCtx context.Context) ([]triage.Ticket, error) {
		return s.triageSvc.GetTickets(fetchCtx, filter)
	}

	var tickets []triage.Ticket
	var err error
	if filter == (models.TicketFilter{}) {
		// Only the unfiltered listing is cached; filtered views go
		// straight to storage.
		tickets, err = FindAndCache(ctx, s.cache, &s.sfGroup, cacheKeyAllTickets, s.cacheTTL, s.logger, fetch)
	} else {
		tickets, err = fetch(ctx)
	}
	if err != nil {
		return nil, s.handleError(ctx, "GetTickets", err)
	}

	pbTickets := make([]*pb.Ticket, len(tickets))
	for i, t := range tickets {
		pbTickets[i] = &pb.Ticket{
			TicketId:    t.TicketID,
			SourceId:    t.SourceID,
			SourceType:  string(t.SourceType),
			Category:    string(t.Category),
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
			AssignedTo:  t.AssignedTo,
			Tags:        t.Tags,
			CreatedAt:   t.CreatedAt.UTC().Format(createdAtLayout),
			Confidence:  t.Confidence,
		}
	}

	return &pb.GetTicketsResponse{Tickets: pbTickets}, nil
}

func (s *GRPCHandlers) GetPriorityBreakdown(ctx context.Context, req *pb.GetPriorityBreakdownRequest) (*pb.GetPriorityBreakdownResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	rows, err := s.triageSvc.PriorityBreakdown(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "GetPriorityBreakdown", err)
	}

	counts := make([]*pb.PriorityCount, len(rows))
	for i, row := range rows {
		counts[i] = &pb.PriorityCount{
			Priority: row.Priority,
			Count:    row.Count,
		}
	}

	return &pb.GetPriorityBreakdownResponse{Counts: counts}, nil
}

// reviewResult is the cacheable pairing of report and rendering.
type reviewResult struct {
	Report   triage.QualityReport
	Rendered string
}

func (s *GRPCHandlers) ReviewTickets(ctx context.Context, req *pb.ReviewTicketsRequest) (*pb.ReviewTicketsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	result, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKeyQualityReport, s.cacheTTL, s.logger, func(fetchCtx context.Context) (reviewResult, error) {
		report, rendered, err := s.reviewSvc.ReviewStoredTickets(fetchCtx)
		if err != nil {
			return reviewResult{}, err
		}
		return reviewResult{Report: report, Rendered: rendered}, nil
	})
	if err != nil {
		return nil, s.handleError(ctx, "ReviewTickets", err)
	}

	report := result.Report
	pbIssues := make([]*pb.TicketIssues, len(report.TicketsWithIssues))
	for i, ti := range report.TicketsWithIssues {
		pbIssues[i] = &pb.TicketIssues{
			TicketId:     ti.TicketID,
			Issues:       ti.Issues,
			QualityScore: int64(ti.QualityScore),
		}
	}

	return &pb.ReviewTicketsResponse{
		Report: &pb.QualityReport{
			TotalTickets:        int64(report.TotalTickets),
			Approved:            int64(report.Approved),
			Rejected:            int64(report.Rejected),
			TicketsWithIssues:   pbIssues,
			AverageQualityScore: report.AverageQualityScore,
		},
		Rendered: result.Rendered,
	}, nil
}

func (s *GRPCHandlers) Chat(ctx context.Context, req *pb.ChatRequest) (*pb.ChatResponse, error) {
	if s.chatSvc == nil {
		return nil, status.Error(codes.Unavailable, "chat is not configured")
	}
	if req.GetPrompt() == "" {
		return nil, status.Error(codes.InvalidArgument, "prompt is required")
	}

	ctx, cancel := context.WithTimeout(ctx, chatGRPCTimeout)
	defer cancel()

	reply, err := s.chatSvc.Chat(ctx, req.GetPrompt())
	if err != nil {
		return nil, s.handleError(ctx, "Chat", err)
	}

	return &pb.ChatResponse{Reply: reply}, nil
}
