package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/triage-server/internal/export"
	"github.com/godilite/triage-server/internal/ingest"
	"github.com/godilite/triage-server/internal/repository/models"
	"github.com/godilite/triage-server/internal/triage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkerCount = 4

var (
	ErrNoTickets      = errors.New("no tickets found")
	ErrStorageFailure = errors.New("storage failure")
)

// TriageService runs the feedback-to-ticket pipeline over materialized
// batches and archives the results.
type TriageService struct {
	storage    TicketRepository
	classifier *triage.Classifier
	bugs       *triage.BugExtractor
	features   *triage.FeatureExtractor
	synth      *triage.Synthesizer
	logger     *zap.Logger
	workers    int
}

// NewTriageService creates a TriageService around the shared sequencer.
// workers bounds the classification/extraction pool; values below 1 get
// the default.
func NewTriageService(storage TicketRepository, seq *triage.Sequencer, logger *zap.Logger, workers int) *TriageService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if seq == nil {
		panic("sequencer must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	if workers < 1 {
		workers = defaultWorkerCount
	}
	return &TriageService{
		storage:    storage,
		classifier: triage.NewClassifier(),
		bugs:       triage.NewBugExtractor(),
		features:   triage.NewFeatureExtractor(),
		synth:      triage.NewSynthesizer(seq),
		logger:     logger,
		workers:    workers,
	}
}

// triaged holds the pure per-record stage results before synthesis.
type triaged struct {
	classification triage.ClassificationResult
	analysis       triage.Analysis
}

// ProcessBatch runs classification, extraction, and synthesis over the
// batch. Classification and extraction are independent per record and
// run on a bounded worker pool; synthesis runs sequentially in input
// order so ticket IDs are input-order stable. Spam records are counted
// and dropped before synthesis.
func (s *TriageService) ProcessBatch(ctx context.Context, records []triage.FeedbackRecord) ([]triage.Ticket, triage.BatchMetrics, error) {
	start := time.Now()

	results := make([]triaged, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, rec := range records {
		g.Go(func() error {
			cls := s.classifier.Classify(rec.Text, rec.Rating)

			var analysis triage.Analysis
			switch cls.Category {
			case triage.CategoryBug:
				analysis = s.bugs.Extract(rec)
			case triage.CategoryFeature:
				analysis = s.features.Extract(rec)
			}

			results[i] = triaged{classification: cls, analysis: analysis}
			return nil
		})
	}
	// The stage functions are total; the group exists only to bound and
	// join the pool.
	_ = g.Wait()

	metrics := triage.BatchMetrics{TotalFeedback: len(records)}
	tickets := make([]triage.Ticket, 0, len(records))

	for i, rec := range records {
		r := results[i]

		switch r.classification.Category {
		case triage.CategoryBug:
			metrics.Bugs++
		case triage.CategoryFeature:
			metrics.Features++
		case triage.CategoryPraise:
			metrics.Praise++
		case triage.CategoryComplaint:
			metrics.Complaints++
		case triage.CategorySpam:
			metrics.Spam++
			continue
		}

		ticket, err := s.synth.Synthesize(rec, r.classification, r.analysis)
		if err != nil {
			return nil, triage.BatchMetrics{}, fmt.Errorf("synthesize ticket for %s: %w", rec.SourceID, err)
		}
		tickets = append(tickets, ticket)
	}

	metrics.TicketsCreated = len(tickets)
	metrics.ProcessingTime = time.Since(start)

	s.logger.Info("batch processed",
		zap.Int("total_feedback", metrics.TotalFeedback),
		zap.Int("tickets_created", metrics.TicketsCreated),
		zap.Int("spam", metrics.Spam),
		zap.Duration("processing_time", metrics.ProcessingTime))

	return tickets, metrics, nil
}

// ProcessFeedbackFiles ingests the review and email CSVs, runs the
// pipeline, archives the tickets, and optionally exports them to a flat
// CSV for handoff.
func (s *TriageService) ProcessFeedbackFiles(ctx context.Context, reviewsPath, emailsPath, exportPath string) ([]triage.Ticket, triage.BatchMetrics, error) {
	records, err := ingest.ReadFeedbackFiles(reviewsPath, emailsPath)
	if err != nil {
		return nil, triage.BatchMetrics{}, fmt.Errorf("read feedback: %w", err)
	}

	tickets, metrics, err := s.ProcessBatch(ctx, records)
	if err != nil {
		return nil, triage.BatchMetrics{}, err
	}

	if len(tickets) > 0 {
		if err := s.storage.SaveTickets(ctx, tickets); err != nil {
			return nil, triage.BatchMetrics{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
		}
	}

	if exportPath != "" {
		if err := export.WriteTicketsFile(exportPath, tickets); err != nil {
			return nil, triage.BatchMetrics{}, fmt.Errorf("export tickets: %w", err)
		}
		s.logger.Info("tickets exported", zap.String("path", exportPath), zap.Int("count", len(tickets)))
	}

	return tickets, metrics, nil
}

// GetTickets lists archived tickets with optional category/priority
// filters.
func (s *TriageService) GetTickets(ctx context.Context, filter models.TicketFilter) ([]triage.Ticket, error) {
	tickets, err := s.storage.ListTickets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(tickets) == 0 {
		return nil, ErrNoTickets
	}
	return tickets, nil
}

// PriorityBreakdown returns ticket counts per priority, computed in SQL.
func (s *TriageService) PriorityBreakdown(ctx context.Context) ([]models.PriorityCount, error) {
	rows, err := s.storage.PriorityBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoTickets
	}
	return rows, nil
}
