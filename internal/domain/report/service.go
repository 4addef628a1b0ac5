package report

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

const queueSize = 64

var ErrInvalidLimit = errors.New("limit must be positive")

type Metrics interface {
	ReportDropped()
}

type nopMetrics struct{}

func (nopMetrics) ReportDropped() {}

// Service accepts reports without blocking and stores them in the background.
type Service struct {
	repo    Repository
	log     *slog.Logger
	metrics Metrics
	queue   chan Report
}

func NewService(repo Repository, log *slog.Logger, metrics Metrics) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		repo:    repo,
		log:     log.With("component", "report_service"),
		metrics: metrics,
		queue:   make(chan Report, queueSize),
	}
}

// Report queues r. When the queue is full the report is dropped.
func (s *Service) Report(r Report) {
	select {
	case s.queue <- r:
	default:
		s.metrics.ReportDropped()
		s.log.Warn("report queue full, report dropped",
			"type", r.Type,
			"status", r.Status,
		)
	}
}

// Run stores queued reports until ctx is done, then drains what is left.
func (s *Service) Run(ctx context.Context) error {
	for {
		select {
		case r := <-s.queue:
			s.save(ctx, r)
		case <-ctx.Done():
			s.drain()
			return nil
		}
	}
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	reports, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}

	return reports, nil
}

func (s *Service) drain() {
	ctx := context.Background()
	for {
		select {
		case r := <-s.queue:
			s.save(ctx, r)
		default:
			return
		}
	}
}

func (s *Service) save(ctx context.Context, r Report) {
	s.log.Error("unexpected API failure",
		"id", r.ID,
		"type", r.Type,
		"status", r.Status,
		"message", r.Message,
	)

	if err := s.repo.Save(ctx, r); err != nil {
		s.log.Error("failed to store report", "id", r.ID, "error", err)
	}
}
