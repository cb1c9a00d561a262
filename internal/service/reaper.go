package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// ReaperServiceOptions groups dependencies for ReaperService.
type ReaperServiceOptions struct {
	Reports ports.ReportRepository // Required
	Logger  *slog.Logger           // Optional

	// Interval between cleanup passes. Defaults to one hour.
	Interval time.Duration
	// DraftMaxAgeDays is how long an untouched draft report survives.
	// Defaults to 30 days.
	DraftMaxAgeDays int
}

// ReaperService deletes draft reports nobody touched in the configured
// window, keeping abandoned drafts from piling up.
type ReaperService struct {
	reports         ports.ReportRepository
	logger          *slog.Logger
	interval        time.Duration
	draftMaxAgeDays int
}

// NewReaperService constructs a new ReaperService.
func NewReaperService(opts ReaperServiceOptions) (*ReaperService, error) {
	if opts.Reports == nil {
		return nil, errors.New("ReportRepository is required")
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = time.Hour
	}
	days := opts.DraftMaxAgeDays
	if days <= 0 {
		days = 30
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ReaperService{
		reports:         opts.Reports,
		logger:          logger.With("component", "reaper_service"),
		interval:        interval,
		draftMaxAgeDays: days,
	}, nil
}

// Run starts the reaper loop and runs until the context is cancelled.
// Returns nil on graceful shutdown (context.Canceled), error otherwise.
func (s *ReaperService) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "starting reaper service",
		"interval", s.interval, "draft_max_age_days", s.draftMaxAgeDays)

	// Jitter so multiple instances do not hit the table in lockstep.
	s.waitWithJitter(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "reaper service stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			s.runCleanup(ctx)
		}
	}
}

// RunOnce performs a single cleanup pass. Exposed for the one-shot run mode.
func (s *ReaperService) RunOnce(ctx context.Context) (int64, error) {
	return s.reports.DeleteDraftsOlderThan(ctx, s.draftMaxAgeDays)
}

func (s *ReaperService) runCleanup(ctx context.Context) {
	count, err := s.RunOnce(ctx)
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		s.logger.DebugContext(ctx, "cleanup cancelled by context", "err", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "cleanup failed", "err", err)
	case count > 0:
		s.logger.InfoContext(ctx, "deleted stale draft reports",
			"count", count, "draft_max_age_days", s.draftMaxAgeDays)
	}
}

// waitWithJitter delays up to 10% of the interval.
func (s *ReaperService) waitWithJitter(ctx context.Context) {
	maxJitter := int64(s.interval / 10)
	if maxJitter <= 0 {
		return
	}

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		s.logger.WarnContext(ctx, "failed to generate jitter, skipping", "err", err)
		return
	}
	jitter := time.Duration(int64(binary.BigEndian.Uint64(buf[:]) % uint64(maxJitter))) // #nosec G115 - bounded by maxJitter

	select {
	case <-time.After(jitter):
	case <-ctx.Done():
	}
}
