package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fxease/currency_exchange_app/internal/apperrors"
	portssvc "github.com/fxease/currency_exchange_app/internal/core/ports/services"
)

// IngestScheduler runs rate ingestion on a fixed interval, fully decoupled
// from request serving. Failures are logged and the cycle no-ops; stale
// but consistent rates stay in place rather than blocking live traffic.
type IngestScheduler struct {
	ingest   portssvc.RateIngestSvcFacade
	interval time.Duration
	logger   *slog.Logger
}

// NewIngestScheduler creates a scheduler running ingest every interval.
func NewIngestScheduler(ingest portssvc.RateIngestSvcFacade, interval time.Duration, logger *slog.Logger) *IngestScheduler {
	return &IngestScheduler{
		ingest:   ingest,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. The first cycle runs immediately so a
// fresh deployment does not wait a full interval for rates.
func (s *IngestScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Ingest scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *IngestScheduler) runOnce(ctx context.Context) {
	start := time.Now()
	ingested, err := s.ingest.IngestLatest(ctx)
	switch {
	case err == nil && ingested:
		s.logger.Info("Rate batch ingested", slog.Duration("took", time.Since(start)))
	case err == nil:
		s.logger.Info("Rate batch skipped, already ingested")
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		s.logger.Warn("Rate provider unavailable, keeping stale rates", slog.String("error", err.Error()))
	case errors.Is(err, apperrors.ErrIncompleteBatch):
		s.logger.Error("Rate batch incomplete, discarded", slog.String("error", err.Error()))
	case errors.Is(err, context.Canceled):
		// shutting down
	default:
		s.logger.Error("Rate ingestion failed", slog.String("error", err.Error()))
	}
}
