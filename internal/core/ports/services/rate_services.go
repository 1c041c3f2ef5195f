package services

import "context"

// RateIngestSvcFacade runs one rate-ingestion cycle.
type RateIngestSvcFacade interface {
	// IngestLatest fetches the provider's current rates and stores them as
	// one atomic batch. It returns false without error when the batch was
	// skipped (already ingested). Fetch failures after the retry budget
	// surface as apperrors.ErrUpstreamUnavailable, incomplete batches as
	// apperrors.ErrIncompleteBatch; neither leaves partial data behind.
	IngestLatest(ctx context.Context) (bool, error)
}
