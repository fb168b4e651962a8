package service

import (
	"context"
	"errors"

	"correios-sro/internal/features/tracking/ports"
	"correios-sro/pkg/correios"
)

// maxBatchSize caps how many codes a single batch request may carry.
const maxBatchSize = 100

var (
	// ErrNoCodes is returned when a batch request carries no codes.
	ErrNoCodes = errors.New("no tracking codes provided")
	// ErrBatchTooLarge is returned when a batch exceeds maxBatchSize codes.
	ErrBatchTooLarge = errors.New("too many tracking codes in one batch")
)

// TrackingService exposes shipment lookups to the transport layer.
type TrackingService struct {
	tracker ports.Tracker
}

// NewTrackingService creates a TrackingService backed by the given client.
func NewTrackingService(tracker ports.Tracker) *TrackingService {
	return &TrackingService{
		tracker: tracker,
	}
}

// TrackOne resolves a single shipment code.
func (s *TrackingService) TrackOne(ctx context.Context, code string) correios.Tracking {
	return s.tracker.Track(ctx, code)[0]
}

// Track resolves a batch of shipment codes, preserving input order. The
// only batch-level failures are an empty or oversized code list; per-code
// failures are embedded in the corresponding records.
func (s *TrackingService) Track(ctx context.Context, codes []string) ([]correios.Tracking, error) {
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}
	if len(codes) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	return s.tracker.Track(ctx, codes...), nil
}
