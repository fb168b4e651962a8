package ports

import (
	"context"

	"correios-sro/pkg/correios"
)

// Tracker is the outbound port for the carrier tracking client. Lookups
// never fail: per-code failures come back as invalid-flagged records.
type Tracker interface {
	// Track returns one record per code, in input order.
	Track(ctx context.Context, codes ...string) []correios.Tracking
}
