// Package correios is a client for the Correios SRO parcel-tracking
// service. It validates shipment codes, fetches tracking data for batches
// of codes under a bounded parallelism policy, and normalizes the
// carrier's loosely-structured JSON into a typed tracking history.
//
// Lookups never fail with an error: every failure mode is returned as a
// Tracking record flagged invalid, so one bad code never affects its
// siblings in a batch.
package correios

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parallelTracks bounds how many tracking requests may be in flight at
// once. Batches are processed in sequential rounds of this size.
const parallelTracks = 10

// AuthMode selects which carrier protocol variant the client speaks.
type AuthMode string

const (
	// AuthNone issues plain unauthenticated tracking requests.
	AuthNone AuthMode = "none"
	// AuthHandshake performs the signed login exchange before every
	// tracking request and sends the resulting token along.
	AuthHandshake AuthMode = "handshake"
)

// Client queries the carrier's tracking service.
type Client struct {
	httpClient  *http.Client
	logger      *zap.Logger
	authMode    AuthMode
	trackingURL string
	loginURL    string
	now         func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithAuthMode selects the protocol variant. The default is AuthNone.
func WithAuthMode(mode AuthMode) Option {
	return func(c *Client) {
		c.authMode = mode
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to add
// logging middleware or a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger attaches a logger. Without one the client is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client. Timeouts are left to the HTTP client supplied via
// WithHTTPClient; the default client relies on transport defaults.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
		authMode:   AuthNone,
		loginURL:   decode(encodedLoginURL),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.authMode == AuthHandshake {
		c.trackingURL = decode(encodedAuthTrackingURL)
	} else {
		c.trackingURL = decode(encodedTrackingURL)
	}

	return c
}

var defaultClient = New()

// Track looks up tracking histories with the default client.
func Track(ctx context.Context, codes ...string) []Tracking {
	return defaultClient.Track(ctx, codes...)
}

// Track looks up the tracking history for every given code. The result
// has the same length and order as the input; duplicates are fetched
// independently. Codes are processed in sequential rounds of at most
// parallelTracks concurrent requests, and a round only starts once the
// previous one has fully resolved.
func (c *Client) Track(ctx context.Context, codes ...string) []Tracking {
	results := make([]Tracking, len(codes))

	for start := 0; start < len(codes); start += parallelTracks {
		end := min(start+parallelTracks, len(codes))

		g, groupCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				results[i] = c.fetchOne(groupCtx, codes[i])
				return nil
			})
		}
		g.Wait()
	}

	return results
}

// fetchOne resolves a single code. It never returns an error: invalid
// codes are rejected before any network call, and transport, status and
// parse failures all collapse into a service_unavailable record.
func (c *Client) fetchOne(ctx context.Context, code string) Tracking {
	if !IsValidOrderCode(code) {
		return invalidTracking(code, ErrorInvalidCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.trackingURL+code, nil)
	if err != nil {
		return invalidTracking(code, ErrorServiceUnavailable)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Content-Type", "application/json")

	if c.authMode == AuthHandshake {
		token, err := c.login(ctx)
		if err != nil {
			c.logger.Warn("Correios login failed",
				zap.String("code", code),
				zap.Error(err),
			)
			return invalidTracking(code, ErrorServiceUnavailable)
		}
		req.Header.Set("app-check-token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Correios request failed",
			zap.String("code", code),
			zap.Error(err),
		)
		return invalidTracking(code, ErrorServiceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Correios returned unexpected status",
			zap.String("code", code),
			zap.Int("status_code", resp.StatusCode),
		)
		return invalidTracking(code, ErrorServiceUnavailable)
	}

	var data correiosResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Warn("Failed to parse Correios response",
			zap.String("code", code),
			zap.Error(err),
		)
		return invalidTracking(code, ErrorServiceUnavailable)
	}

	return parseResponse(data, code)
}
