package correios

import (
	"regexp"
	"time"
)

// ErrorKind classifies why a tracking lookup could not produce a history.
type ErrorKind string

const (
	// ErrorInvalidCode means the code failed the structural check; no request was made.
	ErrorInvalidCode ErrorKind = "invalid_code"
	// ErrorNotFound means the carrier answered but knows nothing about the code.
	ErrorNotFound ErrorKind = "not_found"
	// ErrorServiceUnavailable covers transport failures, bad status codes and unparseable bodies.
	ErrorServiceUnavailable ErrorKind = "service_unavailable"
)

// Tracking is the result of one shipment code lookup.
// Either the success fields (Category, Events, IsDelivered, PostedAt,
// UpdatedAt) or the failure fields (IsInvalid, Error) are populated,
// never both. Code always echoes the input verbatim.
type Tracking struct {
	Code        string     `json:"code"`
	Category    *Category  `json:"category,omitempty"`
	Events      []Event    `json:"events,omitempty"`
	IsDelivered bool       `json:"isDelivered"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	IsInvalid   bool       `json:"isInvalid,omitempty"`
	Error       ErrorKind  `json:"error,omitempty"`
}

// Event is a single milestone in a shipment's handling history.
type Event struct {
	// Locality is "City / UF" for domestic facilities, nil for country-level ones.
	Locality *string `json:"locality"`
	// Status is the carrier's own wording, untranslated.
	Status string `json:"status"`
	// Origin is the human-readable facility the event was recorded at.
	Origin string `json:"origin"`
	// Destination is the routing-destination facility, when the carrier reports one.
	Destination *string `json:"destination"`
	// TrackedAt is the carrier timestamp, parsed as-is with no timezone conversion.
	TrackedAt time.Time `json:"trackedAt"`
}

// Category is the carrier's postal-service classification, always fully
// populated after normalization.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var orderCodePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{9}[A-Z]{2}$`)

// IsValidOrderCode reports whether code is a well-formed SRO shipment code:
// two uppercase letters, nine digits, two uppercase letters.
func IsValidOrderCode(code string) bool {
	return orderCodePattern.MatchString(code)
}

func invalidTracking(code string, kind ErrorKind) Tracking {
	return Tracking{
		Code:      code,
		IsInvalid: true,
		Error:     kind,
	}
}
