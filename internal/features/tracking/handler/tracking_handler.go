package handler

import (
	"errors"

	"correios-sro/internal/features/tracking/service"
	"correios-sro/pkg/correios"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for shipment tracking.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// BatchRequest is the body of a batch tracking request.
type BatchRequest struct {
	// Codes are the shipment codes to look up, at most 100 per request.
	Codes []string `json:"codes"`
}

// GetTracking godoc
// @Summary Get the tracking history for one shipment code
// @Description Looks up a single SRO shipment code and returns its normalized tracking history
// @Tags tracking
// @Accept json
// @Produce json
// @Param code path string true "Shipment code (e.g. AB123456789BR)"
// @Success 200 {object} correios.Tracking
// @Failure 400 {object} correios.Tracking
// @Failure 404 {object} correios.Tracking
// @Failure 502 {object} correios.Tracking
// @Router /tracking/{code} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "shipment code is required",
			RayID:   rayID(c),
		})
	}

	record := h.trackingService.TrackOne(c.UserContext(), code)

	return c.Status(statusFor(record)).JSON(record)
}

// TrackBatch godoc
// @Summary Get tracking histories for a batch of shipment codes
// @Description Looks up every given code concurrently; per-code failures are embedded in the corresponding records
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Shipment codes"
// @Success 200 {array} correios.Tracking
// @Failure 400 {object} ErrorResponse
// @Router /tracking [post]
func (h *TrackingHandler) TrackBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	records, err := h.trackingService.Track(c.UserContext(), req.Codes)
	if err != nil {
		if errors.Is(err, service.ErrNoCodes) || errors.Is(err, service.ErrBatchTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(records)
}

// statusFor maps a tracking record to the HTTP status of a single lookup.
// Batch lookups always answer 200; the per-code outcome lives in each record.
func statusFor(record correios.Tracking) int {
	if !record.IsInvalid {
		return fiber.StatusOK
	}

	switch record.Error {
	case correios.ErrorInvalidCode:
		return fiber.StatusBadRequest
	case correios.ErrorNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadGateway
	}
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
