package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// AnalyticsHandler handles analytics event ingestion.
type AnalyticsHandler struct {
	recorder ports.AnalyticsRecorder
	log      zerolog.Logger
}

func NewAnalyticsHandler(recorder ports.AnalyticsRecorder, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{recorder: recorder, log: log}
}

type analyticsEventRequest struct {
	Type string            `json:"type" validate:"required"`
	Meta map[string]string `json:"meta"`
}

type analyticsEventResponse struct {
	Message  string `json:"message"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Record handles POST /api/analytics/event.
//
// @Summary      Record an analytics event
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      analyticsEventRequest  true  "Event"
// @Success      200   {object}  analyticsEventResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/analytics/event [post]
func (h *AnalyticsHandler) Record(c echo.Context) error {
	var req analyticsEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventType, err := domain.ParseEventType(req.Type)
	if err != nil {
		return err
	}

	// Tracking must never break the page that sent it: when both stores
	// reject the event it is dropped and the visitor still gets a 200.
	fallback, err := h.recorder.Record(c.Request().Context(), eventType, req.Meta)
	if err != nil {
		h.log.Error().Err(err).Str("type", eventType.String()).Msg("analytics event lost")
		return c.JSON(http.StatusOK, analyticsEventResponse{Message: "event recorded"})
	}

	return c.JSON(http.StatusOK, analyticsEventResponse{
		Message:  "event recorded",
		Fallback: fallback,
	})
}
