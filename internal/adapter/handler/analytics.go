package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/usecase/analytics"
)

// AnalyticsHandler exposes workspace statistics
type AnalyticsHandler struct {
	analytics *analytics.Service
	logger    *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(svc *analytics.Service, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: svc, logger: logger}
}

// Overview returns workspace wide counters
// GET /v1/analytics
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.analytics.Overview(c.Request().Context())
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, overview)
}
