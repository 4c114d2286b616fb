package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xmikiesx/usage-metrics-api/internal/metrics"
)

// MetricsHandler exposes the usage statistics report.
type MetricsHandler struct {
	acc *metrics.Accumulator
}

// NewMetricsHandler constructs handler.
func NewMetricsHandler(acc *metrics.Accumulator) *MetricsHandler {
	return &MetricsHandler{acc: acc}
}

// Get handles GET /metrics. The report is derived fresh on every call.
func (h *MetricsHandler) Get(c *fiber.Ctx) error {
	report := metrics.BuildReport(h.acc.Snapshot(), time.Now())
	return c.JSON(report)
}
