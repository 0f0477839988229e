package handler

import (
	"context"
	"time"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/logger"
	"ashi-remedies/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse reports the liveness of the service and its dependencies.
type HealthResponse struct {
	Status         string `json:"status"`
	ContentVersion uint64 `json:"content_version"`
	Cache          string `json:"cache"`
}

// HealthHandler serves the health check
type HealthHandler struct {
	src   service.SnapshotSource
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(src service.SnapshotSource, cache domain.Cache) *HealthHandler {
	return &HealthHandler{src: src, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 503 {object} handler.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Cache: "ok"}
	status := fiber.StatusOK

	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
		resp.Status, resp.Cache = "degraded", "unreachable"
		status = fiber.StatusServiceUnavailable
	}
	snap, err := h.src.Current(ctx)
	if err != nil {
		logger.Get().Warn("Health check: content unavailable", zap.Error(err))
		resp.Status = "degraded"
		status = fiber.StatusServiceUnavailable
	} else {
		resp.ContentVersion = snap.Version
	}
	return c.Status(status).JSON(resp)
}
