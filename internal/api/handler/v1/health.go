package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	postgres Pinger
	redis    Pinger
}

// NewHealthHandler builds the health check. A nil redis pinger reports the
// store as disabled.
func NewHealthHandler(postgres, redis Pinger) *HealthHandler {
	return &HealthHandler{
		postgres: postgres,
		redis:    redis,
	}
}

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Failure      503  {object}  response.HealthResponse
// @Router       / [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	c, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
	defer cancel()

	resp := response.HealthResponse{
		Status:   "ok",
		Postgres: checkDependency(c, "postgres", h.postgres),
		Redis:    checkDependency(c, "redis", h.redis),
	}

	code := http.StatusOK
	if resp.Postgres == "down" || resp.Redis == "down" {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	ctx.JSON(code, resp)
}

func checkDependency(ctx context.Context, name string, ping Pinger) string {
	if ping == nil {
		return "disabled"
	}
	if err := ping(ctx); err != nil {
		zap.L().Warn("health check failed", zap.String("store", name), zap.Error(err))
		return "down"
	}

	return "up"
}
