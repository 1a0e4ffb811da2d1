package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/parkstats-backend/internal/http/middleware"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	// LocalRecords is the number of rows in the local key-value store.
	LocalRecords *int64 `json:"local_records,omitempty"`
	// LocalUpdatedAt is the most recent local write.
	LocalUpdatedAt *time.Time `json:"local_updated_at,omitempty"`
}

// Health godoc
// @ID          health
// @Summary     Liveness and local storage status
// @Tags        Health
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Failure     503  {object}  handlers.HealthResponse
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	if h.stats == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
		return
	}
	n, at, err := h.stats(c.Request.Context())
	if err != nil {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("local store unavailable")
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
		return
	}
	if at != nil && !at.IsZero() {
		c.Header("Last-Modified", at.UTC().Format(http.TimeFormat))
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", LocalRecords: &n, LocalUpdatedAt: at})
}
