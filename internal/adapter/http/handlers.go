package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthDTO struct {
	Status string `json:"status"`
	DB     string `json:"db"`
	Time   string `json:"time"`
}

// Handler serves /health. A nil db skips the database check.
type Handler struct {
	db  Pinger
	log zerolog.Logger
}

func NewHandler(db Pinger, log zerolog.Logger) *Handler { return &Handler{db: db, log: log} }

func (h *Handler) Health(c echo.Context) error {
	out := HealthDTO{Status: "ok", DB: "up", Time: time.Now().UTC().Format(time.RFC3339Nano)}
	if h.db == nil {
		out.DB = "unchecked"
		return c.JSON(http.StatusOK, out)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health: db ping failed")
		out.Status, out.DB = "degraded", "down"
		return c.JSON(http.StatusServiceUnavailable, out)
	}
	return c.JSON(http.StatusOK, out)
}
