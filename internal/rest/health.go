package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger func() error

type HealthHandler struct {
	ping    Pinger
	version string
}

func NewHealthHandler(ping Pinger, version string) *HealthHandler {
	return &HealthHandler{ping: ping, version: version}
}

func (h *HealthHandler) Healthz(c echo.Context) error {
	if err := h.ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"version": h.version,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
