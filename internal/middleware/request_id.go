package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mySmartMarket/pkg/logger"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it in
// the response and stores it on the request context as the trace id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, id)
			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), id)))

			return next(c)
		}
	}
}
