package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mySmartMarket/pkg/logger"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders errors that escape handlers as JSON. Unexpected errors
// are logged and hidden behind a generic message.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		logger.FromContext(c.Request().Context()).Error("unhandled error",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, errorBody{Message: msg})
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "error", writeErr)
	}
}
