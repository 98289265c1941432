package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mySmartMarket/pkg/logger"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = logger.TraceID(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	id := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestID_KeepsValidIncomingID(t *testing.T) {
	e := echo.New()
	h := RequestID()(func(c echo.Context) error { return nil })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, incoming)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, incoming, rec.Header().Get(echo.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(echo.HeaderXRequestID))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "nope"), http.StatusNotFound, `{"message":"nope"}`},
		{"http error without text", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, `{"message":"Method Not Allowed"}`},
		{"plain error", errors.New("db exploded"), http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			rec := httptest.NewRecorder()

			ErrorHandler(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
