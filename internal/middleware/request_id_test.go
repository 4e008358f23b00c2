package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	var seen string
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	return seen, rec.Header().Get(RequestIDHeader)
}

func TestRequestIDReusesUpstreamHeader(t *testing.T) {
	seen, echoed := serveRequestID(t, "trace-123")

	assert.Equal(t, "trace-123", seen)
	assert.Equal(t, "trace-123", echoed)
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	seen, echoed := serveRequestID(t, "")

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, echoed)
}

func TestRequestIDReplacesOversizedHeader(t *testing.T) {
	seen, _ := serveRequestID(t, strings.Repeat("x", maxRequestIDLength+1))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotNil(t, GetLogger(c))
}
