package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(env string) *server.Server {
	cfg := &config.Config{
		Primary: config.Primary{Env: env},
		Server: config.ServerConfig{
			RateLimit:          1000,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: config.DefaultObservabilityConfig(),
	}
	cfg.Observability.Environment = env

	logger := zerolog.Nop()
	return &server.Server{Config: cfg, Logger: &logger}
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Detail  string            `json:"error"`
	Errors  []errs.FieldError `json:"errors"`
}

func serveError(t *testing.T, s *server.Server, method string, handlerErr error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Any("/boom", func(echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, "/boom", nil))

	var body errorBody
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:       "http error passes through",
			err:        errs.NewNotFoundError("Member was not found.", true, nil),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantDetail: "Member was not found.",
		},
		{
			name:       "connection unavailable",
			err:        fmt.Errorf("failed to list customers: %w", sqlerr.ErrConnectionUnavailable),
			wantStatus: http.StatusInternalServerError,
			wantCode:   errs.CodeDatabaseUnavailable,
			wantDetail: errs.ConnectionUnavailableMessage,
		},
		{
			name:       "store error keeps detail outside production",
			err:        errors.New("relation \"customer\" does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   errs.CodeStoreError,
			wantDetail: "relation \"customer\" does not exist",
		},
		{
			name:       "echo error keeps its status",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantDetail: "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, newTestServer("development"), http.MethodGet, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestGlobalErrorHandlerForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		TableName:      "workouts",
		ConstraintName: "workouts_customer_id_fkey",
		Message:        "insert or update on table \"workouts\" violates foreign key constraint",
	}

	rec, body := serveError(t, newTestServer("development"), http.MethodPost, fmt.Errorf("failed to create workout: %w", pgErr))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "customer_id", body.Errors[0].Field)
}

func TestGlobalErrorHandlerHidesStoreErrorsInProduction(t *testing.T) {
	rec, body := serveError(t, newTestServer("production"), http.MethodGet, errors.New("syntax error at or near \"FORM\""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "FORM")
}

func TestGlobalErrorHandlerKeepsConnectionMessageInProduction(t *testing.T) {
	_, body := serveError(t, newTestServer("production"), http.MethodGet, sqlerr.ErrConnectionUnavailable)

	assert.Equal(t, errs.ConnectionUnavailableMessage, body.Detail)
}

func TestGlobalErrorHandlerHeadHasNoBody(t *testing.T) {
	rec, _ := serveError(t, newTestServer("development"), http.MethodHead, errs.NewNotFoundError("gone", false, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestGlobalErrorHandlerUnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer("development")).GlobalErrorHandler

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}
