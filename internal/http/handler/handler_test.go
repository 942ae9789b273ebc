package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contractapi/internal/http/middleware"
	"contractapi/internal/messaging"
	"contractapi/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", service.ErrContractNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped", errors.Join(errors.New("ctx"), service.ErrInvalidStatus), http.StatusBadRequest, "INVALID_STATUS"},
		{"not a contract", service.ErrNotAContract, http.StatusConflict, "NOT_A_CONTRACT"},
		{"closed invitation", service.ErrInvitationClosed, http.StatusBadRequest, "INVITATION_CLOSED"},
		{"expired invitation", service.ErrInvitationExpired, http.StatusConflict, "INVITATION_EXPIRED"},
		{"phone", messaging.ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
		{"sweep busy", service.ErrSweepInProgress, http.StatusConflict, "SWEEP_IN_PROGRESS"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(middleware.RequestID())
			app.Get("/", func(c *fiber.Ctx) error { return writeServiceError(c, tt.err) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", "req-1")
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			res := decodeError(t, resp)
			assert.Equal(t, tt.wantCode, res.Error.Code)
			assert.Equal(t, "req-1", res.RequestID)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", res.Error.Message)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, Services{}, nil)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/files/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("write limiter guards mutations", func(t *testing.T) {
		limited := fiber.New()
		deny := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTooManyRequests) }
		RegisterRoutes(limited, nil, Services{}, deny)

		req := jsonRequest(t, http.MethodPost, "/api/invitations", map[string]string{"email": "a@b.co"})
		resp, _ := limited.Test(req)

		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})
}
