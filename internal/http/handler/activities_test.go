package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contractapi/internal/model"
	serviceMocks "contractapi/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListActivities(t *testing.T) {
	mockSvc := new(serviceMocks.MockActivityService)
	app := fiber.New()
	app.Get("/api/activities", ListActivities(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Recent", mock.Anything, 3).Return([]model.RecentActivity{
			{ID: "a-1", Action: "File uploaded", Type: model.ActivityFile},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities?limit=3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data []model.RecentActivity `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body.Data, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Recent", mock.Anything, 10).Return(nil, errors.New("db down")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/activities", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCleanupActivities(t *testing.T) {
	mockSvc := new(serviceMocks.MockActivityService)
	app := fiber.New()
	app.Post("/api/activities/cleanup", CleanupActivities(mockSvc))

	t.Run("default keep", func(t *testing.T) {
		mockSvc.On("Cleanup", mock.Anything, 100).Return(7, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/activities/cleanup", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]int
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 7, body["deleted"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("explicit keep", func(t *testing.T) {
		mockSvc.On("Cleanup", mock.Anything, 20).Return(0, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/activities/cleanup?keep=20", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid keep", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/activities/cleanup?keep=all", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_KEEP", decodeError(t, resp).Error.Code)
	})
}
