package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contractapi/internal/model"
	"contractapi/internal/service"
	serviceMocks "contractapi/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListContracts(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/api/contracts", ListContracts(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(&service.ContractListResult{
			Items: []model.Contract{{ID: "c-1", ContractName: "Lease"}},
			Total: 1,
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/contracts", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.ContractListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "Lease", result.Items[0].ContractName)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/contracts?offset=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})
}

func TestContractStatuses(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/api/contracts/statuses", ContractStatuses(mockSvc))

	mockSvc.On("Statuses", mock.Anything).Return([]string{"active", "renewed"}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/contracts/statuses", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data []string `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, []string{"active", "renewed"}, body.Data)
	mockSvc.AssertExpectations(t)
}

func TestGetContract(t *testing.T) {
	mockSvc := new(serviceMocks.MockContractService)
	app := fiber.New()
	app.Get("/api/contracts/:id", GetContract(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Contract{ID: id}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/contracts/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrContractNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/contracts/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestAssignContract(t *testing.T) {
	actor := service.Actor{UserID: "admin-1", UserName: "Ada Admin"}

	tests := []struct {
		name       string
		body       any
		setupMocks func(s *serviceMocks.MockContractService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       assignRequest{ManagerIDs: []string{"mgr-1"}, FileID: "file-1"},
			wantStatus: http.StatusOK,
			setupMocks: func(s *serviceMocks.MockContractService) {
				s.On("Assign", mock.Anything, "c-1", []string{"mgr-1"}, "file-1", actor).Return(&service.ContractResult{
					Contract:    &model.Contract{ID: "c-1", AssignedManagers: []string{"Mia Manager"}},
					SideEffects: []service.Outcome{{Effect: "notify", OK: true}},
				}, nil).Once()
			},
		},
		{
			name:       "not a contract",
			body:       assignRequest{ManagerIDs: []string{"mgr-1"}},
			wantStatus: http.StatusConflict,
			wantCode:   "NOT_A_CONTRACT",
			setupMocks: func(s *serviceMocks.MockContractService) {
				s.On("Assign", mock.Anything, "c-1", []string{"mgr-1"}, "", actor).Return(nil, service.ErrNotAContract).Once()
			},
		},
		{
			name:       "not found",
			body:       assignRequest{},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			setupMocks: func(s *serviceMocks.MockContractService) {
				s.On("Assign", mock.Anything, "c-1", []string(nil), "", actor).Return(nil, service.ErrContractNotFound).Once()
			},
		},
		{
			name:       "invalid body",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_BODY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockContractService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			app := fiber.New()
			app.Patch("/api/contracts/:id/assign", AssignContract(mockSvc))

			req := jsonRequest(t, http.MethodPatch, "/api/contracts/c-1/assign", tt.body)
			req.Header.Set(UserIDHeader, actor.UserID)
			req.Header.Set(UserNameHeader, actor.UserName)
			resp, _ := app.Test(req)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestUpdateContractStatus(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name       string
		status     string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "renewed", status: "renewed", wantStatus: http.StatusOK},
		{name: "invalid status", status: "bogus", err: service.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantCode: "INVALID_STATUS"},
		{name: "missing contract", status: "active", err: service.ErrContractNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "store failure", status: "active", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockContractService)
			call := mockSvc.On("UpdateStatus", mock.Anything, id, tt.status, service.Actor{})
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(&service.ContractResult{Contract: &model.Contract{ID: id, Status: tt.status}}, nil).Once()
			}
			app := fiber.New()
			app.Patch("/api/contracts/:id/status", UpdateContractStatus(mockSvc))

			resp, _ := app.Test(jsonRequest(t, http.MethodPatch, "/api/contracts/"+id+"/status", statusRequest{Status: tt.status}))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, resp).Error.Code)
			} else {
				var body struct {
					Data service.ContractResult `json:"data"`
				}
				json.NewDecoder(resp.Body).Decode(&body)
				assert.Equal(t, "renewed", body.Data.Contract.Status)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestCheckExpirations(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		sweep := new(serviceMocks.MockExpirySweep)
		sweep.On("Run", mock.Anything).Return(3, nil).Once()
		app := fiber.New()
		app.Post("/api/contracts/expirations/check", CheckExpirations(sweep))

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/contracts/expirations/check", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]int
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 3, body["created"])
		sweep.AssertExpectations(t)
	})

	t.Run("already running", func(t *testing.T) {
		sweep := new(serviceMocks.MockExpirySweep)
		sweep.On("Run", mock.Anything).Return(0, service.ErrSweepInProgress).Once()
		app := fiber.New()
		app.Post("/api/contracts/expirations/check", CheckExpirations(sweep))

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/contracts/expirations/check", nil))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "SWEEP_IN_PROGRESS", decodeError(t, resp).Error.Code)
		sweep.AssertExpectations(t)
	})
}
