package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mingleton/dawson-rp/internal/domain"
)

func TestHandleCreateAccount(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockAccountService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Invalid JSON",
			reqBody: "invalid json",
			setupMocks: func(ma *MockAccountService) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Missing Account ID",
			reqBody: CreateAccountRequest{},
			setupMocks: func(ma *MockAccountService) {
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Duplicate Account",
			reqBody: CreateAccountRequest{AccountID: 42},
			setupMocks: func(ma *MockAccountService) {
				ma.On("CreateAccount", mock.Anything, int64(42)).Return(nil, domain.ErrAccountExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "Success",
			reqBody: CreateAccountRequest{AccountID: 42},
			setupMocks: func(ma *MockAccountService) {
				ma.On("CreateAccount", mock.Anything, int64(42)).Return(&domain.Account{ID: 42, Dollars: 100, HP: 100}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"dollars":100`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAccount := &MockAccountService{}
			if tt.setupMocks != nil {
				tt.setupMocks(mockAccount)
			}

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/accounts", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			HandleCreateAccount(mockAccount).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockAccount.AssertExpectations(t)
		})
	}
}

func TestHandleGetAccount(t *testing.T) {
	mockAccount := &MockAccountService{}
	mockInventory := &MockInventoryService{}
	mockAccount.On("GetAccount", mock.Anything, int64(42)).Return(&domain.Account{ID: 42, Dollars: 150, HP: 80}, nil)
	mockInventory.On("GetInventory", mock.Anything, int64(42)).Return([]domain.InventoryStack{
		{Name: "sword", Amount: 1},
	}, nil)

	r := chi.NewRouter()
	r.Get("/accounts/{id}", HandleGetAccount(mockAccount, mockInventory))

	req := httptest.NewRequest("GET", "/accounts/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dollars":150`)
	assert.Contains(t, rec.Body.String(), `"name":"sword"`)
	mockAccount.AssertExpectations(t)
	mockInventory.AssertExpectations(t)
}

func TestHandleGetAccount_NotFound(t *testing.T) {
	mockAccount := &MockAccountService{}
	mockInventory := &MockInventoryService{}
	mockAccount.On("GetAccount", mock.Anything, int64(99)).Return(nil, domain.ErrAccountNotFound)

	r := chi.NewRouter()
	r.Get("/accounts/{id}", HandleGetAccount(mockAccount, mockInventory))

	req := httptest.NewRequest("GET", "/accounts/99", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockInventory.AssertNotCalled(t, "GetInventory", mock.Anything, mock.Anything)
}

func TestHandleGetAccount_BadPathID(t *testing.T) {
	mockAccount := &MockAccountService{}
	mockInventory := &MockInventoryService{}

	r := chi.NewRouter()
	r.Get("/accounts/{id}", HandleGetAccount(mockAccount, mockInventory))

	req := httptest.NewRequest("GET", "/accounts/notanumber", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockAccount.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
}

func TestHandleAdjustHealth(t *testing.T) {
	mockAccount := &MockAccountService{}
	mockAccount.On("AdjustHealth", mock.Anything, int64(42), -30).Return(70, nil)

	r := chi.NewRouter()
	r.Post("/accounts/{id}/health", HandleAdjustHealth(mockAccount))

	body, _ := json.Marshal(AdjustHealthRequest{Delta: -30})
	req := httptest.NewRequest("POST", "/accounts/42/health", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hp":70`)
	mockAccount.AssertExpectations(t)
}

func TestHandleLeaderboard(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockAccount := &MockAccountService{}
		mockAccount.On("Leaderboard", mock.Anything, 0).Return([]domain.LeaderboardEntry{
			{AccountID: 1, Dollars: 500, Rank: 1},
			{AccountID: 2, Dollars: 300, Rank: 2},
		}, nil)

		req := httptest.NewRequest("GET", "/leaderboard", nil)
		rec := httptest.NewRecorder()
		HandleLeaderboard(mockAccount).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"rank":1`)
		mockAccount.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockAccount := &MockAccountService{}
		mockAccount.On("Leaderboard", mock.Anything, 5).Return([]domain.LeaderboardEntry{}, nil)

		req := httptest.NewRequest("GET", "/leaderboard?limit=5", nil)
		rec := httptest.NewRecorder()
		HandleLeaderboard(mockAccount).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAccount.AssertExpectations(t)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		mockAccount := &MockAccountService{}

		req := httptest.NewRequest("GET", "/leaderboard?limit=abc", nil)
		rec := httptest.NewRecorder()
		HandleLeaderboard(mockAccount).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockAccount.AssertNotCalled(t, "Leaderboard", mock.Anything, mock.Anything)
	})
}
