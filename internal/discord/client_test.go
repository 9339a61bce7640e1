package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingleton/dawson-rp/internal/domain"
)

func TestParseSnowflake(t *testing.T) {
	id, err := ParseSnowflake("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), id)

	_, err = ParseSnowflake("not-a-number")
	assert.Error(t, err)
}

func TestAPIClient_GetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/42/balance", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		json.NewEncoder(w).Encode(map[string]int64{"account_id": 42, "dollars": 250})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/api/v1", "test-key")
	balance, err := client.GetBalance(42)
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)
}

func TestAPIClient_ErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrMsgInsufficientFunds})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/api/v1", "")
	_, err := client.Transfer(1, 2, 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMsgInsufficientFunds)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]int64{"dollars": 100})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/api/v1", "")
	balance, err := client.GetBalance(42)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
	assert.Equal(t, 3, attempts)
}

func TestAPIClient_Gamble(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req["account_id"])
		assert.Equal(t, int64(20), req["amount"])
		json.NewEncoder(w).Encode(domain.GambleResult{
			AccountID: 42, Stake: 20, Outcome: 35, NetChange: 15, NewBalance: 115,
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/api/v1", "")
	result, err := client.Gamble(42, 20)
	require.NoError(t, err)
	assert.True(t, result.Won())
	assert.Equal(t, int64(115), result.NewBalance)
}

func TestAPIClient_StartAirdrop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/airdrop/start", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.AirdropStatus{
			State:        domain.AirdropActive,
			PrizeDollars: 75,
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL+"/api/v1", "")
	status, err := client.StartAirdrop(0, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.AirdropActive, status.State)
	assert.Equal(t, int64(75), status.PrizeDollars)
}
