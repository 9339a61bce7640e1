package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mingleton/dawson-rp/internal/catalog"
	"github.com/mingleton/dawson-rp/internal/domain"
)

// APIClient handles communication with the core API.
// BaseURL includes the version prefix, e.g. "http://localhost:8080/api/v1".
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// AccountProfile is the account plus inventory returned by GET /accounts/{id}.
type AccountProfile struct {
	Account   *domain.Account         `json:"account"`
	Inventory []domain.InventoryStack `json:"inventory"`
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeAPIError pulls the error message out of an error response body.
func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// decodeInto performs the request, checks the status and decodes the body.
func (c *APIClient) decodeInto(method, path string, body interface{}, wantStatus int, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ParseSnowflake converts a Discord user ID into an account ID.
func ParseSnowflake(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid Discord ID %q: %w", id, err)
	}
	return n, nil
}

// CreateAccount registers a new account
func (c *APIClient) CreateAccount(accountID int64) (*domain.Account, error) {
	var acct domain.Account
	err := c.decodeInto(http.MethodPost, "/accounts", map[string]int64{"account_id": accountID}, http.StatusCreated, &acct)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// GetAccount retrieves an account profile with its inventory
func (c *APIClient) GetAccount(accountID int64) (*AccountProfile, error) {
	var profile AccountProfile
	path := fmt.Sprintf("/accounts/%d", accountID)
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetBalance retrieves an account's balance
func (c *APIClient) GetBalance(accountID int64) (int64, error) {
	var out struct {
		Dollars int64 `json:"dollars"`
	}
	path := fmt.Sprintf("/accounts/%d/balance", accountID)
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return 0, err
	}
	return out.Dollars, nil
}

// Transfer moves dollars between accounts and returns the sender's balance
func (c *APIClient) Transfer(fromID, toID, amount int64) (int64, error) {
	req := map[string]int64{
		"from_id": fromID,
		"to_id":   toID,
		"amount":  amount,
	}
	var out struct {
		SenderBalance int64 `json:"sender_balance"`
	}
	if err := c.decodeInto(http.MethodPost, "/transfer", req, http.StatusOK, &out); err != nil {
		return 0, err
	}
	return out.SenderBalance, nil
}

// Gamble wagers a stake and returns the result
func (c *APIClient) Gamble(accountID, amount int64) (*domain.GambleResult, error) {
	req := map[string]int64{
		"account_id": accountID,
		"amount":     amount,
	}
	var result domain.GambleResult
	if err := c.decodeInto(http.MethodPost, "/gamble", req, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard retrieves the top accounts by balance
func (c *APIClient) Leaderboard(limit int) ([]domain.LeaderboardEntry, error) {
	path := "/leaderboard"
	if limit > 0 {
		path = fmt.Sprintf("/leaderboard?limit=%d", limit)
	}
	var out struct {
		Data []domain.LeaderboardEntry `json:"data"`
	}
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// GetInventory retrieves an account's inventory stacks
func (c *APIClient) GetInventory(accountID int64) ([]domain.InventoryStack, error) {
	path := fmt.Sprintf("/inventory?account_id=%d", accountID)
	var out struct {
		Data []domain.InventoryStack `json:"data"`
	}
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// itemAction posts the owner-checked single-item actions
func (c *APIClient) itemAction(accountID int64, itemID uuid.UUID, action string) error {
	path := fmt.Sprintf("/items/%s/%s", itemID, action)
	req := map[string]int64{"account_id": accountID}
	return c.decodeInto(http.MethodPost, path, req, http.StatusOK, nil)
}

// EquipItem marks an item as worn
func (c *APIClient) EquipItem(accountID int64, itemID uuid.UUID) error {
	return c.itemAction(accountID, itemID, "equip")
}

// UnequipItem clears the worn flag
func (c *APIClient) UnequipItem(accountID int64, itemID uuid.UUID) error {
	return c.itemAction(accountID, itemID, "unequip")
}

// DropItem hides an item from the inventory
func (c *APIClient) DropItem(accountID int64, itemID uuid.UUID) error {
	return c.itemAction(accountID, itemID, "drop")
}

// StartAirdrop activates a new prize
func (c *APIClient) StartAirdrop(amount int64, ttlSeconds int) (*domain.AirdropStatus, error) {
	req := map[string]interface{}{
		"amount":      amount,
		"ttl_seconds": ttlSeconds,
	}
	var status domain.AirdropStatus
	if err := c.decodeInto(http.MethodPost, "/airdrop/start", req, http.StatusCreated, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ClaimAirdrop claims the active prize for an account
func (c *APIClient) ClaimAirdrop(accountID int64) (*domain.AirdropClaim, error) {
	req := map[string]int64{"account_id": accountID}
	var claim domain.AirdropClaim
	if err := c.decodeInto(http.MethodPost, "/airdrop/claim", req, http.StatusOK, &claim); err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetTypeByName looks up one item type in the catalog
func (c *APIClient) GetTypeByName(name string) (*catalog.Type, error) {
	path := "/catalog/types?name=" + url.QueryEscape(name)
	var t catalog.Type
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetRarityByName looks up one rarity in the catalog
func (c *APIClient) GetRarityByName(name string) (*catalog.Rarity, error) {
	path := "/catalog/rarities?name=" + url.QueryEscape(name)
	var r catalog.Rarity
	if err := c.decodeInto(http.MethodGet, path, nil, http.StatusOK, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
