//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestAirdropStatus(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/airdrop", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var status struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if status.State == "" {
		t.Error("Expected non-empty airdrop state")
	}
}

func TestCatalogTypes(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/catalog/types", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(result.Data) == 0 {
		t.Error("Expected at least one item type in the catalog")
	}
}

func TestUnauthorizedRequestRejected(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/leaderboard", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without API key, got %d", resp.StatusCode)
	}
}
