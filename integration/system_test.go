//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

type listResp struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []map[string]any `json:"data"`
}

func TestSystem_E2E_Catalog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var users listResp
	getJSON(t, baseURL+"/api/users", &users, http.StatusOK)
	if !users.Success || users.Count == 0 || users.Count != len(users.Data) {
		t.Fatalf("unexpected users listing: %+v", users)
	}

	id, _ := users.Data[0]["id"].(float64)
	if id == 0 {
		t.Fatalf("user id missing: %#v", users.Data[0])
	}

	var one struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	getJSON(t, baseURL+"/api/users/1", &one, http.StatusOK)
	if one.Data["email"] == "" {
		t.Fatalf("user email missing: %#v", one.Data)
	}

	getJSON(t, baseURL+"/api/users/99", nil, http.StatusNotFound)

	var products listResp
	getJSON(t, baseURL+"/api/products?category=electronics&inStock=true", &products, http.StatusOK)
	if products.Count != len(products.Data) {
		t.Fatalf("count=%d len=%d", products.Count, len(products.Data))
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp != nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func getJSON(t *testing.T, url string, out any, want int) {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		t.Fatalf("GET %s: status=%d want=%d", url, resp.StatusCode, want)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
