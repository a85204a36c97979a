package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigured(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected bool
	}{
		{name: "Empty URL", url: "", expected: false},
		{name: "Placeholder URL", url: "https://n8n.example.com/webhook/placeholder", expected: false},
		{name: "Real URL", url: "https://n8n.example.com/webhook/abc123", expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(tc.url, http.Client{})
			if c.Configured() != tc.expected {
				t.Errorf("Expected Configured()=%v for %q", tc.expected, tc.url)
			}
		})
	}
}

func TestNotifyMessageSent(t *testing.T) {
	var received map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, http.Client{})
	c.NotifyMessageSent("c1", "hello")

	if received["type"] != "send_message" {
		t.Errorf("Expected send_message event, got %v", received["type"])
	}
	if received["conversation_id"] != "c1" || received["message"] != "hello" {
		t.Errorf("Unexpected payload: %v", received)
	}
}

func TestNotifyMessageSent_Unconfigured(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := NewClient("", http.Client{})
	c.NotifyMessageSent("c1", "hello")

	if called {
		t.Error("Unconfigured relay must not send anything")
	}
}

func TestVisualSearch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)

		if payload["type"] != "visual_search" {
			t.Errorf("Expected visual_search event, got %v", payload["type"])
		}
		if payload["filename"] != "chair.jpg" {
			t.Errorf("Unexpected filename: %v", payload["filename"])
		}

		json.NewEncoder(w).Encode(map[string]any{
			"product_name": "Chair",
			"confidence":   "High",
			"sku":          "CH-01",
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, http.Client{})

	result, err := c.VisualSearch(context.Background(), "aW1hZ2U=", "chair.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.ProductName != "Chair" || result.Confidence != "High" || result.SKU != "CH-01" {
		t.Errorf("Unexpected result: %+v", result)
	}
	if result.SuggestedProducts == nil {
		t.Error("Expected suggested products to default to an empty list")
	}
}

func TestVisualSearch_Defaults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"product_name": "Chair"})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, http.Client{})

	result, err := c.VisualSearch(context.Background(), "aW1hZ2U=", "chair.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Confidence != "Low" {
		t.Errorf("Expected Low confidence default, got %q", result.Confidence)
	}
}

func TestVisualSearch_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, http.Client{})

	if _, err := c.VisualSearch(context.Background(), "aW1hZ2U=", "chair.jpg"); err == nil {
		t.Error("Expected error on upstream failure")
	}
}
