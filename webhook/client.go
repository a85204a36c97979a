package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Client posts events to the n8n automation webhook. The integration is
// optional: an unset URL, or the placeholder one shipped in example env
// files, means "not configured". Message relay treats that as a silent
// no-op; visual search has no fallback and reports it to the caller.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, httpClient http.Client) Client {
	return Client{
		url:        url,
		httpClient: &httpClient,
	}
}

func (c *Client) Configured() bool {
	return c.url != "" && !strings.Contains(c.url, "placeholder")
}

// NotifyMessageSent relays an outbound chat message for real-world
// delivery. Fire and forget: callers run it in a goroutine and never
// wait on it, so failures only get logged.
func (c *Client) NotifyMessageSent(conversationID, message string) {
	if !c.Configured() {
		return
	}

	payload := map[string]any{
		"type":            "send_message",
		"conversation_id": conversationID,
		"message":         message,
	}

	if _, err := c.send(context.Background(), payload); err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("Webhook relay failed")
	}
}

// VisualSearchResult is the classification the automation flow returns
// for an uploaded product image.
type VisualSearchResult struct {
	ProductName       string   `json:"product_name"`
	Confidence        string   `json:"confidence"`
	SKU               string   `json:"sku"`
	SuggestedProducts []string `json:"suggested_products"`
}

// VisualSearch submits a base64 image for classification and blocks on
// the answer. Callers must check Configured first.
func (c *Client) VisualSearch(ctx context.Context, imageBase64, filename string) (*VisualSearchResult, error) {
	payload := map[string]any{
		"type":     "visual_search",
		"image":    imageBase64,
		"filename": filename,
	}

	respBody, err := c.send(ctx, payload)
	if err != nil {
		return nil, err
	}

	var result VisualSearchResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if result.Confidence == "" {
		result.Confidence = "Low"
	}
	if result.SuggestedProducts == nil {
		result.SuggestedProducts = []string{}
	}

	return &result, nil
}

func (c *Client) send(ctx context.Context, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return responseBody, nil
}
