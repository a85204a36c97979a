package supabase

import (
	"context"
	"net/http"
	"strings"
)

// Client talks to the hosted message store over its PostgREST surface.
// Conversations and messages live there, not in the ERP; this process
// only proxies them and relies on the store's own realtime channel for
// push to other consumers.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string, httpClient http.Client) Client {
	return Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &httpClient,
	}
}

// ListConversations returns up to 50 conversations, most recently
// updated first. platform filters to one channel unless empty or
// "all".
func (c *Client) ListConversations(ctx context.Context, platform string) ([]Conversation, error) {
	query := "select=*&order=updated_at.desc&limit=50"
	if platform != "" && platform != "all" {
		query += "&platform=eq." + platform
	}

	var conversations []Conversation
	if err := c.get(ctx, "/rest/v1/conversations?"+query, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ListMessages returns up to 100 messages of one conversation, oldest
// first.
func (c *Client) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	query := "select=*&conversation_id=eq." + conversationID + "&order=created_at.asc&limit=100"

	var messages []Message
	if err := c.get(ctx, "/rest/v1/messages?"+query, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// InsertMessage persists an outbound message and returns the stored row
// (the store assigns id and created_at).
func (c *Client) InsertMessage(ctx context.Context, msg NewMessage) (*Message, error) {
	var inserted []Message
	if err := c.post(ctx, "/rest/v1/messages", []NewMessage{msg}, &inserted); err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, errEmptyInsertReply
	}
	return &inserted[0], nil
}
