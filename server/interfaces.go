package server

import (
	"context"

	"github.com/adryze/omnidesk/odoo"
	"github.com/adryze/omnidesk/redis"
	"github.com/adryze/omnidesk/supabase"
	"github.com/adryze/omnidesk/webhook"
)

// ERPAuthenticator verifies credentials during login.
type ERPAuthenticator interface {
	Authenticate(username, password string) (int, error)
}

// ERPClient is the per-request ERP connection. Handlers obtain a fresh
// one through Deps.NewERPClient on every request so a client never
// outlives the credentials it was built from.
type ERPClient interface {
	SearchRead(model string, domain odoo.Domain, fields []string, opts odoo.Options) ([]odoo.Record, error)
	Create(model string, values map[string]any) (int, error)
	Write(model string, ids []int, values map[string]any) (bool, error)
	Unlink(model string, ids []int) (bool, error)
	Search(model string, domain odoo.Domain, opts odoo.Options) ([]int, error)
	Read(model string, ids []int, fields []string) ([]odoo.Record, error)
}

// MessageStore is the hosted conversation/message datastore.
type MessageStore interface {
	ListConversations(ctx context.Context, platform string) ([]supabase.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]supabase.Message, error)
	InsertMessage(ctx context.Context, msg supabase.NewMessage) (*supabase.Message, error)
}

// MessageMirror is the short-lived recent-message cache.
type MessageMirror interface {
	RecordMessage(conversationID string, msg redis.RelayedMessage) error
	GetRecentMessages(conversationID string) ([]redis.RelayedMessage, error)
}

// AutomationRelay is the outbound n8n webhook.
type AutomationRelay interface {
	Configured() bool
	NotifyMessageSent(conversationID, message string)
	VisualSearch(ctx context.Context, imageBase64, filename string) (*webhook.VisualSearchResult, error)
}

// ImageArchiver stores visual-search uploads for later audit.
type ImageArchiver interface {
	UploadImage(imageData []byte, filename, contentType string) (string, error)
}
