package server

import (
	"context"

	"github.com/adryze/omnidesk/odoo"
	"github.com/adryze/omnidesk/redis"
	"github.com/adryze/omnidesk/session"
	"github.com/adryze/omnidesk/supabase"
	"github.com/adryze/omnidesk/webhook"
)

type fakeAuth struct {
	uid   int
	err   error
	calls int
}

func (f *fakeAuth) Authenticate(username, password string) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.uid, nil
}

type erpCall struct {
	op     string
	model  string
	domain odoo.Domain
	fields []string
	opts   odoo.Options
	ids    []int
	values map[string]any
}

type fakeERP struct {
	calls    []erpCall
	records  []odoo.Record
	createID int
	err      error
}

func (f *fakeERP) SearchRead(model string, domain odoo.Domain, fields []string, opts odoo.Options) ([]odoo.Record, error) {
	f.calls = append(f.calls, erpCall{op: "search_read", model: model, domain: domain, fields: fields, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func (f *fakeERP) Create(model string, values map[string]any) (int, error) {
	f.calls = append(f.calls, erpCall{op: "create", model: model, values: values})
	if f.err != nil {
		return 0, f.err
	}
	return f.createID, nil
}

func (f *fakeERP) Write(model string, ids []int, values map[string]any) (bool, error) {
	f.calls = append(f.calls, erpCall{op: "write", model: model, ids: ids, values: values})
	if f.err != nil {
		return false, f.err
	}
	return true, nil
}

func (f *fakeERP) Unlink(model string, ids []int) (bool, error) {
	f.calls = append(f.calls, erpCall{op: "unlink", model: model, ids: ids})
	if f.err != nil {
		return false, f.err
	}
	return true, nil
}

func (f *fakeERP) Search(model string, domain odoo.Domain, opts odoo.Options) ([]int, error) {
	f.calls = append(f.calls, erpCall{op: "search", model: model, domain: domain, opts: opts})
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int, 0, len(f.records))
	for _, r := range f.records {
		ids = append(ids, r.ID())
	}
	return ids, nil
}

func (f *fakeERP) Read(model string, ids []int, fields []string) ([]odoo.Record, error) {
	f.calls = append(f.calls, erpCall{op: "read", model: model, ids: ids, fields: fields})
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

type fakeStore struct {
	conversations []supabase.Conversation
	messages      []supabase.Message
	inserted      []supabase.NewMessage
	err           error
}

func (f *fakeStore) ListConversations(ctx context.Context, platform string) ([]supabase.Conversation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if platform == "" || platform == "all" {
		return f.conversations, nil
	}
	var filtered []supabase.Conversation
	for _, conv := range f.conversations {
		if conv.Platform == platform {
			filtered = append(filtered, conv)
		}
	}
	return filtered, nil
}

func (f *fakeStore) ListMessages(ctx context.Context, conversationID string) ([]supabase.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.messages, nil
}

func (f *fakeStore) InsertMessage(ctx context.Context, msg supabase.NewMessage) (*supabase.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, msg)
	return &supabase.Message{
		ID:             "m1",
		ConversationID: msg.ConversationID,
		Body:           msg.Body,
		AuthorRole:     msg.AuthorRole,
		AuthorName:     msg.AuthorName,
		CreatedAt:      "2026-08-28T12:00:00Z",
	}, nil
}

type fakeMirror struct {
	recorded map[string][]redis.RelayedMessage
	err      error
}

func (f *fakeMirror) RecordMessage(conversationID string, msg redis.RelayedMessage) error {
	if f.err != nil {
		return f.err
	}
	if f.recorded == nil {
		f.recorded = make(map[string][]redis.RelayedMessage)
	}
	f.recorded[conversationID] = append(f.recorded[conversationID], msg)
	return nil
}

func (f *fakeMirror) GetRecentMessages(conversationID string) ([]redis.RelayedMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recorded[conversationID], nil
}

type fakeRelay struct {
	configured bool
	notified   []string
	result     *webhook.VisualSearchResult
	err        error
}

func (f *fakeRelay) Configured() bool {
	return f.configured
}

func (f *fakeRelay) NotifyMessageSent(conversationID, message string) {
	f.notified = append(f.notified, conversationID)
}

func (f *fakeRelay) VisualSearch(ctx context.Context, imageBase64, filename string) (*webhook.VisualSearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testSessions() *session.Manager {
	hashKey := []byte("0123456789abcdef0123456789abcdef")
	blockKey := []byte("fedcba9876543210fedcba9876543210")
	return session.New("test_session", hashKey, blockKey, false)
}
