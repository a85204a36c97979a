package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// recentLimit caps the per-conversation mirror length.
const recentLimit = 50

// Client keeps a rolling mirror of recently relayed messages per
// conversation. The hosted store remains the store of record; this is a
// 24h cache that feeds dashboard previews and the realtime layer
// without a round trip to the store.
type Client struct {
	rdb *redis.Client
	ctx context.Context
}

// RelayedMessage is one mirrored chat message.
type RelayedMessage struct {
	Body       string    `json:"body"`
	AuthorRole string    `json:"author_role"`
	AuthorName string    `json:"author_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewClient(addr, password string, db int) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := Client{
		rdb: rdb,
		ctx: context.Background(),
	}

	if err := client.Ping(); err != nil {
		log.Fatal().Err(err).
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connection failed")
	} else {
		log.Info().
			Str("addr", addr).
			Int("db", db).
			Msg("Redis connected successfully")
	}

	return client
}

func (c *Client) Ping() error {
	return c.rdb.Ping(c.ctx).Err()
}

func recentKey(conversationID string) string {
	return fmt.Sprintf("chat_recent:%s", conversationID)
}

// RecordMessage appends a message to the conversation's mirror and
// refreshes its 24h expiry.
func (c *Client) RecordMessage(conversationID string, msg RelayedMessage) error {
	key := recentKey(conversationID)

	messageJSON, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if _, err := c.rdb.RPush(c.ctx, key, messageJSON).Result(); err != nil {
		return err
	}

	c.rdb.LTrim(c.ctx, key, -recentLimit, -1)
	c.rdb.Expire(c.ctx, key, 24*time.Hour)

	return nil
}

// GetRecentMessages returns the mirrored messages of one conversation,
// oldest first. Entries that fail to decode are skipped.
func (c *Client) GetRecentMessages(conversationID string) ([]RelayedMessage, error) {
	key := recentKey(conversationID)

	items, err := c.rdb.LRange(c.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var messages []RelayedMessage
	for _, item := range items {
		var msg RelayedMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// ActiveConversations lists the conversation ids with a live mirror.
func (c *Client) ActiveConversations() ([]string, error) {
	keys, err := c.rdb.Keys(c.ctx, "chat_recent:*").Result()
	if err != nil {
		return nil, err
	}

	prefix := len("chat_recent:")
	var ids []string
	for _, key := range keys {
		if len(key) > prefix {
			ids = append(ids, key[prefix:])
		}
	}

	return ids, nil
}
