package server

import (
	"time"

	"github.com/adryze/omnidesk/redis"
	"github.com/adryze/omnidesk/supabase"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// listConversationsHandler handles GET /chat/conversations.
func (s *Server) listConversationsHandler(c fiber.Ctx) error {
	if s.deps.Store == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "Message store not configured")
	}

	channels, err := s.deps.Store.ListConversations(c.Context(), c.Query("platform"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch conversations")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch conversations")
	}

	if channels == nil {
		channels = []supabase.Conversation{}
	}
	return c.JSON(channelsResponse{Channels: channels})
}

// listMessagesHandler handles GET /chat/messages. channelId is accepted
// as an alias of conversationId for older dashboard builds.
func (s *Server) listMessagesHandler(c fiber.Ctx) error {
	if s.deps.Store == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "Message store not configured")
	}

	conversationID := c.Query("channelId")
	if conversationID == "" {
		conversationID = c.Query("conversationId")
	}
	if conversationID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Conversation ID required")
	}

	messages, err := s.deps.Store.ListMessages(c.Context(), conversationID)
	if err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("Failed to fetch messages")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	if messages == nil {
		messages = []supabase.Message{}
	}
	return c.JSON(messagesResponse{Messages: messages})
}

// sendMessageHandler handles POST /chat/send: persist to the store,
// then mirror, broadcast and relay. Only the store write can fail the
// request; everything after it is best effort, and the webhook relay in
// particular is never awaited.
func (s *Server) sendMessageHandler(c fiber.Ctx) error {
	if s.deps.Store == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "Message store not configured")
	}

	var req sendMessageRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = req.ChannelID
	}

	if req.Message == "" || conversationID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Message and Conversation ID are required")
	}

	authorRole := req.AuthorRole
	if authorRole == "" {
		authorRole = "agent"
	}

	authorName := s.currentSession(c).Username
	if authorName == "" {
		authorName = "Agent"
	}

	stored, err := s.deps.Store.InsertMessage(c.Context(), supabase.NewMessage{
		ConversationID: conversationID,
		Body:           req.Message,
		AuthorRole:     authorRole,
		AuthorName:     authorName,
	})
	if err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("Failed to send message")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	if s.deps.Mirror != nil {
		mirrorErr := s.deps.Mirror.RecordMessage(conversationID, redis.RelayedMessage{
			Body:       stored.Body,
			AuthorRole: stored.AuthorRole,
			AuthorName: stored.AuthorName,
			Timestamp:  time.Now(),
		})
		if mirrorErr != nil {
			log.Warn().Err(mirrorErr).Str("conversation_id", conversationID).Msg("Failed to mirror message")
		}
	}

	s.broadcastChatMessage(conversationID, stored.Body, stored.AuthorRole)

	if s.deps.Relay != nil && s.deps.Relay.Configured() {
		go s.deps.Relay.NotifyMessageSent(conversationID, req.Message)
	}

	return c.JSON(fiber.Map{"success": true, "message": stored})
}

// recentMessagesHandler handles GET /chat/conversations/:id/recent,
// serving dashboard previews from the mirror without touching the
// store.
func (s *Server) recentMessagesHandler(c fiber.Ctx) error {
	if s.deps.Mirror == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "Message mirror not configured")
	}

	conversationID := c.Params("id")
	if conversationID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Conversation ID required")
	}

	messages, err := s.deps.Mirror.GetRecentMessages(conversationID)
	if err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("Failed to read message mirror")
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to fetch recent messages")
	}

	if messages == nil {
		messages = []redis.RelayedMessage{}
	}
	return c.JSON(recentMessagesResponse{Messages: messages})
}
