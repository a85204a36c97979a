package server

import (
	"github.com/adryze/omnidesk/odoo"
	"github.com/adryze/omnidesk/redis"
	"github.com/adryze/omnidesk/supabase"

	"github.com/gofiber/fiber/v3"
)

// errorJSON writes the uniform error body. Every failure leaving a
// handler goes through here with a human-readable message; underlying
// causes stay in the logs.
func errorJSON(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	UID      int    `json:"uid"`
	Username string `json:"username"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	User    loginUser `json:"user"`
}

type createProductRequest struct {
	Name        string  `json:"name"`
	DefaultCode string  `json:"default_code"`
	ListPrice   float64 `json:"list_price"`
}

type createLeadRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type sendMessageRequest struct {
	ChannelID      string `json:"channelId"`
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	AuthorRole     string `json:"author_role"`
}

type productsResponse struct {
	Products []odoo.Product `json:"products"`
}

type leadsResponse struct {
	Leads []odoo.Lead `json:"leads"`
}

type channelsResponse struct {
	Channels []supabase.Conversation `json:"channels"`
}

type messagesResponse struct {
	Messages []supabase.Message `json:"messages"`
}

type recentMessagesResponse struct {
	Messages []redis.RelayedMessage `json:"messages"`
}
