package server

import (
	"github.com/gofiber/fiber/v3"
)

// websocketHandler handles GET /ws/messages. Fiber v3 has no built-in
// upgrade support yet, so this answers with connection details for
// clients probing the endpoint; the manager itself is driven from the
// send path.
func (s *Server) websocketHandler(c fiber.Ctx) error {
	if c.Get("Upgrade") != "websocket" {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
			"error": "WebSocket upgrade required",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
		"info":   "Connect to /ws/messages for realtime chat events",
	})
}

// healthCheckHandler handles GET /health.
func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":            "ok",
		"websocket_clients": s.wsManager.ClientCount(),
		"message_store":     s.deps.Store != nil,
		"automation_relay":  s.deps.Relay != nil && s.deps.Relay.Configured(),
	})
}
