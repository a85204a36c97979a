package server

import (
	"github.com/adryze/omnidesk/session"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// Deps collects the collaborators the handlers run against. Store,
// Mirror, Relay and Archive are optional; a nil value means the
// integration is not configured and the affected endpoints answer
// accordingly.
type Deps struct {
	Sessions     *session.Manager
	Auth         ERPAuthenticator
	NewERPClient func(uid int, password string) ERPClient
	Store        MessageStore
	Mirror       MessageMirror
	Relay        AutomationRelay
	Archive      ImageArchiver
}

type Server struct {
	app       *fiber.App
	deps      Deps
	wsManager *WebSocketManager
}

func New(deps Deps) *Server {
	app := fiber.New()

	server := &Server{
		app:       app,
		deps:      deps,
		wsManager: NewWebSocketManager(),
	}

	server.setupMiddleware()
	server.setupRoutes()
	server.wsManager.Start()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting omnidesk server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
