package server

import (
	"github.com/adryze/omnidesk/session"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

const sessionLocalKey = "session"

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())

	s.app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://os.adryze.com", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
	}))
}

// requireSession gates protected routes. An absent, expired or tampered
// cookie all produce the same 401; the distinction never reaches the
// client.
func (s *Server) requireSession(c fiber.Ctx) error {
	sess, ok := s.deps.Sessions.Read(c)
	if !ok {
		return errorJSON(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	c.Locals(sessionLocalKey, sess)
	return c.Next()
}

func (s *Server) currentSession(c fiber.Ctx) session.Session {
	sess, _ := c.Locals(sessionLocalKey).(session.Session)
	return sess
}

// erpClient builds a fresh ERP client from the request's session. Never
// cached across requests: the credentials belong to this request alone.
func (s *Server) erpClient(c fiber.Ctx) ERPClient {
	sess := s.currentSession(c)
	return s.deps.NewERPClient(sess.UID, sess.Password)
}
