package server

import (
	"errors"

	"github.com/adryze/omnidesk/odoo"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// loginHandler handles POST /auth/login. Empty fields are a bad
// request, a rejected handshake is 401, an unreachable handshake
// endpoint is 503 — three different failures, three different codes.
func (s *Server) loginHandler(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Username and password are required")
	}

	uid, err := s.deps.Auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, odoo.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Login handshake failed")
		return errorJSON(c, fiber.StatusServiceUnavailable, "Authentication service unavailable")
	}

	if err := s.deps.Sessions.Create(c, uid, req.Password, req.Username); err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		return errorJSON(c, fiber.StatusInternalServerError, "Authentication failed")
	}

	log.Info().Int("uid", uid).Str("username", req.Username).Msg("User logged in")

	return c.JSON(loginResponse{
		Success: true,
		User:    loginUser{UID: uid, Username: req.Username},
	})
}

// logoutHandler handles POST /auth/logout.
func (s *Server) logoutHandler(c fiber.Ctx) error {
	s.deps.Sessions.Destroy(c)
	return c.JSON(fiber.Map{"success": true})
}

// meHandler handles GET /auth/me. Only uid and username leave the
// session; the secret never appears in a response body after login.
func (s *Server) meHandler(c fiber.Ctx) error {
	sess := s.currentSession(c)
	return c.JSON(fiber.Map{
		"user": loginUser{UID: sess.UID, Username: sess.Username},
	})
}
