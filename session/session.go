package session

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog/log"
)

// The session TTL is fixed from creation, not sliding: the codec stamps
// the payload at encode time and refuses it once the stamp is older
// than this.
const maxAge = 7 * 24 * time.Hour

// Session is the full authenticated state, round-tripped in the cookie.
// There is no server-side session store. The ERP API key travels in
// Password; it only ever exists inside the encrypted payload and must
// never appear in logs or response bodies.
type Session struct {
	UID      int    `json:"uid"`
	Password string `json:"password"`
	Username string `json:"username"`
	LoggedIn bool   `json:"isLoggedIn"`
}

// Manager encodes sessions into a single encrypted, signed cookie and
// back.
type Manager struct {
	codec  *securecookie.SecureCookie
	name   string
	secure bool
}

// New builds a manager. hashKey signs the cookie and blockKey encrypts
// it; both come from process configuration. secure controls the
// cookie's Secure flag and is on in production.
func New(name string, hashKey, blockKey []byte, secure bool) *Manager {
	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(maxAge.Seconds()))

	return &Manager{
		codec:  codec,
		name:   name,
		secure: secure,
	}
}

// Create writes a logged-in session cookie. Call only after the
// authentication handshake succeeded.
func (m *Manager) Create(c fiber.Ctx, uid int, password, username string) error {
	s := Session{
		UID:      uid,
		Password: password,
		Username: username,
		LoggedIn: true,
	}

	encoded, err := m.codec.Encode(m.name, s)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     m.name,
		Value:    encoded,
		Path:     "/",
		Expires:  time.Now().Add(maxAge),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return nil
}

// destroyedKey marks a request whose session was destroyed mid-cycle,
// so Read stops honoring the inbound cookie immediately rather than at
// the next request.
const destroyedKey = "session_destroyed"

// Read returns the session carried by the request, or ok=false when
// there is none. Absent, expired, and tampered cookies are all the same
// outcome here; decode failures are logged but never escape, since a
// forged cookie must look exactly like no cookie.
func (m *Manager) Read(c fiber.Ctx) (Session, bool) {
	if destroyed, _ := c.Locals(destroyedKey).(bool); destroyed {
		return Session{}, false
	}

	raw := c.Cookies(m.name)
	if raw == "" {
		return Session{}, false
	}

	var s Session
	if err := m.codec.Decode(m.name, raw, &s); err != nil {
		log.Debug().Err(err).Msg("Session cookie rejected")
		return Session{}, false
	}

	if !s.LoggedIn || s.UID == 0 || s.Password == "" {
		return Session{}, false
	}

	return s, true
}

// Destroy expires the cookie and marks the request so reads later in
// the same cycle miss too.
func (m *Manager) Destroy(c fiber.Ctx) {
	c.Locals(destroyedKey, true)
	c.Cookie(&fiber.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
