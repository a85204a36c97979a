package odoo

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Authenticator verifies credentials against the ERP's common endpoint.
// It makes exactly one attempt per call and never retries.
type Authenticator struct {
	cfg  Config
	dial dialFunc
}

func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{cfg: cfg, dial: xmlrpcDial(cfg.URL)}
}

// Authenticate returns the principal's uid. A rejected login comes back
// from the ERP as a falsy value, not a fault, so the two failure modes
// are distinct: ErrInvalidCredentials when the ERP answered and said
// no, ErrUpstreamUnavailable when the call itself failed.
func (a *Authenticator) Authenticate(username, password string) (int, error) {
	conn, err := a.dial(commonEndpoint)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	var reply any
	params := []any{a.cfg.DB, username, password, map[string]any{}}
	if err := conn.Call("authenticate", params, &reply); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Odoo authentication call failed")
		return 0, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	uid, ok := toInt(reply)
	if !ok || uid <= 0 {
		return 0, ErrInvalidCredentials
	}

	return uid, nil
}
