package odoo

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when the ERP rejects a login attempt.
// The authenticate endpoint signals rejection with a falsy uid, not a fault.
var ErrInvalidCredentials = errors.New("odoo: invalid credentials")

// ErrUpstreamUnavailable is returned when the authenticate call itself
// fails (transport error or remote fault), as opposed to being rejected.
var ErrUpstreamUnavailable = errors.New("odoo: authentication endpoint unavailable")

// RemoteCallError wraps any failure of an execute_kw call: transport
// errors, remote faults, and malformed responses all surface as one kind.
type RemoteCallError struct {
	Model  string
	Method string
	Cause  error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("odoo: %s.%s failed: %v", e.Model, e.Method, e.Cause)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Cause
}

func remoteErr(model, method string, cause error) error {
	return &RemoteCallError{Model: model, Method: method, Cause: cause}
}
