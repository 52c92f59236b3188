package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when any endpoint other than login
// answers 401. The session has already been cleared by the time a
// caller sees this; the only recovery is logging in again.
var ErrSessionExpired = errors.New("session expired")

// Error is a non-2xx response from the backend.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}
