package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tourdesk/src/types"
)

// ErrAuthInvalid marks a 401/403 from any endpoint. The client has already
// cleared the session and fired OnAuthFailure by the time a caller sees it, so
// operations treat it as already-reported.
var ErrAuthInvalid = errors.New("authentication invalid")

// APIError carries a non-auth error status and the server-provided message,
// when there was one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error: status=%d", e.Status)
}

func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }
func (e *APIError) Conflict() bool { return e.Status == http.StatusConflict }

// RoleError is the client-side authorization rejection, raised before the
// mutating request is ever sent. The server enforces the same rule; this one
// exists to short-circuit the action with a readable message.
type RoleError struct {
	Required []types.Role
	Resolved types.Role
}

func (e *RoleError) Error() string {
	names := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		names = append(names, string(r))
	}
	return fmt.Sprintf("this action requires the %s role", strings.Join(names, " or "))
}

// ValidationError names the first offending field of a rejected input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
