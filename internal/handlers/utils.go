package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

// SessionCookie carries the session id
const SessionCookie = "explorer_session"

var errNoSession = errors.New("no session")

// getSession resolves the caller's session from the cookie
func (ctx *Context) getSession(r *http.Request) (*store.Entry, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, errNoSession
	}
	e, ok := ctx.Sessions.Get(cookie.Value)
	if !ok {
		return nil, errNoSession
	}
	return e, nil
}

func setSessionCookie(w http.ResponseWriter, id string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondNoSession tells the page to start over
func respondNoSession(w http.ResponseWriter) {
	w.Header().Set("HX-Redirect", "/")
	respondError(w, http.StatusUnauthorized, ErrMsgNoSession)
}

// statusFor maps game errors to HTTP responses
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrWrongPhase):
		return http.StatusConflict, ErrMsgWrongPhase
	case errors.Is(err, game.ErrUnknownTarget):
		return http.StatusBadRequest, ErrMsgUnknownTarget
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
