package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aaronzipp/explorers-mission/internal/session"
	"github.com/aaronzipp/explorers-mission/internal/sse"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

// createSession starts a fresh session and stores it
func (ctx *Context) createSession() string {
	id := uuid.NewString()
	stream := sse.NewStream(ctx.Logger.With("session_id", id))
	ctrl := session.New(session.Options{
		ID:       id,
		Content:  ctx.Content,
		Clock:    ctx.Clock,
		Sink:     stream,
		Observer: ctx.Observer,
		Logger:   ctx.Logger,
	})
	ctx.Sessions.Set(id, &store.Entry{Controller: ctrl, Stream: stream})
	return id
}

// HandleRestart discards all progress and starts over
func (ctx *Context) HandleRestart(w http.ResponseWriter, r *http.Request) {
	e, err := ctx.getSession(r)
	if err != nil {
		respondNoSession(w)
		return
	}
	e.Controller.Restart()
	ctx.Logger.Info("Session restarted by player", "session_id", e.Controller.ID())
	w.WriteHeader(http.StatusNoContent)
}

// HandleState returns a JSON snapshot of the caller's progress
func (ctx *Context) HandleState(w http.ResponseWriter, r *http.Request) {
	e, err := ctx.getSession(r)
	if err != nil {
		respondNoSession(w)
		return
	}
	respondJSON(w, http.StatusOK, e.Controller.Snapshot())
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// HandleHealthz provides a basic liveness check
func (ctx *Context) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: ctx.Sessions.Len()})
}
