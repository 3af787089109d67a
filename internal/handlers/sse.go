package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aaronzipp/explorers-mission/internal/metrics"
	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/sse"
)

// HandleSSE streams effect batches for the caller's session. A new
// connection first receives the replay of the current screen.
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	e, err := ctx.getSession(r)
	if err != nil {
		respondNoSession(w)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, ErrMsgStreamUnsupported)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	connID := uuid.NewString()
	log := ctx.Logger.With("session_id", e.Controller.ID(), "conn_id", connID)

	var (
		clientChan chan models.SSEMessage
		open       bool
	)
	replay := e.Controller.Attach(func() {
		clientChan, open = e.Stream.AddClient(connID)
	})
	if !open {
		log.Debug("Stream closed before client connected")
		return
	}
	defer e.Stream.RemoveClient(clientChan)
	metrics.SSEClients.Inc()
	defer metrics.SSEClients.Dec()
	log.Debug("SSE client connected", "clients", e.Stream.ClientCount())

	data, err := sse.Encode(replay)
	if err != nil {
		log.Error("Failed to encode replay", "error", err)
		return
	}
	if err := sse.WriteMessage(w, models.SSEMessage{Event: sse.EventEffects, Data: data}); err != nil {
		return
	}
	flusher.Flush()

	ping := ctx.Clock.NewTicker(sse.PingInterval)
	defer ping.Stop()

	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			log.Debug("SSE client disconnected")
			return
		case <-ping.Chan():
			if err := sse.WriteMessage(w, models.SSEMessage{Event: sse.EventPing, Data: "{}"}); err != nil {
				return
			}
			flusher.Flush()
		case msg, ok := <-clientChan:
			if !ok {
				log.Debug("Session stream closed")
				return
			}
			if err := sse.WriteMessage(w, msg); err != nil {
				log.Debug("SSE write failed", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}
