// Package sse fans session effects out to connected browsers.
package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
)

// Stream is the set of SSE connections watching one session
type Stream struct {
	mu      sync.RWMutex
	clients map[chan models.SSEMessage]string
	closed  bool
	log     *slog.Logger
}

// NewStream creates an empty stream
func NewStream(log *slog.Logger) *Stream {
	if log == nil {
		log = slog.Default()
	}
	return &Stream{
		clients: make(map[chan models.SSEMessage]string),
		log:     log,
	}
}

// AddClient registers a connection. The returned channel is closed when the
// stream closes; ok is false if it already has.
func (s *Stream) AddClient(connID string) (ch chan models.SSEMessage, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch = make(chan models.SSEMessage, ClientBufferSize)
	if s.closed {
		close(ch)
		return ch, false
	}
	if len(s.clients) > 0 {
		s.log.Debug("Session has additional SSE connection", "conn_id", connID, "existing", len(s.clients))
	}
	s.clients[ch] = connID
	return ch, true
}

// RemoveClient unregisters a connection
func (s *Stream) RemoveClient(ch chan models.SSEMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[ch]; !ok {
		return
	}
	delete(s.clients, ch)
	close(ch)
	s.log.Debug("SSE client removed", "remaining", len(s.clients))
}

// ClientCount returns the number of connected clients
func (s *Stream) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Publish encodes an effect batch and sends it to every client
func (s *Stream) Publish(effects []game.Effect) {
	if len(effects) == 0 {
		return
	}
	data, err := Encode(effects)
	if err != nil {
		s.log.Error("Failed to encode effects", "error", err)
		return
	}
	s.Broadcast(EventEffects, data)
}

// Broadcast sends a message to all connected clients without blocking.
// A client whose buffer is full misses the message.
func (s *Stream) Broadcast(event, data string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg := models.SSEMessage{Event: event, Data: data}
	sent := 0
	for ch, connID := range s.clients {
		select {
		case ch <- msg:
			sent++
		default:
			s.log.Warn("SSE client buffer full, dropping message", "conn_id", connID, "event", event)
		}
	}
	s.log.Debug("Broadcast", "event", event, "sent", sent, "clients", len(s.clients))
}

// Close disconnects every client. Further clients are refused.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for ch := range s.clients {
		close(ch)
	}
	clear(s.clients)
}

// Encode renders effects as the JSON payload of an effects event
func Encode(effects []game.Effect) (string, error) {
	b, err := json.Marshal(effects)
	if err != nil {
		return "", fmt.Errorf("marshal effects: %w", err)
	}
	return string(b), nil
}

// WriteMessage writes msg in the text/event-stream wire format
func WriteMessage(w io.Writer, msg models.SSEMessage) error {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(msg.Event)
	b.WriteString("\n")
	for _, line := range strings.Split(msg.Data, "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
