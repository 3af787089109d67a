package store

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/content"
	"github.com/aaronzipp/explorers-mission/internal/session"
	"github.com/aaronzipp/explorers-mission/internal/sse"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newEntry(t *testing.T, id string) *Entry {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	stream := sse.NewStream(quiet)
	ctrl := session.New(session.Options{
		ID:      id,
		Content: c,
		Clock:   clockwork.NewFakeClock(),
		Sink:    stream,
		Logger:  quiet,
	})
	return &Entry{Controller: ctrl, Stream: stream}
}

func TestSetGetDelete(t *testing.T) {
	s := NewSessionStore(4, time.Hour, quiet)
	e := newEntry(t, "a")
	s.Set("a", e)

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Same(t, e, got)
	assert.True(t, s.Exists("a"))
	assert.Equal(t, 1, s.Len())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	_, open := e.Stream.AddClient("late")
	assert.False(t, open)
}

func TestSizeBoundEvictsOldest(t *testing.T) {
	s := NewSessionStore(2, time.Hour, quiet)
	first := newEntry(t, "first")
	s.Set("first", first)
	s.Set("second", newEntry(t, "second"))
	s.Set("third", newEntry(t, "third"))

	assert.False(t, s.Exists("first"))
	assert.Equal(t, 2, s.Len())
	_, open := first.Stream.AddClient("late")
	assert.False(t, open)
}

func TestIdleSessionsExpire(t *testing.T) {
	s := NewSessionStore(4, 50*time.Millisecond, quiet)
	s.Set("a", newEntry(t, "a"))

	assert.Eventually(t, func() bool {
		return !s.Exists("a")
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCloseEvictsAll(t *testing.T) {
	s := NewSessionStore(4, time.Hour, quiet)
	e := newEntry(t, "a")
	ch, ok := e.Stream.AddClient("conn")
	require.True(t, ok)
	s.Set("a", e)

	s.Close()

	assert.Zero(t, s.Len())
	for range ch {
	}
}
