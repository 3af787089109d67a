package sse

import "time"

// SSE event type constants
const (
	EventEffects = "effects"
	EventPing    = "ping"
)

const (
	// ClientBufferSize is the buffer size for SSE message channels
	ClientBufferSize = 32

	// PingInterval keeps idle connections alive through proxies
	PingInterval = 25 * time.Second
)
