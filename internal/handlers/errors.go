package handlers

// User-facing error messages. Internal error details are logged, never returned.
const (
	ErrMsgNoSession          = "Session expired, starting over"
	ErrMsgInvalidRequest     = "Invalid request"
	ErrMsgWrongPhase         = "That does not belong to this part of the game"
	ErrMsgUnknownTarget      = "Unknown item"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgStreamUnsupported  = "Streaming unsupported"
	ErrMsgQRFailed           = "Failed to generate QR code"
)
