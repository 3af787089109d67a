package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// QRSize is the edge length of the QR image in pixels
const QRSize = 256

// HandleQR serves a QR code of the public URL so tablets can join quickly
func (ctx *Context) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := qrcode.Encode(ctx.PublicURL, qrcode.Medium, QRSize)
	if err != nil {
		ctx.Logger.Error("Failed to encode QR code", "url", ctx.PublicURL, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgQRFailed)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
