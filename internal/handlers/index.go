// Package handlers serves the explorer game over HTTP.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/render"
	"github.com/aaronzipp/explorers-mission/internal/session"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	Sessions     *store.SessionStore
	Templates    *template.Template
	Content      *models.Content
	Clock        clockwork.Clock
	Observer     session.Observer
	PublicURL    string
	SecureCookie bool
	Logger       *slog.Logger
}

// pageData is passed to index.html
type pageData struct {
	HuntScene     template.HTML
	AnswerButtons template.HTML
	Friends       template.HTML
	FoodTray      template.HTML
	Width         float64
	Height        float64
}

// HandleIndex creates or resumes the caller's session and serves the game page
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := ctx.getSession(r); err != nil {
		id := ctx.createSession()
		setSessionCookie(w, id, ctx.SecureCookie)
		ctx.Logger.Info("Created session", "session_id", id)
	}

	data := pageData{
		HuntScene:     render.HuntScene(ctx.Content),
		AnswerButtons: render.AnswerButtons(),
		Friends:       render.Friends(ctx.Content),
		FoodTray:      render.FoodTray(ctx.Content),
		Width:         ctx.Content.GameArea.W,
		Height:        ctx.Content.GameArea.H,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ctx.Templates.ExecuteTemplate(w, "index.html", data); err != nil {
		ctx.Logger.Error("Failed to render index", "error", err)
	}
}
