package handlers

import (
	"net/http"
	"strconv"

	"github.com/aaronzipp/explorers-mission/internal/logger"
	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/store"
)

// act validates req, resolves the session and runs the input against it
func (ctx *Context) act(w http.ResponseWriter, r *http.Request, req any, run func(e *store.Entry) error) {
	e, err := ctx.getSession(r)
	if err != nil {
		respondNoSession(w)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequest, Fields: FormatValidationError(err)})
		return
	}
	if err := run(e); err != nil {
		status, msg := statusFor(err)
		logger.FromContext(r.Context()).Debug("Input rejected", "session_id", e.Controller.ID(), "path", r.URL.Path, "error", err)
		respondError(w, status, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleHuntClick handles a click on a hunt object
func (ctx *Context) HandleHuntClick(w http.ResponseWriter, r *http.Request) {
	req := huntClickRequest{ID: r.FormValue("id")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.ClickItem(req.ID)
	})
}

// HandleQuizAnswer handles the four owner buttons
func (ctx *Context) HandleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	req := answerRequest{Answer: r.FormValue("answer")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.AnswerOwner(models.Owner(req.Answer))
	})
}

// HandleQuizYours handles the yes / no buttons of the quiz
func (ctx *Context) HandleQuizYours(w http.ResponseWriter, r *http.Request) {
	req := choiceRequest{Choice: r.FormValue("choice")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.AnswerYours(req.Choice == "yes")
	})
}

// HandlePicnicRespond answers a food offer
func (ctx *Context) HandlePicnicRespond(w http.ResponseWriter, r *http.Request) {
	req := choiceRequest{Choice: r.FormValue("choice")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.RespondToOffer(req.Choice == "yes")
	})
}

// HandlePicnicFood selects a food from the tray
func (ctx *Context) HandlePicnicFood(w http.ResponseWriter, r *http.Request) {
	req := foodRequest{Food: r.FormValue("food")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.SelectFood(req.Food)
	})
}

// HandlePicnicFriend offers the selected food to a friend
func (ctx *Context) HandlePicnicFriend(w http.ResponseWriter, r *http.Request) {
	req := friendRequest{NPC: r.FormValue("npc")}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		return e.Controller.ClickFriend(req.NPC)
	})
}

// HandleViewport receives the page measurements used to scale the hunt scene
func (ctx *Context) HandleViewport(w http.ResponseWriter, r *http.Request) {
	var req viewportRequest
	var err error
	if req.Width, err = parseFloat(r.FormValue("width")); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if req.Height, err = parseFloat(r.FormValue("height")); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	if req.Wrapper, err = parseFloat(r.FormValue("wrapper")); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}
	ctx.act(w, r, &req, func(e *store.Entry) error {
		e.Controller.SetViewport(req.Wrapper, req.Width, req.Height)
		return nil
	})
}

// parseFloat treats a missing value as zero
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
