package game

import (
	"errors"
	"time"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

var (
	// ErrWrongPhase is returned for input that belongs to a phase that is not active
	ErrWrongPhase = errors.New("input not valid in current phase")

	// ErrUnknownTarget is returned when an input names something the content does not define
	ErrUnknownTarget = errors.New("unknown target")
)

// Snapshot is a read-only view of session progress
type Snapshot struct {
	Phase         models.Phase      `json:"phase"`
	PicnicStep    models.PicnicStep `json:"picnic_step,omitempty"`
	Epoch         int               `json:"epoch"`
	HuntQueue     []string          `json:"hunt_queue"`
	HuntCursor    int               `json:"hunt_cursor"`
	HuntPrompts   int               `json:"hunt_prompts"`
	Animating     string            `json:"animating,omitempty"`
	QuizOrder     []string          `json:"quiz_order"`
	QuizCursor    int               `json:"quiz_cursor"`
	QuizVariant   Variant           `json:"quiz_variant,omitempty"`
	QuizAsked     map[string]int    `json:"quiz_asked"`
	OffersLeft    []string          `json:"offers_left"`
	Offering      string            `json:"offering,omitempty"`
	OfferControls bool              `json:"offer_controls"`
	Accepted      []string          `json:"accepted"`
	Remaining     []string          `json:"remaining"`
	Consumed      []string          `json:"consumed"`
	SelectedFood  string            `json:"selected_food,omitempty"`
	PendingNPC    string            `json:"pending_npc,omitempty"`
	EarliestReply time.Time         `json:"earliest_reply,omitzero"`
	LastReply     string            `json:"last_reply,omitempty"`
	Transitions   int               `json:"pending_transitions"`
}

// Snapshot captures the current progress
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase,
		PicnicStep:    s.picnic.step,
		Epoch:         s.epoch,
		HuntQueue:     append([]string(nil), s.hunt.queue...),
		HuntCursor:    s.hunt.cursor,
		HuntPrompts:   s.hunt.prompts,
		Animating:     s.hunt.animating,
		QuizCursor:    s.quiz.cursor,
		QuizVariant:   s.quiz.variant,
		QuizAsked:     make(map[string]int, len(s.quiz.asked)),
		OffersLeft:    append([]string(nil), s.picnic.offers...),
		Offering:      s.picnic.offering,
		OfferControls: s.picnic.controlsVisible,
		Accepted:      append([]string(nil), s.picnic.accepted...),
		SelectedFood:  s.picnic.selected,
		PendingNPC:    s.picnic.pending,
		EarliestReply: s.picnic.earliest,
		LastReply:     s.picnic.lastReply,
		Transitions:   len(s.transitions),
	}
	for _, rec := range s.quiz.records {
		snap.QuizOrder = append(snap.QuizOrder, rec.Name)
	}
	for name, n := range s.quiz.asked {
		snap.QuizAsked[name] = n
	}
	for _, f := range s.content.Foods {
		if s.picnic.consumed[f] {
			snap.Consumed = append(snap.Consumed, f)
		} else {
			snap.Remaining = append(snap.Remaining, f)
		}
	}
	return snap
}
