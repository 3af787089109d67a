package game

import (
	"fmt"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

type huntState struct {
	queue     []string
	cursor    int
	animating string
	prompts   int
	collected map[string]bool
}

func (h *huntState) current() string {
	if h.cursor >= len(h.queue) {
		return ""
	}
	return h.queue[h.cursor]
}

// ClickItem handles a click on a hidden object in the hunt scene
func (s *Session) ClickItem(id string) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhaseHunt {
		return out, ErrWrongPhase
	}
	if _, ok := s.content.HuntItem(id); !ok {
		return out, fmt.Errorf("hunt item %q: %w", id, ErrUnknownTarget)
	}
	if s.hunt.collected[id] || s.hunt.animating == id || s.hunt.current() == "" {
		return out, nil
	}

	if id != s.hunt.current() {
		out.note(Milestone{Kind: MilestoneWrong, Phase: models.PhaseHunt, Label: id})
		out.emit(AddClass(id, ClassWrong))
		s.after(&out, WrongFlashDuration, Event{Kind: EventClearWrong, Target: id})
		return out, nil
	}

	out.note(Milestone{Kind: MilestoneCorrect, Phase: models.PhaseHunt, Label: id})
	s.collect(&out, id)
	return out, nil
}

func (s *Session) askForNextItem(out *Outcome) {
	s.hunt.prompts++
	next := s.hunt.current()
	if next == "" {
		out.emit(Text(ElemInstruction, TextHuntComplete))
		out.note(Milestone{Kind: MilestonePhaseComplete, Phase: models.PhaseHunt})
		s.showTransition(out, TitleToQuiz, TransitionOptions{Celebrate: true}, ContinueQuiz)
		return
	}
	out.emit(Text(ElemInstruction, fmt.Sprintf(TextHuntPrompt, FriendlyName(next))))
}

// collect sends the item to the backpack, or removes it at once when the
// scene cannot be measured
func (s *Session) collect(out *Outcome, id string) {
	if !s.surface.Has(ElemGameArea) || !s.surface.Has(ElemBackpack) {
		s.log.Debug("Hunt scene incomplete, collecting without animation", "item", id)
		s.finishCollect(out, id)
		return
	}
	x, y, err := s.backpackTarget(id)
	if err != nil {
		s.log.Warn("Collect animation failed, collecting without animation", "item", id, "error", err)
		s.finishCollect(out, id)
		return
	}

	s.hunt.animating = id
	out.emit(AddClass(id, ClassMoving), Move(id, x, y))
	s.after(out, MoveDuration, Event{Kind: EventItemArrived, Target: id})
}

// backpackTarget returns the unscaled top-left that centres the item on the backpack
func (s *Session) backpackTarget(id string) (float64, float64, error) {
	area, err := s.viewport.Rect(ElemGameArea)
	if err != nil {
		return 0, 0, err
	}
	target, err := s.viewport.Rect(ElemBackpack)
	if err != nil {
		return 0, 0, err
	}
	item, err := s.viewport.Rect(id)
	if err != nil {
		return 0, 0, err
	}
	scale := s.viewport.Scale()
	if scale <= 0 {
		scale = 1
	}
	cx, cy := target.Center()
	left := (cx - area.X - item.W/2) / scale
	top := (cy - area.Y - item.H/2) / scale
	return left, top, nil
}

func (s *Session) itemArrived(out *Outcome, id string) {
	if s.hunt.animating != id {
		return
	}
	out.emit(AddClass(id, ClassFadeOut))
	s.after(out, FadeDuration, Event{Kind: EventItemCollected, Target: id})
}

func (s *Session) itemCollected(out *Outcome, id string) {
	if s.hunt.animating != id {
		return
	}
	s.finishCollect(out, id)
}

func (s *Session) finishCollect(out *Outcome, id string) {
	s.hunt.animating = ""
	s.hunt.collected[id] = true
	s.hunt.cursor++
	out.emit(Hide(id), RemoveClass(id, ClassMoving), RemoveClass(id, ClassFadeOut))
	s.askForNextItem(out)
}
