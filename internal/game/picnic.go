package game

import (
	"fmt"
	"time"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

type picnicState struct {
	step            models.PicnicStep
	offers          []string
	offering        string
	controlsVisible bool
	accepted        []string

	consumed  map[string]bool
	selected  string
	pending   string
	earliest  time.Time
	lastReply string
}

func (s *Session) startPicnic(out *Outcome) {
	s.phase = models.PhasePicnic
	s.picnic.step = models.PicnicStepOffer
	s.picnic.offers = shuffled(s.rng, s.content.Offers)

	out.emit(
		Hide(ElemPhase2),
		Show(ElemPhase3),
		Hide(ElemOfferButtons),
		Speech(s.content.Offerer, TextPicnicIntro, "", ""),
	)
	s.after(out, PicnicIntroDelay, Event{Kind: EventNextOffer})
}

func (s *Session) offerFood(out *Outcome) {
	n := len(s.picnic.offers)
	if n == 0 {
		s.startGive(out)
		return
	}
	food := s.picnic.offers[n-1]
	s.picnic.offers = s.picnic.offers[:n-1]
	s.picnic.offering = food
	s.picnic.controlsVisible = false

	offerer := s.offerer()
	out.emit(
		Hide(ElemOfferButtons),
		Speech(offerer.ID, fmt.Sprintf(TextOffer, offerer.Name, food), ImagePath(food), Capitalize(food)),
	)
	s.after(out, OfferRevealDelay, Event{Kind: EventRevealOffer})
}

func (s *Session) revealOffer(out *Outcome) {
	if s.phase != models.PhasePicnic || s.picnic.step != models.PicnicStepOffer || s.picnic.offering == "" {
		return
	}
	s.picnic.controlsVisible = true
	out.emit(Show(ElemOfferButtons))
}

// RespondToOffer answers the current offer with yes or no
func (s *Session) RespondToOffer(yes bool) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhasePicnic || s.picnic.step != models.PicnicStepOffer {
		return out, ErrWrongPhase
	}
	if !s.picnic.controlsVisible {
		return out, nil
	}

	label, reply := "no", TextOfferDeclined
	if yes {
		label, reply = "yes", TextOfferAccepted
		s.picnic.accepted = append(s.picnic.accepted, s.picnic.offering)
	}
	s.picnic.controlsVisible = false
	s.picnic.offering = ""
	out.note(Milestone{Kind: MilestoneOfferAnswered, Phase: models.PhasePicnic, Label: label})
	out.emit(Hide(ElemOfferButtons), Speech("", reply, "", ""))
	s.after(&out, OfferAckDelay, Event{Kind: EventNextOffer})
	return out, nil
}

func (s *Session) startGive(out *Outcome) {
	s.picnic.step = models.PicnicStepGive
	s.picnic.offering = ""
	out.emit(
		Hide(ElemOfferButtons),
		Speech("", TextGiveIntro, "", ""),
		Show(ElemFoodTray),
	)
	for _, n := range s.content.NPCs {
		out.emit(AddClass(n.Element(), ClassClickable))
	}
}

// SelectFood picks a food from the tray to give away
func (s *Session) SelectFood(food string) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhasePicnic || s.picnic.step != models.PicnicStepGive {
		return out, ErrWrongPhase
	}
	if !s.content.HasFood(food) {
		return out, fmt.Errorf("food %q: %w", food, ErrUnknownTarget)
	}
	if s.picnic.consumed[food] {
		return out, nil
	}

	for _, f := range s.content.Foods {
		out.emit(RemoveClass(FoodElement(f), ClassSelected))
	}
	out.emit(AddClass(FoodElement(food), ClassSelected))
	s.picnic.selected = food
	s.clearPending(&out)
	out.emit(Speech(SpeakerPlayer, fmt.Sprintf(TextGiveQuestion, food, s.friendNames()), ImagePath(food), Capitalize(food)))
	return out, nil
}

// ClickFriend offers the selected food to a friend. The first click asks,
// a second click on the same friend after ReplyDelay gets the answer.
func (s *Session) ClickFriend(npcID string) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhasePicnic || s.picnic.step != models.PicnicStepGive {
		return out, ErrWrongPhase
	}
	npc, ok := s.content.NPC(npcID)
	if !ok {
		return out, fmt.Errorf("npc %q: %w", npcID, ErrUnknownTarget)
	}

	now := s.clock.Now()
	if s.picnic.pending == npc.ID {
		if now.Before(s.picnic.earliest) {
			return out, nil
		}
		s.resolveExchange(&out, npc)
		return out, nil
	}

	if s.picnic.selected == "" {
		out.emit(Speech("", TextPickFoodFirst, "", ""))
		return out, nil
	}

	s.clearPending(&out)
	s.picnic.pending = npc.ID
	s.picnic.earliest = now.Add(ReplyDelay)
	out.emit(AddClass(npc.Element(), ClassAwaiting))
	return out, nil
}

func (s *Session) clearPending(out *Outcome) {
	if s.picnic.pending == "" {
		return
	}
	if n, ok := s.content.NPC(s.picnic.pending); ok {
		out.emit(RemoveClass(n.Element(), ClassAwaiting))
	}
	s.picnic.pending = ""
	s.picnic.earliest = time.Time{}
}

func (s *Session) resolveExchange(out *Outcome, npc models.NPC) {
	food := s.picnic.selected
	reply := npc.Replies[s.rng.IntN(len(npc.Replies))]

	s.picnic.consumed[food] = true
	s.picnic.selected = ""
	s.picnic.lastReply = reply
	s.clearPending(out)

	out.note(Milestone{Kind: MilestoneExchange, Phase: models.PhasePicnic, Label: npc.ID})
	out.emit(
		Speech(npc.ID, fmt.Sprintf(TextReply, npc.Name, reply), "", ""),
		RemoveClass(FoodElement(food), ClassSelected),
		AddClass(FoodElement(food), ClassUsed),
	)

	if s.remaining() == 0 {
		s.after(out, EndGameDelay, Event{Kind: EventEndGame})
	}
}

func (s *Session) remaining() int {
	n := 0
	for _, f := range s.content.Foods {
		if !s.picnic.consumed[f] {
			n++
		}
	}
	return n
}

func (s *Session) endGame(out *Outcome) {
	s.phase = models.PhaseDone
	s.picnic.step = models.PicnicStepNone
	out.emit(Speech("", TextMissionComplete, "", ""), Hide(ElemFoodTray))
	for _, n := range s.content.NPCs {
		out.emit(RemoveClass(n.Element(), ClassClickable))
	}
	out.note(Milestone{Kind: MilestonePhaseComplete, Phase: models.PhasePicnic})
	s.showTransition(out, TitleMissionComplete, TransitionOptions{Celebrate: true, Duration: EndTransitionDuration}, ContinueEndControls)
}
