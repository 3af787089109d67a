package game

import "time"

// Continuation is the step that runs once a transition banner closes
type Continuation int

const (
	ContinueQuiz Continuation = iota + 1
	ContinuePicnic
	ContinueEndControls
)

func (c Continuation) String() string {
	switch c {
	case ContinueQuiz:
		return "quiz"
	case ContinuePicnic:
		return "picnic"
	case ContinueEndControls:
		return "end-controls"
	default:
		return "unknown"
	}
}

// TransitionOptions tunes a banner
type TransitionOptions struct {
	Celebrate bool
	Duration  time.Duration
}

type pendingTransition struct {
	next  Continuation
	shown bool
}

// showTransition opens the banner and arranges for next to run exactly once.
// Without an overlay the continuation still runs after a short fallback delay.
func (s *Session) showTransition(out *Outcome, title string, opts TransitionOptions, next Continuation) {
	s.nextTransition++
	id := s.nextTransition

	if !s.surface.Has(ElemOverlay) {
		s.log.Debug("Transition overlay missing, continuing without banner", "next", next)
		s.transitions[id] = pendingTransition{next: next}
		s.after(out, TransitionFallbackDelay, Event{Kind: EventTransitionDone, Transition: id})
		return
	}

	d := opts.Duration
	if d <= 0 {
		d = TransitionDuration
	}
	s.transitions[id] = pendingTransition{next: next, shown: true}
	out.emit(ShowTransition(title, opts.Celebrate))
	s.after(out, d, Event{Kind: EventTransitionDone, Transition: id})
}

func (s *Session) completeTransition(out *Outcome, id int) {
	p, ok := s.transitions[id]
	if !ok {
		return
	}
	delete(s.transitions, id)

	if p.shown {
		out.emit(Hide(ElemOverlay))
	}
	switch p.next {
	case ContinueQuiz:
		s.startQuiz(out)
	case ContinuePicnic:
		s.startPicnic(out)
	case ContinueEndControls:
		if s.surface.Has(ElemEndControls) {
			out.emit(Show(ElemEndControls))
		}
	}
}
