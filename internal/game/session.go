// Package game holds the explorer session state machine. It performs no I/O:
// every reaction returns an Outcome listing effects to present, timers to
// schedule and milestones to report.
package game

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

// Options configures a Session. Zero fields get production defaults.
type Options struct {
	Content  *models.Content
	Clock    clockwork.Clock
	Rand     *rand.Rand
	Surface  Surface
	Viewport Viewport
	Logger   *slog.Logger
}

// Session is one player's run through hunt, quiz and picnic.
// It is not safe for concurrent use.
type Session struct {
	content  *models.Content
	clock    clockwork.Clock
	rng      *rand.Rand
	surface  Surface
	viewport Viewport
	log      *slog.Logger

	phase  models.Phase
	epoch  int
	hunt   huntState
	quiz   quizState
	picnic picnicState

	transitions    map[int]pendingTransition
	nextTransition int
}

// New creates a session positioned before the first hunt prompt
func New(opts Options) *Session {
	s := &Session{
		content:  opts.Content,
		clock:    opts.Clock,
		rng:      opts.Rand,
		surface:  opts.Surface,
		viewport: opts.Viewport,
		log:      opts.Logger,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.rng == nil {
		s.rng = NewRand()
	}
	if s.surface == nil {
		s.surface = FullSurface{}
	}
	if s.viewport == nil {
		s.viewport = NewLayout(s.content)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.phase = models.PhaseHunt
	s.transitions = make(map[int]pendingTransition)

	ids := make([]string, len(s.content.HuntItems))
	for i, it := range s.content.HuntItems {
		ids[i] = it.ID
	}
	s.hunt = huntState{queue: shuffled(s.rng, ids), collected: make(map[string]bool)}
	s.quiz = quizState{asked: make(map[string]int)}
	s.picnic = picnicState{consumed: make(map[string]bool)}
}

// Phase returns the active phase
func (s *Session) Phase() models.Phase { return s.phase }

// Start lays out the hunt scene and asks for the first item
func (s *Session) Start() Outcome {
	var out Outcome
	out.note(Milestone{Kind: MilestoneSessionStarted, Phase: models.PhaseHunt})
	out.emit(
		Show(ElemPhase1),
		Hide(ElemPhase2),
		Hide(ElemPhase3),
		Hide(ElemOverlay),
		Hide(ElemAnswerButtons),
		Hide(ElemYoursButtons),
		Hide(ElemFoodTray),
		Hide(ElemOfferButtons),
		Hide(ElemEndControls),
		ScaleTo(s.viewport.Scale()),
	)
	for _, it := range s.content.HuntItems {
		out.emit(Show(it.ID))
	}
	s.askForNextItem(&out)
	return out
}

// Restart discards all progress, reshuffles every queue and starts over.
// Timers scheduled before the restart are ignored when they fire.
func (s *Session) Restart() Outcome {
	s.epoch++
	s.reset()
	s.log.Info("Session restarted", "epoch", s.epoch)
	out := Outcome{Effects: []Effect{Reload()}}
	start := s.Start()
	out.Effects = append(out.Effects, start.Effects...)
	out.Timers = append(out.Timers, start.Timers...)
	out.Milestones = append(out.Milestones, start.Milestones...)
	return out
}

// Rescale recomputes the scene scale from the adapter's measurements
func (s *Session) Rescale(wrapperWidth, viewportWidth, viewportHeight float64) Outcome {
	scale := ComputeScale(wrapperWidth, viewportWidth, viewportHeight)
	if l, ok := s.viewport.(interface{ SetScale(float64) }); ok {
		l.SetScale(scale)
	}
	return Outcome{Effects: []Effect{ScaleTo(scale)}}
}

// Fire delivers an expired timer back to the session
func (s *Session) Fire(ev Event) Outcome {
	var out Outcome
	if ev.Epoch != s.epoch {
		s.log.Debug("Dropping stale timer", "kind", ev.Kind, "epoch", ev.Epoch, "current", s.epoch)
		return out
	}
	switch ev.Kind {
	case EventClearWrong:
		out.emit(RemoveClass(ev.Target, ClassWrong))
	case EventItemArrived:
		s.itemArrived(&out, ev.Target)
	case EventItemCollected:
		s.itemCollected(&out, ev.Target)
	case EventTransitionDone:
		s.completeTransition(&out, ev.Transition)
	case EventNextQuestion:
		if s.phase == models.PhaseQuiz {
			s.askQuestion(&out)
		}
	case EventNextOffer:
		if s.phase == models.PhasePicnic && s.picnic.step == models.PicnicStepOffer {
			s.offerFood(&out)
		}
	case EventRevealOffer:
		s.revealOffer(&out)
	case EventEndGame:
		if s.phase == models.PhasePicnic {
			s.endGame(&out)
		}
	default:
		s.log.Warn("Unknown timer event", "kind", ev.Kind)
	}
	return out
}

// after schedules ev for the current epoch
func (s *Session) after(out *Outcome, d time.Duration, ev Event) {
	ev.Epoch = s.epoch
	out.Timers = append(out.Timers, Timer{Delay: d, Event: ev})
}

func (s *Session) offerer() models.NPC {
	n, _ := s.content.NPC(s.content.Offerer)
	return n
}

// friendNames joins NPC names for the "Click Tom or Sarah" hint
func (s *Session) friendNames() string {
	names := make([]string, len(s.content.NPCs))
	for i, n := range s.content.NPCs {
		names[i] = n.Name
	}
	return strings.Join(names, " or ")
}
