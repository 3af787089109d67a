package game

import (
	"time"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

// Op names a presentation change the adapter must apply
type Op string

const (
	OpText        Op = "text"
	OpSpeech      Op = "speech"
	OpAddClass    Op = "add-class"
	OpRemoveClass Op = "remove-class"
	OpShow        Op = "show"
	OpHide        Op = "hide"
	OpMove        Op = "move"
	OpDisplay     Op = "display"
	OpClear       Op = "clear"
	OpTransition  Op = "transition"
	OpScale       Op = "scale"
	OpReload      Op = "reload"
)

// Effect is one presentation change. Only the fields relevant to Op are set.
type Effect struct {
	Op        Op      `json:"op"`
	Target    string  `json:"target,omitempty"`
	Class     string  `json:"class,omitempty"`
	Text      string  `json:"text,omitempty"`
	Image     string  `json:"image,omitempty"`
	Alt       string  `json:"alt,omitempty"`
	Speaker   string  `json:"speaker,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale,omitempty"`
	Celebrate bool    `json:"celebrate,omitempty"`
}

func Text(target, text string) Effect {
	return Effect{Op: OpText, Target: target, Text: text}
}

// Speech replaces the speech bubble content and orients it towards speaker.
// An empty speaker leaves the bubble unoriented.
func Speech(speaker, text, image, alt string) Effect {
	return Effect{Op: OpSpeech, Target: ElemSpeechText, Speaker: speaker, Text: text, Image: image, Alt: alt}
}

func AddClass(target, class string) Effect {
	return Effect{Op: OpAddClass, Target: target, Class: class}
}

func RemoveClass(target, class string) Effect {
	return Effect{Op: OpRemoveClass, Target: target, Class: class}
}

func Show(target string) Effect { return Effect{Op: OpShow, Target: target} }
func Hide(target string) Effect { return Effect{Op: OpHide, Target: target} }

// Move positions target at (x, y) in unscaled game-area coordinates
func Move(target string, x, y float64) Effect {
	return Effect{Op: OpMove, Target: target, X: x, Y: y}
}

// Display frames an image inside target, replacing whatever was there
func Display(target, image, alt, class string) Effect {
	return Effect{Op: OpDisplay, Target: target, Image: image, Alt: alt, Class: class}
}

func Clear(target string) Effect { return Effect{Op: OpClear, Target: target} }

// ShowTransition opens the transition overlay
func ShowTransition(title string, celebrate bool) Effect {
	return Effect{Op: OpTransition, Target: ElemOverlay, Text: title, Celebrate: celebrate}
}

func ScaleTo(scale float64) Effect { return Effect{Op: OpScale, Target: ElemGameArea, Scale: scale} }

// Reload tells the adapter to discard everything it shows
func Reload() Effect { return Effect{Op: OpReload} }

// EventKind identifies a timer continuation
type EventKind string

const (
	EventClearWrong     EventKind = "clear-wrong"
	EventItemArrived    EventKind = "item-arrived"
	EventItemCollected  EventKind = "item-collected"
	EventTransitionDone EventKind = "transition-done"
	EventNextQuestion   EventKind = "next-question"
	EventNextOffer      EventKind = "next-offer"
	EventRevealOffer    EventKind = "reveal-offer"
	EventEndGame        EventKind = "end-game"
)

// Event is delivered back to Session.Fire when its timer expires
type Event struct {
	Kind       EventKind
	Target     string
	Transition int
	Epoch      int
}

// Timer asks the runtime to fire Event after Delay
type Timer struct {
	Delay time.Duration
	Event Event
}

// MilestoneKind classifies progress notifications
type MilestoneKind string

const (
	MilestoneSessionStarted MilestoneKind = "session-started"
	MilestoneCorrect        MilestoneKind = "correct"
	MilestoneWrong          MilestoneKind = "wrong"
	MilestonePhaseComplete  MilestoneKind = "phase-complete"
	MilestoneOfferAnswered  MilestoneKind = "offer-answered"
	MilestoneExchange       MilestoneKind = "exchange"
)

// Milestone is a progress notification for observers such as metrics
type Milestone struct {
	Kind  MilestoneKind
	Phase models.Phase
	Label string
}

// Outcome is everything a reaction produced
type Outcome struct {
	Effects    []Effect
	Timers     []Timer
	Milestones []Milestone
}

func (o *Outcome) emit(effects ...Effect) {
	o.Effects = append(o.Effects, effects...)
}

func (o *Outcome) note(m Milestone) {
	o.Milestones = append(o.Milestones, m)
}

// Empty reports whether the reaction changed nothing
func (o Outcome) Empty() bool {
	return len(o.Effects) == 0 && len(o.Timers) == 0 && len(o.Milestones) == 0
}
