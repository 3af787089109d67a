package models

// Phase represents the current stage of an explorer session
type Phase string

const (
	PhaseHunt   Phase = "hunt"
	PhaseQuiz   Phase = "quiz"
	PhasePicnic Phase = "picnic"
	PhaseDone   Phase = "done"
)

// PicnicStep distinguishes the two halves of the picnic phase
type PicnicStep string

const (
	PicnicStepNone  PicnicStep = ""
	PicnicStepOffer PicnicStep = "offer" // an NPC offers food to the player
	PicnicStepGive  PicnicStep = "give"  // the player gives food to the NPCs
)
