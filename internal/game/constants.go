package game

import "time"

// Animation and pacing durations
const (
	// MoveDuration is how long a found item takes to glide into the backpack
	MoveDuration = 850 * time.Millisecond

	// FadeDuration is how long the item fades once it reaches the backpack
	FadeDuration = 850 * time.Millisecond

	// WrongFlashDuration is how long the "wrong" indicator stays on a control
	WrongFlashDuration = 400 * time.Millisecond

	// TransitionDuration is the default banner time between phases
	TransitionDuration = 1800 * time.Millisecond

	// EndTransitionDuration is the banner time for the final celebration
	EndTransitionDuration = 2000 * time.Millisecond

	// TransitionFallbackDelay is used when the overlay cannot be shown
	TransitionFallbackDelay = 800 * time.Millisecond

	// FlyDuration is the quiz "fly away" animation time
	FlyDuration = 1 * time.Second

	// PicnicIntroDelay is the pause after "It's picnic time!"
	PicnicIntroDelay = 2 * time.Second

	// OfferRevealDelay gives the player time to read an offer before the buttons appear
	OfferRevealDelay = 900 * time.Millisecond

	// OfferAckDelay is the pause between an answer and the next offer
	OfferAckDelay = 1500 * time.Millisecond

	// ReplyDelay is the minimum dwell before a friend may answer
	ReplyDelay = 900 * time.Millisecond

	// EndGameDelay is the pause between the last exchange and the end screen
	EndGameDelay = 2 * time.Second
)

// Viewport scaling rule
const (
	BaseWidth          = 800.0
	BaseHeight         = 500.0
	HeaderReserve      = 220.0
	MinAvailableHeight = 320.0
	MinScale           = 0.8
)

// Element ids of the presentation surface
const (
	ElemInstruction   = "instruction-text"
	ElemGameArea      = "game-area"
	ElemBackpack      = "backpack-target"
	ElemOverlay       = "transition-overlay"
	ElemPhase1        = "phase-1"
	ElemPhase2        = "phase-2"
	ElemPhase3        = "phase-3"
	ElemQuestion      = "phase-2-question"
	ElemItemDisplay   = "item-display-area"
	ElemQuizItem      = "quiz-item"
	ElemAnswerButtons = "answer-buttons"
	ElemYoursButtons  = "yours-buttons"
	ElemSpeechText    = "speech-text"
	ElemFoodTray      = "food-tray"
	ElemOfferButtons  = "yes-no-buttons"
	ElemEndControls   = "end-controls"
	ElemYesMine       = "btn-yes-mine"
	ElemNoNotMine     = "btn-no-not-mine"
)

// CSS state classes
const (
	ClassSelected  = "selected"
	ClassUsed      = "used"
	ClassMoving    = "moving"
	ClassFadeOut   = "fade-out"
	ClassWrong     = "wrong"
	ClassAwaiting  = "awaiting-response"
	ClassClickable = "clickable"
)

// SpeakerPlayer orients the speech bubble towards the player
const SpeakerPlayer = "player"

// Player-facing text
const (
	TextHuntPrompt      = "Let's get ready! Find the... %s."
	TextHuntComplete    = "Great! Backpack ready!"
	TextQuizWhose       = "Whose is this %s?"
	TextQuizYours       = "Is this %s YOURS?"
	TextQuizComplete    = "Fantastic! Everything is in order!"
	TextPicnicIntro     = "It's picnic time!"
	TextOffer           = "(%s) Would you like some %s?"
	TextOfferAccepted   = "Great!"
	TextOfferDeclined   = "OK!"
	TextGiveIntro       = "Your turn! Offer a snack to your friends!"
	TextGiveQuestion    = "Would you like some %s? (Click %s)"
	TextPickFoodFirst   = "Click on a food first!"
	TextReply           = "(%s) %s"
	TextMissionComplete = "Explorer Mission Complete! Great job!"

	TitleToQuiz          = "Next: Phase 2 - Find the owner of each object"
	TitleToPicnic        = "Next: Phase 3 - Picnic time!"
	TitleMissionComplete = "Mission complete! 🎉"
)
