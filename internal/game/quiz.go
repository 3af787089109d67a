package game

import (
	"fmt"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

// Variant is the form of the current quiz question
type Variant string

const (
	VariantNone  Variant = ""
	VariantWhose Variant = "whose" // four-way owner buttons
	VariantYours Variant = "yours" // yes / no
)

// ownerNotMine is the answer carried by the "no" button
const ownerNotMine models.Owner = "NOT_MINE"

type quizState struct {
	records []models.OwnershipRecord
	cursor  int
	variant Variant
	flying  bool
	asked   map[string]int
}

func (s *Session) startQuiz(out *Outcome) {
	s.phase = models.PhaseQuiz
	s.quiz.records = shuffled(s.rng, s.content.Ownership)
	s.quiz.cursor = 0
	out.emit(Hide(ElemPhase1), Show(ElemPhase2))
	s.askQuestion(out)
}

func (s *Session) askQuestion(out *Outcome) {
	s.quiz.flying = false
	if s.quiz.cursor >= len(s.quiz.records) {
		s.quiz.variant = VariantNone
		out.emit(
			Text(ElemQuestion, TextQuizComplete),
			Clear(ElemItemDisplay),
			Hide(ElemAnswerButtons),
			Hide(ElemYoursButtons),
		)
		out.note(Milestone{Kind: MilestonePhaseComplete, Phase: models.PhaseQuiz})
		s.showTransition(out, TitleToPicnic, TransitionOptions{Celebrate: true}, ContinuePicnic)
		return
	}

	rec := s.quiz.records[s.quiz.cursor]
	s.quiz.asked[rec.Name]++
	name := FriendlyName(rec.Name)

	if rec.Owner == models.OwnerMine && s.rng.Float64() > 0.5 {
		s.quiz.variant = VariantYours
		out.emit(
			Text(ElemQuestion, fmt.Sprintf(TextQuizYours, name)),
			Hide(ElemAnswerButtons),
			Show(ElemYoursButtons),
		)
	} else {
		s.quiz.variant = VariantWhose
		out.emit(
			Text(ElemQuestion, fmt.Sprintf(TextQuizWhose, name)),
			Show(ElemAnswerButtons),
			Hide(ElemYoursButtons),
		)
	}
	out.emit(Display(ElemItemDisplay, ImagePath(rec.Name), name, rec.Cue))
}

// AnswerOwner handles one of the four owner buttons
func (s *Session) AnswerOwner(o models.Owner) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhaseQuiz {
		return out, ErrWrongPhase
	}
	if _, ok := models.ParseOwner(string(o)); !ok {
		return out, fmt.Errorf("owner %q: %w", o, ErrUnknownTarget)
	}
	if s.quiz.variant != VariantWhose || s.quiz.flying {
		return out, nil
	}
	s.checkAnswer(&out, o, AnswerElement(o))
	return out, nil
}

// AnswerYours handles the yes / no buttons of a "Is this YOURS?" question
func (s *Session) AnswerYours(yes bool) (Outcome, error) {
	var out Outcome
	if s.phase != models.PhaseQuiz {
		return out, ErrWrongPhase
	}
	if s.quiz.variant != VariantYours || s.quiz.flying {
		return out, nil
	}
	if yes {
		s.checkAnswer(&out, models.OwnerMine, ElemYesMine)
	} else {
		s.checkAnswer(&out, ownerNotMine, ElemNoNotMine)
	}
	return out, nil
}

func (s *Session) checkAnswer(out *Outcome, answer models.Owner, button string) {
	rec := s.quiz.records[s.quiz.cursor]
	if answer != rec.Owner {
		out.note(Milestone{Kind: MilestoneWrong, Phase: models.PhaseQuiz, Label: rec.Name})
		out.emit(AddClass(button, ClassWrong))
		s.after(out, WrongFlashDuration, Event{Kind: EventClearWrong, Target: button})
		return
	}

	out.note(Milestone{Kind: MilestoneCorrect, Phase: models.PhaseQuiz, Label: rec.Name})
	out.emit(AddClass(ElemQuizItem, FlyClass(rec.Owner)))
	s.quiz.cursor++
	s.quiz.flying = true
	s.after(out, FlyDuration, Event{Kind: EventNextQuestion})
}
