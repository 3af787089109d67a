package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/models"
)

func quizFixture(t *testing.T, seed uint64) *fixture {
	t.Helper()
	f := newFixture(t, seed, nil)
	f.start()
	f.playHunt(t)
	require.Equal(t, models.PhaseQuiz, f.s.Phase())
	return f
}

func TestEveryRecordAskedOnce(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		f := quizFixture(t, seed)
		f.playQuiz(t)

		asked := f.s.Snapshot().QuizAsked
		assert.Len(t, asked, len(f.c.Ownership))
		for _, rec := range f.c.Ownership {
			assert.Equal(t, 1, asked[rec.Name], rec.Name)
		}
	}
}

func TestYoursVariantOnlyForMine(t *testing.T) {
	sawYours := false
	for seed := uint64(0); seed < 20; seed++ {
		f := quizFixture(t, seed)
		for f.s.Phase() == models.PhaseQuiz {
			snap := f.s.Snapshot()
			owner := f.ownerOf(snap.QuizOrder[snap.QuizCursor])
			if snap.QuizVariant == VariantYours {
				sawYours = true
				assert.Equal(t, models.OwnerMine, owner)
				out, err := f.s.AnswerYours(true)
				require.NoError(t, err)
				f.settle(out)
				continue
			}
			assert.Equal(t, VariantWhose, snap.QuizVariant)
			out, err := f.s.AnswerOwner(owner)
			require.NoError(t, err)
			f.settle(out)
		}
	}
	assert.True(t, sawYours)
}

func TestWrongAnswerKeepsCursor(t *testing.T) {
	f := quizFixture(t, 1)
	for f.s.Snapshot().QuizVariant != VariantWhose {
		out, err := f.s.AnswerYours(true)
		require.NoError(t, err)
		f.settle(out)
	}
	snap := f.s.Snapshot()
	owner := f.ownerOf(snap.QuizOrder[snap.QuizCursor])
	wrong := models.OwnerTheirs
	if owner == wrong {
		wrong = models.OwnerHis
	}

	out, err := f.s.AnswerOwner(wrong)
	require.NoError(t, err)

	assert.Equal(t, snap.QuizCursor, f.s.Snapshot().QuizCursor)
	assert.True(t, hasEffect(out, AddClass(AnswerElement(wrong), ClassWrong)))
	require.Len(t, out.Milestones, 1)
	assert.Equal(t, MilestoneWrong, out.Milestones[0].Kind)
}

func TestNoIsAlwaysWrong(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		f := quizFixture(t, seed)
		for f.s.Phase() == models.PhaseQuiz && f.s.Snapshot().QuizVariant != VariantYours {
			snap := f.s.Snapshot()
			out, err := f.s.AnswerOwner(f.ownerOf(snap.QuizOrder[snap.QuizCursor]))
			require.NoError(t, err)
			f.settle(out)
		}
		if f.s.Phase() != models.PhaseQuiz {
			continue
		}
		cursor := f.s.Snapshot().QuizCursor
		out, err := f.s.AnswerYours(false)
		require.NoError(t, err)
		assert.Equal(t, cursor, f.s.Snapshot().QuizCursor)
		assert.True(t, hasEffect(out, AddClass(ElemNoNotMine, ClassWrong)))
		return
	}
	t.Fatal("no seed produced a yes/no question")
}

func TestAnswersIgnoredDuringFlight(t *testing.T) {
	f := quizFixture(t, 2)
	snap := f.s.Snapshot()
	owner := f.ownerOf(snap.QuizOrder[0])

	var out Outcome
	var err error
	if snap.QuizVariant == VariantYours {
		out, err = f.s.AnswerYours(true)
	} else {
		out, err = f.s.AnswerOwner(owner)
	}
	require.NoError(t, err)
	assert.True(t, hasEffect(out, AddClass(ElemQuizItem, FlyClass(owner))))
	require.Len(t, out.Timers, 1)
	assert.Equal(t, FlyDuration, out.Timers[0].Delay)
	assert.Equal(t, 1, f.s.Snapshot().QuizCursor)

	ignored, err := f.s.AnswerOwner(models.OwnerMine)
	require.NoError(t, err)
	assert.True(t, ignored.Empty())
	ignored, err = f.s.AnswerYours(true)
	require.NoError(t, err)
	assert.True(t, ignored.Empty())
	assert.Equal(t, 1, f.s.Snapshot().QuizCursor)
}

func TestQuizAnswerValidation(t *testing.T) {
	f := quizFixture(t, 3)
	_, err := f.s.AnswerOwner("OURS")
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestQuizCompletionOpensPicnicTransition(t *testing.T) {
	f := quizFixture(t, 4)
	var all Outcome
	for f.s.Phase() == models.PhaseQuiz {
		snap := f.s.Snapshot()
		var out Outcome
		var err error
		if snap.QuizVariant == VariantYours {
			out, err = f.s.AnswerYours(true)
		} else {
			out, err = f.s.AnswerOwner(f.ownerOf(snap.QuizOrder[snap.QuizCursor]))
		}
		require.NoError(t, err)
		out = f.settle(out)
		all.Effects = append(all.Effects, out.Effects...)
	}

	assert.True(t, hasEffect(all, Text(ElemQuestion, TextQuizComplete)))
	assert.True(t, hasEffect(all, ShowTransition(TitleToPicnic, true)))
	assert.True(t, hasEffect(all, Show(ElemPhase3)))
}
