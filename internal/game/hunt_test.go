package game

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/content"
	"github.com/aaronzipp/explorers-mission/internal/models"
)

func TestHuntQueueIsPermutation(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		f := newFixture(t, seed, nil)
		queue := f.s.Snapshot().HuntQueue
		assert.Len(t, queue, 10)
		assert.ElementsMatch(t, huntIDs(f.c), queue)
	}
}

func TestHuntPromptsOncePerItemPlusCompletion(t *testing.T) {
	f := newFixture(t, 11, nil)
	f.start()
	f.playHunt(t)

	snap := f.s.Snapshot()
	assert.Equal(t, len(snap.HuntQueue)+1, snap.HuntPrompts)
	assert.Equal(t, len(snap.HuntQueue), snap.HuntCursor)
}

func TestClickItem(t *testing.T) {
	f := newFixture(t, 2, nil)
	f.start()
	queue := f.s.Snapshot().HuntQueue

	t.Run("wrong item flashes without advancing", func(t *testing.T) {
		out, err := f.s.ClickItem(queue[1])
		require.NoError(t, err)
		assert.Zero(t, f.s.Snapshot().HuntCursor)
		assert.True(t, hasEffect(out, AddClass(queue[1], ClassWrong)))
		require.Len(t, out.Timers, 1)
		assert.Equal(t, WrongFlashDuration, out.Timers[0].Delay)

		cleared := f.s.Fire(out.Timers[0].Event)
		assert.True(t, hasEffect(cleared, RemoveClass(queue[1], ClassWrong)))
	})

	t.Run("correct item animates then advances by one", func(t *testing.T) {
		out, err := f.s.ClickItem(queue[0])
		require.NoError(t, err)
		assert.Equal(t, queue[0], f.s.Snapshot().Animating)
		assert.True(t, hasEffect(out, AddClass(queue[0], ClassMoving)))

		again, err := f.s.ClickItem(queue[0])
		require.NoError(t, err)
		assert.True(t, again.Empty())

		arrived := f.s.Fire(out.Timers[0].Event)
		assert.True(t, hasEffect(arrived, AddClass(queue[0], ClassFadeOut)))
		require.Len(t, arrived.Timers, 1)
		assert.Equal(t, FadeDuration, arrived.Timers[0].Delay)

		done := f.s.Fire(arrived.Timers[0].Event)
		assert.True(t, hasEffect(done, Hide(queue[0])))
		assert.Equal(t, 1, f.s.Snapshot().HuntCursor)
		assert.Empty(t, f.s.Snapshot().Animating)
	})

	t.Run("collected item is ignored", func(t *testing.T) {
		out, err := f.s.ClickItem(queue[0])
		require.NoError(t, err)
		assert.True(t, out.Empty())
		assert.Equal(t, 1, f.s.Snapshot().HuntCursor)
	})

	t.Run("unknown item is rejected", func(t *testing.T) {
		_, err := f.s.ClickItem("Map")
		assert.ErrorIs(t, err, ErrUnknownTarget)
	})
}

func TestClickMapFirstShowsNextPrompt(t *testing.T) {
	var f *fixture
	for seed := uint64(0); seed < 1000; seed++ {
		f = newFixture(t, seed, nil)
		if f.s.Snapshot().HuntQueue[0] == "map" {
			break
		}
	}
	require.Equal(t, "map", f.s.Snapshot().HuntQueue[0])
	f.start()

	out, err := f.s.ClickItem("map")
	require.NoError(t, err)
	out = f.settle(out)

	snap := f.s.Snapshot()
	assert.Equal(t, 1, snap.HuntCursor)
	assert.True(t, hasEffect(out, Hide("map")))
	assert.True(t, hasEffect(out, Text(ElemInstruction, "Let's get ready! Find the... "+FriendlyName(snap.HuntQueue[1])+".")))
}

func TestCollectMoveTargetsBackpackCentre(t *testing.T) {
	f := newFixture(t, 4, nil)
	f.start()
	current := f.s.Snapshot().HuntQueue[0]

	out, err := f.s.ClickItem(current)
	require.NoError(t, err)

	item, _ := f.c.HuntItem(current)
	cx, cy := f.c.Backpack.Center()
	assert.True(t, hasEffect(out, Move(current, cx-item.Rect.W/2, cy-item.Rect.H/2)))
}

func TestCollectWithoutSceneIsInstant(t *testing.T) {
	f := newFixture(t, 4, MissingElements{ElemBackpack: true})
	f.start()
	current := f.s.Snapshot().HuntQueue[0]

	out, err := f.s.ClickItem(current)
	require.NoError(t, err)

	assert.Empty(t, out.Timers)
	assert.True(t, hasEffect(out, Hide(current)))
	assert.Equal(t, 1, f.s.Snapshot().HuntCursor)
}

// brokenViewport has no geometry for any element
type brokenViewport struct{}

func (brokenViewport) Scale() float64 { return 1 }

func (brokenViewport) Rect(string) (models.Rect, error) { return models.Rect{}, ErrNoRect }

func TestCollectWithoutGeometryIsInstant(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	s := New(Options{
		Content:  c,
		Clock:    clockwork.NewFakeClock(),
		Rand:     rand.New(rand.NewPCG(4, 7)),
		Viewport: brokenViewport{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Start()
	current := s.Snapshot().HuntQueue[0]

	out, err := s.ClickItem(current)
	require.NoError(t, err)

	assert.Empty(t, out.Timers)
	assert.False(t, hasEffect(out, AddClass(current, ClassMoving)))
	assert.True(t, hasEffect(out, Hide(current)))
	assert.Equal(t, 1, s.Snapshot().HuntCursor)
	assert.Empty(t, s.Snapshot().Animating)
}

func TestHuntCompletionOpensTransition(t *testing.T) {
	f := newFixture(t, 6, nil)
	f.start()
	queue := f.s.Snapshot().HuntQueue
	for _, id := range queue[:len(queue)-1] {
		out, err := f.s.ClickItem(id)
		require.NoError(t, err)
		f.settle(out)
	}

	out, err := f.s.ClickItem(queue[len(queue)-1])
	require.NoError(t, err)
	arrived := f.s.Fire(out.Timers[0].Event)
	done := f.s.Fire(arrived.Timers[0].Event)

	assert.True(t, hasEffect(done, Text(ElemInstruction, TextHuntComplete)))
	assert.True(t, hasEffect(done, ShowTransition(TitleToQuiz, true)))
	require.Len(t, done.Timers, 1)
	assert.Equal(t, TransitionDuration, done.Timers[0].Delay)
	assert.Equal(t, models.PhaseHunt, f.s.Phase())

	next := f.s.Fire(done.Timers[0].Event)
	assert.Equal(t, models.PhaseQuiz, f.s.Phase())
	assert.True(t, hasEffect(next, Hide(ElemOverlay)))
}
