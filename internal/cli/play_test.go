package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/explorers-mission/internal/content"
	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
)

func init() {
	color.NoColor = true
}

func runPlay(t *testing.T, input string) string {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = playLoop(context.Background(), strings.NewReader(input), &out, c, clockwork.NewFakeClock(), log)
	require.NoError(t, err)
	return out.String()
}

func TestPlayShowsFirstPrompt(t *testing.T) {
	out := runPlay(t, "quit\n")
	assert.Contains(t, out, "Let's get ready! Find the...")
	assert.Contains(t, out, "Objects: ")
}

func TestPlayCommands(t *testing.T) {
	out := runPlay(t, "help\nstatus\nclick unicorn\nanswer mine\ndance\n")

	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "Hunt: 0 of 10 found")
	assert.Contains(t, out, "I don't know that one.")
	assert.Contains(t, out, "That does not fit right now.")
	assert.Contains(t, out, `Unknown command "dance"`)
}

func TestPlayCollectsWithoutAnimation(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	first := ""
	for _, it := range c.HuntItems {
		first += "click " + it.ID + "\n"
	}
	out := runPlay(t, first+"status\n")
	assert.Contains(t, out, "Not quite")
	assert.NotContains(t, out, "Hunt: 0 of 10 found")
}

func TestDescribeStatus(t *testing.T) {
	assert.Equal(t, "Quiz: 3 of 10 sorted", describeStatus(game.Snapshot{Phase: models.PhaseQuiz, QuizCursor: 3, QuizOrder: make([]string, 10)}))
	assert.Equal(t, "Picnic: 2 foods left", describeStatus(game.Snapshot{Phase: models.PhasePicnic, PicnicStep: models.PicnicStepGive, Remaining: []string{"a", "b"}}))
	assert.Equal(t, "Mission complete!", describeStatus(game.Snapshot{Phase: models.PhaseDone}))
}
