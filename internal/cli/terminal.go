package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	speechColor = color.New(color.FgYellow)
	bannerColor = color.New(color.FgHiMagenta, color.Bold)
	goodColor   = color.New(color.FgGreen)
	badColor    = color.New(color.FgRed)
	hintColor   = color.New(color.Faint)
)

// terminal prints effects as lines of text
type terminal struct {
	mu      sync.Mutex
	out     io.Writer
	content *models.Content
}

func newTerminal(out io.Writer, c *models.Content) *terminal {
	return &terminal{out: out, content: c}
}

// Publish implements session.Sink
func (t *terminal) Publish(effects []game.Effect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range effects {
		if line := t.describe(e); line != "" {
			fmt.Fprintln(t.out, line)
		}
	}
}

// Println writes a line that is not an effect
func (t *terminal) Println(a ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, a...)
}

func (t *terminal) describe(e game.Effect) string {
	switch e.Op {
	case game.OpText:
		return promptColor.Sprint(e.Text)
	case game.OpSpeech:
		if e.Speaker == "" || e.Speaker == game.SpeakerPlayer {
			return speechColor.Sprint(e.Text)
		}
		return speechColor.Sprintf("💬 %s", e.Text)
	case game.OpTransition:
		return bannerColor.Sprintf("\n=== %s ===\n", e.Text)
	case game.OpDisplay:
		return fmt.Sprintf("[%s]", e.Alt)
	case game.OpReload:
		return bannerColor.Sprint("\n--- starting over ---\n")
	case game.OpAddClass:
		switch {
		case e.Class == game.ClassWrong:
			return badColor.Sprint("✗ Not quite, try again.")
		case strings.HasPrefix(e.Class, "fly-to-"):
			return goodColor.Sprint("✓ Correct!")
		case e.Class == game.ClassUsed:
			return goodColor.Sprintf("✓ %s given.", strings.TrimPrefix(e.Target, "food-"))
		}
	case game.OpShow:
		return t.hintFor(e.Target)
	case game.OpHide:
		if _, ok := t.content.HuntItem(e.Target); ok {
			return goodColor.Sprintf("✓ %s goes into the backpack.", game.FriendlyName(e.Target))
		}
	}
	return ""
}

func (t *terminal) hintFor(target string) string {
	switch target {
	case game.ElemPhase1:
		ids := make([]string, len(t.content.HuntItems))
		for i, it := range t.content.HuntItems {
			ids[i] = it.ID
		}
		return hintColor.Sprintf("Objects: %s  (click <object>)", strings.Join(ids, ", "))
	case game.ElemAnswerButtons:
		return hintColor.Sprint("(answer mine | his | hers | theirs)")
	case game.ElemYoursButtons, game.ElemOfferButtons:
		return hintColor.Sprint("(yes | no)")
	case game.ElemFoodTray:
		names := make([]string, len(t.content.NPCs))
		for i, n := range t.content.NPCs {
			names[i] = n.ID
		}
		return hintColor.Sprintf("Foods: %s  (food <name>, then give <%s> twice)",
			strings.Join(t.content.Foods, ", "), strings.Join(names, "|"))
	case game.ElemEndControls:
		return hintColor.Sprint("(restart | quit)")
	}
	return ""
}
