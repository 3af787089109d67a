package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/session"
)

const playHelp = `Commands:
  click <object>     pick an object in the hunt
  answer <owner>     mine, his, hers or theirs
  yes | no           answer a question or an offer
  food <name>        choose a food to give
  give <friend>      offer it (repeat to hear the answer)
  status             show progress
  restart            start over
  quit               leave`

// PlayCmd returns the command that plays one session in the terminal
func PlayCmd() *cobra.Command {
	var contentFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the explorer game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContent(contentFile)
			if err != nil {
				return err
			}
			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			return playLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c, clockwork.NewRealClock(), log)
		},
	}
	cmd.Flags().StringVar(&contentFile, "content", "", "YAML content file (defaults to the built-in tables)")
	return cmd
}

// playLoop reads commands until quit or end of input
func playLoop(ctx context.Context, in io.Reader, out io.Writer, c *models.Content, clock clockwork.Clock, log *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	term := newTerminal(out, c)
	// The terminal cannot animate, so hunt items are collected without the move.
	surface := game.MissingElements{game.ElemGameArea: true}
	ctrl := session.New(session.Options{
		ID:      uuid.NewString(),
		Content: c,
		Clock:   clock,
		Surface: surface,
		Sink:    term,
		Logger:  log,
	})
	defer ctrl.Close()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fields := strings.Fields(strings.ToLower(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		var err error
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help", "?":
			term.Println(playHelp)
		case "status":
			term.Println(describeStatus(ctrl.Snapshot()))
		case "restart":
			ctrl.Restart()
		case "click":
			err = ctrl.ClickItem(arg)
		case "answer":
			err = ctrl.AnswerOwner(models.Owner(strings.ToUpper(arg)))
		case "yes", "no":
			err = answerYesNo(ctrl, fields[0] == "yes")
		case "food":
			err = ctrl.SelectFood(arg)
		case "give":
			err = ctrl.ClickFriend(arg)
		default:
			term.Println(badColor.Sprintf("Unknown command %q, type help.", fields[0]))
		}
		if err != nil {
			term.Println(badColor.Sprint(describeError(err)))
		}
	}
	return sc.Err()
}

// answerYesNo routes yes/no to the quiz or the picnic offer, whichever is active
func answerYesNo(ctrl *session.Controller, yes bool) error {
	if ctrl.Snapshot().Phase == models.PhaseQuiz {
		return ctrl.AnswerYours(yes)
	}
	return ctrl.RespondToOffer(yes)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrWrongPhase):
		return "That does not fit right now."
	case errors.Is(err, game.ErrUnknownTarget):
		return "I don't know that one."
	default:
		return err.Error()
	}
}

func describeStatus(s game.Snapshot) string {
	switch s.Phase {
	case models.PhaseHunt:
		return fmt.Sprintf("Hunt: %d of %d found", s.HuntCursor, len(s.HuntQueue))
	case models.PhaseQuiz:
		return fmt.Sprintf("Quiz: %d of %d sorted", s.QuizCursor, len(s.QuizOrder))
	case models.PhasePicnic:
		if s.PicnicStep == models.PicnicStepOffer {
			return fmt.Sprintf("Picnic: %d offers left", len(s.OffersLeft))
		}
		return fmt.Sprintf("Picnic: %d foods left", len(s.Remaining))
	default:
		return "Mission complete!"
	}
}
