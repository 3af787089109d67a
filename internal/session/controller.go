// Package session runs a game.Session against real time: it serializes
// input and timer callbacks, keeps the replayable view and publishes effects.
package session

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/aaronzipp/explorers-mission/internal/game"
	"github.com/aaronzipp/explorers-mission/internal/models"
	"github.com/aaronzipp/explorers-mission/internal/render"
)

// Sink receives every effect batch in order
type Sink interface {
	Publish(effects []game.Effect)
}

// Observer receives progress milestones
type Observer interface {
	Observe(m game.Milestone)
}

// Options configures a Controller
type Options struct {
	ID       string
	Content  *models.Content
	Clock    clockwork.Clock
	Rand     *rand.Rand
	Surface  game.Surface
	Sink     Sink
	Observer Observer
	Logger   *slog.Logger
}

// Controller owns one running session
type Controller struct {
	mu      sync.Mutex
	id      string
	game    *game.Session
	view    *render.View
	clock   clockwork.Clock
	sink    Sink
	obs     Observer
	log     *slog.Logger
	created time.Time
	closed  bool
}

// New builds a controller and starts its session
func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	log := opts.Logger.With("session_id", opts.ID)
	c := &Controller{
		id:      opts.ID,
		view:    render.NewView(),
		clock:   opts.Clock,
		sink:    opts.Sink,
		obs:     opts.Observer,
		log:     log,
		created: opts.Clock.Now(),
	}
	c.game = game.New(game.Options{
		Content:  opts.Content,
		Clock:    opts.Clock,
		Rand:     opts.Rand,
		Surface:  opts.Surface,
		Viewport: game.NewLayout(opts.Content),
		Logger:   log,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(c.game.Start())
	log.Info("Session started")
	return c
}

// ID returns the session id
func (c *Controller) ID() string { return c.id }

// Created returns when the session was created
func (c *Controller) Created() time.Time { return c.created }

func (c *Controller) input(react func(g *game.Session) (game.Outcome, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, err := react(c.game)
	if err != nil {
		c.log.Debug("Input rejected", "phase", c.game.Phase(), "error", err)
		return err
	}
	c.apply(out)
	return nil
}

func (c *Controller) ClickItem(id string) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.ClickItem(id) })
}

func (c *Controller) AnswerOwner(o models.Owner) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.AnswerOwner(o) })
}

func (c *Controller) AnswerYours(yes bool) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.AnswerYours(yes) })
}

func (c *Controller) RespondToOffer(yes bool) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.RespondToOffer(yes) })
}

func (c *Controller) SelectFood(food string) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.SelectFood(food) })
}

func (c *Controller) ClickFriend(npc string) error {
	return c.input(func(g *game.Session) (game.Outcome, error) { return g.ClickFriend(npc) })
}

// SetViewport rescales the hunt scene from client measurements
func (c *Controller) SetViewport(wrapperWidth, width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(c.game.Rescale(wrapperWidth, width, height))
}

// Restart discards all progress and starts a fresh session
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(c.game.Restart())
}

// Snapshot returns the current progress
func (c *Controller) Snapshot() game.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Snapshot()
}

// Replay returns the effects that rebuild the current screen
func (c *Controller) Replay() []game.Effect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.Replay()
}

// Attach runs register and captures the replay atomically with respect to
// published batches, so a subscriber registered in register sees every batch
// after the replay and none before it.
func (c *Controller) Attach(register func()) []game.Effect {
	c.mu.Lock()
	defer c.mu.Unlock()
	register()
	return c.view.Replay()
}

// Close stops the controller from reacting to pending timers
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// apply must be called with mu held
func (c *Controller) apply(out game.Outcome) {
	c.view.Apply(out.Effects)
	if c.sink != nil {
		c.sink.Publish(out.Effects)
	}
	if c.obs != nil {
		for _, m := range out.Milestones {
			c.obs.Observe(m)
		}
	}
	for _, t := range out.Timers {
		ev := t.Event
		c.clock.AfterFunc(t.Delay, func() { c.fire(ev) })
	}
}

func (c *Controller) fire(ev game.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.apply(c.game.Fire(ev))
}
