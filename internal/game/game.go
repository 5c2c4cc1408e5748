package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memory-ledger-go/internal/models"
	"memory-ledger-go/internal/scheduler"
	"memory-ledger-go/internal/store"

	"go.uber.org/zap"
)

var ErrNoSuchCard = errors.New("no such card")

// Options configures a Game.
type Options struct {
	Keys         []string
	Bucket       string
	HoldPeriod   time.Duration
	TickInterval time.Duration
}

// DefaultOptions returns the standard 18-pair board with one second holds
// and ticks.
func DefaultOptions() Options {
	return Options{
		Keys:         models.DefaultCardKeys,
		Bucket:       models.DefaultResultsBucket,
		HoldPeriod:   time.Second,
		TickInterval: time.Second,
	}
}

// Game wires a deck, the match controller, the timer and the finish modal to
// a view and a results store. All methods must be called from the
// scheduler's loop.
type Game struct {
	ctx     context.Context
	sched   scheduler.Scheduler
	view    View
	results store.ResultsStore
	rng     Rand
	opts    Options

	cards      []*Card
	controller *Controller
	timer      *Timer
	modal      *Modal
}

func New(sched scheduler.Scheduler, view View, results store.ResultsStore, rng Rand, opts Options) *Game {
	if opts.Bucket == "" {
		opts.Bucket = models.DefaultResultsBucket
	}
	if opts.HoldPeriod <= 0 {
		opts.HoldPeriod = time.Second
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	g := &Game{
		ctx:     context.Background(),
		sched:   sched,
		view:    view,
		results: results,
		rng:     rng,
		opts:    opts,
	}
	g.timer = NewTimer(sched, view, opts.TickInterval)
	g.modal = NewModal(view, g.saveResult)
	return g
}

func (g *Game) Cards() []*Card          { return g.cards }
func (g *Game) Controller() *Controller { return g.controller }
func (g *Game) Timer() *Timer           { return g.timer }
func (g *Game) Modal() *Modal           { return g.modal }

// Start deals a fresh deck and starts the timer. ctx bounds result writes.
func (g *Game) Start(ctx context.Context) error {
	deck, err := NewDeck(g.opts.Keys, g.rng)
	if err != nil {
		return fmt.Errorf("unable to build deck: %w", err)
	}

	g.ctx = ctx
	g.controller = NewController(g.sched, g.opts.HoldPeriod, len(g.opts.Keys), g.finish)
	g.cards = make([]*Card, len(deck))
	handles := make([]CardHandle, len(deck))
	for i, key := range deck {
		card := &Card{index: i, key: key, view: g.view}
		card.handle = g.view.CreateCard(key, func() { g.controller.Click(card) })
		g.cards[i] = card
		handles[i] = card.handle
	}
	g.view.RenderCardList(handles)
	g.timer.Start()

	zap.L().Info("Game started",
		zap.Int("cards", len(g.cards)),
		zap.Int("pairs", len(g.opts.Keys)))
	return nil
}

// ClickCard dispatches a click on the card at index.
func (g *Game) ClickCard(index int) (Outcome, error) {
	if g.controller == nil || index < 0 || index >= len(g.cards) {
		return OutcomeIgnored, fmt.Errorf("%w: %d", ErrNoSuchCard, index)
	}
	return g.controller.Click(g.cards[index]), nil
}

// Teardown cancels the mismatch hold and the display tick and closes the
// modal without recording a result.
func (g *Game) Teardown() {
	if g.controller != nil {
		g.controller.Reset()
	}
	g.timer.Reset()
	g.modal.Close()
	g.cards = nil
}

// Restart tears the current game down and deals a new one.
func (g *Game) Restart(ctx context.Context) error {
	g.Teardown()
	return g.Start(ctx)
}

func (g *Game) finish() {
	g.timer.Stop()
	zap.L().Info("Game finished",
		zap.Duration("elapsed", g.timer.Elapsed()),
		zap.String("formatted", g.timer.Formatted()))
	g.modal.Open()
}

func (g *Game) saveResult(name string) {
	result := models.Result{
		Name:      name,
		ElapsedMs: g.timer.Elapsed().Milliseconds(),
		CreatedAt: g.sched.Now().UTC(),
	}

	if err := g.results.Add(g.ctx, g.opts.Bucket, result); err != nil {
		zap.L().Warn("Failed to save game result",
			zap.String("bucket", g.opts.Bucket),
			zap.String("name", name),
			zap.Error(err))
		g.view.ShowNotice(fmt.Sprintf("Your result could not be saved: %v", err))
		return
	}

	zap.L().Info("Game result saved",
		zap.String("bucket", g.opts.Bucket),
		zap.String("name", name),
		zap.Int64("elapsed_ms", result.ElapsedMs))
	g.view.ShowNotice(fmt.Sprintf("Saved %s in %s", name, g.timer.Formatted()))
}
