package game

import (
	"fmt"
	"time"

	"memory-ledger-go/internal/scheduler"

	"go.uber.org/zap"
)

// Phase is the state of the match controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOneOpen
	PhaseLocked
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseOneOpen:
		return "ONE_OPEN"
	case PhaseLocked:
		return "LOCKED"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome describes what a click did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeOpened
	OutcomeMatched
	OutcomeMismatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeOpened:
		return "opened"
	case OutcomeMatched:
		return "matched"
	case OutcomeMismatched:
		return "mismatched"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Controller coordinates card reveals. At most one unfinished card is open
// outside the hold window that follows a mismatch.
type Controller struct {
	sched      scheduler.Scheduler
	holdPeriod time.Duration
	totalPairs int
	onFinished func()

	openedCard   *Card
	locked       bool
	matchedPairs int
	finished     bool

	hold    scheduler.Handle
	holdGen int
}

func NewController(sched scheduler.Scheduler, holdPeriod time.Duration, totalPairs int, onFinished func()) *Controller {
	return &Controller{
		sched:      sched,
		holdPeriod: holdPeriod,
		totalPairs: totalPairs,
		onFinished: onFinished,
	}
}

func (c *Controller) Phase() Phase {
	switch {
	case c.locked:
		return PhaseLocked
	case c.openedCard != nil:
		return PhaseOneOpen
	default:
		return PhaseIdle
	}
}

func (c *Controller) MatchedPairs() int { return c.matchedPairs }
func (c *Controller) Finished() bool    { return c.finished }

// Click applies a click on card to the state machine.
func (c *Controller) Click(card *Card) Outcome {
	if card == nil || card.IsFinished() || c.locked || card == c.openedCard {
		zap.L().Debug("Click ignored",
			zap.Stringer("phase", c.Phase()),
			zap.Bool("finished_card", card != nil && card.IsFinished()))
		return OutcomeIgnored
	}

	if c.openedCard == nil {
		card.open()
		c.openedCard = card
		return OutcomeOpened
	}

	previous := c.openedCard
	card.open()

	if card.Key() == previous.Key() {
		card.markFinished()
		previous.markFinished()
		c.openedCard = nil
		c.matchedPairs++

		zap.L().Debug("Pair matched",
			zap.String("key", card.Key()),
			zap.Int("matched_pairs", c.matchedPairs),
			zap.Int("total_pairs", c.totalPairs))

		if c.matchedPairs == c.totalPairs {
			c.finish()
		}
		return OutcomeMatched
	}

	c.locked = true
	c.holdGen++
	gen := c.holdGen
	c.hold = c.sched.AfterFunc(c.holdPeriod, func() {
		c.release(gen, card, previous)
	})
	return OutcomeMismatched
}

// release ends the hold window. A callback from a cancelled or superseded
// hold is a no-op.
func (c *Controller) release(gen int, card, previous *Card) {
	if gen != c.holdGen || !c.locked {
		zap.L().Debug("Stale mismatch hold ignored", zap.Int("generation", gen))
		return
	}
	card.close()
	previous.close()
	c.openedCard = nil
	c.locked = false
	c.hold = nil
}

func (c *Controller) finish() {
	if c.finished {
		return
	}
	c.finished = true
	if c.onFinished != nil {
		c.onFinished()
	}
}

// Reset cancels any pending hold and returns to IDLE with no matches.
func (c *Controller) Reset() {
	if c.hold != nil {
		c.hold.Stop()
		c.hold = nil
	}
	c.holdGen++
	c.openedCard = nil
	c.locked = false
	c.matchedPairs = 0
	c.finished = false
}
