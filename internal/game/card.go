package game

import "memory-ledger-go/internal/models"

// Card is one tile on the board. Only the controller changes its state.
type Card struct {
	index  int
	key    string
	state  models.CardState
	handle CardHandle
	view   BoardView
}

func (c *Card) Index() int              { return c.index }
func (c *Card) Key() string             { return c.key }
func (c *Card) State() models.CardState { return c.state }
func (c *Card) IsFinished() bool        { return c.state == models.CardFinished }

func (c *Card) open() {
	c.state = models.CardOpen
	c.view.SetOpened(c.handle, true)
}

func (c *Card) close() {
	if c.state == models.CardFinished {
		return
	}
	c.state = models.CardClosed
	c.view.SetOpened(c.handle, false)
}

func (c *Card) markFinished() {
	c.state = models.CardFinished
	c.view.SetFinished(c.handle, true)
}
