package models

import (
	"fmt"
	"time"
)

// CardState is the visible state of a memory card.
type CardState int

const (
	CardClosed CardState = iota
	CardOpen
	CardFinished
)

func (s CardState) String() string {
	switch s {
	case CardClosed:
		return "CLOSED"
	case CardOpen:
		return "OPEN"
	case CardFinished:
		return "FINISHED"
	default:
		return fmt.Sprintf("CardState(%d)", int(s))
	}
}

// DefaultCardKeys are the symbols dealt onto a standard board, two cards each.
var DefaultCardKeys = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I",
	"J", "K", "L", "M", "N", "O", "P", "Q", "R",
}

// DefaultResultsBucket is the logical list finished games are appended to.
const DefaultResultsBucket = "gameResults"

// Result is a completed game as recorded in the results store
type Result struct {
	Id        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required"`
	ElapsedMs int64     `json:"elapsedMs" db:"elapsed_ms" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Elapsed returns the recorded game duration.
func (r Result) Elapsed() time.Duration {
	return time.Duration(r.ElapsedMs) * time.Millisecond
}
