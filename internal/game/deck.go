package game

import (
	"errors"
	"fmt"
)

var (
	ErrNoKeys       = errors.New("deck needs at least one key")
	ErrDuplicateKey = errors.New("duplicate deck key")
)

// Rand is the randomness a deck needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewDeck returns every key twice in a uniformly random order.
func NewDeck(keys []string, rng Rand) ([]string, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	seen := make(map[string]struct{}, len(keys))
	deck := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		deck = append(deck, k, k)
	}

	shuffle(deck, rng)
	return deck, nil
}

// shuffle is a Fisher-Yates shuffle: position i is swapped with a uniformly
// chosen position in [0, i].
func shuffle(s []string, rng Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
