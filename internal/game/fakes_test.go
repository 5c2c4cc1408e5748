package game

import (
	"context"
	"errors"

	"memory-ledger-go/internal/models"
)

type fakeCard struct {
	key      string
	opened   bool
	finished bool
	onClick  func()
}

type fakeView struct {
	cards         []*fakeCard
	rendered      int
	times         []string
	modalOpen     bool
	submitEnabled bool
	notices       []string
}

func (v *fakeView) CreateCard(key string, onClick func()) CardHandle {
	c := &fakeCard{key: key, onClick: onClick}
	v.cards = append(v.cards, c)
	return c
}

func (v *fakeView) SetOpened(h CardHandle, opened bool)     { h.(*fakeCard).opened = opened }
func (v *fakeView) SetFinished(h CardHandle, finished bool) { h.(*fakeCard).finished = finished }
func (v *fakeView) RenderCardList(handles []CardHandle)     { v.rendered = len(handles) }
func (v *fakeView) ShowTime(formatted string)               { v.times = append(v.times, formatted) }
func (v *fakeView) OpenModal()                              { v.modalOpen = true }
func (v *fakeView) CloseModal()                             { v.modalOpen = false }
func (v *fakeView) SetSubmitEnabled(enabled bool)           { v.submitEnabled = enabled }
func (v *fakeView) ShowNotice(message string)               { v.notices = append(v.notices, message) }

func (v *fakeView) lastTime() string {
	if len(v.times) == 0 {
		return ""
	}
	return v.times[len(v.times)-1]
}

type fakeStore struct {
	records map[string][]models.Result
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string][]models.Result)}
}

func (s *fakeStore) Add(_ context.Context, bucket string, result models.Result) error {
	if s.err != nil {
		return s.err
	}
	s.records[bucket] = append(s.records[bucket], result)
	return nil
}

func (s *fakeStore) Close() {}

// identityRand makes NewDeck keep pairs adjacent: [A A B B ...].
type identityRand struct{}

func (identityRand) IntN(n int) int { return n - 1 }

var errDiskFull = errors.New("disk full")
