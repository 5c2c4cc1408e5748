package game

// CardHandle is the view's opaque reference to a rendered card.
type CardHandle any

// BoardView renders the cards.
type BoardView interface {
	CreateCard(key string, onClick func()) CardHandle
	SetOpened(h CardHandle, opened bool)
	SetFinished(h CardHandle, finished bool)
	RenderCardList(handles []CardHandle)
}

// TimerView displays the elapsed time.
type TimerView interface {
	ShowTime(formatted string)
}

// ModalView displays the finish dialog.
type ModalView interface {
	OpenModal()
	CloseModal()
	SetSubmitEnabled(enabled bool)
}

// View is everything the game needs from its host document.
type View interface {
	BoardView
	TimerView
	ModalView
	ShowNotice(message string)
}
