package game

import "strings"

// Modal collects the player's name once a game is finished.
type Modal struct {
	view     ModalView
	onSubmit func(name string)

	open bool
	name string
}

func NewModal(view ModalView, onSubmit func(name string)) *Modal {
	return &Modal{view: view, onSubmit: onSubmit}
}

func (m *Modal) IsOpen() bool { return m.open }
func (m *Modal) Name() string { return m.name }

func (m *Modal) Open() {
	m.open = true
	m.name = ""
	m.view.SetSubmitEnabled(false)
	m.view.OpenModal()
}

// SetName records the name input and toggles the submit control.
func (m *Modal) SetName(name string) {
	m.name = name
	m.view.SetSubmitEnabled(m.CanSubmit())
}

// CanSubmit reports whether the trimmed name is non-empty.
func (m *Modal) CanSubmit() bool {
	return strings.TrimSpace(m.name) != ""
}

// Submit hands the trimmed name to the callback and closes the modal. It
// reports false when the modal is closed or the name is empty.
func (m *Modal) Submit() bool {
	if !m.open || !m.CanSubmit() {
		return false
	}
	name := strings.TrimSpace(m.name)
	m.Close()
	m.onSubmit(name)
	return true
}

// Close dismisses the modal without submitting.
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.view.CloseModal()
}
