package affordance

// ModalKind selects the modal's chrome.
type ModalKind int

const (
	ModalInfo ModalKind = iota
	ModalConfirm
	ModalError
)

// Modal is the content shown in the single modal slot.
type Modal struct {
	Kind      ModalKind
	Title     string
	Body      string
	OnConfirm func() // run when a confirm modal is accepted
}

// ModalManager owns the dashboard's single modal slot. Showing a modal
// while one is open replaces it; there is never a stack.
type ModalManager struct {
	current *Modal
}

// NewModalManager creates a manager with no modal open.
func NewModalManager() *ModalManager {
	return &ModalManager{}
}

// Show opens the modal, replacing any open one.
func (m *ModalManager) Show(modal Modal) {
	m.current = &modal
}

// Dismiss closes the open modal. Dismissing a closed slot is a no-op.
func (m *ModalManager) Dismiss() {
	m.current = nil
}

// Confirm runs the open confirm modal's action and closes the slot.
// It reports whether an action ran.
func (m *ModalManager) Confirm() bool {
	if m.current == nil || m.current.Kind != ModalConfirm {
		return false
	}
	action := m.current.OnConfirm
	m.current = nil
	if action != nil {
		action()
	}
	return true
}

// Active returns the open modal, if any.
func (m *ModalManager) Active() (Modal, bool) {
	if m.current == nil {
		return Modal{}, false
	}
	return *m.current, true
}

// IsOpen reports whether a modal is open.
func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}
