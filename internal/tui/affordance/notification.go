// Package affordance provides the transient UI feedback services the
// dashboard model composes: toast notifications, loading state, the
// modal slot, progress tracking, and input tooltips.
package affordance

import (
	"sync"
	"time"
)

// NotificationLevel classifies a toast for styling.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the display name of the level.
func (l NotificationLevel) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is one toast shown in the notification area.
type Notification struct {
	ID        int
	Text      string
	Level     NotificationLevel
	CreatedAt time.Time
}

// NotificationManager owns the active toasts. Each toast gets a unique
// ID so a scheduled expiry can never dismiss a newer toast that reused
// its slot. Safe for concurrent use.
type NotificationManager struct {
	mu     sync.Mutex
	nextID int
	active []Notification
	now    func() time.Time
}

// NewNotificationManager creates an empty manager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{nextID: 1, now: time.Now}
}

// Add queues a toast and returns it, ID assigned.
func (m *NotificationManager) Add(text string, level NotificationLevel) Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := Notification{
		ID:        m.nextID,
		Text:      text,
		Level:     level,
		CreatedAt: m.now(),
	}
	m.nextID++
	m.active = append(m.active, n)
	return n
}

// Dismiss removes the toast with the given ID. Dismissing an ID that is
// already gone is a no-op, so a timer firing after a manual dismissal
// cannot touch anything else.
func (m *NotificationManager) Dismiss(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, n := range m.active {
		if n.ID == id {
			m.active = append(m.active[:i], m.active[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every active toast.
func (m *NotificationManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = nil
}

// Active returns the toasts in arrival order.
func (m *NotificationManager) Active() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.active))
	copy(out, m.active)
	return out
}

// Len returns the number of active toasts.
func (m *NotificationManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}
