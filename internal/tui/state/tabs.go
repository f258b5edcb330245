package state

import "github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"

// tabPhase is the lifecycle phase of one tab. A tab starts uninitialized,
// moves to initializing exactly once when first activated, and reaches
// initialized when its load completes. A failed load returns the tab to
// uninitialized so the next activation retries.
type tabPhase int

const (
	tabUninitialized tabPhase = iota
	tabInitializing
	tabInitialized
)

// TabManager owns tab navigation and per-tab initialization phases.
type TabManager struct {
	active settings.Tab
	phases map[settings.Tab]tabPhase
}

// NewTabManager creates a manager with every tab uninitialized and the
// given tab active.
func NewTabManager(active settings.Tab) *TabManager {
	return &TabManager{
		active: settings.NormalizeTab(string(active)),
		phases: make(map[settings.Tab]tabPhase),
	}
}

// Active returns the active tab.
func (tm *TabManager) Active() settings.Tab {
	return tm.active
}

// Activate switches to tab and reports whether the caller must run the
// tab's initial load. The phase moves to initializing at that moment,
// so rapid tab switching can never start the load twice.
func (tm *TabManager) Activate(tab settings.Tab) (needsInit bool) {
	tm.active = settings.NormalizeTab(string(tab))
	if tm.phases[tm.active] != tabUninitialized {
		return false
	}
	tm.phases[tm.active] = tabInitializing
	return true
}

// Next cycles to the following tab in display order.
func (tm *TabManager) Next() (settings.Tab, bool) {
	return tm.step(1)
}

// Prev cycles to the preceding tab in display order.
func (tm *TabManager) Prev() (settings.Tab, bool) {
	return tm.step(-1)
}

func (tm *TabManager) step(delta int) (settings.Tab, bool) {
	for i, tab := range settings.Tabs {
		if tab == tm.active {
			next := settings.Tabs[(i+delta+len(settings.Tabs))%len(settings.Tabs)]
			return next, tm.Activate(next)
		}
	}
	return tm.active, false
}

// MarkInitialized records that the tab's initial load completed.
func (tm *TabManager) MarkInitialized(tab settings.Tab) {
	tm.phases[tab] = tabInitialized
}

// MarkFailed returns the tab to uninitialized so the next activation
// retries its load.
func (tm *TabManager) MarkFailed(tab settings.Tab) {
	tm.phases[tab] = tabUninitialized
}

// IsInitialized reports whether the tab finished its initial load.
func (tm *TabManager) IsInitialized(tab settings.Tab) bool {
	return tm.phases[tab] == tabInitialized
}

// IsInitializing reports whether the tab's initial load is in flight.
func (tm *TabManager) IsInitializing(tab settings.Tab) bool {
	return tm.phases[tab] == tabInitializing
}
