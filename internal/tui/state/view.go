package state

import (
	"strings"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/sanitize"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/render"
)

// View renders the dashboard: tab bar, the active tab's form, the result
// viewport, toasts, and the status line. An open modal replaces the body.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(render.TabBar(m.tabs.Active()))
	b.WriteString("\n\n")

	if modal, open := m.modal.Active(); open {
		b.WriteString(render.Modal(modal))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.formView())
	b.WriteString("\n")

	if content, ok := m.results[m.tabs.Active()]; ok && content != "" {
		m.viewport.SetContent(content)
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	} else if sidebar := m.sidebarView(); sidebar != "" {
		b.WriteString(sidebar)
		b.WriteString("\n")
	}

	if toasts := render.Toasts(m.toasts.Active()); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}

	b.WriteString(render.StatusBar(m.health, m.busyView(), m.tooltipView(), m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

// formView renders the active tab's fields with their labels.
func (m *Model) formView() string {
	form := m.activeForm()
	var b strings.Builder
	for _, field := range form.fields {
		b.WriteString(field.name)
		b.WriteString(": ")
		if field.area != nil {
			b.WriteString("\n")
			b.WriteString(field.area.View())
		} else {
			b.WriteString(field.input.View())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sidebarView shows tab context before any result exists: the known
// collections or the popular paths.
func (m *Model) sidebarView() string {
	switch m.tabs.Active() {
	case settings.TabDocuments:
		if len(m.collections) == 0 {
			return ""
		}
		var b strings.Builder
		b.WriteString("Collections:\n")
		for _, collection := range m.collections {
			b.WriteString("  " + sanitize.Line(collection.Name) + "\n")
		}
		return b.String()
	case settings.TabLearningPath:
		if m.popular == nil || len(m.popular.PopularPaths) == 0 {
			return ""
		}
		var b strings.Builder
		b.WriteString("Popular paths:\n")
		for _, path := range m.popular.PopularPaths {
			b.WriteString("  " + sanitize.Line(path.Title) + " (" + sanitize.Line(path.Difficulty) + ")\n")
		}
		return b.String()
	}
	return ""
}

// busyView renders the spinner or progress bar while work is in flight.
func (m *Model) busyView() string {
	if m.operation.Active() {
		if m.operation.Percent() > 0 {
			return m.progressBar.ViewAs(m.operation.Percent()) + " " + m.operation.Label()
		}
		return m.spinner.View() + " " + m.operation.Label()
	}
	if m.loading.Any() {
		return m.spinner.View() + " loading"
	}
	return ""
}

// tooltipView returns the hint for the focused field, if any.
func (m *Model) tooltipView() string {
	if tp, ok := m.tooltips[m.tabs.Active()]; ok {
		if hint, found := tp.Current(); found {
			return hint
		}
	}
	return ""
}
