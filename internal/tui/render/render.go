// Package render draws the dashboard chrome: tab bar, toasts, modal,
// and the status line. It is deliberately free of model state so every
// function can be exercised with plain values.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/sanitize"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/affordance"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57"))

	inactiveTabStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().Bold(true)

	toastStyles = map[affordance.NotificationLevel]lipgloss.Style{
		affordance.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		affordance.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		affordance.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		affordance.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// ApplyTheme switches the palette between the dark and light variants.
// Unknown names keep the current palette.
func ApplyTheme(theme string) {
	switch theme {
	case settings.ThemeDark:
		activeTabStyle = activeTabStyle.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57"))
		inactiveTabStyle = inactiveTabStyle.Foreground(lipgloss.Color("245"))
		statusStyle = statusStyle.Foreground(lipgloss.Color("245"))
	case settings.ThemeLight:
		activeTabStyle = activeTabStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("153"))
		inactiveTabStyle = inactiveTabStyle.Foreground(lipgloss.Color("240"))
		statusStyle = statusStyle.Foreground(lipgloss.Color("240"))
	}
}

// TabBar renders the tab strip with the active tab highlighted.
func TabBar(active settings.Tab) string {
	parts := make([]string, 0, len(settings.Tabs))
	for _, tab := range settings.Tabs {
		if tab == active {
			parts = append(parts, activeTabStyle.Render(tab.Title()))
			continue
		}
		parts = append(parts, inactiveTabStyle.Render(tab.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Toasts renders the active notifications, one per line, newest last.
func Toasts(toasts []affordance.Notification) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		style := toastStyles[toast.Level]
		lines = append(lines, style.Render(fmt.Sprintf("[%s] %s", toast.Level, sanitize.Line(toast.Text))))
	}
	return strings.Join(lines, "\n")
}

// Modal renders the open modal box with its key hints.
func Modal(modal affordance.Modal) string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(sanitize.Line(modal.Title)))
	b.WriteString("\n\n")
	b.WriteString(sanitize.Text(modal.Body))
	b.WriteString("\n\n")
	if modal.Kind == affordance.ModalConfirm {
		b.WriteString(statusStyle.Render("enter/y confirm · esc/n cancel"))
	} else {
		b.WriteString(statusStyle.Render("esc close"))
	}
	return modalStyle.Render(b.String())
}

// StatusBar renders the bottom line: health, busy indicator, tooltip,
// and key hints.
func StatusBar(health, busy, tooltip, hints string) string {
	segments := []string{"backend: " + sanitize.Line(health)}
	if busy != "" {
		segments = append(segments, busy)
	}
	if tooltip != "" {
		segments = append(segments, sanitize.Line(tooltip))
	}
	if hints != "" {
		segments = append(segments, hints)
	}
	return statusStyle.Render(strings.Join(segments, "  │  "))
}
