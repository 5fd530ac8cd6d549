package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/litescript/ls-stellar/internal/state"
)

// EventsModel is a scrollable log of phase transitions.
type EventsModel struct {
	viewport viewport.Model
	count    int
	follow   bool
}

// NewEventsModel creates a new event log view.
func NewEventsModel() EventsModel {
	vp := viewport.New(80, 20)
	vp.SetContent("")
	return EventsModel{viewport: vp, follow: true}
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	return m
}

// UpdateData refreshes the log. The view stays pinned to the newest event
// unless the user has scrolled up.
func (m EventsModel) UpdateData(snapshot state.Snapshot) EventsModel {
	m.count = len(snapshot.Events)
	lines := make([]string, 0, len(snapshot.Events))
	for _, e := range snapshot.Events {
		lines = append(lines, formatEvent(e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if m.follow {
		m.viewport.GotoBottom()
	}
	return m
}

// Scroll moves the log by delta lines.
func (m EventsModel) Scroll(delta int) EventsModel {
	if delta < 0 {
		m.viewport.ScrollUp(-delta)
	} else {
		m.viewport.ScrollDown(delta)
	}
	m.follow = m.viewport.AtBottom()
	return m
}

// View renders the log.
func (m EventsModel) View() string {
	title := titleStyle.Render(fmt.Sprintf("  EVENTS (%d)", m.count))
	if m.count == 0 {
		return title + "\n\n" + labelStyle.Render("  No transitions yet")
	}
	return title + "\n\n" + m.viewport.View()
}

func formatEvent(e state.Event) string {
	age := labelStyle.Render(fmt.Sprintf("%12s", formatClock(e.Age)))
	switch e.Type {
	case state.EventReload:
		return fmt.Sprintf("  %s  %s", age, accentStyle.Render("population loaded"))
	case state.EventRemnant:
		return fmt.Sprintf("  %s  %-12s %s → %s", age, e.Star, e.From.Short(), remnantStyle.Render(e.To.String()))
	default:
		return fmt.Sprintf("  %s  %-12s %s → %s", age, e.Star, e.From.Short(), valueStyle.Render(e.To.Short()))
	}
}
