// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewHR
	ViewDetail
	ViewEvents
	viewCount
)

// Builder turns a catalog into an evaluated population.
type Builder func(ctx context.Context, specs []population.Spec) (*population.Population, error)

// Msg types for Bubble Tea
type (
	// TickMsg advances the clock when playing.
	TickMsg time.Time

	// CatalogMsg carries a catalog change from the file watcher.
	CatalogMsg population.CatalogUpdate

	// ErrorMsg signals a failure to show in the footer.
	ErrorMsg struct {
		Error error
	}

	// reloadedMsg carries a population rebuilt from a changed catalog.
	reloadedMsg struct {
		pop *population.Population
		err error
	}
)

// Option configures a Model.
type Option func(*Model)

// WithCatalogUpdates rebuilds the population with build whenever the
// watcher publishes a new catalog.
func WithCatalogUpdates(updates <-chan population.CatalogUpdate, build Builder) Option {
	return func(m *Model) {
		m.updates = updates
		m.build = build
	}
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	ctx     context.Context
	state   *state.Manager
	keys    KeyMap
	updates <-chan population.CatalogUpdate
	build   Builder

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	lastErr   error

	// Sub-models
	table  TableModel
	hr     HRModel
	detail DetailModel
	events EventsModel

	snapshot state.Snapshot
}

// New creates a new root UI model over a state manager that already
// holds a population.
func New(ctx context.Context, mgr *state.Manager, opts ...Option) Model {
	m := Model{
		ctx:      ctx,
		state:    mgr,
		keys:     DefaultKeyMap(),
		viewMode: ViewTable,
		table:    NewTableModel(),
		hr:       NewHRModel(),
		detail:   NewDetailModel(),
		events:   NewEventsModel(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.state.TickInterval())}
	if m.updates != nil {
		cmds = append(cmds, waitForCatalog(m.updates))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 5 lines, footer 2
		contentHeight := max(msg.Height-7, 4)
		m.table = m.table.SetSize(msg.Width, contentHeight)
		m.hr = m.hr.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd(m.state.TickInterval()))
		if m.state.Playing() {
			m.setError(m.state.Tick(m.ctx))
			m.refresh()
		}

	case CatalogMsg:
		if m.updates != nil {
			cmds = append(cmds, waitForCatalog(m.updates))
		}
		if msg.Err != nil {
			m.setError(fmt.Errorf("catalog: %w", msg.Err))
			break
		}
		if m.build != nil {
			m.statusMsg = fmt.Sprintf("Catalog changed, rebuilding %d stars...", len(msg.Specs))
			cmds = append(cmds, rebuildCmd(m.ctx, m.build, msg.Specs))
		}

	case reloadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			break
		}
		if err := m.state.SetPopulation(m.ctx, msg.pop); err != nil {
			m.setError(err)
			break
		}
		m.lastErr = nil
		m.statusMsg = fmt.Sprintf("Reloaded %d stars", msg.pop.Len())
		m.refresh()

	case ErrorMsg:
		m.setError(msg.Error)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Play):
		m.state.TogglePlay()
	case key.Matches(msg, m.keys.Back):
		m.setError(m.state.Step(m.ctx, -1))
	case key.Matches(msg, m.keys.Forward):
		m.setError(m.state.Step(m.ctx, 1))
	case key.Matches(msg, m.keys.Faster):
		m.state.Faster()
	case key.Matches(msg, m.keys.Slower):
		m.state.Slower()
	case key.Matches(msg, m.keys.Reset):
		m.setError(m.state.SetAge(m.ctx, 0))
	case key.Matches(msg, m.keys.NextTab):
		m.viewMode = (m.viewMode + 1) % viewCount
	case key.Matches(msg, m.keys.Enter):
		if m.viewMode == ViewTable {
			m.viewMode = ViewDetail
		}
	case key.Matches(msg, m.keys.Escape):
		if m.viewMode != ViewTable {
			m.viewMode = ViewTable
		}
	case key.Matches(msg, m.keys.Sort):
		if m.viewMode == ViewTable {
			m.table = m.table.CycleSort()
		}
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	}
	m.refresh()
}

func (m *Model) moveSelection(delta int) {
	if m.viewMode == ViewEvents {
		m.events = m.events.Scroll(delta)
		return
	}
	m.table = m.table.MoveCursor(delta)
}

// refresh pulls a fresh snapshot and pushes it to every view.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.table = m.table.UpdateData(m.snapshot)
	sel := m.table.Selected()
	m.hr = m.hr.UpdateData(m.snapshot).Select(sel)
	m.detail = m.detail.UpdateData(m.snapshot).Select(sel)
	m.events = m.events.UpdateData(m.snapshot)
}

func (m *Model) setError(err error) {
	if err != nil {
		m.lastErr = err
	}
}

// ViewMode returns the active view.
func (m Model) ViewMode() ViewMode { return m.viewMode }

// Selected returns the index of the selected star.
func (m Model) Selected() int { return m.table.Selected() }

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewTable:
		content = m.table.View()
	case ViewHR:
		content = m.hr.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderClock())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTitle() string {
	title := " ✦ LS-STELLAR ✦ "
	runes := []rune(title)

	var b strings.Builder
	b.WriteString(" ")
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(gradientColor(col, len(runes))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("  Analytic stellar evolution · v%s", version.Version)))
	return b.String()
}

// gradientColor returns a colour along a main-sequence gradient, from
// hot blue-white on the left to cool red on the right.
func gradientColor(col, width int) lipgloss.Color {
	t := 30000.0
	if width > 1 {
		t = 30000 - float64(col)/float64(width-1)*(30000-3000)
	}
	return starColor(t)
}

func (m Model) renderClock() string {
	snap := m.snapshot
	mode := "⏸ paused"
	if snap.Playing {
		mode = "▶ playing"
	}

	frac := 0.0
	if snap.MaxAge > 0 {
		frac = snap.Age / snap.MaxAge
	}
	barWidth := max(min(m.width-60, 40), 10)

	return fmt.Sprintf("  %s %s %s  %s  %s",
		valueStyle.Render(formatClock(snap.Age)),
		labelStyle.Render("/ "+formatClock(snap.MaxAge)),
		renderProgressBar(frac, barWidth),
		accentStyle.Render(mode),
		labelStyle.Render(formatSpeed(snap.Speed)))
}

// renderProgressBar draws a bracketed bar filled to fraction frac.
func renderProgressBar(frac float64, width int) string {
	frac = max(0, min(frac, 1))
	filled := int(frac*float64(width) + 0.5)
	return "[" + accentStyle.Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("░", width-filled)) + "]"
}

func formatSpeed(speed float64) string {
	if speed >= 1 {
		return fmt.Sprintf("×%g", speed)
	}
	return fmt.Sprintf("×1/%g", 1/speed)
}

func formatClock(myr float64) string {
	return population.FormatAge(myr)
}

func (m Model) renderTabs() string {
	tabs := []string{"Table", "HR", "Detail", "Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, labelStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.lastErr != nil:
		status = errorStyle.Render("ERROR: " + m.lastErr.Error())
	case m.statusMsg != "":
		status = labelStyle.Render(m.statusMsg)
	default:
		status = labelStyle.Render(fmt.Sprintf("%d stars · eval %s",
			len(m.snapshot.Ticks), m.snapshot.EvalDuration.Round(time.Microsecond)))
	}

	var hints []string
	for _, b := range footerBindings(m.keys, m.viewMode) {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, footerKeyStyle.Render(h.Key)+footerDescStyle.Render(":"+h.Desc))
	}
	return "  " + status + "\n  " + strings.Join(hints, "  ")
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForCatalog blocks on the next watcher update.
func waitForCatalog(updates <-chan population.CatalogUpdate) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return CatalogMsg(u)
	}
}

func rebuildCmd(ctx context.Context, build Builder, specs []population.Spec) tea.Cmd {
	return func() tea.Msg {
		pop, err := build(ctx, specs)
		return reloadedMsg{pop: pop, err: err}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
