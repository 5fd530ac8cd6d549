package ui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/stellar"
)

// SortMode orders the population table.
type SortMode int

const (
	SortIndex SortMode = iota
	SortMass
	SortLuminosity
	SortPhase
)

var sortNames = [...]string{"catalog", "mass", "luminosity", "phase"}

func (s SortMode) String() string {
	if int(s) < len(sortNames) {
		return sortNames[s]
	}
	return "unknown"
}

// TableModel lists every star at the current age.
type TableModel struct {
	width    int
	height   int
	sortMode SortMode
	selected int // star index, stable across re-sorts
	order    []int
	snapshot state.Snapshot
}

// NewTableModel creates a new population table.
func NewTableModel() TableModel {
	return TableModel{}
}

// SetSize updates the viewport size.
func (m TableModel) SetSize(width, height int) TableModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m TableModel) UpdateData(snapshot state.Snapshot) TableModel {
	m.snapshot = snapshot
	if m.selected >= len(snapshot.Ticks) {
		m.selected = 0
	}
	m.order = sortOrder(snapshot, m.sortMode)
	return m
}

// CycleSort switches to the next sort mode.
func (m TableModel) CycleSort() TableModel {
	m.sortMode = (m.sortMode + 1) % SortMode(len(sortNames))
	m.order = sortOrder(m.snapshot, m.sortMode)
	return m
}

// SortMode returns the active ordering.
func (m TableModel) SortMode() SortMode { return m.sortMode }

// Selected returns the index of the highlighted star.
func (m TableModel) Selected() int { return m.selected }

// Select highlights star i.
func (m TableModel) Select(i int) TableModel {
	if i >= 0 && i < len(m.snapshot.Ticks) {
		m.selected = i
	}
	return m
}

// MoveCursor moves the highlight delta rows in display order.
func (m TableModel) MoveCursor(delta int) TableModel {
	if len(m.order) == 0 {
		return m
	}
	pos := m.position() + delta
	pos = max(0, min(pos, len(m.order)-1))
	m.selected = m.order[pos]
	return m
}

func (m TableModel) position() int {
	for pos, i := range m.order {
		if i == m.selected {
			return pos
		}
	}
	return 0
}

// sortOrder returns star indices in the requested display order. Ties
// keep catalog order.
func sortOrder(snap state.Snapshot, mode SortMode) []int {
	order := make([]int, len(snap.Ticks))
	for i := range order {
		order[i] = i
	}
	t := snap.Ticks
	var less func(a, b int) bool
	switch mode {
	case SortMass:
		less = func(a, b int) bool { return t[a].Mass > t[b].Mass }
	case SortLuminosity:
		less = func(a, b int) bool { return t[a].Luminosity > t[b].Luminosity }
	case SortPhase:
		less = func(a, b int) bool { return t[a].Phase > t[b].Phase }
	default:
		return order
	}
	sort.SliceStable(order, func(i, j int) bool { return less(order[i], order[j]) })
	return order
}

// View renders the table.
func (m TableModel) View() string {
	var b strings.Builder

	if len(m.snapshot.Ticks) == 0 {
		b.WriteString(labelStyle.Render("  No stars loaded"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("  POPULATION (%d stars, sorted by %s)", len(m.snapshot.Ticks), m.sortMode)))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-12s %7s %7s %-6s %8s %10s %10s %7s %s",
		"NAME", "M0", "Z", "PHASE", "MASS", "L", "R", "TEFF", "CLS")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	rows := max(m.height-4, 1)
	pos := m.position()
	start := 0
	if len(m.order) > rows {
		start = max(0, min(pos-rows/2, len(m.order)-rows))
	}
	end := min(start+rows, len(m.order))

	for _, i := range m.order[start:end] {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if len(m.order) > rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(m.order))))
	}
	return b.String()
}

func (m TableModel) renderRow(i int) string {
	tk := m.snapshot.Ticks[i]
	var spec population.Spec
	if m.snapshot.Population != nil && i < m.snapshot.Population.Len() {
		spec = m.snapshot.Population.Spec(i)
	}

	temp := tk.Temperature()
	class := "-"
	if !tk.Phase.IsRemnant() {
		class = stellar.SpectralClass(temp)
	}

	row := fmt.Sprintf("  %-12s %7.3f %7.4f %-6s %8.3f %10s %10s %7s %s",
		truncate(spec.Name, 12), spec.Mass, spec.Metallicity, tk.Phase.Short(),
		tk.Mass, formatSolar(tk.Luminosity), formatSolar(tk.Radius), formatTemp(temp), class)

	switch {
	case i == m.selected:
		return selectedRowStyle.Render(row)
	case tk.Phase.IsRemnant():
		return remnantStyle.Render(row)
	default:
		return rowStyle.Render(row)
	}
}

// formatSolar renders a positive quantity in solar units, switching to
// exponent notation outside four decades of unity.
func formatSolar(v float64) string {
	if v <= 0 {
		return "0"
	}
	if a := math.Abs(math.Log10(v)); a >= 4 {
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.4g", v)
}

func formatTemp(t float64) string {
	if t <= 0 {
		return "-"
	}
	if t >= 1e6 {
		return fmt.Sprintf("%.1eK", t)
	}
	return fmt.Sprintf("%.0fK", t)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
