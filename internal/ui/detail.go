package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stellar/internal/population"
	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/stellar"
)

// DetailModel shows everything known about one star.
type DetailModel struct {
	width    int
	height   int
	selected int
	snapshot state.Snapshot
}

// NewDetailModel creates a new star detail view.
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m DetailModel) UpdateData(snapshot state.Snapshot) DetailModel {
	m.snapshot = snapshot
	return m
}

// Select shows star i.
func (m DetailModel) Select(i int) DetailModel {
	m.selected = i
	return m
}

// View renders the detail panel.
func (m DetailModel) View() string {
	pop := m.snapshot.Population
	if pop == nil || m.selected >= pop.Len() || m.selected >= len(m.snapshot.Ticks) {
		return labelStyle.Render("  No star selected")
	}
	spec := pop.Spec(m.selected)
	star := pop.Star(m.selected)
	tk := m.snapshot.Ticks[m.selected]

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %s", spec.Name)))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  M0=%g Msun  Z=%g  %s-mass regime", spec.Mass, spec.Metallicity, star.Regime())))
	b.WriteString("\n\n")

	b.WriteString(m.renderCurrent(tk))
	b.WriteString("\n")
	b.WriteString(m.renderBoundaries(star, tk.Age))
	b.WriteString("\n")
	b.WriteString(m.renderStructure(star))
	return b.String()
}

func (m DetailModel) renderCurrent(tk stellar.Tick) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(" NOW "))
	b.WriteString("\n")

	temp := tk.Temperature()
	swatch := lipgloss.NewStyle().Foreground(starColor(temp)).Render("●●●")
	field(&b, "Age", formatClock(tk.Age))
	field(&b, "Phase", fmt.Sprintf("%s (%s)", tk.Phase, tk.Phase.Short()))
	field(&b, "Mass", fmt.Sprintf("%.4g Msun", tk.Mass))
	field(&b, "Core mass", fmt.Sprintf("%.4g Msun", tk.CoreMass))
	field(&b, "Luminosity", formatSolar(tk.Luminosity)+" Lsun")
	field(&b, "Radius", formatSolar(tk.Radius)+" Rsun")
	if tk.Phase.IsRemnant() {
		field(&b, "Temperature", formatTemp(temp)+" "+swatch)
	} else {
		field(&b, "Temperature", fmt.Sprintf("%s  class %s  %s", formatTemp(temp), stellar.SpectralClass(temp), swatch))
		field(&b, "Abs. bol. mag", fmt.Sprintf("%.2f", stellar.AbsoluteMagnitude(tk.Luminosity)))
	}
	return b.String()
}

func (m DetailModel) renderBoundaries(star *stellar.Star, age float64) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(" LIFECYCLE "))
	b.WriteString("\n")

	bounds := star.Boundaries()
	cores := star.CoreMasses().Values()
	labels := []string{"main sequence end", "giant branch base", "helium ignition",
		"helium burning end", "early AGB end", "terminal"}
	for i, t := range bounds.Ages() {
		marker := "  "
		if age >= t {
			marker = accentStyle.Render("✓ ")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			marker,
			labelStyle.Render(fmt.Sprintf("%-20s", labels[i])),
			valueStyle.Render(fmt.Sprintf("%12s", population.FormatAge(t))),
			labelStyle.Render(fmt.Sprintf("core %.4g Msun", cores[i]))))
	}
	if star.Mass() > star.CriticalMasses().Hook {
		b.WriteString(labelStyle.Render(fmt.Sprintf("    hook from %s", population.FormatAge(bounds.HookAge))))
		b.WriteString("\n")
	}
	field(&b, "Remnant", star.Remnant().String())
	return b.String()
}

func (m DetailModel) renderStructure(star *stellar.Star) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(" ZERO AGE "))
	b.WriteString("\n")

	zams := star.ZAMS()
	x, y := star.Composition()
	field(&b, "Luminosity", formatSolar(zams.Luminosity)+" Lsun")
	field(&b, "Radius", formatSolar(zams.Radius)+" Rsun")
	field(&b, "Composition", fmt.Sprintf("X=%.4f Y=%.4f", x, y))
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}
