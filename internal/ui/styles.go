package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stellar/internal/stellar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	remnantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7B2CBF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// starColor returns the display colour of a surface at temperature t.
// Bodies without a surface are drawn grey.
func starColor(t float64) lipgloss.Color {
	if t <= 0 {
		return lipgloss.Color("244")
	}
	r, g, b := stellar.BlackbodyColor(t)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}
