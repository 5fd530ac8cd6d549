package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/stellar"
)

// Chart bounds. Temperature decreases to the right as on a classical
// Hertzsprung-Russell diagram.
const (
	hrLogTHot  = 4.8
	hrLogTCool = 3.3
	hrLogLMin  = -4.5
	hrLogLMax  = 6.5
	hrAxis     = 6 // width of the luminosity labels
)

const (
	glyphSingle   = '·'
	glyphFew      = '•'
	glyphCrowd    = '●'
	glyphSelected = '◉'
)

// HRModel plots the population on a Hertzsprung-Russell diagram.
type HRModel struct {
	width    int
	height   int
	selected int
	snapshot state.Snapshot
}

// NewHRModel creates a new diagram view.
func NewHRModel() HRModel {
	return HRModel{}
}

// SetSize updates the viewport size.
func (m HRModel) SetSize(width, height int) HRModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m HRModel) UpdateData(snapshot state.Snapshot) HRModel {
	m.snapshot = snapshot
	return m
}

// Select highlights star i.
func (m HRModel) Select(i int) HRModel {
	m.selected = i
	return m
}

// hrCell maps a star onto the chart, reporting false when it falls
// outside the plotted range or has no surface.
func hrCell(tk stellar.Tick, width, height int) (x, y int, ok bool) {
	t := tk.Temperature()
	if t <= 0 || tk.Luminosity <= 0 {
		return 0, 0, false
	}
	logT, logL := math.Log10(t), math.Log10(tk.Luminosity)
	if logT > hrLogTHot || logT < hrLogTCool || logL < hrLogLMin || logL > hrLogLMax {
		return 0, 0, false
	}
	fx := (hrLogTHot - logT) / (hrLogTHot - hrLogTCool)
	fy := (hrLogLMax - logL) / (hrLogLMax - hrLogLMin)
	x = int(math.Round(fx * float64(width-1)))
	y = int(math.Round(fy * float64(height-1)))
	return x, y, true
}

// View renders the diagram.
func (m HRModel) View() string {
	width := max(m.width-hrAxis-4, 20)
	height := max(m.height-4, 8)

	counts := make([][]int, height)
	hottest := make([][]float64, height)
	for y := range counts {
		counts[y] = make([]int, width)
		hottest[y] = make([]float64, width)
	}

	offChart := 0
	selX, selY, selOK := -1, -1, false
	for i, tk := range m.snapshot.Ticks {
		x, y, ok := hrCell(tk, width, height)
		if !ok {
			offChart++
			continue
		}
		counts[y][x]++
		hottest[y][x] = max(hottest[y][x], tk.Temperature())
		if i == m.selected {
			selX, selY, selOK = x, y, true
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("  HR DIAGRAM @ %s", formatClock(m.snapshot.Age))))
	b.WriteString("\n\n")

	for y := 0; y < height; y++ {
		b.WriteString(labelStyle.Render(luminosityLabel(y, height)))
		b.WriteString(labelStyle.Render("│"))
		for x := 0; x < width; x++ {
			n := counts[y][x]
			switch {
			case selOK && x == selX && y == selY:
				b.WriteString(selectedRowStyle.Render(string(glyphSelected)))
			case n == 0:
				b.WriteByte(' ')
			default:
				style := lipgloss.NewStyle().Foreground(starColor(hottest[y][x]))
				b.WriteString(style.Render(string(densityGlyph(n))))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render(strings.Repeat(" ", hrAxis) + "└" + strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(temperatureAxis(width)))
	if offChart > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %d off chart (compact remnants or out of range)", offChart)))
	}
	return b.String()
}

func densityGlyph(n int) rune {
	switch {
	case n >= 5:
		return glyphCrowd
	case n >= 2:
		return glyphFew
	default:
		return glyphSingle
	}
}

// luminosityLabel labels whole decades of luminosity.
func luminosityLabel(y, height int) string {
	logL := hrLogLMax - float64(y)/float64(height-1)*(hrLogLMax-hrLogLMin)
	step := (hrLogLMax - hrLogLMin) / float64(height-1)
	nearest := math.Round(logL)
	if math.Abs(logL-nearest) < step/2 && int(nearest)%2 == 0 {
		return fmt.Sprintf("%*s", hrAxis, fmt.Sprintf("%+.0f ", nearest))
	}
	return strings.Repeat(" ", hrAxis)
}

// temperatureAxis marks a few temperatures along the bottom of the chart.
func temperatureAxis(width int) string {
	line := []rune(strings.Repeat(" ", hrAxis+1+width+8))
	for _, t := range []float64{40000, 20000, 10000, 6000, 3500} {
		fx := (hrLogTHot - math.Log10(t)) / (hrLogTHot - hrLogTCool)
		x := hrAxis + 1 + int(math.Round(fx*float64(width-1)))
		for i, r := range fmt.Sprintf("%.0fK", t) {
			if x+i < len(line) {
				line[x+i] = r
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}
