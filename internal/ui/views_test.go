package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-stellar/internal/state"
	"github.com/litescript/ls-stellar/internal/stellar"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		frac       float64
		width      int
		wantFilled int
	}{
		{"empty", 0.0, 10, 0},
		{"full", 1.0, 10, 10},
		{"half", 0.5, 10, 5},
		{"quarter", 0.25, 8, 2},
		{"over 100%", 1.5, 10, 10},
		{"negative", -0.2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderProgressBar(tt.frac, tt.width)

			if !strings.HasPrefix(bar, "[") || !strings.HasSuffix(bar, "]") {
				t.Errorf("bar should have brackets, got %q", bar)
			}
			if got := strings.Count(bar, "█"); got != tt.wantFilled {
				t.Errorf("filled count = %d, want %d", got, tt.wantFilled)
			}
			if got := strings.Count(bar, "░"); got != tt.width-tt.wantFilled {
				t.Errorf("empty count = %d, want %d", got, tt.width-tt.wantFilled)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"speed unity", formatSpeed(1), "×1"},
		{"speed fast", formatSpeed(64), "×64"},
		{"speed slow", formatSpeed(0.25), "×1/4"},
		{"solar zero", formatSolar(0), "0"},
		{"solar unity", formatSolar(1), "1"},
		{"solar small", formatSolar(1e-10), "1.00e-10"},
		{"solar large", formatSolar(123456), "1.23e+05"},
		{"solar mid", formatSolar(0.6977), "0.6977"},
		{"temp none", formatTemp(0), "-"},
		{"temp sun", formatTemp(5772.4), "5772K"},
		{"truncate short", truncate("sun", 12), "sun"},
		{"truncate long", truncate("alpha-centauri", 8), "alpha-c…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func tableSnapshot() state.Snapshot {
	return state.Snapshot{Ticks: []stellar.Tick{
		{Phase: stellar.MainSequence, Mass: 1, Luminosity: 1, Radius: 1},
		{Phase: stellar.GiantBranch, Mass: 3, Luminosity: 500, Radius: 30},
		{Phase: stellar.CarbonOxygenWhiteDwarf, Mass: 0.6, Luminosity: 0.01, Radius: 0.012},
		{Phase: stellar.MainSequence, Mass: 2, Luminosity: 16, Radius: 1.7},
	}}
}

func TestSortOrder(t *testing.T) {
	snap := tableSnapshot()
	tests := []struct {
		mode SortMode
		want []int
	}{
		{SortIndex, []int{0, 1, 2, 3}},
		{SortMass, []int{1, 3, 0, 2}},
		{SortLuminosity, []int{1, 3, 0, 2}},
		{SortPhase, []int{2, 1, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := sortOrder(snap, tt.mode)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("sortOrder = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestTableModel_SelectionSurvivesSort(t *testing.T) {
	m := NewTableModel().SetSize(100, 20).UpdateData(tableSnapshot())
	m = m.Select(3)
	m = m.CycleSort() // mass
	if m.Selected() != 3 {
		t.Errorf("Selected = %d after sort, want 3", m.Selected())
	}
	m = m.MoveCursor(-1)
	if m.Selected() != 1 {
		t.Errorf("Selected = %d, want the heavier giant above", m.Selected())
	}
	m = m.MoveCursor(10)
	if m.Selected() != 2 {
		t.Errorf("Selected = %d, want the white dwarf at the bottom", m.Selected())
	}
}

func TestTableModel_Empty(t *testing.T) {
	m := NewTableModel().UpdateData(state.Snapshot{}).MoveCursor(1)
	if !strings.Contains(m.View(), "No stars") {
		t.Errorf("View() = %q, want No stars", m.View())
	}
}

func TestTableModel_Scrolls(t *testing.T) {
	snap := state.Snapshot{}
	for i := 0; i < 50; i++ {
		snap.Ticks = append(snap.Ticks, stellar.Tick{Phase: stellar.MainSequence, Mass: 1, Luminosity: 1, Radius: 1})
	}
	m := NewTableModel().SetSize(100, 14).UpdateData(snap).MoveCursor(30)
	view := m.View()
	if !strings.Contains(view, "of 50") {
		t.Errorf("view missing scroll position:\n%s", view)
	}
}

func TestHRCell(t *testing.T) {
	tests := []struct {
		name string
		tick stellar.Tick
		ok   bool
	}{
		{"sun", stellar.Tick{Luminosity: 1, Radius: 1}, true},
		{"giant", stellar.Tick{Luminosity: 1000, Radius: 100}, true},
		{"white dwarf", stellar.Tick{Luminosity: 1e-3, Radius: 0.012}, true},
		{"black hole", stellar.Tick{Luminosity: 1e-10, Radius: 3e-5}, false},
		{"massless", stellar.Tick{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := hrCell(tt.tick, 60, 20)
			if ok != tt.ok {
				t.Fatalf("hrCell ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x < 0 || x >= 60 || y < 0 || y >= 20) {
				t.Errorf("hrCell = (%d, %d), outside the chart", x, y)
			}
		})
	}

	// Brighter stars sit higher, hotter stars further left.
	_, ySun, _ := hrCell(stellar.Tick{Luminosity: 1, Radius: 1}, 60, 20)
	_, yGiant, _ := hrCell(stellar.Tick{Luminosity: 1000, Radius: 100}, 60, 20)
	if yGiant >= ySun {
		t.Errorf("giant row %d not above sun row %d", yGiant, ySun)
	}
	xHot, _, _ := hrCell(stellar.Tick{Luminosity: 1000, Radius: 1}, 60, 20)
	xSun, _, _ := hrCell(stellar.Tick{Luminosity: 1, Radius: 1}, 60, 20)
	if xHot >= xSun {
		t.Errorf("hot star column %d not left of sun column %d", xHot, xSun)
	}
}

func TestHRModel_View(t *testing.T) {
	snap := tableSnapshot()
	snap.Ticks = append(snap.Ticks, stellar.Tick{Phase: stellar.BlackHole, Mass: 8, Luminosity: 1e-10, Radius: 3.4e-5})
	view := NewHRModel().SetSize(100, 30).UpdateData(snap).Select(0).View()

	for _, want := range []string{"HR DIAGRAM", string(glyphSelected), "1 off chart", "10000K"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDensityGlyph(t *testing.T) {
	if densityGlyph(1) != glyphSingle || densityGlyph(3) != glyphFew || densityGlyph(9) != glyphCrowd {
		t.Error("densityGlyph does not grow with the count")
	}
}

func TestStarColor(t *testing.T) {
	if got := starColor(0); got != "244" {
		t.Errorf("starColor(0) = %q, want grey", got)
	}
	hot, cool := string(starColor(30000)), string(starColor(3000))
	if !strings.HasPrefix(hot, "#") || hot == cool {
		t.Errorf("starColor(30000) = %q, starColor(3000) = %q", hot, cool)
	}
}

func TestDetailModel_NoSelection(t *testing.T) {
	if view := NewDetailModel().View(); !strings.Contains(view, "No star selected") {
		t.Errorf("View() = %q", view)
	}
}

func TestFooterBindings(t *testing.T) {
	km := DefaultKeyMap()
	table := footerBindings(km, ViewTable)
	var hasSort bool
	for _, b := range table {
		if b.Help().Desc == "sort" {
			hasSort = true
		}
	}
	if !hasSort {
		t.Error("table footer missing the sort hint")
	}
	for _, b := range footerBindings(km, ViewHR) {
		if b.Help().Desc == "sort" {
			t.Error("HR footer shows the sort hint")
		}
	}
}
