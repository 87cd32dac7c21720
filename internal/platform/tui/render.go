package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/railgrid/railgrid/internal/core"
	"github.com/railgrid/railgrid/internal/sim"
)

// cellSpan is the square character block one grid cell occupies on screen.
// One character per sector keeps the pointer math exact.
const cellSpan = 3

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// glyphStamp places one rune at a sector position inside a cell block.
type glyphStamp struct {
	dx, dy int
	r      rune
}

// connGlyphs maps each connection kind to its track runes, indexed by
// sector position within the 3x3 block.
var connGlyphs = map[sim.ConnectionKind][]glyphStamp{
	sim.ConnNS: {{1, 0, '│'}, {1, 1, '│'}, {1, 2, '│'}},
	sim.ConnEW: {{0, 1, '─'}, {1, 1, '─'}, {2, 1, '─'}},
	sim.ConnNE: {{1, 0, '│'}, {1, 1, '└'}, {2, 1, '─'}},
	sim.ConnNW: {{1, 0, '│'}, {1, 1, '┘'}, {0, 1, '─'}},
	sim.ConnES: {{2, 1, '─'}, {1, 1, '┌'}, {1, 2, '│'}},
	sim.ConnSW: {{0, 1, '─'}, {1, 1, '┐'}, {1, 2, '│'}},
}

// junctionRunes maps a bitmask of occupied edge directions to the box
// drawing rune joining them. Bits: N=1, E=2, S=4, W=8.
var junctionRunes = map[int]rune{
	1 | 4:         '│',
	2 | 8:         '─',
	1 | 2:         '└',
	1 | 8:         '┘',
	2 | 4:         '┌',
	4 | 8:         '┐',
	1 | 2 | 4:     '├',
	1 | 4 | 8:     '┤',
	2 | 4 | 8:     '┬',
	1 | 2 | 8:     '┴',
	1 | 2 | 4 | 8: '┼',
}

// drawGrid renders every rail cell in view. Inactive connections show in
// gray under the active route so switches stay readable.
func drawGrid(s *core.Screen, g *sim.Grid, viewX, viewZ int) {
	cols := s.Width() / cellSpan
	rows := s.Height() / cellSpan

	for cz := viewZ; cz < viewZ+rows && cz < g.Side; cz++ {
		for cx := viewX; cx < viewX+cols && cx < g.Side; cx++ {
			cell := g.At(sim.C(cx, cz))
			if cell.Kind != sim.KindRail {
				continue
			}
			ox := (cx - viewX) * cellSpan
			oy := (cz - viewZ) * cellSpan
			drawCell(s, cell, ox, oy)
		}
	}
}

// drawCell stamps one cell's connections into its character block.
func drawCell(s *core.Screen, cell *sim.Cell, ox, oy int) {
	kinds := cell.Options.Kinds()

	// Inactive options first, active route on top.
	for _, kind := range kinds {
		if cell.Active.Has(kind) {
			continue
		}
		stampConnection(s, kind, ox, oy, core.ColorGray)
	}
	for _, kind := range kinds {
		if cell.Active.Has(kind) {
			stampConnection(s, kind, ox, oy, core.ColorBrightWhite)
		}
	}

	// Multi-option cells get a junction rune at the center showing every
	// option at once.
	if len(kinds) > 1 {
		mask := 0
		for _, kind := range kinds {
			a, b := kind.Endpoints()
			mask |= 1<<a | 1<<b
		}
		if r, ok := junctionRunes[mask]; ok {
			s.SetColored(ox+1, oy+1, r, core.ColorBrightWhite)
		}
	}
}

func stampConnection(s *core.Screen, kind sim.ConnectionKind, ox, oy int, color core.Color) {
	for _, g := range connGlyphs[kind] {
		s.SetColored(ox+g.dx, oy+g.dy, g.r, color)
	}
}

// trainRunes maps each model to its display rune.
var trainRunes = map[sim.ModelKind]rune{
	sim.ModelEngine:    '█',
	sim.ModelFreight:   '▓',
	sim.ModelPassenger: '▒',
}

// trainColors maps each train state to its display color.
var trainColors = map[sim.TrainState]core.Color{
	sim.TrainDriving:   core.ColorBrightGreen,
	sim.TrainBlocked:   core.ColorBrightRed,
	sim.TrainLoading:   core.ColorBrightYellow,
	sim.TrainUnloading: core.ColorBrightCyan,
	sim.TrainDerailed:  core.ColorRed,
}

// drawTrains renders every visible train over the track layer.
func drawTrains(s *core.Screen, w *sim.World, viewX, viewZ int) {
	for i := range w.Trains {
		t := &w.Trains[i]
		if t.State == sim.TrainDisabled || t.State == sim.TrainHidden {
			continue
		}

		sx := int((t.Pos.X - float64(viewX)) * cellSpan)
		sy := int((t.Pos.Z - float64(viewZ)) * cellSpan)
		if sx < 0 || sy < 0 || sx >= s.Width() || sy >= s.Height() {
			continue
		}

		r, ok := trainRunes[t.Model]
		if !ok {
			r = '█'
		}
		color, ok := trainColors[t.State]
		if !ok {
			color = core.ColorWhite
		}
		s.SetColored(sx, sy, r, color)
	}
}
