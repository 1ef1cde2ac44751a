package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// gaugeSlots is the width of the tilt gauge, odd so level sits in the middle.
const gaugeSlots = 9

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// TiltGauge draws the sensor reading as a bar, e.g. "◀ ───●──── ▶".
func TiltGauge(reading, maxTilt float64) string {
	pos := gaugeSlots / 2
	if maxTilt > 0 {
		ratio := core.ClampF(reading/maxTilt, -1, 1)
		pos += int(math.Round(ratio * float64(gaugeSlots/2)))
	}

	var sb strings.Builder
	sb.WriteString("◀ ")
	for i := range gaugeSlots {
		if i == pos {
			sb.WriteRune('●')
		} else {
			sb.WriteRune('─')
		}
	}
	sb.WriteString(" ▶")
	return sb.String()
}

// statusLine renders the line between the playfield and the help footer.
func statusLine(reading, maxTilt float64, paused bool) string {
	line := statusStyle.Render(fmt.Sprintf("tilt %s %+.2f", TiltGauge(reading, maxTilt), reading))
	if paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}
