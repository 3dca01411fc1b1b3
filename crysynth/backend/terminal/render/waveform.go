package render

import (
	"math"

	"github.com/valerio/go-crysynth/crysynth/debug"
)

// PeakRows maps a peak in [-1, 1] onto the rows of a cell column of the
// given height, row 0 at the top. The returned range is inclusive.
func PeakRows(p debug.Peak, height int) (top, bottom int) {
	if height <= 0 {
		return 0, -1
	}
	top = amplitudeRow(p.Max, height)
	bottom = amplitudeRow(p.Min, height)
	return top, bottom
}

func amplitudeRow(v float64, height int) int {
	v = math.Max(-1, math.Min(1, v))
	row := int(math.Round((1 - v) / 2 * float64(height-1)))
	return row
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-3]) + "..."
}
