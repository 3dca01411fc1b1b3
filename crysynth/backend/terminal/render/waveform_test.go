package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-crysynth/crysynth/debug"
)

func TestPeakRows(t *testing.T) {
	tests := []struct {
		name   string
		peak   debug.Peak
		height int
		top    int
		bottom int
	}{
		{"full scale", debug.Peak{Min: -1, Max: 1}, 9, 0, 8},
		{"silence", debug.Peak{}, 9, 4, 4},
		{"positive half", debug.Peak{Min: 0, Max: 0.5}, 9, 2, 4},
		{"clipped", debug.Peak{Min: -3, Max: 3}, 5, 0, 4},
		{"no rows", debug.Peak{Max: 1}, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, bottom := PeakRows(tt.peak, tt.height)
			assert.Equal(t, tt.top, top)
			assert.Equal(t, tt.bottom, bottom)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "he...", Truncate("hello world", 5))
	assert.Equal(t, "he", Truncate("hello", 2))
	assert.Equal(t, "", Truncate("hello", -1))
}
