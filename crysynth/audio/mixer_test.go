package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

func TestMix(t *testing.T) {
	tests := []struct {
		name     string
		waves    [][]float64
		expected []float64
	}{
		{
			name:     "no waves",
			waves:    nil,
			expected: []float64{},
		},
		{
			name:     "single wave is attenuated",
			waves:    [][]float64{{0.3, -0.6}},
			expected: []float64{0.1, -0.2},
		},
		{
			name:     "shorter waves contribute silence past their end",
			waves:    [][]float64{{0.3, 0.3, 0.3}, {0.3}, {}},
			expected: []float64{0.2, 0.1, 0.1},
		},
		{
			name:     "three full scale waves",
			waves:    [][]float64{{0.9375}, {0.9375}, {0.9375}},
			expected: []float64{0.9375},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mixed := Mix(tt.waves...)
			assert.Len(t, mixed, len(tt.expected))
			assert.InDeltaSlice(t, tt.expected, mixed, 1e-12)
		})
	}
}

func TestChannels_Mix(t *testing.T) {
	ch := &Channels{
		Pulse1: []float64{0.3, 0.3},
		Pulse2: []float64{0.6},
		Noise:  []float64{0.9, 0.9, 0.9},
	}

	assert.InDeltaSlice(t, []float64{0.6, 0.4, 0.3}, ch.Mix(AllChannels), 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.1}, ch.Mix(Enabled{cry.Pulse1: true, cry.Pulse2: true}), 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.3, 0.3}, ch.Mix(Enabled{cry.Noise: true}), 1e-12)
	assert.Empty(t, ch.Mix(Enabled{}))
}
