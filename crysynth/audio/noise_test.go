package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

func TestLFSR_Clock(t *testing.T) {
	l := newLFSR(false)
	assert.Equal(t, uint16(0x7FFF), l.reg)
	assert.False(t, l.high(), "bit 0 set means a low output")

	for i := 0; i < 14; i++ {
		l.clock()
	}
	assert.Equal(t, uint16(0x0001), l.reg)

	l.clock()
	assert.Equal(t, uint16(0x4000), l.reg)
	assert.True(t, l.high())
}

func TestLFSR_NarrowMode(t *testing.T) {
	l := newLFSR(true)
	l.clock()
	// feedback 0 is written to both bit 14 and bit 6
	assert.Equal(t, uint16(0x3FBF), l.reg)
}

func TestLFSR_NarrowPeriod(t *testing.T) {
	l := newLFSR(true)
	for i := 0; i < 16; i++ {
		l.clock()
	}
	start := l.reg & 0x7F
	period := 0
	for {
		l.clock()
		period++
		if l.reg&0x7F == start || period > 1000 {
			break
		}
	}
	assert.Equal(t, 127, period, "7-bit mode repeats every 127 clocks")
}

func TestDecodeNoiseParams(t *testing.T) {
	tests := []struct {
		name     string
		control  uint8
		expected noiseParams
		period   int
	}{
		{"zero", 0x00, noiseParams{shift: 0, divider: 0}, 2},
		{"divider one", 0x01, noiseParams{shift: 0, divider: 1}, 4},
		{"shift and divider", 0x23, noiseParams{shift: 2, divider: 3}, 48},
		{"narrow", 0x3C, noiseParams{shift: 3, divider: 4, narrow: true}, 128},
		{"highest valid shift", 0xD0, noiseParams{shift: 13}, 1 << 14},
		// shifts 14 and 15 are an approximation: they behave like 13
		{"shift 14 approximated", 0xE0, noiseParams{shift: 13}, 1 << 14},
		{"shift 15 approximated", 0xF7, noiseParams{shift: 13, divider: 7}, 14 << 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := decodeNoiseParams(tt.control)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.period, p.clockPeriod())
		})
	}
}

func TestNoise_Empty(t *testing.T) {
	g := NewGenerator(Config{})
	assert.Empty(t, g.Noise(nil, Params{}, 0))
	assert.Empty(t, g.Noise(cry.Sequence{cry.DutySet(1)}, Params{}, 0), "non-note commands produce nothing")
}

func TestNoise_ResetPerNote(t *testing.T) {
	g := NewGenerator(Config{MaxNoteSamples: 50000})

	seq := cry.Sequence{
		cry.NotePlay(1, 12, 0, 0x00),
		cry.NotePlay(0, 6, 0, 0x11),
		cry.NotePlay(2, 9, 0, 0x3C),
	}
	out := g.Noise(seq, Params{}, 0)
	require.Len(t, out, 2*fpc+fpc+50000)

	// the register starts at 0x7FFF, bit 0 set: every note opens low
	assert.Equal(t, 12.0/16, out[0])
	assert.Equal(t, 6.0/16, out[2*fpc])
	assert.Equal(t, 9.0/16, out[3*fpc])
}

func TestNoise_MatchesRegister(t *testing.T) {
	g := NewGenerator(Config{})

	// shift 0, divider 1: the register clocks every 4 samples
	out := g.Noise(cry.Sequence{cry.NotePlay(0, 15, 0, 0x01), cry.DutySet(0)}, Params{}, 0)
	require.Len(t, out, fpc)

	l := newLFSR(false)
	for i := 0; i < 4*40; i++ {
		require.Equal(t, sample(l.high(), 15), out[i], "sample %d", i)
		if (i+1)%4 == 0 {
			l.clock()
		}
	}
}

func TestNoise_PitchCutoff(t *testing.T) {
	g := NewGenerator(Config{})
	seq := cry.Sequence{
		cry.NotePlay(1, 15, 0, 0x10),
		cry.NotePlay(1, 15, 0, 0x10),
		cry.DutySet(0),
	}
	p := Params{Pitch: 0x20}

	plain := g.Noise(seq, Params{}, 0)

	// cutoff after the first note: only the first note is shifted
	cut := g.Noise(seq, p, 2*fpc)
	expectedFirst := g.Noise(cry.Sequence{cry.NotePlay(1, 15, 0, 0x30), cry.DutySet(0)}, Params{}, 0)
	assert.Equal(t, expectedFirst, cut[:2*fpc])
	assert.Equal(t, plain[2*fpc:], cut[2*fpc:])

	// a cutoff at or before the start disables the pitch entirely
	assert.Equal(t, plain, g.Noise(seq, p, 0))
	assert.Equal(t, plain, g.Noise(seq, p, -fpc))
}

func TestNoise_ShiftApproximation(t *testing.T) {
	// known-imprecise region: shifts 14 and 15 are rendered as shift 13
	g := NewGenerator(Config{})
	render := func(control int) []float64 {
		return g.Noise(cry.Sequence{cry.NotePlay(0, 10, 0, control), cry.DutySet(0)}, Params{}, 0)
	}

	assert.Equal(t, render(0xD2), render(0xE2))
	assert.Equal(t, render(0xD2), render(0xF2))
}

func TestNoise_Envelope(t *testing.T) {
	g := NewGenerator(Config{})

	out := g.Noise(cry.Sequence{cry.NotePlay(9, 5, 1, 0x00)}, Params{}, 0)
	require.Len(t, out, 10*fpc)
	for chunk := 0; chunk < 10; chunk++ {
		want := float64(max(5-chunk, 0)) / 16
		assert.InDelta(t, want, abs64(out[chunk*fpc+3]), 1e-12, "volume in frame %d", chunk)
	}
}

func TestNoise_LengthScale(t *testing.T) {
	g := NewGenerator(Config{})
	seq := cry.Sequence{cry.NotePlay(1, 15, 0, 0x20), cry.DutySet(0)}

	assert.Len(t, g.Noise(seq, Params{Length: 0x80}, 0), 3*fpc)
}
