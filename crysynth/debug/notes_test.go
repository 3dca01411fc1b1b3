package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

const fpc = audio.DefaultFramesPerChunk

func loadTestCry(t *testing.T) *cry.File {
	t.Helper()
	file, err := cry.Load("../cry/testdata/cry00.yaml")
	require.NoError(t, err)
	return file
}

func TestFrequencyToNote(t *testing.T) {
	tests := []struct {
		freq     float64
		expected string
	}{
		{440, "A4"},
		{261.63, "C4"},
		{27.5, "A0"},
		{4186.01, "C8"},
		{66.06, "C2"},
		{10, "--"},
		{25000, "--"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, frequencyToNote(tt.freq), "freq %v", tt.freq)
	}
}

func TestExtractCryData(t *testing.T) {
	file := loadTestCry(t)
	params := audio.Params{Pitch: file.Pitch, Length: file.Length}

	data := ExtractCryData(file.Cry(), params, audio.Config{})

	assert.Equal(t, "cry00", data.Name)
	assert.Equal(t, audio.DefaultSourceRate, data.SourceRate)
	assert.Equal(t, 26*fpc, data.Cutoff)

	t.Run("pulse1", func(t *testing.T) {
		ch := data.Channels[cry.Pulse1]
		assert.Equal(t, cry.Pulse1, ch.Channel)
		assert.Equal(t, 27*fpc, ch.Length)
		require.Len(t, ch.Notes, 3)

		first := ch.Notes[0]
		assert.Equal(t, 1, first.Index)
		assert.Equal(t, 0, first.Start)
		assert.Equal(t, 5*fpc, first.Samples)
		assert.Equal(t, 15, first.Volume)
		assert.Equal(t, 7, first.Fade)
		assert.InDelta(t, 131072.0/1984, first.Frequency, 1e-9)
		assert.Equal(t, "C2", first.Note)

		// 0xF5 plays pattern 01, then rotates once per frame
		assert.Equal(t, audio.Duty25, first.Duty)
		assert.Equal(t, audio.Duty75, ch.Notes[1].Duty)
		assert.Equal(t, audio.Duty75, ch.Notes[2].Duty)

		assert.Equal(t, 5*fpc, ch.Notes[1].Start)
		assert.Equal(t, 18*fpc, ch.Notes[2].Start)
	})

	t.Run("noise", func(t *testing.T) {
		ch := data.Channels[cry.Noise]
		require.Len(t, ch.Notes, 3)

		for _, n := range ch.Notes {
			assert.Equal(t, "Noise", n.Note)
		}

		first := ch.Notes[0]
		assert.Equal(t, 0, first.Index)
		assert.Equal(t, 3*fpc, first.Samples)
		// every note starts before the cutoff so all take the pitch
		assert.Equal(t, 0xBC, first.Control)
		assert.True(t, first.Narrow)
		assert.InDelta(t, audio.NoiseFrequency(0xBC), first.Frequency, 1e-9)
		assert.Equal(t, 0xAC, ch.Notes[1].Control)
		assert.True(t, ch.Notes[1].Narrow)
		assert.InDelta(t, 524288.0/4/(1<<11), first.Frequency, 1e-9)
	})
}

func TestExtractCryData_NoisePastCutoff(t *testing.T) {
	c := &cry.Cry{
		Pulse1: cry.Sequence{cry.NotePlay(1, 15, 0, 1024)},
		Noise: cry.Sequence{
			cry.NotePlay(0, 15, 0, 0x10),
			cry.NotePlay(0, 15, 0, 0x10),
		},
	}

	data := ExtractCryData(c, audio.Params{Pitch: 0x20}, audio.Config{})

	assert.Equal(t, fpc, data.Cutoff)
	notes := data.Channels[cry.Noise].Notes
	require.Len(t, notes, 2)
	assert.Equal(t, 0x30, notes[0].Control)
	assert.Equal(t, 0x10, notes[1].Control)
	assert.Equal(t, "custom", data.Name)
}
