package audio

import "github.com/valerio/go-crysynth/crysynth/cry"

// Pulse and noise output clocks in Hz.
const (
	pulseFrequencyClock = 131072.0
	noiseFrequencyClock = 524288.0
)

// PulseFrequency returns the tone frequency in Hz a pulse note plays at.
func PulseFrequency(control, pitch int) float64 {
	reg := (control + pitch) & periodControlMask
	return pulseFrequencyClock / float64(periodBase-reg)
}

// NoiseFrequency returns the LFSR clock frequency in Hz for a noise control
// byte: 524288 / divider / 2^(shift+1), where a divider of 0 counts as 0.5.
func NoiseFrequency(control int) float64 {
	p := decodeNoiseParams(uint8(control & noiseControlMask))
	divider := float64(p.divider)
	if p.divider == 0 {
		divider = 0.5
	}
	return noiseFrequencyClock / divider / float64(uint(1)<<(p.shift+1))
}

// NoiseWidth reports whether a noise control byte selects the 7-bit LFSR.
func NoiseWidth(control int) bool {
	return decodeNoiseParams(uint8(control & noiseControlMask)).narrow
}

// Span is the nominal position of one command in a channel buffer, in
// synthesis samples. Commands other than notes have a zero length.
type Span struct {
	Start  int
	Length int
}

// Spans returns the nominal span of every command of seq.
func Spans(seq cry.Sequence, length, framesPerChunk int) []Span {
	clock := newNoteClock(length, framesPerChunk)
	spans := make([]Span, len(seq))
	pos := 0
	for i, c := range seq {
		spans[i].Start = pos
		if c.IsNote() {
			spans[i].Length = clock.samples(c.Note.Length)
			pos += spans[i].Length
		}
	}
	return spans
}
