package audio

import (
	"github.com/valerio/go-crysynth/crysynth/bit"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

// lfsr is the noise channel's linear feedback shift register.
type lfsr struct {
	reg    uint16
	narrow bool // 7-bit mode
}

func newLFSR(narrow bool) lfsr {
	return lfsr{reg: lfsrInitialValue, narrow: narrow}
}

// high reports the channel output, which is the inverse of bit 0.
func (l *lfsr) high() bool {
	return bit.Value16(0, l.reg) == 0
}

func (l *lfsr) clock() {
	feedback := bit.Value16(0, l.reg) ^ bit.Value16(1, l.reg)
	l.reg = (l.reg >> 1) | (feedback << lfsrFeedbackBit)
	if l.narrow {
		l.reg = bit.Assign16(lfsrNarrowBit, l.reg, feedback)
	}
}

// noiseParams is the decoded noise control byte.
type noiseParams struct {
	shift   uint8
	divider uint8
	narrow  bool
}

func decodeNoiseParams(control uint8) noiseParams {
	shift := bit.ExtractBits(control, 7, 4)
	if shift > maxNoiseShift {
		shift = maxNoiseShift
	}
	return noiseParams{
		shift:   shift,
		divider: bit.ExtractBits(control, 2, 0),
		narrow:  bit.IsSet(noiseWidthBit, control),
	}
}

// clockPeriod returns the number of samples between LFSR clocks:
// 2 * divider * 2^(shift+1), where a divider of 0 counts as one half.
func (p noiseParams) clockPeriod() int {
	if p.divider == 0 {
		return 1 << (p.shift + 1)
	}
	return 2 * int(p.divider) << (p.shift + 1)
}

// Noise renders the noise channel sequence. The pitch offset applies to
// notes that start before cutoff and is dropped from then on. Commands other
// than notes are skipped.
func (g *Generator) Noise(seq cry.Sequence, p Params, cutoff int) []float64 {
	clock := newNoteClock(p.Length, g.cfg.FramesPerChunk)
	out := make([]float64, 0, SequenceLength(seq, p.Length, g.cfg.FramesPerChunk))

	for i, c := range seq {
		if !c.IsNote() {
			continue
		}
		n := c.Note
		last := i == len(seq)-1
		count := clock.samples(n.Length)

		control := n.Control
		if len(out) < cutoff {
			control += p.Pitch
		}
		params := decodeNoiseParams(uint8(control & noiseControlMask))
		period := params.clockPeriod()

		// every note retriggers the channel
		reg := newLFSR(params.narrow)
		env := newEnvelope(n.Volume, n.Fade, g.cfg.FramesPerChunk)

		for index := 0; index < g.cfg.MaxNoteSamples && (index < count || (last && env.audible())); index++ {
			out = append(out, sample(reg.high(), env.volume))
			if len(out)%period == 0 {
				reg.clock()
			}
			env.tick(index)
		}
	}
	return out
}
