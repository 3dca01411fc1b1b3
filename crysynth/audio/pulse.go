package audio

import "github.com/valerio/go-crysynth/crysynth/cry"

// pulseChannel is the state of one pulse channel for a single generate call.
type pulseChannel struct {
	duty  DutySchedule
	phase float64 // position within the current period, [0, 1)
	clock noteClock
	out   []float64
}

// periodSamples returns the length of one waveform period in synthesis
// samples. Larger controls give shorter periods.
func periodSamples(sourceRate, control, pitch int) float64 {
	reg := (control + pitch) & periodControlMask
	return float64(sourceRate) * float64(periodBase-reg) / periodDivisor
}

// Pulse renders a pulse channel sequence.
func (g *Generator) Pulse(seq cry.Sequence, p Params) []float64 {
	ch := pulseChannel{
		clock: newNoteClock(p.Length, g.cfg.FramesPerChunk),
		out:   make([]float64, 0, SequenceLength(seq, p.Length, g.cfg.FramesPerChunk)),
	}

	for i, c := range seq {
		switch c.Kind {
		case cry.KindDuty:
			ch.duty = DutySchedule(c.Duty)
		case cry.KindNote:
			ch.play(c.Note, p.Pitch, i == len(seq)-1, &g.cfg)
		}
	}
	return ch.out
}

func (ch *pulseChannel) play(n cry.Note, pitch int, last bool, cfg *Config) {
	count := ch.clock.samples(n.Length)
	step := 1 / periodSamples(cfg.SourceRate, n.Control, pitch)
	env := newEnvelope(n.Volume, n.Fade, cfg.FramesPerChunk)

	for index := 0; index < cfg.MaxNoteSamples && (index < count || (last && env.audible())); index++ {
		ch.out = append(ch.out, sample(ch.duty.Pattern().High(ch.phase), env.volume))

		ch.phase += step
		if ch.phase >= 1 {
			ch.phase--
		}

		// the duty schedule only rotates within the note's nominal length
		if index < count && len(ch.out)%cfg.FramesPerChunk == 0 {
			ch.duty = ch.duty.Rotate()
		}

		env.tick(index)
	}
}
