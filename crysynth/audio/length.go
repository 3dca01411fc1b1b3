package audio

import "github.com/valerio/go-crysynth/crysynth/cry"

// noteClock converts note lengths into sample counts. Note lengths are
// accumulated in 8.8 fixed point and the fractional frame left over by one
// note is carried into the next note of the same channel, so durations never
// drift.
type noteClock struct {
	length         int
	framesPerChunk int
	carry          int
}

func newNoteClock(length, framesPerChunk int) noteClock {
	return noteClock{length: length, framesPerChunk: framesPerChunk}
}

// samples returns the number of samples for a note of the given length
// units and advances the carry. Length scales below -256 give empty notes.
func (c *noteClock) samples(units int) int {
	subframes := (c.length+subframeOne)*(units+1) + c.carry
	c.carry = subframes & subframeMask
	return max(c.framesPerChunk*(subframes>>subframeShift), 0)
}

// SequenceLength returns the number of samples the note commands of seq
// span at the given length scale, excluding the tail the last note may add
// while its volume is still non-zero.
func SequenceLength(seq cry.Sequence, length, framesPerChunk int) int {
	clock := newNoteClock(length, framesPerChunk)
	total := 0
	for _, c := range seq {
		if c.IsNote() {
			total += clock.samples(c.Note.Length)
		}
	}
	return total
}

// NoiseCutoff returns the sample index from which the noise channel stops
// applying the pitch offset: one frame before the end of the longer pulse
// channel. The hardware driver reverts the noise pitch there.
func NoiseCutoff(c *cry.Cry, length, framesPerChunk int) int {
	pulse1 := SequenceLength(c.Pulse1, length, framesPerChunk)
	pulse2 := SequenceLength(c.Pulse2, length, framesPerChunk)
	return max(pulse1, pulse2) - framesPerChunk
}
