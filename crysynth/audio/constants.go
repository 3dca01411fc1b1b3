package audio

// Timing constants
// Reference: https://gbdev.io/pandocs/Audio_details.html
const (
	// DefaultSourceRate is the synthesis rate in Hz, 2^20.
	DefaultSourceRate = 1048576

	// DefaultFramesPerChunk is the number of synthesis samples in one video
	// frame. Duty rotation and envelope steps are evaluated on this grid.
	DefaultFramesPerChunk = 17556

	// DefaultMaxNoteSamples bounds a single note loop. The last note of a
	// channel keeps playing while its volume is non-zero; this ceiling is
	// what guarantees termination when the volume never reaches zero.
	DefaultMaxNoteSamples = 2500000
)

// Frame accounting
const (
	// subframeOne is one frame in the 8.8 fixed-point note length accumulator.
	subframeOne = 0x100
	// subframeMask keeps the fractional frame carried to the next note.
	subframeMask  = 0xFF
	subframeShift = 8
)

// Pulse channel constants
const (
	periodControlMask = 0x7FF
	periodBase        = 2048
	// periodDivisor converts (2048 - control) into seconds: 131072 Hz is the
	// pulse channel's period clock.
	periodDivisor = 131072
)

// Noise channel constants
const (
	// lfsrInitialValue is the noise register after a trigger, all 15 bits set.
	lfsrInitialValue = 0x7FFF
	noiseControlMask = 0xFF
	// maxNoiseShift is the highest clock shift the generator honours.
	// Shifts 14 and 15 are treated as 13; real hardware behaviour for them is
	// only approximately known.
	maxNoiseShift   = 13
	noiseWidthBit   = 3
	lfsrFeedbackBit = 14
	lfsrNarrowBit   = 6
)

// Volume and mixing
const (
	maxVolume   = 15
	volumeScale = 16.0
	// mixReduction attenuates every channel equally, whatever the number of
	// enabled channels.
	mixReduction = 3.0
)
