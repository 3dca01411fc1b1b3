package audio

import "math/bits"

// DutyPattern is one of the four hardware waveform duty cycles.
type DutyPattern uint8

const (
	Duty12_5 DutyPattern = iota // high 1/8 of the period
	Duty25                      // high 2/8
	Duty50                      // high 4/8
	Duty75                      // high 6/8, the inverse of Duty50
)

// High reports whether the waveform is high at phase, a position in [0, 1)
// within the period.
func (p DutyPattern) High(phase float64) bool {
	switch p {
	case Duty12_5:
		return phase >= 4.0/8 && phase < 5.0/8
	case Duty25:
		return phase >= 4.0/8 && phase < 6.0/8
	case Duty50:
		return phase >= 2.0/8 && phase < 6.0/8
	case Duty75:
		return phase < 4.0/8 || phase >= 6.0/8
	}
	return false
}

func (p DutyPattern) String() string {
	switch p {
	case Duty12_5:
		return "12.5%"
	case Duty25:
		return "25%"
	case Duty50:
		return "50%"
	case Duty75:
		return "75%"
	}
	return "?"
}

// DutySchedule is the 8-bit duty register set by a duty command. It holds
// four 2-bit patterns; the lowest two bits are the active one. At every frame
// boundary inside a note the register rotates left by two bits, so the
// driver cycles through up to four patterns per note.
type DutySchedule uint8

// Pattern returns the active duty pattern.
func (d DutySchedule) Pattern() DutyPattern {
	return DutyPattern(d & 0x3)
}

// Rotate returns the schedule after one frame: ((d&0x3F)<<2) | ((d&0xC0)>>6).
func (d DutySchedule) Rotate() DutySchedule {
	return DutySchedule(bits.RotateLeft8(uint8(d), 2))
}
