// Package cry holds the command model for sound effect "cries": the two
// command variants understood by the sound driver, per-channel sequences,
// and the text, hex and file representations built on top of them.
package cry

// Kind identifies which variant a Command carries.
type Kind uint8

const (
	// KindNone is the zero value; commands of this kind are skipped.
	KindNone Kind = iota
	// KindDuty replaces the pulse channel duty schedule.
	KindDuty
	// KindNote plays a note for a number of frames.
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindDuty:
		return "duty"
	case KindNote:
		return "note"
	default:
		return "none"
	}
}

// Note is the payload of a note command.
//
// Control is the 11-bit period control on pulse channels and the packed
// shift/width/divider byte on the noise channel.
type Note struct {
	Length  int // length units, the driver adds one
	Volume  int // initial volume, 0-15
	Fade    int // frames per envelope step; positive decays, negative rises
	Control int
}

// Command is a single driver command.
type Command struct {
	Kind Kind
	Duty uint8
	Note Note
}

// DutySet builds a duty command.
func DutySet(duty uint8) Command {
	return Command{Kind: KindDuty, Duty: duty}
}

// NotePlay builds a note command.
func NotePlay(length, volume, fade, control int) Command {
	return Command{
		Kind: KindNote,
		Note: Note{Length: length, Volume: volume, Fade: fade, Control: control},
	}
}

// IsNote reports whether the command plays a note.
func (c Command) IsNote() bool {
	return c.Kind == KindNote
}

// IsDuty reports whether the command sets the duty schedule.
func (c Command) IsDuty() bool {
	return c.Kind == KindDuty
}

// Sequence is the ordered command list for one channel.
type Sequence []Command

// Notes returns the number of note commands in the sequence.
func (s Sequence) Notes() int {
	n := 0
	for _, c := range s {
		if c.IsNote() {
			n++
		}
	}
	return n
}

// Channel names a cry channel.
type Channel int

const (
	Pulse1 Channel = iota
	Pulse2
	Noise
)

// Channels lists every channel in output order.
var Channels = []Channel{Pulse1, Pulse2, Noise}

func (c Channel) String() string {
	switch c {
	case Pulse1:
		return "pulse1"
	case Pulse2:
		return "pulse2"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// Cry groups the three channel sequences of a sound effect.
// A Cry must not be modified while it is being synthesized.
type Cry struct {
	Name   string
	Pulse1 Sequence
	Pulse2 Sequence
	Noise  Sequence
}

// Sequence returns the command sequence for the given channel.
func (c *Cry) Sequence(ch Channel) Sequence {
	switch ch {
	case Pulse1:
		return c.Pulse1
	case Pulse2:
		return c.Pulse2
	case Noise:
		return c.Noise
	default:
		return nil
	}
}

// SetSequence replaces the command sequence for the given channel.
func (c *Cry) SetSequence(ch Channel, seq Sequence) {
	switch ch {
	case Pulse1:
		c.Pulse1 = seq
	case Pulse2:
		c.Pulse2 = seq
	case Noise:
		c.Noise = seq
	}
}

// DisplayName returns the cry name, or "custom" when it has none.
func (c *Cry) DisplayName() string {
	if c.Name == "" {
		return "custom"
	}
	return c.Name
}
