package cry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/valerio/go-crysynth/crysynth/bit"
)

// Sound driver opcodes used by the raw dump.
const (
	opDuty       = 0xFC
	opEnd        = 0xFF
	opNoteNibble = 0x2
)

var (
	// ErrBadToken is returned when a dump contains a token that is not a
	// hex byte or is not valid at its position.
	ErrBadToken = errors.New("invalid hex dump token")
	// ErrTruncated is returned when a dump ends before all three channel
	// terminators.
	ErrTruncated = errors.New("hex dump ends early")
)

// FormatHex renders the cry as the sound driver would store it: duty
// commands as "FC dd", notes as "2L VF lo hi" (the noise channel omits the
// high control byte), each channel closed by "FF". Every token is followed
// by a space.
func FormatHex(c *Cry) string {
	var sb strings.Builder
	for _, ch := range Channels {
		for _, cmd := range c.Sequence(ch) {
			switch {
			case cmd.IsDuty():
				if ch == Noise {
					continue
				}
				fmt.Fprintf(&sb, "%02X %02X ", opDuty, cmd.Duty)
			case cmd.IsNote():
				n := cmd.Note
				control := uint16(n.Control)
				fmt.Fprintf(&sb, "%X%X ", opNoteNibble, n.Length&0xF)
				fmt.Fprintf(&sb, "%X%X ", n.Volume&0xF, n.Fade&0xF)
				fmt.Fprintf(&sb, "%02X ", bit.Low(control))
				if ch != Noise {
					fmt.Fprintf(&sb, "%02X ", bit.High(control))
				}
			}
		}
		fmt.Fprintf(&sb, "%02X ", opEnd)
	}
	return sb.String()
}

// ParseHex reads a dump produced by FormatHex. Only the low nibble of the
// length and the 4-bit volume and fade fields survive the dump; the fade
// nibble is read back as a signed value.
func ParseHex(dump string) (*Cry, error) {
	tokens := strings.Fields(dump)
	c := &Cry{}
	ch := 0
	seq := Sequence{}

	pos := 0
	next := func() (uint8, error) {
		if pos >= len(tokens) {
			return 0, ErrTruncated
		}
		tok := tokens[pos]
		pos++
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil || len(tok) != 2 {
			return 0, fmt.Errorf("%w %q at position %d", ErrBadToken, tok, pos-1)
		}
		return uint8(v), nil
	}

	for ch < len(Channels) {
		op, err := next()
		if err != nil {
			return nil, err
		}

		switch {
		case op == opEnd:
			c.SetSequence(Channels[ch], seq)
			seq = Sequence{}
			ch++
		case op == opDuty:
			if Channels[ch] == Noise {
				return nil, fmt.Errorf("%w: duty command on noise channel at position %d", ErrBadToken, pos-1)
			}
			duty, err := next()
			if err != nil {
				return nil, err
			}
			seq = append(seq, DutySet(duty))
		case bit.ExtractBits(op, 7, 4) == opNoteNibble:
			envelope, err := next()
			if err != nil {
				return nil, err
			}
			low, err := next()
			if err != nil {
				return nil, err
			}
			control := int(low)
			if Channels[ch] != Noise {
				high, err := next()
				if err != nil {
					return nil, err
				}
				control = int(bit.Combine(high, low))
			}
			seq = append(seq, NotePlay(
				int(bit.ExtractBits(op, 3, 0)),
				int(bit.ExtractBits(envelope, 7, 4)),
				signedNibble(bit.ExtractBits(envelope, 3, 0)),
				control,
			))
		default:
			return nil, fmt.Errorf("%w %02X at position %d", ErrBadToken, op, pos-1)
		}
	}

	if pos != len(tokens) {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrBadToken, len(tokens)-pos)
	}
	return c, nil
}

func signedNibble(n uint8) int {
	if n&0x8 != 0 {
		return int(n) - 16
	}
	return int(n)
}
