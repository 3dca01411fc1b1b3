package cry

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Text form, one command per line:
//
//	duty <schedule>
//	note <length+1> <volume> <fade> <control>
//
// Numbers are decimal or 0x-prefixed hex and may carry a leading sign.
// Blank and unrecognized lines are ignored. A line whose numbers do not
// parse is dropped rather than aborting the whole sequence.

// ParseSequence parses the text form of a channel. Duty lines are ignored
// on the noise channel.
func ParseSequence(text string, ch Channel) Sequence {
	seq := Sequence{}
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, ok := parseLine(fields, ch)
		if !ok {
			if fields[0] == "duty" || fields[0] == "note" {
				slog.Debug("Dropping malformed command", "channel", ch, "line", i+1, "text", strings.TrimSpace(line))
			}
			continue
		}
		seq = append(seq, cmd)
	}
	return seq
}

func parseLine(fields []string, ch Channel) (Command, bool) {
	switch fields[0] {
	case "duty":
		if ch == Noise || len(fields) < 2 {
			return Command{}, false
		}
		duty, ok := parseNumber(fields[1])
		if !ok {
			return Command{}, false
		}
		return DutySet(uint8(duty & 0xFF)), true
	case "note":
		if len(fields) < 5 {
			return Command{}, false
		}
		var values [4]int
		for i := range values {
			v, ok := parseNumber(fields[i+1])
			if !ok {
				return Command{}, false
			}
			values[i] = v
		}
		return NotePlay(values[0]-1, values[1], values[2], values[3]), true
	}
	return Command{}, false
}

// parseNumber accepts decimal and 0x-prefixed hex with an optional sign.
func parseNumber(s string) (int, bool) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return int(v), true
}

func formatHex(v int) string {
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}

// FormatSequence renders a channel in the text form accepted by
// ParseSequence. Duty schedules are always written as two-digit hex, noise
// controls as hex and pulse controls as decimal.
func FormatSequence(seq Sequence, ch Channel) string {
	var sb strings.Builder
	for _, c := range seq {
		switch {
		case c.IsDuty():
			if ch == Noise {
				continue
			}
			fmt.Fprintf(&sb, "duty 0x%02x\n", c.Duty)
		case c.IsNote():
			n := c.Note
			control := strconv.Itoa(n.Control)
			if ch == Noise {
				control = formatHex(n.Control)
			}
			fmt.Fprintf(&sb, "note %d %d %d %s\n", n.Length+1, n.Volume, n.Fade, control)
		}
	}
	return sb.String()
}

// ParseText builds a cry from the text form of its three channels.
func ParseText(name, pulse1, pulse2, noise string) *Cry {
	return &Cry{
		Name:   name,
		Pulse1: ParseSequence(pulse1, Pulse1),
		Pulse2: ParseSequence(pulse2, Pulse2),
		Noise:  ParseSequence(noise, Noise),
	}
}

// Text returns the text form of every channel, in channel order.
func (c *Cry) Text() (pulse1, pulse2, noise string) {
	return FormatSequence(c.Pulse1, Pulse1),
		FormatSequence(c.Pulse2, Pulse2),
		FormatSequence(c.Noise, Noise)
}
