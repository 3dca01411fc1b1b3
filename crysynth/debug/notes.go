package debug

import (
	"math"

	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

// NoteStatus describes one note command as the generator will play it.
type NoteStatus struct {
	Index     int // position in the sequence
	Start     int // nominal first sample
	Samples   int // nominal sample count
	Volume    int
	Fade      int
	Control   int
	Frequency float64
	Note      string
	Duty      audio.DutyPattern // pulse only, pattern at note start
	Narrow    bool              // noise only
}

// ChannelData is the note listing of one channel.
type ChannelData struct {
	Channel cry.Channel
	Notes   []NoteStatus
	// Length is the nominal length of the channel in synthesis samples.
	Length int
}

// CryData is the note listing of a whole cry.
type CryData struct {
	Name       string
	Params     audio.Params
	SourceRate int
	Channels   [3]ChannelData
	// Cutoff is the sample from which noise notes no longer take the pitch
	// offset.
	Cutoff int
}

// ExtractCryData lists every note of c with its timing and frequency.
func ExtractCryData(c *cry.Cry, p audio.Params, cfg audio.Config) *CryData {
	fpc := cfg.FramesPerChunk
	if fpc <= 0 {
		fpc = audio.DefaultFramesPerChunk
	}
	rate := cfg.SourceRate
	if rate <= 0 {
		rate = audio.DefaultSourceRate
	}

	data := &CryData{
		Name:       c.DisplayName(),
		Params:     p,
		SourceRate: rate,
		Cutoff:     audio.NoiseCutoff(c, p.Length, fpc),
	}

	for _, ch := range cry.Channels {
		seq := c.Sequence(ch)
		data.Channels[ch] = ChannelData{
			Channel: ch,
			Length:  audio.SequenceLength(seq, p.Length, fpc),
		}
		if ch == cry.Noise {
			extractNoise(&data.Channels[ch], seq, p, fpc, data.Cutoff)
		} else {
			extractPulse(&data.Channels[ch], seq, p, fpc)
		}
	}

	return data
}

func extractPulse(ch *ChannelData, seq cry.Sequence, p audio.Params, fpc int) {
	spans := audio.Spans(seq, p.Length, fpc)
	var duty audio.DutySchedule

	for i, c := range seq {
		switch c.Kind {
		case cry.KindDuty:
			duty = audio.DutySchedule(c.Duty)
		case cry.KindNote:
			freq := audio.PulseFrequency(c.Note.Control, p.Pitch)
			ch.Notes = append(ch.Notes, NoteStatus{
				Index:     i,
				Start:     spans[i].Start,
				Samples:   spans[i].Length,
				Volume:    c.Note.Volume,
				Fade:      c.Note.Fade,
				Control:   c.Note.Control,
				Frequency: freq,
				Note:      frequencyToNote(freq),
				Duty:      duty.Pattern(),
			})
			// note spans are whole frames and the schedule rotates once per frame
			for n := 0; n < spans[i].Length/fpc; n++ {
				duty = duty.Rotate()
			}
		}
	}
}

func extractNoise(ch *ChannelData, seq cry.Sequence, p audio.Params, fpc, cutoff int) {
	spans := audio.Spans(seq, p.Length, fpc)

	for i, c := range seq {
		if !c.IsNote() {
			continue
		}
		control := c.Note.Control
		if spans[i].Start < cutoff {
			control += p.Pitch
		}
		ch.Notes = append(ch.Notes, NoteStatus{
			Index:     i,
			Start:     spans[i].Start,
			Samples:   spans[i].Length,
			Volume:    c.Note.Volume,
			Fade:      c.Note.Fade,
			Control:   control & 0xFF,
			Frequency: audio.NoiseFrequency(control),
			Note:      "Noise",
			Narrow:    audio.NoiseWidth(control),
		})
	}
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// frequencyToNote returns the nearest equal temperament note name, or "--"
// outside the audible range.
func frequencyToNote(freq float64) string {
	if freq < 20 || freq > 20000 {
		return "--"
	}

	const a4 = 440.0
	midi := int(math.Round(12*math.Log2(freq/a4))) + 69
	octave := midi/12 - 1
	if octave < 0 || octave > 9 {
		return "--"
	}

	return noteNames[midi%12] + string(rune('0'+octave))
}
