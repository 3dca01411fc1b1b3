package cry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandKinds(t *testing.T) {
	d := DutySet(0x1B)
	assert.True(t, d.IsDuty())
	assert.False(t, d.IsNote())
	assert.Equal(t, "duty", d.Kind.String())

	n := NotePlay(1, 2, 3, 4)
	assert.True(t, n.IsNote())
	assert.Equal(t, Note{Length: 1, Volume: 2, Fade: 3, Control: 4}, n.Note)

	var zero Command
	assert.False(t, zero.IsNote())
	assert.False(t, zero.IsDuty())
	assert.Equal(t, "none", zero.Kind.String())
}

func TestCrySequence(t *testing.T) {
	c := &Cry{}
	for i, ch := range Channels {
		c.SetSequence(ch, Sequence{NotePlay(i, 0, 0, 0)})
	}

	assert.Equal(t, 0, c.Pulse1[0].Note.Length)
	assert.Equal(t, 1, c.Pulse2[0].Note.Length)
	assert.Equal(t, 2, c.Noise[0].Note.Length)
	assert.Equal(t, c.Noise, c.Sequence(Noise))
	assert.Nil(t, c.Sequence(Channel(7)))
	assert.Equal(t, "custom", c.DisplayName())
}

func TestSequenceNotes(t *testing.T) {
	seq := Sequence{DutySet(1), NotePlay(0, 0, 0, 0), {}, NotePlay(0, 0, 0, 0)}
	assert.Equal(t, 2, seq.Notes())
}
