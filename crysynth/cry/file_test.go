package cry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	file, err := Load("testdata/cry00.yaml")
	require.NoError(t, err)

	assert.Equal(t, "cry00", file.Name)
	assert.Equal(t, 128, file.Pitch)
	assert.Equal(t, 0, file.Length)
	assert.Equal(t, 64, file.VolumeOr(50))

	c := file.Cry()
	assert.Equal(t, "cry00", c.Name)
	assert.Len(t, c.Pulse1, 4)
	assert.Len(t, c.Pulse2, 4)
	assert.Len(t, c.Noise, 3)
	assert.Equal(t, DutySet(0xF5), c.Pulse1[0])
	assert.Equal(t, NotePlay(4, 15, 7, 1984), c.Pulse1[1])
	assert.Equal(t, NotePlay(2, 14, 4, 0x3C), c.Noise[0])
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("name: x\npitchh: 3\n"))
	assert.Error(t, err)
}

func TestDecode_DefaultVolume(t *testing.T) {
	file, err := Decode(strings.NewReader("pulse1: |\n  note 1 15 0 1800\n"))
	require.NoError(t, err)
	assert.Equal(t, 50, file.VolumeOr(50))
	assert.Equal(t, Sequence{NotePlay(0, 15, 0, 1800)}, file.Cry().Pulse1)
}

func TestFile_EncodeRoundTrip(t *testing.T) {
	original := &Cry{
		Name: "test",
		Pulse1: Sequence{
			DutySet(0x1B),
			NotePlay(3, 12, 2, 1700),
		},
		Pulse2: Sequence{},
		Noise: Sequence{
			NotePlay(1, 10, -1, 0x44),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFile(original, -5, 20).Encode(&buf))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, -5, decoded.Pitch)
	assert.Equal(t, 20, decoded.Length)
	assert.Equal(t, original, decoded.Cry())
}
