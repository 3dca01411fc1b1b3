package debug

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

func TestDiagramRows(t *testing.T) {
	file := loadTestCry(t)
	opts := crysynth.DefaultOptions()
	opts.Enabled[cry.Noise] = false

	res := crysynth.New(audio.Config{}).Render(file.Cry(), opts)
	rows := DiagramRows(res)

	require.Len(t, rows, 4)
	assert.Equal(t, "pulse1", rows[0].Label)
	assert.Equal(t, "noise (muted)", rows[2].Label)
	assert.Equal(t, "Output 44100 Hz", rows[3].Label)
	assert.Equal(t, res.Clip.Samples, rows[3].Samples)
}

func TestRenderDiagram(t *testing.T) {
	rows := []DiagramRow{
		{Label: "square", Samples: []float64{1, 1, -1, -1, 1, 1, -1, -1}},
		{Label: "silence"},
	}

	img := RenderDiagram(rows, 64, 32)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// full scale samples reach the top of the first row
	assert.Equal(t, waveColor, img.RGBAAt(0, 1))
	// an empty row only has the axis
	assert.Equal(t, axisColor, img.RGBAAt(63, 32+16))
	assert.Equal(t, backgroundColor, img.RGBAAt(63, 32+1))
}

func TestRenderDiagram_Defaults(t *testing.T) {
	img := RenderDiagram([]DiagramRow{{Label: "x"}}, 0, 0)
	assert.Equal(t, DefaultDiagramWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultDiagramRowHeight, img.Bounds().Dy())
}

func TestSaveDiagramPNG(t *testing.T) {
	img := RenderDiagram([]DiagramRow{{Label: "x", Samples: []float64{0.5}}}, 16, 16)
	path := filepath.Join(t.TempDir(), "diagram.png")

	require.NoError(t, SaveDiagramPNG(img, path))

	var buf bytes.Buffer
	require.NoError(t, EncodeDiagramPNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
