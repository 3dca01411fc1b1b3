package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

// Diagram layout defaults.
const (
	DefaultDiagramWidth     = 800
	DefaultDiagramRowHeight = 96

	labelPadding = 4
)

var (
	backgroundColor = color.RGBA{0x0F, 0x38, 0x0F, 0xFF}
	axisColor       = color.RGBA{0x30, 0x62, 0x30, 0xFF}
	waveColor       = color.RGBA{0x9B, 0xBC, 0x0F, 0xFF}
	labelColor      = color.RGBA{0x8B, 0xAC, 0x0F, 0xFF}
)

// DiagramRow is one labelled waveform of a diagram.
type DiagramRow struct {
	Label   string
	Samples []float64
}

// DiagramRows returns the rows of a render: the three channels at the
// synthesis rate followed by the output clip.
func DiagramRows(res *crysynth.Result) []DiagramRow {
	rows := make([]DiagramRow, 0, len(cry.Channels)+1)
	for _, ch := range cry.Channels {
		label := ch.String()
		if !res.Options.Enabled[ch] {
			label += " (muted)"
		}
		rows = append(rows, DiagramRow{Label: label, Samples: res.Channels.Get(ch)})
	}
	rows = append(rows, DiagramRow{
		Label:   fmt.Sprintf("Output %d Hz", res.Clip.SampleRate),
		Samples: res.Clip.Samples,
	})
	return rows
}

// RenderDiagram draws every row as a min/max envelope, one row under the
// other.
func RenderDiagram(rows []DiagramRow, width, rowHeight int) *image.RGBA {
	if width <= 0 {
		width = DefaultDiagramWidth
	}
	if rowHeight <= 0 {
		rowHeight = DefaultDiagramRowHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, rowHeight*len(rows)))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, row := range rows {
		top := i * rowHeight
		mid := top + rowHeight/2
		amp := float64(rowHeight/2 - 1)

		for x := 0; x < width; x++ {
			img.SetRGBA(x, mid, axisColor)
		}

		for x, p := range FitPeaks(row.Samples, width) {
			// positive samples are drawn upwards
			y0 := mid - int(p.Max*amp)
			y1 := mid - int(p.Min*amp)
			for y := y0; y <= y1; y++ {
				img.SetRGBA(x, y, waveColor)
			}
		}

		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(labelColor),
			Face: face,
			Dot:  fixed.P(labelPadding, top+labelPadding+face.Ascent),
		}
		d.DrawString(row.Label)
	}

	return img
}

// EncodeDiagramPNG writes img as PNG.
func EncodeDiagramPNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SaveDiagramPNG writes img to path as PNG.
func SaveDiagramPNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := EncodeDiagramPNG(file, img); err != nil {
		return err
	}

	b := img.Bounds()
	slog.Info("Diagram saved", "path", path, "size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), "format", "PNG")
	return nil
}
