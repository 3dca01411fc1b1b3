// Package crysynth renders sound effect cries: it drives the channel
// generators, mixes the enabled channels and converts the mix to an output
// sample rate ready for playback or WAV export.
package crysynth

import (
	"log/slog"
	"time"

	"github.com/valerio/go-crysynth/crysynth/audio"
	"github.com/valerio/go-crysynth/crysynth/cry"
	"github.com/valerio/go-crysynth/crysynth/pcm"
)

const (
	// DefaultOutputRate is the playback and export rate in Hz.
	DefaultOutputRate = 44100
	// DefaultVolume is the output volume on the 256 = unity scale.
	DefaultVolume = 50
)

// Options configure a single render.
type Options struct {
	audio.Params

	// Volume scales the output, 256 leaves it unchanged.
	Volume int
	// Enabled selects the channels that are mixed.
	Enabled audio.Enabled
	// OutputRate is the sample rate of the resulting clip.
	OutputRate int
}

// DefaultOptions returns options that mix every channel at the default
// volume and output rate.
func DefaultOptions() Options {
	return Options{
		Volume:     DefaultVolume,
		Enabled:    audio.AllChannels,
		OutputRate: DefaultOutputRate,
	}
}

// Clip is mono audio at a playback rate.
type Clip struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// WAV encodes the clip.
func (c *Clip) WAV() *pcm.Container {
	return pcm.NewContainer(c.Samples, c.SampleRate)
}

// Result is everything produced by a render.
type Result struct {
	Cry     *cry.Cry
	Options Options
	// SourceRate is the rate of Channels and Mixed.
	SourceRate int
	Channels   *audio.Channels
	// Mixed is the mix of the enabled channels at the synthesis rate.
	Mixed []float64
	Clip  *Clip
}

// Synthesizer renders cries with a fixed synthesis config. It is safe for
// concurrent use.
type Synthesizer struct {
	gen *audio.Generator
}

// New creates a synthesizer. Zero config fields take the hardware defaults.
func New(cfg audio.Config) *Synthesizer {
	return &Synthesizer{gen: audio.NewGenerator(cfg)}
}

// Generator returns the underlying channel generator.
func (s *Synthesizer) Generator() *audio.Generator {
	return s.gen
}

// Render synthesizes c and converts the mix to opts.OutputRate.
func (s *Synthesizer) Render(c *cry.Cry, opts Options) *Result {
	if opts.OutputRate <= 0 {
		opts.OutputRate = DefaultOutputRate
	}

	channels := s.gen.Generate(c, opts.Params)
	mixed := channels.Mix(opts.Enabled)
	clip := &Clip{
		Samples:    pcm.Resample(s.gen.Config().SourceRate, opts.OutputRate, mixed, opts.Volume),
		SampleRate: opts.OutputRate,
	}

	slog.Info("Rendered cry",
		"name", c.DisplayName(),
		"output_rate", clip.SampleRate,
		"samples", len(clip.Samples),
		"duration", clip.Duration())

	return &Result{
		Cry:        c,
		Options:    opts,
		SourceRate: s.gen.Config().SourceRate,
		Channels:   channels,
		Mixed:      mixed,
		Clip:       clip,
	}
}
