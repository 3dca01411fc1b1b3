// Package audio synthesizes the two pulse channels and the noise channel of
// the handheld's sound hardware from cry command sequences.
package audio

import (
	"log/slog"

	"github.com/valerio/go-crysynth/crysynth/cry"
)

// Config holds the synthesis constants. Zero fields take their defaults.
type Config struct {
	// SourceRate is the synthesis sample rate in Hz.
	SourceRate int
	// FramesPerChunk is the number of samples per video frame.
	FramesPerChunk int
	// MaxNoteSamples caps the samples a single note may produce.
	MaxNoteSamples int
}

// DefaultConfig returns the hardware timing.
func DefaultConfig() Config {
	return Config{
		SourceRate:     DefaultSourceRate,
		FramesPerChunk: DefaultFramesPerChunk,
		MaxNoteSamples: DefaultMaxNoteSamples,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SourceRate <= 0 {
		c.SourceRate = def.SourceRate
	}
	if c.FramesPerChunk <= 0 {
		c.FramesPerChunk = def.FramesPerChunk
	}
	if c.MaxNoteSamples <= 0 {
		c.MaxNoteSamples = def.MaxNoteSamples
	}
	return c
}

// Params are the per-cry synthesis parameters.
type Params struct {
	// Pitch is added to every note control before it is masked to the
	// channel's register width.
	Pitch int
	// Length scales every note; 0 plays notes at their nominal length.
	Length int
}

// Generator renders cries. It keeps no state between calls and is safe for
// concurrent use; every call allocates its own channel state.
type Generator struct {
	cfg Config
}

// NewGenerator creates a generator with the given config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg.withDefaults()}
}

// Config returns the generator's effective config.
func (g *Generator) Config() Config {
	return g.cfg
}

// Cutoff returns the noise pitch cutoff for c, see NoiseCutoff.
func (g *Generator) Cutoff(c *cry.Cry, p Params) int {
	return NoiseCutoff(c, p.Length, g.cfg.FramesPerChunk)
}

// Generate renders all three channels of c.
func (g *Generator) Generate(c *cry.Cry, p Params) *Channels {
	out := &Channels{
		Pulse1: g.Pulse(c.Pulse1, p),
		Pulse2: g.Pulse(c.Pulse2, p),
		Noise:  g.Noise(c.Noise, p, g.Cutoff(c, p)),
	}

	slog.Debug("Generated cry",
		"name", c.DisplayName(),
		"pitch", p.Pitch,
		"length", p.Length,
		"pulse1_samples", len(out.Pulse1),
		"pulse2_samples", len(out.Pulse2),
		"noise_samples", len(out.Noise))

	return out
}
