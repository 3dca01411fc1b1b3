package audio

import "github.com/valerio/go-crysynth/crysynth/cry"

// Mix sums the given waves, each attenuated by the same fixed factor, into a
// buffer as long as the longest wave.
func Mix(waves ...[]float64) []float64 {
	total := 0
	for _, w := range waves {
		total = max(total, len(w))
	}

	mixed := make([]float64, total)
	for _, w := range waves {
		for i, s := range w {
			mixed[i] += s / mixReduction
		}
	}
	return mixed
}

// Enabled selects channels for mixing, indexed by cry.Channel.
type Enabled [3]bool

// AllChannels enables every channel.
var AllChannels = Enabled{true, true, true}

// Channels holds the rendered buffer of every channel of a cry.
type Channels struct {
	Pulse1 []float64
	Pulse2 []float64
	Noise  []float64
}

// Get returns the buffer of a channel.
func (c *Channels) Get(ch cry.Channel) []float64 {
	switch ch {
	case cry.Pulse1:
		return c.Pulse1
	case cry.Pulse2:
		return c.Pulse2
	case cry.Noise:
		return c.Noise
	default:
		return nil
	}
}

// Mix mixes the enabled channels.
func (c *Channels) Mix(enabled Enabled) []float64 {
	var waves [][]float64
	for _, ch := range cry.Channels {
		if enabled[ch] {
			waves = append(waves, c.Get(ch))
		}
	}
	return Mix(waves...)
}
