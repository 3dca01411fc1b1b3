package backend

import (
	"context"
	"errors"

	"github.com/valerio/go-crysynth/crysynth"
)

// ErrUnavailable is returned by backends that were not compiled in.
var ErrUnavailable = errors.New("backend not available")

// Backend presents a rendered cry: a WAV file, the sound card, a terminal
// waveform view.
type Backend interface {
	// Init configures the backend. It must be called before Output.
	Init(config Config) error

	// Output presents res and blocks until it is done with it or ctx is
	// cancelled. Backends return nil when cancelled.
	Output(ctx context.Context, res *crysynth.Result) error

	// Cleanup releases backend resources.
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title string
	// SampleRate is the rate clips passed to Output are rendered at.
	SampleRate int
	Callbacks  Callbacks
}

// Callbacks allows backends to report back to the caller
type Callbacks struct {
	// OnQuit is called when the user closes an interactive backend.
	OnQuit func()
}

// Quit invokes OnQuit if set.
func (c Callbacks) Quit() {
	if c.OnQuit != nil {
		c.OnQuit()
	}
}
