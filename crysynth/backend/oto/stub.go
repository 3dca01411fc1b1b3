//go:build !oto

package oto

import (
	"context"
	"fmt"

	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/backend"
)

// Backend stub for when audio output is not compiled in
type Backend struct{}

// New creates a stub backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating playback is not available
func (b *Backend) Init(config backend.Config) error {
	return fmt.Errorf("audio playback: %w - build with -tags oto to enable", backend.ErrUnavailable)
}

// Output returns an error
func (b *Backend) Output(ctx context.Context, res *crysynth.Result) error {
	return fmt.Errorf("audio playback: %w", backend.ErrUnavailable)
}

// Cleanup does nothing
func (b *Backend) Cleanup() error {
	return nil
}
