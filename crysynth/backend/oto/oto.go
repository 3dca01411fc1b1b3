//go:build oto

package oto

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/backend"
)

// pollInterval is how often playback progress is checked.
const pollInterval = 10 * time.Millisecond

// Backend plays clips on the default audio device.
type Backend struct {
	config backend.Config
	ctx    *oto.Context
}

// New creates an oto playback backend.
func New() *Backend {
	return &Backend{}
}

// Init opens the audio device. Only one device context may exist per
// process, so every clip must use config.SampleRate.
func (b *Backend) Init(config backend.Config) error {
	b.config = config

	op := &oto.NewContextOptions{
		SampleRate:   config.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	<-ready

	b.ctx = ctx
	slog.Info("Audio device ready", "sample_rate", config.SampleRate)
	return nil
}

// Output plays the clip of res and returns once it has finished or ctx is
// cancelled.
func (b *Backend) Output(ctx context.Context, res *crysynth.Result) error {
	if b.ctx == nil {
		return fmt.Errorf("audio device not initialized")
	}
	if res.Clip.SampleRate != b.config.SampleRate {
		return fmt.Errorf("clip rate %d Hz does not match device rate %d Hz", res.Clip.SampleRate, b.config.SampleRate)
	}

	player := b.ctx.NewPlayer(newSampleStream(res.Clip.Samples))
	defer player.Close()

	slog.Info("Playing cry", "name", res.Cry.DisplayName(), "duration", res.Clip.Duration())
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			slog.Info("Playback interrupted")
			return nil
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

func (b *Backend) Cleanup() error {
	if b.ctx != nil {
		return b.ctx.Suspend()
	}
	return nil
}
