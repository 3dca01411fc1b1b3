// Package headless writes rendered cries to WAV files without any audio or
// display device.
package headless

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-crysynth/crysynth"
	"github.com/valerio/go-crysynth/crysynth/backend"
	"github.com/valerio/go-crysynth/crysynth/cry"
)

// Backend writes every rendered clip as a WAV file.
type Backend struct {
	config backend.Config
	path   string
	dir    string
	w      io.Writer
}

// New creates a backend writing to path. An empty path names the file after
// the cry inside dir.
func New(path, dir string) *Backend {
	return &Backend{path: path, dir: dir}
}

// NewWriter creates a backend writing to w.
func NewWriter(w io.Writer) *Backend {
	return &Backend{w: w}
}

// FileName returns the default export name for a cry, "<name>-cry.wav" with
// the name lowercased.
func FileName(c *cry.Cry) string {
	return strings.ToLower(c.DisplayName()) + "-cry.wav"
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	slog.Debug("Running headless mode", "path", h.path, "dir", h.dir, "sample_rate", config.SampleRate)
	return nil
}

// Output encodes the clip of res and writes it out.
func (h *Backend) Output(_ context.Context, res *crysynth.Result) error {
	container := res.Clip.WAV()

	if h.w != nil {
		if _, err := container.WriteTo(h.w); err != nil {
			return err
		}
		slog.Info("WAV written", "bytes", len(container.Data), "duration", container.Duration)
		return nil
	}

	path := h.path
	if path == "" {
		path = filepath.Join(h.dir, FileName(res.Cry))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if _, err := container.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	slog.Info("WAV saved",
		"path", path,
		"sample_rate", container.SampleRate,
		"bytes", len(container.Data),
		"duration", container.Duration)
	return nil
}

func (h *Backend) Cleanup() error {
	return nil
}
