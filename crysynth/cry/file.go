package cry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a cry: the three channels in text form plus
// the synthesis defaults the cry is meant to be played with.
//
//	name: custom
//	pitch: 0
//	length: 0
//	pulse1: |
//	  duty 0xf5
//	  note 5 15 1 1792
type File struct {
	Name   string `yaml:"name,omitempty"`
	Pitch  int    `yaml:"pitch"`
	Length int    `yaml:"length"`
	Volume *int   `yaml:"volume,omitempty"`
	Pulse1 string `yaml:"pulse1"`
	Pulse2 string `yaml:"pulse2"`
	Noise  string `yaml:"noise"`
}

// NewFile wraps a cry and its synthesis defaults for saving.
func NewFile(c *Cry, pitch, length int) *File {
	pulse1, pulse2, noise := c.Text()
	return &File{
		Name:   c.Name,
		Pitch:  pitch,
		Length: length,
		Pulse1: pulse1,
		Pulse2: pulse2,
		Noise:  noise,
	}
}

// Load reads a cry file from disk.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cry file: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads a cry file. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode cry file: %w", err)
	}
	return &file, nil
}

// Encode writes the file as YAML.
func (f *File) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode cry file: %w", err)
	}
	return enc.Close()
}

// Cry parses the channel text of the file.
func (f *File) Cry() *Cry {
	return ParseText(f.Name, f.Pulse1, f.Pulse2, f.Noise)
}

// VolumeOr returns the file volume, or def when the file does not set one.
func (f *File) VolumeOr(def int) int {
	if f.Volume == nil {
		return def
	}
	return *f.Volume
}
