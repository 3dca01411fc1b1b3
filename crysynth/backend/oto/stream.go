package oto

import (
	"encoding/binary"
	"io"
	"math"
)

// bytesPerSample is the size of one mono float32 frame.
const bytesPerSample = 4

// sampleStream serves a clip as little endian float32 PCM, the format the
// player is opened with.
type sampleStream struct {
	samples []float64
	pos     int
}

func newSampleStream(samples []float64) *sampleStream {
	return &sampleStream{samples: samples}
}

func (s *sampleStream) Read(p []byte) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := 0
	for n+bytesPerSample <= len(p) && s.pos < len(s.samples) {
		binary.LittleEndian.PutUint32(p[n:], math.Float32bits(float32(s.samples[s.pos])))
		s.pos++
		n += bytesPerSample
	}
	return n, nil
}
