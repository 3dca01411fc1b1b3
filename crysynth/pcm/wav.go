package pcm

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// WAV layout constants
const (
	HeaderSize    = 44
	Channels      = 1
	BitsPerSample = 8

	fmtChunkSize = 16
	formatPCM    = 1
)

// Container is an encoded mono 8-bit WAV file.
type Container struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Duration   time.Duration
	Data       []byte
}

// NewContainer encodes samples at sampleRate.
func NewContainer(samples []float64, sampleRate int) *Container {
	c := &Container{
		Channels:   Channels,
		SampleRate: sampleRate,
		BitDepth:   BitsPerSample,
		Data:       EncodeWAV(samples, sampleRate),
	}
	if sampleRate > 0 {
		c.Duration = time.Duration(len(samples)) * time.Second / time.Duration(sampleRate)
	}
	return c
}

// WriteTo writes the encoded file to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write WAV data: %w", err)
	}
	return int64(n), nil
}

// EncodeWAV serializes samples in [-1, 1] as a RIFF/WAVE file with a
// 44-byte header. The RIFF size field holds the total file size, the value
// existing cry exports carry, rather than the size minus eight.
func EncodeWAV(samples []float64, sampleRate int) []byte {
	const blockAlign = Channels * BitsPerSample / 8

	dataSize := len(samples) * blockAlign
	buf := make([]byte, HeaderSize+dataSize)

	// RIFF header
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(HeaderSize+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt subchunk
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(buf[20:22], formatPCM)
	binary.LittleEndian.PutUint16(buf[22:24], Channels)
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], BitsPerSample)

	// data subchunk
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	for i, s := range samples {
		buf[HeaderSize+i] = SampleByte(s)
	}
	return buf
}

// SampleByte maps a sample to its unsigned 8-bit value,
// round(v*255 + 127.5) & 0xFF.
func SampleByte(v float64) byte {
	return byte(int(math.Round(v*255+127.5)) & 0xFF)
}
