// Package pcm converts synthesized samples to playback rates and encodes
// them as 8-bit mono WAV.
package pcm

import "math"

// UnityVolume is the Resample volume that leaves amplitudes unchanged.
const UnityVolume = 256

// Resample converts data from fromRate to toRate by linear interpolation
// and scales it by volume/256. Reads past the end of data count as silence.
func Resample(fromRate, toRate int, data []float64, volume int) []float64 {
	if fromRate <= 0 || toRate <= 0 || len(data) == 0 {
		return []float64{}
	}

	ratio := float64(fromRate) / float64(toRate)
	length := int(math.Ceil(float64(len(data)) / ratio))
	factor := float64(volume) / UnityVolume

	at := func(i int) float64 {
		if i < 0 || i >= len(data) {
			return 0
		}
		return data[i]
	}

	out := make([]float64, length)
	for k := range out {
		pos := float64(k) * ratio
		index := int(math.Floor(pos))
		frac := pos - float64(index)
		out[k] = ((1-frac)*at(index) + frac*at(index+1)) * factor
	}
	return out
}
