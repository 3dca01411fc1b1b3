package debug

// Peak is the sample range covered by one display column.
type Peak struct {
	Min float64
	Max float64
}

// Peaks reduces samples[offset:offset+columns*perColumn] to one peak per
// column. Columns past the end of the samples are zero.
func Peaks(samples []float64, offset, perColumn, columns int) []Peak {
	if columns <= 0 {
		return nil
	}
	peaks := make([]Peak, columns)
	if perColumn <= 0 {
		return peaks
	}
	offset = max(offset, 0)

	for col := range peaks {
		start := offset + col*perColumn
		if start >= len(samples) {
			break
		}
		end := min(start+perColumn, len(samples))

		p := Peak{Min: samples[start], Max: samples[start]}
		for _, s := range samples[start+1 : end] {
			p.Min = min(p.Min, s)
			p.Max = max(p.Max, s)
		}
		peaks[col] = p
	}
	return peaks
}

// FitPeaks reduces the whole of samples to the given number of columns.
func FitPeaks(samples []float64, columns int) []Peak {
	if columns <= 0 {
		return nil
	}
	perColumn := (len(samples) + columns - 1) / columns
	return Peaks(samples, 0, perColumn, columns)
}
