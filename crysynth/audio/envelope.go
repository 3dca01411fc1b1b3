package audio

// envelope steps a channel volume every |fade| frames.
type envelope struct {
	volume int
	fade   int
	period int // samples between steps, 0 when the envelope is off
}

func newEnvelope(volume, fade, framesPerChunk int) envelope {
	e := envelope{
		volume: clampVolume(volume),
		fade:   fade,
	}
	if fade != 0 {
		e.period = framesPerChunk * abs(fade)
	}
	return e
}

// tick is called after the note's sample at index has been emitted.
func (e *envelope) tick(index int) {
	if e.period == 0 || (index+1)%e.period != 0 {
		return
	}
	if e.fade < 0 {
		e.volume++
	} else {
		e.volume--
	}
	e.volume = clampVolume(e.volume)
}

func (e *envelope) audible() bool {
	return e.volume > 0
}

// sample converts a channel output bit into a sample. A high output maps to
// -volume/16 and a low output to +volume/16.
func sample(high bool, volume int) float64 {
	v := -float64(volume) / volumeScale
	if high {
		return v
	}
	return -v
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > maxVolume {
		return maxVolume
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
