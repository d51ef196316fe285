package audio

import (
	"math"

	"github.com/gopxl/beep/v2"
)

// Waveform selects the oscillator shape of a synthesized tone.
type Waveform string

// Supported waveforms.
const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveTriangle Waveform = "triangle"
	WaveSawtooth Waveform = "sawtooth"
)

// toneStreamer generates one decaying tone and then ends.
type toneStreamer struct {
	delta  float64 // phase increment per sample
	phase  float64
	wave   Waveform
	volume float64
	total  int
	pos    int
}

func newTone(sr beep.SampleRate, freq float64, wave Waveform, duration, volume float64) beep.Streamer {
	return &toneStreamer{
		delta:  freq / float64(sr),
		wave:   wave,
		volume: volume,
		total:  int(duration * float64(sr)),
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		// Linear decay envelope over the whole tone avoids end clicks.
		env := 1 - float64(t.pos)/float64(t.total)
		v := oscillate(t.wave, t.phase) * t.volume * env

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.delta
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
	}
	return len(samples), true
}

func (t *toneStreamer) Err() error { return nil }

// oscillate evaluates one waveform at phase in [0,1).
func oscillate(wave Waveform, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case WaveSawtooth:
		return 2*phase - 1
	default: // sine
		return math.Sin(2 * math.Pi * phase)
	}
}
