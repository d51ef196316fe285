// Package audio provides synthesized tone playback for the button's cues.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager synthesizes and plays short tones. Every entry point degrades to
// a silent no-op when the backend is unavailable; nothing here is fatal.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	masterVolume float64
	muted        bool

	mixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		masterVolume: 1.0,
		sampleRate:   DefaultSampleRate,
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the speaker. Idempotent.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Resume makes a best-effort attempt to bring the backend up before a cue.
// Repeated calls on an already-running or permanently broken backend are
// harmless no-ops.
func (m *Manager) Resume() {
	_ = m.Init()
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetMuted silences all cues without tearing the backend down.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// PlayTone synthesizes a tone of the given frequency, waveform, duration
// and volume, and plays it fire-and-forget. Dropped silently when the
// backend is down or the manager is muted.
func (m *Manager) PlayTone(freq float64, wave Waveform, duration, volume float64) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * clamp(volume, 0, 1)
	muted := m.muted
	m.mu.RUnlock()

	if !initialized || muted || vol <= 0 || duration <= 0 || freq <= 0 {
		return
	}

	tone := newTone(m.sampleRate, freq, wave, duration, vol)

	speaker.Lock()
	m.mixer.Add(tone)
	speaker.Unlock()
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
