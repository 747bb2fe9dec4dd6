package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays cues through the system speaker. Until Init succeeds every
// Play is silently dropped.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager with a master volume in [0, 1].
func NewManager(volume float64) *Manager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer. Calling it twice is a no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play queues a cue on the mixer and returns immediately.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.volume == 0 {
		return
	}
	s := CueSound(c, sampleRate, m.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing cue.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.mixer.Clear()
	m.initialized = false
}
