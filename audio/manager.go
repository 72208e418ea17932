package audio

import (
	"fmt"
	"log"
	"sync"
)

// DefaultSampleRate is the mixer rate used by the engine.
const DefaultSampleRate = 44100

// Manager mixes registered sounds into an Output and dispatches completion
// callbacks once per frame.
type Manager struct {
	out        Output
	sampleRate int

	mu     sync.Mutex
	sounds []*Sound
	byName map[string]*Sound
	open   bool
}

func NewManager(out Output, sampleRate int) *Manager {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Manager{
		out:        out,
		sampleRate: sampleRate,
		byName:     make(map[string]*Sound),
	}
}

func (m *Manager) SampleRate() int { return m.sampleRate }

// Init opens the output device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open {
		return nil
	}
	if err := m.out.Open(m.sampleRate, m.mix); err != nil {
		return fmt.Errorf("failed to open audio output: %w", err)
	}
	m.open = true
	log.Printf("Audio initialized at %d Hz", m.sampleRate)
	return nil
}

// Add registers s. A sound already registered under the same name is
// stopped and replaced.
func (m *Manager) Add(s *Sound) (*Sound, error) {
	if s == nil {
		return nil, fmt.Errorf("cannot add a nil sound")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.byName[s.Name()]; ok {
		if old == s {
			return s, nil
		}
		old.Stop()
		for i, existing := range m.sounds {
			if existing == old {
				m.sounds = append(m.sounds[:i], m.sounds[i+1:]...)
				break
			}
		}
	}
	m.byName[s.Name()] = s
	m.sounds = append(m.sounds, s)
	return s, nil
}

// Get returns the sound registered under name, or nil.
func (m *Manager) Get(name string) *Sound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byName[name]
}

// LoadFile decodes path, registers it under name and returns it.
func (m *Manager) LoadFile(name, path, ffmpegPath string) (*Sound, error) {
	samples, err := DecodeFile(path, m.sampleRate, ffmpegPath)
	if err != nil {
		return nil, err
	}
	return m.Add(NewSound(name, samples))
}

// Update fires the callbacks of sounds that finished since the last call.
// It runs on the caller's thread, never the output's.
func (m *Manager) Update() {
	m.mu.Lock()
	sounds := append([]*Sound(nil), m.sounds...)
	m.mu.Unlock()

	for _, s := range sounds {
		if cb, ok := s.takeFinished(); ok && cb != nil {
			cb()
		}
	}
}

// Clean stops every sound and closes the output. It is safe to call when
// Init never ran.
func (m *Manager) Clean() {
	m.mu.Lock()
	sounds := m.sounds
	m.sounds = nil
	m.byName = make(map[string]*Sound)
	wasOpen := m.open
	m.open = false
	m.mu.Unlock()

	for _, s := range sounds {
		s.Stop()
	}
	if wasOpen {
		if err := m.out.Close(); err != nil {
			log.Printf("Error closing audio output: %v", err)
		}
	}
}

// mix is the output callback.
func (m *Manager) mix(out []float32) {
	for i := range out {
		out[i] = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sounds {
		s.mixInto(out)
	}
	for i, v := range out {
		if v > 1 {
			out[i] = 1
		} else if v < -1 {
			out[i] = -1
		}
	}
}
