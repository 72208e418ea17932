package fonts

import (
	"fmt"
	"log"

	"golang.org/x/image/font/gofont/goregular"
)

const (
	DefaultFontName = "GoRegular"
	DefaultFontSize = 32
)

// Manager owns the fonts loaded for a window.
type Manager struct {
	fonts map[string]*Font
}

func NewManager() *Manager {
	return &Manager{fonts: make(map[string]*Font)}
}

// Init registers the default font.
func (m *Manager) Init() error {
	f, err := NewFont(DefaultFontName, goregular.TTF, DefaultFontSize)
	if err != nil {
		return err
	}
	m.Add(f)
	return nil
}

// Add registers f, closing any font previously held under the same name.
func (m *Manager) Add(f *Font) *Font {
	if m.fonts == nil {
		m.fonts = make(map[string]*Font)
	}
	if old, ok := m.fonts[f.Name()]; ok && old != f {
		old.Close()
	}
	m.fonts[f.Name()] = f
	return f
}

// Get returns the font registered under name, or nil.
func (m *Manager) Get(name string) *Font {
	return m.fonts[name]
}

// Default returns the font registered by Init.
func (m *Manager) Default() *Font {
	return m.fonts[DefaultFontName]
}

func (m *Manager) Len() int { return len(m.fonts) }

// Clean closes every font.
func (m *Manager) Clean() {
	for name, f := range m.fonts {
		if err := f.Close(); err != nil {
			log.Printf("Error closing font %s: %v", name, err)
		}
		delete(m.fonts, name)
	}
}

// Load parses data and registers it under name.
func (m *Manager) Load(name string, data []byte, size float64) (*Font, error) {
	f, err := NewFont(name, data, size)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return m.Add(f), nil
}
