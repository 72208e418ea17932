package graphics

import (
	"fmt"
	"log"
	"sort"
)

// TextureManager owns named textures for the lifetime of a window.
type TextureManager struct {
	textures map[string]*Texture
}

func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[string]*Texture)}
}

// Init prepares the manager. Textures need a loaded device, so there is
// nothing to allocate up front.
func (m *TextureManager) Init() error {
	if m.textures == nil {
		m.textures = make(map[string]*Texture)
	}
	return nil
}

// Add registers t under its name. A texture already registered under the
// same name is destroyed and replaced.
func (m *TextureManager) Add(t *Texture) (*Texture, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot add a nil texture")
	}
	if m.textures == nil {
		m.textures = make(map[string]*Texture)
	}
	if old, ok := m.textures[t.Name()]; ok && old != t {
		log.Printf("TextureManager: replacing texture %s", t.Name())
		old.Destroy()
	}
	m.textures[t.Name()] = t
	return t, nil
}

// Get returns the texture registered under name, or nil.
func (m *TextureManager) Get(name string) *Texture {
	return m.textures[name]
}

// Names returns the registered texture names in sorted order.
func (m *TextureManager) Names() []string {
	names := make([]string, 0, len(m.textures))
	for name := range m.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *TextureManager) Len() int { return len(m.textures) }

// Clean destroys every registered texture.
func (m *TextureManager) Clean() {
	for name, t := range m.textures {
		t.Destroy()
		delete(m.textures, name)
	}
}
