package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestInitRegistersDefault(t *testing.T) {
	m := NewManager()
	if err := m.Init(); err != nil {
		t.Fatal(err)
	}
	f := m.Default()
	if f == nil {
		t.Fatal("expected a default font")
	}
	if f.Name() != DefaultFontName || f.Size() != DefaultFontSize {
		t.Fatalf("unexpected default font %s/%v", f.Name(), f.Size())
	}
	if f.LineHeight() <= 0 {
		t.Fatalf("expected a positive line height, got %v", f.LineHeight())
	}
}

func TestMeasure(t *testing.T) {
	m := NewManager()
	f, err := m.Load("mono", gomono.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	one := f.Measure("m")
	if one <= 0 {
		t.Fatalf("expected a positive width, got %v", one)
	}
	if three := f.Measure("mmm"); three < 2.9*one || three > 3.1*one {
		t.Fatalf("monospace widths do not add up: %v vs %v", three, one)
	}
	if f.Measure("") != 0 {
		t.Fatal("empty string should measure zero")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	m := NewManager()
	if _, err := m.Load("junk", []byte("not a font"), 12); err == nil {
		t.Fatal("expected a parse error")
	}
	if _, err := NewFont("zero", gomono.TTF, 0); err == nil {
		t.Fatal("expected an error for size 0")
	}
}

func TestCleanTolerantWhenEmpty(t *testing.T) {
	m := NewManager()
	m.Clean()

	if err := m.Init(); err != nil {
		t.Fatal(err)
	}
	m.Clean()
	if m.Len() != 0 || m.Default() != nil {
		t.Fatal("expected no fonts after Clean")
	}
}
