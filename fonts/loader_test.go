package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"go.uber.org/zap/zaptest"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadName(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "fonts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fonts", "go.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(dir, zaptest.NewLogger(t))
	name, err := l.LoadName("fonts/go.ttf")
	if err != nil {
		t.Fatalf("LoadName() error = %v", err)
	}
	if name != "Go Regular" {
		t.Errorf("LoadName() = %q, want %q", name, "Go Regular")
	}
}

func TestLoadNameErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("definitely not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(dir, zaptest.NewLogger(t))

	if _, err := l.LoadName("missing.ttf"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := l.LoadName("notes.txt"); !errors.Is(err, ErrNotFont) {
		t.Errorf("text file error = %v", err)
	}
}

func TestPath(t *testing.T) {
	l := NewLoader("/subs", nil)
	if got := l.Path("a/b.ttf"); got != filepath.Join("/subs", "a", "b.ttf") {
		t.Errorf("Path() = %q", got)
	}
	abs := filepath.Join(t.TempDir(), "x.ttf")
	if got := l.Path(abs); got != abs {
		t.Errorf("Path(abs) = %q", got)
	}
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"reel1/fonts/go.ttf": &fstest.MapFile{Data: goregular.TTF},
		"reel1/readme.txt":   &fstest.MapFile{Data: []byte("readme")},
	}
	l := NewFSLoader(fsys, "reel1", zaptest.NewLogger(t))

	if got := l.Path("fonts/go.ttf"); got != "reel1/fonts/go.ttf" {
		t.Errorf("Path() = %q", got)
	}
	name, err := l.LoadName("fonts/go.ttf")
	if err != nil {
		t.Fatalf("LoadName() error = %v", err)
	}
	if name != "Go Regular" {
		t.Errorf("LoadName() = %q, want %q", name, "Go Regular")
	}
	if _, err := l.LoadName("readme.txt"); !errors.Is(err, ErrNotFont) {
		t.Errorf("text file error = %v", err)
	}
	if _, err := l.LoadName("../outside.ttf"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("outside file error = %v", err)
	}
}
