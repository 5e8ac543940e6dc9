// Package fonts reads display names of font resources referenced by
// subtitle documents.
package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/image/font/sfnt"
)

// ErrNotFont is returned for resources which are not TrueType/OpenType data.
var ErrNotFont = errors.New("not a font resource")

var collectionTag = []byte("ttcf")

// Loader resolves font URIs relative to Root, either on disk or inside file
// system (archive).
type Loader struct {
	Root string
	fsys fs.FS
	log  *zap.Logger
}

func NewLoader(root string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{Root: root, log: log}
}

// NewFSLoader creates loader reading resources from fsys, root is slash
// separated directory inside it.
func NewFSLoader(fsys fs.FS, root string, log *zap.Logger) *Loader {
	l := NewLoader(root, log)
	l.fsys = fsys
	return l
}

// Path returns location of the resource.
func (l *Loader) Path(uri string) string {
	if l.fsys != nil {
		return path.Join(l.Root, uri)
	}
	if filepath.IsAbs(uri) {
		return uri
	}
	return filepath.Join(l.Root, filepath.FromSlash(uri))
}

func (l *Loader) read(name string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, name)
	}
	return os.ReadFile(name)
}

// LoadName returns full font name (name table id 4) of the resource, family
// name is used when full name is absent. For collections first font is used.
func (l *Loader) LoadName(uri string) (string, error) {
	loc := l.Path(uri)
	data, err := l.read(loc)
	if err != nil {
		return "", fmt.Errorf("unable to read font: %w", err)
	}

	name, err := Name(data)
	if err != nil {
		return "", fmt.Errorf("font %q: %w", loc, err)
	}
	l.log.Debug("Font loaded", zap.String("path", loc), zap.String("name", name))
	return name, nil
}

// Name extracts display name from font data.
func Name(data []byte) (string, error) {
	var (
		font *sfnt.Font
		err  error
	)
	switch {
	case bytes.HasPrefix(data, collectionTag):
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(data); err != nil {
			return "", err
		}
		if c.NumFonts() == 0 {
			return "", fmt.Errorf("%w: empty font collection", ErrNotFont)
		}
		font, err = c.Font(0)
	case filetype.IsFont(data):
		font, err = sfnt.Parse(data)
	default:
		kind, _ := filetype.Match(data)
		return "", fmt.Errorf("%w: detected %s", ErrNotFont, kind.MIME.Value)
	}
	if err != nil {
		return "", err
	}

	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFull, sfnt.NameIDFamily} {
		name, err := font.Name(&buf, id)
		if err == nil && name != "" {
			return name, nil
		}
		if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: font has no name", ErrNotFont)
}
