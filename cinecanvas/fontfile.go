package cinecanvas

// FontLoader returns display name of the font resource referenced by uri.
type FontLoader interface {
	LoadName(uri string) (string, error)
}

// FontFile is a LoadFont declaration. Display name is resolved on first
// access and remembered, including failure.
type FontFile struct {
	ID  string
	URI string

	loaded bool
	name   string
	err    error
}

func NewFontFile(id, uri string) *FontFile {
	return &FontFile{ID: id, URI: uri}
}

// DisplayName returns name of the font as font renderers know it.
func (f *FontFile) DisplayName(loader FontLoader) (string, error) {
	if !f.loaded {
		f.name, f.err = loader.LoadName(f.URI)
		f.loaded = true
	}
	return f.name, f.err
}
