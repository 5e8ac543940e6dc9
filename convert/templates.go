package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"cc2ass/cinecanvas"
	"cc2ass/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Reel       int
	Language   string
	ID         string
	Version    string
	SourceFile string
	Subtitles  int
	Fonts      []string
}

func fontIDs(fonts []*cinecanvas.FontFile) []string {
	ids := make([]string, 0, len(fonts))
	for _, f := range fonts {
		ids = append(ids, f.ID)
	}
	return ids
}

func expandTemplate(doc *cinecanvas.Document, src string, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      doc.Title,
		Reel:       doc.Reel,
		Language:   doc.Language,
		ID:         strings.TrimPrefix(doc.ID, "urn:uuid:"),
		Version:    string(doc.Version),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Subtitles:  len(doc.Subtitles),
		Fonts:      fontIDs(doc.Fonts),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
