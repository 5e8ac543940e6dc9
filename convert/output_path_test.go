package convert

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"cc2ass/cinecanvas"
	"cc2ass/config"
	"cc2ass/state"
)

func setupTestEnvForOutputPath(t *testing.T, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Conversion.FileNameTransliterate = transliterate
	cfg.Conversion.OutputNameTemplate = template
	return &state.LocalEnv{Log: zaptest.NewLogger(t), Cfg: cfg}
}

func testDocument() *cinecanvas.Document {
	return &cinecanvas.Document{
		ID:       "urn:uuid:0c2d9a6e-1111-4222-8333-444455556666",
		Title:    "Le Voyage: Été",
		Reel:     3,
		Language: "fr",
		Version:  "1.0",
		Fonts:    []*cinecanvas.FontFile{cinecanvas.NewFontFile("F1", "a.ttf"), cinecanvas.NewFontFile("F2", "b.ttf")},
	}
}

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.FromSlash("/output")
	tests := []struct {
		name          string
		src           string
		template      string
		transliterate bool
		want          string
	}{
		{"single file", "reel3.xml", "", false, "reel3.ass"},
		{"keeps directories", filepath.Join("movie", "reel3.xml"), "", false, filepath.Join("movie", "reel3.ass")},
		{"transliterated default", "Été 3.xml", "", true, "ete-3.ass"},
		{"template", "reel3.xml", "{{ .Language }}_{{ .Reel }}", false, "fr_3.ass"},
		{"template with directories", filepath.Join("dcp", "reel3.xml"), "{{ .Language }}/{{ .SourceFile }}", false, filepath.Join("dcp", "fr", "reel3.ass")},
		{"template transliterated", "reel3.xml", "{{ .Title }}", true, "le-voyage-ete.ass"},
		{"template id", "reel3.xml", "{{ .ID }}", false, "0c2d9a6e-1111-4222-8333-444455556666.ass"},
		{"template functions", "reel3.xml", `{{ join "+" .Fonts }}`, false, "F1+F2.ass"},
		{"parent segments neutralized", "reel3.xml", "../{{ .Reel }}", false, filepath.Join("_bad_file_name_", "3.ass")},
		{"empty expansion falls back", "reel3.xml", `{{ "" }}`, false, "reel3.ass"},
		{"failed expansion falls back", "reel3.xml", "{{ .Missing }}", false, "reel3.ass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.transliterate, tt.template)
			got := buildOutputPath(testDocument(), tt.src, dst, env)
			if want := filepath.Join(dst, tt.want); got != want {
				t.Errorf("buildOutputPath() = %q, want %q", got, want)
			}
		})
	}
}

func TestPathSegments(t *testing.T) {
	got := pathSegments("a//b/c/")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("pathSegments() = %q", got)
	}
	if got := pathSegments("/"); len(got) != 0 {
		t.Errorf("pathSegments(/) = %q", got)
	}
}

func TestExpandTemplate(t *testing.T) {
	doc := testDocument()
	doc.Subtitles = make([]cinecanvas.Subtitle, 4)

	got, err := expandTemplate(doc, filepath.Join("dir", "reel3.xml"), config.OutputNameTemplateFieldName,
		"{{ .Context }} {{ .Version }} {{ .Subtitles }} {{ .SourceFile }} {{ .Title | upper }}")
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if want := "output_name_template 1.0 4 reel3 LE VOYAGE: ÉTÉ"; got != want {
		t.Errorf("expandTemplate() = %q, want %q", got, want)
	}

	if _, err := expandTemplate(doc, "reel3.xml", config.OutputNameTemplateFieldName, "{{ .Title"); err == nil {
		t.Error("expandTemplate() expected parse error")
	}
}
