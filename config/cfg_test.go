package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_Defaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}

	conv := cfg.Conversion
	if conv.Width != 1920 || conv.Height != 1080 {
		t.Errorf("frame = %dx%d, want 1920x1080", conv.Width, conv.Height)
	}
	if conv.Ruby {
		t.Error("ruby lines must be off by default")
	}
	if !conv.BOM {
		t.Error("BOM must be on by default")
	}
	if conv.FontFallback {
		t.Error("font fallback must be off by default")
	}
	if conv.OutputNameTemplate != "" {
		t.Errorf("OutputNameTemplate = %q, want empty", conv.OutputNameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `version: 1
conversion:
  width: 3996
  height: 2160
  ruby: true
  bom: false
  output_name_template: "{{ .Title | lower }}_r{{ .Reel }}"
  file_name_transliterate: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(dir, "logs", "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	conv := cfg.Conversion
	if conv.Width != 3996 || conv.Height != 2160 {
		t.Errorf("frame = %dx%d, want 3996x2160", conv.Width, conv.Height)
	}
	if !conv.Ruby || conv.BOM || !conv.FileNameTransliterate {
		t.Errorf("flags not loaded: %+v", conv)
	}
	// template must survive expansion untouched
	if conv.OutputNameTemplate != "{{ .Title | lower }}_r{{ .Reel }}" {
		t.Errorf("OutputNameTemplate = %q", conv.OutputNameTemplate)
	}
	// untouched values keep defaults
	if conv.FontFallback {
		t.Error("FontFallback should keep default")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); err != nil {
		t.Errorf("log directory should be created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nconversion:\n  width: 10\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown nested field", "version: 1\nconversion:\n  depth: 3\n"},
		{"wrong version", "version: 2\n"},
		{"zero width", "version: 1\nconversion:\n  width: 0\n"},
		{"negative height", "version: 1\nconversion:\n  height: -1080\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"bad template", "version: 1\nconversion:\n  output_name_template: \"{{ .Title \"\n"},
		{"unknown template function", "version: 1\nconversion:\n  output_name_template: \"{{ nosuchfunc .Title }}\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfiguration() expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nonexistent.yaml")); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "output_name_template:") {
		t.Error("prepared configuration misses conversion section")
	}
	cfg := &Config{}
	if err := decode(data, cfg); err != nil {
		t.Fatalf("Prepared config cannot be decoded: %v", err)
	}
	if err := check(cfg); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Conversion.Width = 2048
	cfg.Conversion.OutputNameTemplate = "{{ .ID }}"

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	loaded := &Config{}
	if err := decode(data, loaded); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if err := check(loaded); err != nil {
		t.Fatalf("Dumped config is not valid: %v", err)
	}
	if loaded.Conversion != cfg.Conversion {
		t.Errorf("conversion after dump/load = %+v, want %+v", loaded.Conversion, cfg.Conversion)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"reel 1", "reel 1"},
		{"a/b", "ab"},
		{"tab\there", "tabhere"},
		{"  ", "_bad_file_name_"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
