package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	validator "github.com/go-playground/validator/v10"
	sprig "github.com/go-task/slim-sprig/v3"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ConversionConfig struct {
		Width                 int    `yaml:"width" validate:"min=1"`
		Height                int    `yaml:"height" validate:"min=1"`
		Ruby                  bool   `yaml:"ruby"`
		BOM                   bool   `yaml:"bom"`
		FontFallback          bool   `yaml:"font_fallback"`
		OutputNameTemplate    string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Conversion ConversionConfig `yaml:"conversion"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
}

// checkTemplates makes sure user supplied templates could be parsed before
// any document is touched.
func checkTemplates(sl validator.StructLevel) {
	conf, ok := sl.Current().Interface().(ConversionConfig)
	if !ok || conf.OutputNameTemplate == "" {
		return
	}
	if _, err := template.New(string(OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(conf.OutputNameTemplate); err != nil {
		sl.ReportError(conf.OutputNameTemplate, "OutputNameTemplate", "output_name_template", "template", err.Error())
	}
}

// decode overlays data on top of cfg, unknown fields are rejected.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("unable to decode configuration: %w", err)
	}
	return nil
}

// check sanitizes paths and validates final configuration.
func check(cfg *Config) error {
	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	if err := gencfg.Validate(cfg); err != nil {
		return err
	}
	return gencfg.Validate(cfg.Conversion, gencfg.WithAdditionalChecks(checkTemplates))
}

// LoadConfiguration expands embedded template to get defaults, overlays
// values from file at path (when given) and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	defaults, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to expand configuration template: %w", err)
	}

	cfg := &Config{}
	if err := decode(defaults, cfg); err != nil {
		return nil, fmt.Errorf("embedded configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read configuration file: %w", err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("configuration file '%s': %w", path, err)
		}
	}
	if err := check(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded embedded configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump returns effective configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to encode configuration: %w", err)
	}
	return data, nil
}
