package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"mxc/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ImagesConfig struct {
		MaxWidth  float64 `yaml:"max_width" validate:"gte=0"`
		MaxHeight float64 `yaml:"max_height" validate:"gte=0"`
	}

	RenderConfig struct {
		PageWidth  int     `yaml:"page_width" validate:"min=100"`
		Margin     int     `yaml:"margin" validate:"gte=0"`
		Gap        int     `yaml:"gap" validate:"gte=0"`
		DPI        float64 `yaml:"dpi" validate:"gt=0"`
		Stylesheet string  `yaml:"stylesheet" validate:"omitempty,file"`
	}

	DocumentConfig struct {
		ShowLength                 common.ShowLength `yaml:"show_length"`
		FixZip                     bool              `yaml:"fix_zip"`
		FileNameTransliterate      bool              `yaml:"file_name_transliterate"`
		Zoom                       int               `yaml:"zoom" validate:"min=10,max=800"`
		FontSize                   float64           `yaml:"font_size" validate:"gt=0"`
		MinFontSize                float64           `yaml:"min_font_size" validate:"gt=0,ltefield=FontSize"`
		TeXExponentsAfterSubscript bool              `yaml:"tex_exponents_after_subscript"`
		Labels                     string            `yaml:"labels" validate:"oneof=automatic user none"`
		Images                     ImagesConfig      `yaml:"images"`
		Render                     RenderConfig      `yaml:"render"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
