package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"mxc/common"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.ShowLength != common.ShowLengthNormal {
		t.Errorf("ShowLength = %v, want normal", doc.ShowLength)
	}
	if doc.Zoom != 100 {
		t.Errorf("Zoom = %d, want 100", doc.Zoom)
	}
	if doc.FontSize != 12 || doc.MinFontSize != 8 {
		t.Errorf("font sizes = %v/%v, want 12/8", doc.FontSize, doc.MinFontSize)
	}
	if doc.Labels != "user" {
		t.Errorf("Labels = %q, want user", doc.Labels)
	}
	if doc.Images.MaxWidth != 0 || doc.Images.MaxHeight != 0 {
		t.Errorf("image limits = %v x %v, want unlimited", doc.Images.MaxWidth, doc.Images.MaxHeight)
	}
	if doc.Render.PageWidth < 100 || doc.Render.DPI <= 0 {
		t.Errorf("Render = %+v", doc.Render)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "mxc.log") {
		t.Errorf("file log destination = %q not expanded", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
document:
  show_length: unlimited
  fix_zip: true
  zoom: 150
  font_size: 14
  labels: none
  images:
    max_width: 640
    max_height: 480
  render:
    page_width: 1024
    margin: 20
    gap: 4
    dpi: 72
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.ShowLength != common.ShowLengthUnlimited {
		t.Errorf("ShowLength = %v, want unlimited", doc.ShowLength)
	}
	if !doc.FixZip {
		t.Error("Expected FixZip to be true")
	}
	if doc.Zoom != 150 || doc.FontSize != 14 {
		t.Errorf("Zoom = %d, FontSize = %v", doc.Zoom, doc.FontSize)
	}
	if doc.Labels != "none" {
		t.Errorf("Labels = %q, want none", doc.Labels)
	}
	if doc.Images.MaxWidth != 640 || doc.Images.MaxHeight != 480 {
		t.Errorf("image limits = %v x %v", doc.Images.MaxWidth, doc.Images.MaxHeight)
	}
	if doc.Render != (RenderConfig{PageWidth: 1024, Margin: 20, Gap: 4, DPI: 72}) {
		t.Errorf("Render = %+v", doc.Render)
	}
	// not mentioned in the file, comes from defaults
	if doc.MinFontSize != 8 {
		t.Errorf("MinFontSize = %v, want 8", doc.MinFontSize)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file log mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ndocument:\n  fix_zip: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"invalid version", "version: 2\n"},
		{"bad show length", "version: 1\ndocument:\n  show_length: huge\n"},
		{"bad labels", "version: 1\ndocument:\n  labels: some\n"},
		{"min font above font", "version: 1\ndocument:\n  font_size: 6\n  min_font_size: 8\n"},
		{"zoom out of range", "version: 1\ndocument:\n  zoom: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("LoadConfiguration() error = nil")
			}
		})
	}

	t.Run("nonexistent file", func(t *testing.T) {
		if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.ShowLength = common.ShowLengthLong
	cfg.Document.FixZip = true

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "show_length: long") {
		t.Errorf("Dump() does not store enum by name:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Document != cfg.Document {
		t.Errorf("Document mismatch after dump/load: got %+v, want %+v", cfg2.Document, cfg.Document)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	data = []byte(strings.Replace(string(data), "version: 1\n", "version: 99\n", 1))

	_, err = unmarshalConfig(data, &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"sheet", "sheet"},
		{"plots/sheet", "plotssheet"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanFileName(tt.in); got != tt.want {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
