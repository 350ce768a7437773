package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Format != OutputFmtText {
		t.Errorf("Default output format = %v, want text", cfg.Output.Format)
	}
	if !cfg.Output.IncludeHash {
		t.Error("Expected hash output to be enabled by default")
	}
	if !slices.Contains(cfg.Stylesheet.Media, "screen") {
		t.Errorf("Default media = %v, want screen included", cfg.Stylesheet.Media)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
stylesheet:
  media: ["print"]
  charset: windows-1251
output:
  format: yaml
  include_unset: true
logging:
  console:
    level: debug
  file:
    level: none
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != OutputFmtYaml {
		t.Errorf("Format = %v, want yaml", cfg.Output.Format)
	}
	if !cfg.Output.IncludeUnset {
		t.Error("Expected IncludeUnset to be true")
	}
	// not mentioned in the file - kept from defaults
	if !cfg.Output.IncludeHash {
		t.Error("Expected IncludeHash default to survive merge")
	}
	if len(cfg.Stylesheet.Media) != 1 || cfg.Stylesheet.Media[0] != "print" {
		t.Errorf("Media = %v, want [print]", cfg.Stylesheet.Media)
	}
	if cfg.Stylesheet.Charset != "windows-1251" {
		t.Errorf("Charset = %q", cfg.Stylesheet.Charset)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("Console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `version: 1
output:
  format: text
  invalid indent
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
`
	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"version":       "version: 2\n",
		"format":        "version: 1\noutput:\n  format: html\n",
		"console level": "version: 1\nlogging:\n  console:\n    level: loud\n",
		"empty media":   "version: 1\nstylesheet:\n  media: [\"\"]\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid_values.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected error for invalid value")
			}
		})
	}
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
	cfg.Output.Format = OutputFmtYaml

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() does not contain format as text:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("failed to load dumped config: %v", err)
	}
	if cfg2.Output != cfg.Output {
		t.Errorf("Output mismatch after dump/load: got %+v, want %+v", cfg2.Output, cfg.Output)
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
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestParseOutputFmt(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFmt
		wantErr bool
	}{
		{"text", OutputFmtText, false},
		{"YAML", OutputFmtYaml, false},
		{"html", OutputFmtText, true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFmt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFmt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidOutputFmt) {
			t.Errorf("ParseOutputFmt(%q) error = %v, want ErrInvalidOutputFmt", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOutputFmt(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	if OutputFmtText.Ext() != ".txt" || OutputFmtYaml.Ext() != ".yaml" {
		t.Errorf("unexpected extensions %q %q", OutputFmtText.Ext(), OutputFmtYaml.Ext())
	}
	if got := OutputFmtNames(); len(got) != 2 || got[0] != "text" || got[1] != "yaml" {
		t.Errorf("OutputFmtNames() = %v", got)
	}
}
