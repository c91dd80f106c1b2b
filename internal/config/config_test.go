package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.CSS.Style != "" {
		t.Errorf("CSS.Style = %q, want empty", cfg.CSS.Style)
	}
	if cfg.Katex.Version != "" {
		t.Errorf("Katex.Version = %q, want empty", cfg.Katex.Version)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", fieldName: "test", value: "", maxLength: 10, wantErr: false},
		{name: "value at limit is valid", fieldName: "test", value: "1234567890", maxLength: 10, wantErr: false},
		{name: "value over limit returns error", fieldName: "test.field", value: "12345678901", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength(tt.fieldName, tt.value, tt.maxLength)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), tt.fieldName) {
					t.Errorf("error %q should name field %q", err, tt.fieldName)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default config valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid page size",
			mutate: func(c *Config) { c.Page.Size = "a4" },
		},
		{
			name:   "page size case insensitive",
			mutate: func(c *Config) { c.Page.Size = "Letter" },
		},
		{
			name:    "invalid page size",
			mutate:  func(c *Config) { c.Page.Size = "tabloid" },
			wantErr: "page.size",
		},
		{
			name:   "valid orientation",
			mutate: func(c *Config) { c.Page.Orientation = "landscape" },
		},
		{
			name:    "invalid orientation",
			mutate:  func(c *Config) { c.Page.Orientation = "diagonal" },
			wantErr: "page.orientation",
		},
		{
			name:    "oversized title rejected",
			mutate:  func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: "document.title",
		},
		{
			name:    "oversized katex URL rejected",
			mutate:  func(c *Config) { c.Katex.StylesheetURL = strings.Repeat("u", MaxURLLength+1) },
			wantErr: "katex.stylesheetUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns error", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid config file loads", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cfg.yaml")
		content := `
document:
  title: Lecture notes
css:
  style: default
katex:
  version: "0.16.11"
page:
  size: a4
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Document.Title != "Lecture notes" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "Lecture notes")
		}
		if cfg.Katex.Version != "0.16.11" {
			t.Errorf("Katex.Version = %q, want %q", cfg.Katex.Version, "0.16.11")
		}
		if cfg.Page.Size != "a4" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "a4")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cfg.yaml")
		if err := os.WriteFile(path, []byte("nonsense: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected after parse", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cfg.yaml")
		if err := os.WriteFile(path, []byte("page:\n  size: huge\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "page.size") {
			t.Errorf("error = %v, want page.size validation error", err)
		}
	})
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"myconfig", false},
		{"./myconfig.yaml", true},
		{"/etc/mdkatex.yaml", true},
		{`C:\cfg.yaml`, true},
	}

	for _, tt := range tests {
		if got := isFilePath(tt.input); got != tt.want {
			t.Errorf("isFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
