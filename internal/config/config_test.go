package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/elliotjreed/idgen/internal/generator"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Formats) != 9 {
		t.Errorf("len(Formats) = %d, want 9", len(cfg.Formats))
	}
	if cfg.Formats[0] != "csv" || cfg.Formats[8] != "tsv" {
		t.Errorf("Formats = %v, want csv first and tsv last", cfg.Formats)
	}
	if cfg.Rows != DefaultRows {
		t.Errorf("Rows = %d, want %d", cfg.Rows, DefaultRows)
	}
	if len(cfg.IDTypes) != 5 {
		t.Errorf("len(IDTypes) = %d, want 5", len(cfg.IDTypes))
	}
	if cfg.FilesPerFormat != DefaultFilesPerFormat {
		t.Errorf("FilesPerFormat = %d, want %d", cfg.FilesPerFormat, DefaultFilesPerFormat)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}

	t.Run("fresh lists per call", func(t *testing.T) {
		a := Default()
		a.Formats[0] = "changed"
		a.IDTypes[0] = "changed"
		b := Default()
		if b.Formats[0] != "csv" || b.IDTypes[0] != "Aadhar" {
			t.Error("Default() shares list storage between calls")
		}
	})
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"all", nil},
		{" all ", nil},
		{"csv", []string{"csv"}},
		{"csv,json", []string{"csv", "json"}},
		{"csv, json ,,xml", []string{"csv", "json", "xml"}},
		{"", []string{}},
		{" , ", []string{}},
		{",", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseList(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSetFormatsAndIDTypes(t *testing.T) {
	cfg := Default()

	cfg.SetFormats("csv,bogus")
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "bogus" {
		t.Errorf("Formats = %v, want [csv bogus]", cfg.Formats)
	}
	cfg.SetFormats("all")
	if len(cfg.Formats) != 9 {
		t.Errorf("Formats = %v, want all 9 formats", cfg.Formats)
	}

	cfg.SetIDTypes("PAN,Aadhar")
	if len(cfg.IDTypes) != 2 || cfg.IDTypes[0] != "PAN" {
		t.Errorf("IDTypes = %v, want [PAN Aadhar]", cfg.IDTypes)
	}
	cfg.SetIDTypes("all")
	if len(cfg.IDTypes) != 5 {
		t.Errorf("IDTypes = %v, want all 5 types", cfg.IDTypes)
	}
}

func TestSetIDTypes_Blank(t *testing.T) {
	for _, value := range []string{"", " , ", ","} {
		t.Run(value, func(t *testing.T) {
			cfg := Default()
			cfg.SetIDTypes(value)

			types, err := cfg.IdentifierTypes()
			var cfgErr *generator.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("IdentifierTypes() = %v, %v, want ConfigurationError", types, err)
			}
			if cfg.Validate() == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}

func TestSetFormats_Blank(t *testing.T) {
	for _, value := range []string{"", " , ", ","} {
		t.Run(value, func(t *testing.T) {
			cfg := Default()
			cfg.SetFormats(value)

			if len(cfg.Formats) != 0 {
				t.Fatalf("Formats = %v, want empty", cfg.Formats)
			}
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error for empty format list")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("YAML config", func(t *testing.T) {
		path := writeConfig(t, "idgen.yaml", `
formats: [csv, json]
rows: 50
id_types: [Aadhar, PAN]
files_per_format: 2
output_dir: out
seed: 42
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if len(cfg.Formats) != 2 || cfg.Formats[0] != "csv" || cfg.Formats[1] != "json" {
			t.Errorf("Formats = %v", cfg.Formats)
		}
		if cfg.Rows != 50 {
			t.Errorf("Rows = %d, want 50", cfg.Rows)
		}
		if len(cfg.IDTypes) != 2 {
			t.Errorf("IDTypes = %v", cfg.IDTypes)
		}
		if cfg.FilesPerFormat != 2 {
			t.Errorf("FilesPerFormat = %d, want 2", cfg.FilesPerFormat)
		}
		if cfg.OutputDir != "out" {
			t.Errorf("OutputDir = %q, want out", cfg.OutputDir)
		}
		if cfg.Seed != 42 {
			t.Errorf("Seed = %d, want 42", cfg.Seed)
		}
	})

	t.Run("JSON config", func(t *testing.T) {
		path := writeConfig(t, "idgen.json", `{"formats": ["xml"], "rows": 10}`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(cfg.Formats) != 1 || cfg.Formats[0] != "xml" {
			t.Errorf("Formats = %v", cfg.Formats)
		}
		if cfg.Rows != 10 {
			t.Errorf("Rows = %d, want 10", cfg.Rows)
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, "idgen.yml", "rows: 5\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(cfg.Formats) != 9 {
			t.Errorf("len(Formats) = %d, want 9", len(cfg.Formats))
		}
		if len(cfg.IDTypes) != 5 {
			t.Errorf("len(IDTypes) = %d, want 5", len(cfg.IDTypes))
		}
		if cfg.FilesPerFormat != 1 {
			t.Errorf("FilesPerFormat = %d, want 1", cfg.FilesPerFormat)
		}
	})

	t.Run("all keyword", func(t *testing.T) {
		path := writeConfig(t, "idgen.yaml", "formats: [all]\nid_types: [all]\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(cfg.Formats) != 9 || len(cfg.IDTypes) != 5 {
			t.Errorf("Formats = %v, IDTypes = %v", cfg.Formats, cfg.IDTypes)
		}
	})

	t.Run("unknown extension falls back", func(t *testing.T) {
		path := writeConfig(t, "idgen.conf", `{"rows": 7}`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Rows != 7 {
			t.Errorf("Rows = %d, want 7", cfg.Rows)
		}
	})

	t.Run("invalid ID type", func(t *testing.T) {
		path := writeConfig(t, "idgen.yaml", "id_types: [Foo]\n")
		_, err := Load(path)
		var cfgErr *generator.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Load() error = %v, want ConfigurationError", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		path := writeConfig(t, "idgen.yaml", "rows: [unclosed\n")
		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("Load() error = nil, want error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero rows", func(c *Config) { c.Rows = 0 }, true},
		{"negative rows", func(c *Config) { c.Rows = -1 }, true},
		{"zero files per format", func(c *Config) { c.FilesPerFormat = 0 }, true},
		{"no formats", func(c *Config) { c.Formats = nil }, true},
		{"unknown format is allowed", func(c *Config) { c.Formats = []string{"csv", "bogus"} }, false},
		{"no ID types", func(c *Config) { c.IDTypes = nil }, true},
		{"unknown ID type", func(c *Config) { c.IDTypes = []string{"Aadhar", "Foo"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIdentifierTypes(t *testing.T) {
	cfg := Default()
	cfg.IDTypes = []string{"Passport", "PAN", "Passport"}

	types, err := cfg.IdentifierTypes()
	if err != nil {
		t.Fatalf("IdentifierTypes() error = %v", err)
	}
	want := []generator.IdentifierType{generator.Passport, generator.PAN}
	if len(types) != len(want) {
		t.Fatalf("IdentifierTypes() = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("IdentifierTypes()[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestSave(t *testing.T) {
	cfg := Default()
	cfg.Formats = []string{"csv", "zip"}
	cfg.Rows = 20
	cfg.Seed = 99

	t.Run("save as YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "idgen.yaml")
		if err := cfg.Save(path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if loaded.Rows != 20 || loaded.Seed != 99 {
			t.Errorf("Rows = %d, Seed = %d, want 20, 99", loaded.Rows, loaded.Seed)
		}
		if len(loaded.Formats) != 2 || loaded.Formats[1] != "zip" {
			t.Errorf("Formats = %v", loaded.Formats)
		}
	})

	t.Run("save as JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "idgen.json")
		if err := cfg.Save(path); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if loaded.Rows != 20 {
			t.Errorf("Rows = %d, want 20", loaded.Rows)
		}
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "idgen.yaml")
		if err := cfg.Save(path); err == nil {
			t.Error("Save() error = nil, want error")
		}
	})
}
