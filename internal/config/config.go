package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elliotjreed/idgen/internal/format"
	"github.com/elliotjreed/idgen/internal/generator"
)

const (
	// AllKeyword selects the full default list for formats or ID types.
	AllKeyword = "all"

	DefaultRows           = 100
	DefaultFilesPerFormat = 1
	DefaultOutputDir      = "."
)

// Config represents a generation run, as read from a YAML/JSON file and flags.
type Config struct {
	Formats        []string `yaml:"formats" json:"formats"`                           // Output formats, in generation order
	Rows           int      `yaml:"rows" json:"rows"`                                 // Requested rows per file
	IDTypes        []string `yaml:"id_types" json:"id_types"`                         // Enabled identifier types, in round-robin order
	FilesPerFormat int      `yaml:"files_per_format" json:"files_per_format"`         // Files generated per format
	OutputDir      string   `yaml:"output_dir,omitempty" json:"output_dir,omitempty"` // Directory artifacts are written to
	Seed           int64    `yaml:"seed,omitempty" json:"seed,omitempty"`             // 0 = random
}

// Default returns a new Config with every format and ID type enabled.
func Default() *Config {
	return &Config{
		Formats:        format.Names(),
		Rows:           DefaultRows,
		IDTypes:        defaultIDTypes(),
		FilesPerFormat: DefaultFilesPerFormat,
		OutputDir:      DefaultOutputDir,
	}
}

func defaultIDTypes() []string {
	types := generator.AllTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// ParseList splits a comma-separated flag value. Empty items are dropped.
// Returns nil only for "all", meaning the default list should be used; a blank
// value gives an empty, non-nil list.
func ParseList(value string) []string {
	if strings.TrimSpace(value) == AllKeyword {
		return nil
	}

	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// SetFormats replaces the format list. "all" restores the defaults.
func (c *Config) SetFormats(value string) {
	if formats := ParseList(value); formats != nil {
		c.Formats = formats
		return
	}
	c.Formats = format.Names()
}

// SetIDTypes replaces the ID type list. "all" restores the defaults.
func (c *Config) SetIDTypes(value string) {
	if types := ParseList(value); types != nil {
		c.IDTypes = types
		return
	}
	c.IDTypes = defaultIDTypes()
}

// Load reads and parses a configuration file (YAML or JSON).
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, cfg); err != nil {
			cfg = Default()
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config (tried YAML and JSON)")
			}
		}
	}

	cfg.normaliseLists()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// normaliseLists expands a single "all" entry into the default list.
func (c *Config) normaliseLists() {
	if len(c.Formats) == 1 && c.Formats[0] == AllKeyword {
		c.Formats = format.Names()
	}
	if len(c.IDTypes) == 1 && c.IDTypes[0] == AllKeyword {
		c.IDTypes = defaultIDTypes()
	}
}

// Validate checks that the configuration is valid. Unknown formats are not an
// error here; they are reported and skipped during export.
func (c *Config) Validate() error {
	if c.Rows < 1 {
		return fmt.Errorf("rows must be a positive integer, got %d", c.Rows)
	}
	if c.FilesPerFormat < 1 {
		return fmt.Errorf("files_per_format must be a positive integer, got %d", c.FilesPerFormat)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one format is required")
	}

	if _, err := c.IdentifierTypes(); err != nil {
		return err
	}

	return nil
}

// IdentifierTypes returns the enabled ID types in order, without duplicates.
func (c *Config) IdentifierTypes() ([]generator.IdentifierType, error) {
	return generator.ParseTypes(c.IDTypes)
}

// Save writes the configuration to a file in YAML or JSON format.
// The format is determined by the file extension.
func (c *Config) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	var data []byte
	var err error

	switch ext {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		// Default to YAML
		data, err = yaml.Marshal(c)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
