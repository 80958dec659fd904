package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/tape/interp"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "tape.yaml"

// Config holds the run settings shared by the tape commands.
type Config struct {
	// Prompt is written before each line of program input is read.
	Prompt string `yaml:"prompt"`
	// CellBits makes cells wrap modulo 2^CellBits. Zero means unbounded.
	CellBits uint `yaml:"cell_bits"`
	// Verbosity is the log level passed to commonlog.
	Verbosity int `yaml:"verbosity"`
	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Prompt: interp.DefaultPrompt,
	}
}

// Load reads the configuration in the current directory. A missing file
// yields the defaults.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads FileName from dir.
func LoadFrom(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads a configuration file. Keys absent from the file keep
// their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.CellBits {
	case 0, 8, 16, 32, 64:
	default:
		return fmt.Errorf("cell_bits must be 0, 8, 16, 32 or 64, got %d", c.CellBits)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
