package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/vectorlib/internal/core/observability/log"
	"github.com/zeusync/vectorlib/pkg/vector"
)

// Config describes the demo program. It can be written in YAML or JSON.
type Config struct {
	Log     LogConfig  `json:"log" yaml:"log"`
	Verbose bool       `json:"verbose" yaml:"verbose"`
	Demo    DemoConfig `json:"demo" yaml:"demo"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

type DemoConfig struct {
	Lerps []LerpStep `json:"lerps" yaml:"lerps"`
}

// LerpStep is one interpolation to run. A nil To scales From by Factor.
type LerpStep struct {
	From       vector.Vector2d[float64]  `json:"from" yaml:"from"`
	To         *vector.Vector2d[float64] `json:"to,omitempty" yaml:"to,omitempty"`
	Factor     float64                   `json:"factor" yaml:"factor"`
	Reciprocal bool                      `json:"reciprocal,omitempty" yaml:"reciprocal,omitempty"`
}

// Default returns the built-in demo: halfway from (0, 0) to (6, 6), then
// (6, 6) scaled by the reciprocal of 2.
func Default() *Config {
	to := vector.New(6.0, 6.0)
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Verbose: false,
		Demo: DemoConfig{
			Lerps: []LerpStep{
				{From: vector.Zero[float64](), To: &to, Factor: 0.5},
				{From: vector.New(6.0, 6.0), Factor: 2, Reciprocal: true},
			},
		},
	}
}

// Load reads the file at path, choosing the decoder by extension. An empty
// path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var c *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err = LoadJSON(f)
	default:
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// LoadJSON loads config from JSON reader. Missing keys keep their defaults.
// A demo.lerps list in the input replaces the default steps as a whole.
func LoadJSON(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var keys struct {
		Demo struct {
			Lerps json.RawMessage `json:"lerps"`
		} `json:"demo"`
	}
	if err = json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}

	c := Default()
	// encoding/json decodes array elements into existing ones, so the
	// default steps would leak into fields the input leaves out.
	if keys.Demo.Lerps != nil {
		c.Demo.Lerps = nil
	}
	if err = json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadYAML loads config from YAML reader. Missing keys keep their defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

// Validate reports every problem found in c.
func (c *Config) Validate() error {
	var all error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		all = errors.Join(all, err)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		all = errors.Join(all, fmt.Errorf("unknown log encoding %q", c.Log.Encoding))
	}
	for i, step := range c.Demo.Lerps {
		if step.Reciprocal && step.Factor == 0 {
			all = errors.Join(all, fmt.Errorf("demo.lerps[%d]: reciprocal lerp needs a non-zero factor", i))
		}
	}
	return all
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}
