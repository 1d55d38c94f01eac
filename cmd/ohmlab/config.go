// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ohmlab/circuit"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/result"
)

// defaultConfigFile is read from the working directory when --config is unset.
const defaultConfigFile = "ohmlab.yaml"

// Config is the ohmlab.yaml document. Flags override file values.
type Config struct {
	MaxFractionLen int    `yaml:"max_fraction_len"`
	Precision      int    `yaml:"precision"`
	Backend        string `yaml:"backend"`
	Output         string `yaml:"output"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

func defaultConfig() Config {
	return Config{
		MaxFractionLen: result.DefaultMaxFractionLen,
		Precision:      result.DefaultPrecision,
		Backend:        mna.BackendGaussJordan.String(),
		Output:         "table",
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// loadConfig overlays path onto the defaults. A missing default file is not
// an error; a missing explicit one is.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// circuitOptions validates cfg and turns it into facade options.
func (c Config) circuitOptions(log *slog.Logger) ([]circuit.Option, error) {
	b, err := mna.ParseBackend(c.Backend)
	if err != nil {
		return nil, err
	}
	if c.MaxFractionLen < 1 {
		return nil, fmt.Errorf("max_fraction_len must be >= 1, got %d", c.MaxFractionLen)
	}
	if c.Precision < 0 || c.Precision > 15 {
		return nil, fmt.Errorf("precision must be in [0, 15], got %d", c.Precision)
	}
	return []circuit.Option{
		circuit.WithLogger(log),
		circuit.WithBackend(b),
		circuit.WithMaxFractionLen(c.MaxFractionLen),
		circuit.WithPrecision(c.Precision),
	}, nil
}

// newLogger builds the slog logger described by level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
