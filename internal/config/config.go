// Package config loads wave field descriptions from TOML or YAML files and
// applies key=value overrides on top of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wavefield/internal/field"
	"wavefield/internal/wave"
)

// ErrFormat reports a config file whose extension has no decoder.
var ErrFormat = errors.New("config: unsupported format")

// File is the on-disk description of a wave field.
type File struct {
	X       wave.WaveFormParameters `toml:"x" yaml:"x"`
	Y       wave.WaveFormParameters `toml:"y" yaml:"y"`
	XLength int                     `toml:"xLength" yaml:"xLength"`
	YLength int                     `toml:"yLength" yaml:"yLength"`
	Workers int                     `toml:"workers,omitempty" yaml:"workers,omitempty"`
}

// Default returns a 64x64 grid with every wave at its defaults.
func Default() File {
	return File{XLength: 64, YLength: 64, Workers: 1}
}

// Field converts f into a field.Config.
func (f File) Field() field.Config {
	return field.Config{X: f.X, Y: f.Y, XLength: f.XLength, YLength: f.YLength}
}

// Load reads path on top of Default. The decoder is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return Decode(filepath.Ext(path), data)
}

// Decode parses data in the format named by ext on top of Default.
func Decode(ext string, data []byte) (File, error) {
	f := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return f, nil
}

// Encode renders f in the format named by ext.
func Encode(ext string, f File) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(f)
	case ".yaml", ".yml":
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// ApplyOverrides applies flag-style key/value pairs. Keys are xLength,
// yLength, workers or a wave parameter key such as x.sin.period. Pairs are
// applied in key order so the result does not depend on map iteration.
func (f *File) ApplyOverrides(cfg map[string]string) error {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := cfg[k]
		switch k {
		case "xLength", "yLength", "workers":
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			switch k {
			case "xLength":
				f.XLength = n
			case "yLength":
				f.YLength = n
			default:
				f.Workers = n
			}
		default:
			key, err := wave.ParseKey(k)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			val, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("config: %s: %w", k, err)
			}
			p := wave.SetValue(key, val)(wave.Parameters{X: f.X, Y: f.Y})
			f.X, f.Y = p.X, p.Y
		}
	}
	return nil
}

// ParsePairs splits "key=value" strings into a map. Later pairs win.
func ParsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("config: malformed override %q, want key=value", pair)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
