// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the engine's process-wide defaults from a TOML
// file: the float-equality epsilon, the default Grid/Juxtapose spacing,
// palette colour overrides, and the slog level. Grounded on the teacher's
// grows.Open/Read decoder-abstraction (reader-based, so the caller chooses
// a plain file, an fs.FS, or an in-memory buffer), adapted to one concrete
// format rather than a pluggable DecoderFunc, since this engine only ever
// speaks TOML.
package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cogentcore-labs/scenelayout/colorx"
	"github.com/cogentcore-labs/scenelayout/feature"
	"github.com/cogentcore-labs/scenelayout/geom"
)

// Config holds the engine defaults a deployment may want to override.
// Every field has a sane zero-value fallback applied by Default, so a
// partial TOML file (or none at all) is always usable.
type Config struct {
	// UnitEpsilon is the absolute tolerance geom.Vector3.Equal and
	// geom.Rotation.Equal compare within.
	UnitEpsilon float64 `toml:"unit_epsilon"`

	// DefaultSpacing seeds the Spacing feature's default when a TOML file
	// wants every new Grid/Juxtapose/Street to start from a non-zero gap
	// rather than touching each element's attributes individually.
	DefaultSpacing float64 `toml:"default_spacing"`

	// PaletteOverrides remaps palette names (e.g. "blue5") to literal
	// "RGBA(r,g,b,a)" / "(r,g,b)" strings, applied on top of the built-in
	// palette at Apply time.
	PaletteOverrides map[string]string `toml:"palette_overrides"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
}

// Default returns the engine's built-in defaults.
func Default() Config {
	return Config{
		UnitEpsilon:    1e-9,
		DefaultSpacing: 0,
		LogLevel:       "info",
	}
}

// Load reads and parses TOML from r into a Config seeded with Default(),
// so any field the document omits keeps its default value.
func Load(r io.Reader) (Config, error) {
	c := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return c, fmt.Errorf("config: read: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse: %w", err)
	}
	return c, nil
}

// LoadFile reads and parses a TOML config file from the local filesystem.
func LoadFile(filename string) (Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Default(), fmt.Errorf("config: open %q: %w", filename, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFS reads and parses a TOML config file out of fsys (e.g. an embed.FS
// bundled into a binary), mirroring the teacher's OpenFS convenience.
func LoadFS(fsys fs.FS, filename string) (Config, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return Default(), fmt.Errorf("config: open %q: %w", filename, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadBytes parses a TOML document already held in memory.
func LoadBytes(data []byte) (Config, error) {
	return Load(bytes.NewReader(data))
}

// Apply installs c's settings as process-wide defaults: geom.Epsilon, the
// slog default level, and any palette overrides. It does not touch
// already-constructed elements' own attribute values — DefaultSpacing
// only affects feature.NewSpacing's zero value going forward, which
// callers normally read before constructing their tree.
func (c Config) Apply() error {
	geom.Epsilon = c.UnitEpsilon
	feature.DefaultSpacingValue = c.DefaultSpacing

	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(level)

	for name, literal := range c.PaletteOverrides {
		col, err := colorx.Parse(literal)
		if err != nil {
			return fmt.Errorf("config: palette override %q: %w", name, err)
		}
		colorx.Override(name, col)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log_level %q", s)
	}
}
