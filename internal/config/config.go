// github.com/marcelsimader/septex - a library for writing LaTeX and TikZ documents
// Copyright (C) 2026  Marcel Simader
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the CLI's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the CLI defaults.
type Config struct {
	// Engine is the TeX engine used for PDF conversion.
	Engine string `toml:"engine"`
	// WrapColumn is the soft-wrap column for generated documents; 0
	// disables wrapping.
	WrapColumn int `toml:"wrap_column"`
	// KeepAux retains auxiliary files after conversion.
	KeepAux bool `toml:"keep_aux"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine:     "pdflatex",
		WrapColumn: 100,
	}
}

// Path returns the standard location of the config file, below the XDG
// config directory.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "septex", "config.toml")
}

// Load reads the config file at path, or the standard location when path is
// empty.  A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.Engine == "" {
		cfg.Engine = Default().Engine
	}
	if cfg.WrapColumn < 0 {
		return nil, fmt.Errorf("config %q: wrap_column must not be negative", path)
	}
	return cfg, nil
}
