/*
 * config_test.go, part of gosld.
 *
 *
 * Copyright 2026 The goSLD authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gosld/calc"
)

func TestMissing(Te *testing.T) {
	dir := Te.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		Te.Fatal(err)
	}
	expected := calc.Inputs{Density: 1, Energy: 8.0478, Wavelength: 1.798}
	if cfg.Inputs() != expected {
		Te.Errorf("inputs %v, expected %v", cfg.Inputs(), expected)
	}
	if cfg.Aliases != filepath.Join(dir, "aliases.txt") || cfg.Elements != "" {
		Te.Errorf("unexpected paths %q %q", cfg.Aliases, cfg.Elements)
	}
}

func TestLoad(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "density: 1.107\nwavelength: 6\naliases: my/aliases.db\nelements: /opt/elements.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		Te.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.Density != 1.107 || cfg.Energy != DefaultEnergy || cfg.Wavelength != 6 {
		Te.Errorf("unexpected inputs %v", cfg.Inputs())
	}
	if cfg.Aliases != filepath.Join(dir, "my", "aliases.db") || cfg.Elements != "/opt/elements.yaml" {
		Te.Errorf("unexpected paths %q %q", cfg.Aliases, cfg.Elements)
	}
}

func TestInvalid(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("density: -2\n"), 0o644)
	if _, err := Load(path); !errors.Is(err, calc.ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	os.WriteFile(path, []byte("density: [1, 2]\n"), 0o644)
	if _, err := Load(path); err == nil {
		Te.Error("a malformed file should not load")
	}
}

func TestSave(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "gosld", "config.yaml")
	cfg := Default("/somewhere")
	cfg.Energy = 17.4793
	if err := Save(path, cfg); err != nil {
		Te.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		Te.Fatal(err)
	}
	if *back != *cfg {
		Te.Errorf("got %+v, expected %+v", *back, *cfg)
	}
	cfg.Aliases = "s3://lab/gosld/aliases.zst?region=eu-west-1"
	if err := Save(path, cfg); err != nil {
		Te.Fatal(err)
	}
	if back, err = Load(path); err != nil || back.Aliases != cfg.Aliases {
		Te.Errorf("URL aliases changed to %q: %v", back.Aliases, err)
	}
	if err := Save(path, nil); err == nil {
		Te.Error("saving a nil config should fail")
	}
}
