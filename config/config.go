/*
 * config.go, part of gosld.
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

//Package config reads and writes the configuration file of the gosld
//command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/gosld/calc"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDensity  = 1.0
	DefaultEnergy   = 8.0478 //Cu K-alpha, keV
	dirName         = "gosld"
	fileName        = "config.yaml"
	aliasesFileName = "aliases.txt"
)

//Config matches config.yaml in the configuration directory.
type Config struct {
	Density    float64 `yaml:"density"`    //g/cm3
	Energy     float64 `yaml:"energy"`     //X-ray energy, keV
	Wavelength float64 `yaml:"wavelength"` //neutron wavelength, A
	Aliases    string  `yaml:"aliases"`    //alias store, see aliasstore.Open
	Elements   string  `yaml:"elements"`   //element data file. Empty for the built-in data
}

//Dir returns the configuration directory, $XDG_CONFIG_HOME/gosld on Linux.
func Dir() (string, error) {
	d, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, dirName), nil
}

//DefaultPath returns the path of the default configuration file.
func DefaultPath() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, fileName), nil
}

//Default returns the configuration used when there is no file. Aliases
//are kept in dir.
func Default(dir string) *Config {
	return &Config{
		Density:    DefaultDensity,
		Energy:     DefaultEnergy,
		Wavelength: calc.ThermalWavelength,
		Aliases:    filepath.Join(dir, aliasesFileName),
	}
}

//Load reads the configuration at path, or returns the defaults when
//there is no such file. Values missing from the file take their defaults,
//and a relative aliases or elements path is taken from the directory
//of the file. Aliases can also be a postgres:// or s3:// URL.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(dir), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("goSLD/config.Load: %s: %w", path, err)
	}
	def := Default(dir)
	if cfg.Density == 0 {
		cfg.Density = def.Density
	}
	if cfg.Energy == 0 {
		cfg.Energy = def.Energy
	}
	if cfg.Wavelength == 0 {
		cfg.Wavelength = def.Wavelength
	}
	if cfg.Aliases == "" {
		cfg.Aliases = def.Aliases
	} else if !filepath.IsAbs(cfg.Aliases) && !strings.Contains(cfg.Aliases, "://") {
		cfg.Aliases = filepath.Join(dir, cfg.Aliases)
	}
	if cfg.Elements != "" && !filepath.IsAbs(cfg.Elements) {
		cfg.Elements = filepath.Join(dir, cfg.Elements)
	}
	if err := cfg.Inputs().Validate(); err != nil {
		return nil, fmt.Errorf("goSLD/config.Load: %s: %w", path, err)
	}
	return &cfg, nil
}

//Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("goSLD/config.Save: config missing")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

//Inputs returns the calculation conditions in the configuration.
func (c *Config) Inputs() calc.Inputs {
	return calc.Inputs{Density: c.Density, Energy: c.Energy, Wavelength: c.Wavelength}
}
