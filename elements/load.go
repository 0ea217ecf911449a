/*
 * load.go, part of gosld.
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

package elements

import (
	"bytes"
	_ "embed"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

//go:embed data/elements.yaml
var builtin []byte

//Natural abundances must add up to 1 within this tolerance.
//Smaller deviations are normalized away.
const abundanceTolerance = 1e-3

type fileIsotope struct {
	A          int     `yaml:"a"`
	Mass       float64 `yaml:"mass"`
	Abundance  float64 `yaml:"abundance"`
	Bcoh       float64 `yaml:"bcoh"`
	Binc       float64 `yaml:"binc"`
	Absorption float64 `yaml:"absorption"`
}

type fileElement struct {
	Symbol   string        `yaml:"symbol"`
	Name     string        `yaml:"name"`
	Z        int           `yaml:"z"`
	Isotopes []fileIsotope `yaml:"isotopes"`
	Xray     [][]float64   `yaml:"xray"`
}

type fileDatabase struct {
	Elements []fileElement `yaml:"elements"`
}

var (
	defaultOnce sync.Once
	defaultDB   *Database
	defaultErr  error
)

//Default returns the built-in database. It is parsed only once, the same
//*Database is returned to every caller.
func Default() (*Database, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = Load(bytes.NewReader(builtin))
		if err, ok := defaultErr.(*Error); ok {
			err.Decorate("Default")
		}
	})
	return defaultDB, defaultErr
}

//MustDefault is like Default but panics if the built-in data can't be
//loaded. Without a database nothing else in goSLD can work.
func MustDefault() *Database {
	db, err := Default()
	if err != nil {
		panic(err.Error())
	}
	return db
}

//LoadFile reads a database from the YAML file name.
func LoadFile(name string) (*Database, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, invalidData("LoadFile", "can't open %s: %v", name, err)
	}
	defer f.Close()
	db, err := Load(f)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Decorate("LoadFile: " + name)
		}
		return nil, err
	}
	return db, nil
}

//Load reads a YAML element database from r and validates it.
//Abundances are normalized to add up to exactly 1 for each element.
func Load(r io.Reader) (*Database, error) {
	var raw fileDatabase
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, invalidData("Load", "can't decode element data: %v", err)
	}
	if len(raw.Elements) == 0 {
		return nil, invalidData("Load", "no elements in data")
	}
	db := &Database{elements: make(map[string]*Element, len(raw.Elements))}
	for _, v := range raw.Elements {
		e, err := buildElement(v)
		if err != nil {
			err.Decorate("Load")
			return nil, err
		}
		if _, ok := db.elements[e.Symbol]; ok {
			return nil, invalidData("Load", "element %s defined twice", e.Symbol)
		}
		db.elements[e.Symbol] = e
		db.symbols = append(db.symbols, e.Symbol)
	}
	sort.Strings(db.symbols)
	return db, nil
}

func validSymbol(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func buildElement(v fileElement) (*Element, *Error) {
	if !validSymbol(v.Symbol) {
		return nil, invalidData("buildElement", "invalid element symbol '%s'", v.Symbol)
	}
	if v.Z <= 0 {
		return nil, invalidData("buildElement", "%s: atomic number must be positive", v.Symbol)
	}
	e := &Element{Symbol: v.Symbol, Name: v.Name, Z: v.Z}
	seen := make(map[int]bool, len(v.Isotopes))
	abundances := make([]float64, 0, len(v.Isotopes))
	for _, i := range v.Isotopes {
		if i.A <= 0 || seen[i.A] {
			return nil, invalidData("buildElement", "%s: invalid or repeated mass number %d", v.Symbol, i.A)
		}
		seen[i.A] = true
		if i.Mass <= 0 {
			return nil, invalidData("buildElement", "%s[%d]: isotopic mass must be positive", v.Symbol, i.A)
		}
		if i.Abundance < 0 || i.Abundance > 1 {
			return nil, invalidData("buildElement", "%s[%d]: abundance %g out of range", v.Symbol, i.A, i.Abundance)
		}
		iso := Isotope{A: i.A, Mass: i.Mass, Abundance: i.Abundance, Bcoh: i.Bcoh, Binc: i.Binc, Absorption: i.Absorption}
		e.isotopes = append(e.isotopes, iso)
		if iso.Natural() {
			abundances = append(abundances, iso.Abundance)
		}
	}
	sort.Slice(e.isotopes, func(i, j int) bool { return e.isotopes[i].A < e.isotopes[j].A })
	total := floats.Sum(abundances)
	if total == 0 {
		return nil, invalidData("buildElement", "%s: no natural isotopes", v.Symbol)
	}
	if math.Abs(total-1) > abundanceTolerance {
		return nil, invalidData("buildElement", "%s: natural abundances add up to %g", v.Symbol, total)
	}
	if math.Abs(total-1) > 1e-6 {
		log.Printf("goSLD/elements.Load: %s natural abundances add up to %g, normalizing", v.Symbol, total)
	}
	for k, iso := range e.isotopes {
		if !iso.Natural() {
			continue
		}
		iso.Abundance /= total
		e.isotopes[k] = iso
		e.natural = append(e.natural, iso)
		e.mass += iso.Abundance * iso.Mass
	}
	xray, err := buildXray(v.Symbol, v.Xray)
	if err != nil {
		return nil, err
	}
	e.xray = xray
	return e, nil
}

//buildXray accepts rows of either 3 (energy, f', f'') or 5 (plus coherent
//and incoherent cross sections) numbers. Repeated energies keep the last row.
func buildXray(symbol string, rows [][]float64) ([]XraySample, *Error) {
	samples := make([]XraySample, 0, len(rows))
	for k, r := range rows {
		if len(r) != 3 && len(r) != 5 {
			return nil, invalidData("buildXray", "%s: X-ray row %d has %d values", symbol, k, len(r))
		}
		if r[0] <= 0 {
			return nil, invalidData("buildXray", "%s: X-ray row %d has non-positive energy", symbol, k)
		}
		s := XraySample{Energy: r[0], Fp: r[1], Fpp: r[2]}
		if len(r) == 5 {
			s.Coherent = r[3]
			s.Incoherent = r[4]
		}
		samples = append(samples, s)
	}
	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Energy < samples[j].Energy })
	ret := samples[:0]
	for _, s := range samples {
		if n := len(ret); n > 0 && ret[n-1].Energy == s.Energy {
			log.Printf("goSLD/elements.Load: duplicate X-ray sample for %s at %g eV, overwritten", symbol, s.Energy)
			ret[n-1] = s
			continue
		}
		ret = append(ret, s)
	}
	if len(ret) < 2 {
		return nil, invalidData("buildXray", "%s: at least 2 X-ray samples needed, got %d", symbol, len(ret))
	}
	return ret, nil
}
