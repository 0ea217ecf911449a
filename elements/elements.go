/*
 * elements.go, part of gosld.
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

//Package elements holds the read-only element and isotope database used by
//goSLD: isotopic masses and abundances, bound neutron scattering lengths and
//absorption cross sections, and the energy-indexed X-ray tables (anomalous
//scattering coefficients and cross sections) of each element.
//
//A Database is built once, by Load or Default, and never modified afterwards,
//so it can be shared freely between goroutines.
package elements

import (
	"sort"
)

//Isotope holds the nuclear data of one isotope.
type Isotope struct {
	A          int     //mass number
	Mass       float64 //isotopic mass, u
	Abundance  float64 //natural abundance, fraction. 0 for non-natural isotopes.
	Bcoh       float64 //bound coherent scattering length, fm
	Binc       float64 //bound incoherent scattering length, fm
	Absorption float64 //absorption cross section for 2200 m/s (1.798 A) neutrons, barn
}

//Natural returns true if the isotope is part of the natural mixture.
func (I Isotope) Natural() bool {
	return I.Abundance > 0
}

//XraySample is one row of the X-ray table of an element.
type XraySample struct {
	Energy     float64 //eV
	Fp         float64 //f'
	Fpp        float64 //f''
	Coherent   float64 //barn/atom
	Incoherent float64 //barn/atom
}

//Element is a chemical element with its isotopes and X-ray table.
type Element struct {
	Symbol   string
	Name     string
	Z        int
	isotopes []Isotope //sorted by mass number
	natural  []Isotope
	mass     float64
	xray     []XraySample //sorted by energy
}

//Mass returns the natural-abundance-weighted atomic mass, in g/mol.
func (E *Element) Mass() float64 {
	return E.mass
}

//Isotopes returns all the isotopes known for the element, natural or not,
//sorted by mass number.
func (E *Element) Isotopes() []Isotope {
	return append([]Isotope(nil), E.isotopes...)
}

//Natural returns the isotopes of the natural mixture. Their abundances
//add up to 1.
func (E *Element) Natural() []Isotope {
	return append([]Isotope(nil), E.natural...)
}

//Isotope returns the isotope with mass number a, and false if there is none.
func (E *Element) Isotope(a int) (Isotope, bool) {
	i := sort.Search(len(E.isotopes), func(i int) bool { return E.isotopes[i].A >= a })
	if i < len(E.isotopes) && E.isotopes[i].A == a {
		return E.isotopes[i], true
	}
	return Isotope{}, false
}

//Xray returns the X-ray table of the element, sorted by energy.
//The returned slice must not be modified.
func (E *Element) Xray() []XraySample {
	return E.xray
}

//Database is the immutable collection of elements.
type Database struct {
	elements map[string]*Element
	symbols  []string
}

//Element returns the element with the given symbol.
func (D *Database) Element(symbol string) (*Element, error) {
	e, ok := D.elements[symbol]
	if !ok {
		return nil, unknownElement(symbol, "Database.Element")
	}
	return e, nil
}

//Isotope returns the isotope with mass number a of the element symbol.
func (D *Database) Isotope(symbol string, a int) (Isotope, error) {
	e, ok := D.elements[symbol]
	if !ok {
		return Isotope{}, unknownElement(symbol, "Database.Isotope")
	}
	iso, ok := e.Isotope(a)
	if !ok {
		return Isotope{}, unknownIsotope(symbol, a, "Database.Isotope")
	}
	return iso, nil
}

//Contains returns true if symbol is a known element symbol.
func (D *Database) Contains(symbol string) bool {
	_, ok := D.elements[symbol]
	return ok
}

//Symbols returns the sorted list of element symbols.
func (D *Database) Symbols() []string {
	return append([]string(nil), D.symbols...)
}

//Len returns the number of elements in the database.
func (D *Database) Len() int {
	return len(D.symbols)
}
