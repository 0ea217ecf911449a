/*
 * composition.go, part of gosld.
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

//Package compo turns parsed formulas into flat compositions, expanding
//groups and aliases, and holds the Composition type itself.
package compo

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/gosld/elements"
	"gonum.org/v1/gonum/floats/scalar"
)

//Nuclide identifies one isotope of one element.
type Nuclide struct {
	Symbol string
	A      int
}

func (N Nuclide) String() string {
	return N.Symbol + "[" + strconv.Itoa(N.A) + "]"
}

//Composition is the number of atoms of each nuclide in a formula.
//Counts are real numbers, since a natural element contributes a fraction of
//an atom to each of its isotopes. The order in which nuclides and elements
//first appeared is kept for reporting.
type Composition struct {
	counts   map[Nuclide]float64
	nuclides []Nuclide
	symbols  []string
	natural  map[string]float64  //atoms added as the natural mixture, per element
	explicit map[Nuclide]float64 //atoms added as an explicit isotope
}

//NewComposition returns an empty composition.
func NewComposition() *Composition {
	return &Composition{
		counts:   make(map[Nuclide]float64),
		natural:  make(map[string]float64),
		explicit: make(map[Nuclide]float64),
	}
}

func (C *Composition) add(n Nuclide, count float64) {
	if _, ok := C.counts[n]; !ok {
		C.nuclides = append(C.nuclides, n)
		if !C.hasSymbol(n.Symbol) {
			C.symbols = append(C.symbols, n.Symbol)
		}
	}
	C.counts[n] += count
}

func (C *Composition) hasSymbol(symbol string) bool {
	for _, s := range C.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

//Add adds n atoms of the natural mixture of e, split among its natural
//isotopes according to their abundances.
func (C *Composition) Add(e *elements.Element, n float64) {
	if n == 0 {
		return
	}
	for _, iso := range e.Natural() {
		C.add(Nuclide{e.Symbol, iso.A}, n*iso.Abundance)
	}
	C.natural[e.Symbol] += n
}

//AddExplicit adds n atoms of the isotope a of the element symbol.
func (C *Composition) AddExplicit(symbol string, a int, n float64) {
	if n == 0 {
		return
	}
	nuc := Nuclide{symbol, a}
	C.add(nuc, n)
	C.explicit[nuc] += n
}

//Merge adds factor times the contents of other to the receiver.
func (C *Composition) Merge(other *Composition, factor float64) {
	if factor == 0 {
		return
	}
	for _, n := range other.nuclides {
		C.add(n, factor*other.counts[n])
	}
	for s, v := range other.natural {
		C.natural[s] += factor * v
	}
	for n, v := range other.explicit {
		C.explicit[n] += factor * v
	}
}

//Scale multiplies every count by factor.
func (C *Composition) Scale(factor float64) {
	for n := range C.counts {
		C.counts[n] *= factor
	}
	for s := range C.natural {
		C.natural[s] *= factor
	}
	for n := range C.explicit {
		C.explicit[n] *= factor
	}
}

//Count returns the number of atoms of the nuclide n.
func (C *Composition) Count(n Nuclide) float64 {
	return C.counts[n]
}

//ElementCount returns the number of atoms of the element symbol, of
//all its isotopes together.
func (C *Composition) ElementCount(symbol string) float64 {
	ret := 0.0
	for _, n := range C.nuclides {
		if n.Symbol == symbol {
			ret += C.counts[n]
		}
	}
	return ret
}

//Elements returns the element symbols in order of first appearance.
func (C *Composition) Elements() []string {
	return append([]string(nil), C.symbols...)
}

//Nuclides returns the nuclides in order of first appearance.
func (C *Composition) Nuclides() []Nuclide {
	return append([]Nuclide(nil), C.nuclides...)
}

//NuclidesOf returns the nuclides of the element symbol, in order of first
//appearance.
func (C *Composition) NuclidesOf(symbol string) []Nuclide {
	var ret []Nuclide
	for _, n := range C.nuclides {
		if n.Symbol == symbol {
			ret = append(ret, n)
		}
	}
	return ret
}

//Total returns the total number of atoms.
func (C *Composition) Total() float64 {
	ret := 0.0
	for _, n := range C.nuclides {
		ret += C.counts[n]
	}
	return ret
}

//IsZero returns true if the composition has no atoms at all.
func (C *Composition) IsZero() bool {
	for _, v := range C.counts {
		if v != 0 {
			return false
		}
	}
	return true
}

//Equal returns true if both compositions have the same count of every
//nuclide, within the absolute or relative tolerance tol.
func (C *Composition) Equal(other *Composition, tol float64) bool {
	for n, v := range C.counts {
		if !scalar.EqualWithinAbsOrRel(v, other.counts[n], tol, tol) {
			return false
		}
	}
	for n, v := range other.counts {
		if _, ok := C.counts[n]; !ok && !scalar.EqualWithinAbs(v, 0, tol) {
			return false
		}
	}
	return true
}

//Empirical returns the empirical formula in Hill order: carbon, then
//hydrogen, then the rest alphabetically, or everything alphabetically if
//there is no carbon. Explicit isotopes are written after the natural
//mixture of their element, as in "OO[18]".
func (C *Composition) Empirical() string {
	syms := C.Elements()
	hasC := C.hasSymbol("C")
	rank := func(s string) int {
		if hasC {
			switch s {
			case "C":
				return 0
			case "H":
				return 1
			}
		}
		return 2
	}
	sort.SliceStable(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}
		return syms[i] < syms[j]
	})
	var b strings.Builder
	for _, s := range syms {
		if v := C.natural[s]; v != 0 {
			b.WriteString(s + formatCount(v))
		}
		var isos []Nuclide
		for n, v := range C.explicit {
			if n.Symbol == s && v != 0 {
				isos = append(isos, n)
			}
		}
		sort.Slice(isos, func(i, j int) bool { return isos[i].A < isos[j].A })
		for _, n := range isos {
			b.WriteString(n.String() + formatCount(C.explicit[n]))
		}
	}
	return b.String()
}

func formatCount(v float64) string {
	r := math.Round(v)
	if math.Abs(v-r) < 1e-9 {
		if r == 1 {
			return ""
		}
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
