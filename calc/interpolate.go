/*
 * interpolate.go, part of gosld.
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

package calc

import (
	"sort"

	"github.com/rmera/gosld/elements"
	"gonum.org/v1/gonum/interp"
)

//Interpolate interpolates linearly, at x, the quantity value of the rows of
//table, which must be sorted by key in strictly increasing order. At a
//tabulated key the tabulated value is returned as it is. Outside the table,
//the value of the nearest row is returned, and extrapolated is true.
func Interpolate[T any](table []T, x float64, key, value func(T) float64) (v float64, extrapolated bool, err error) {
	n := len(table)
	if n < 2 {
		return 0, false, tableError("Interpolate", "%d rows, at least 2 are needed", n)
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, row := range table {
		xs[i] = key(row)
		ys[i] = value(row)
	}
	switch {
	case x < xs[0]:
		return ys[0], true, nil
	case x > xs[n-1]:
		return ys[n-1], true, nil
	}
	if i := sort.SearchFloat64s(xs, x); i < n && xs[i] == x {
		return ys[i], false, nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, false, tableError("Interpolate", "%s", err.Error())
	}
	return pl.Predict(x), false, nil
}

//Property is one of the energy-dependent quantities tabulated for each element.
type Property int

const (
	Fp Property = iota
	Fpp
	CoherentXS
	IncoherentXS
)

//Properties returns every tabulated property.
func Properties() []Property {
	return []Property{Fp, Fpp, CoherentXS, IncoherentXS}
}

func (P Property) String() string {
	switch P {
	case Fp:
		return "f'"
	case Fpp:
		return "f''"
	case CoherentXS:
		return "coherent cross section"
	case IncoherentXS:
		return "incoherent cross section"
	}
	return "unknown property"
}

//Unit returns the unit of the property, or an empty string if it has none.
func (P Property) Unit() string {
	if P == CoherentXS || P == IncoherentXS {
		return "barn"
	}
	return ""
}

//Of returns the value of the property in the sample s.
func (P Property) Of(s elements.XraySample) float64 {
	switch P {
	case Fp:
		return s.Fp
	case Fpp:
		return s.Fpp
	case CoherentXS:
		return s.Coherent
	case IncoherentXS:
		return s.Incoherent
	}
	return 0
}

func energyOf(s elements.XraySample) float64 { return s.Energy }

//ElementProperty returns the property p of the element e at the energy
//energy, in eV.
func ElementProperty(e *elements.Element, p Property, energy float64) (float64, bool, error) {
	v, ext, err := Interpolate(e.Xray(), energy, energyOf, p.Of)
	if err != nil {
		return 0, false, errDecorate(err, "ElementProperty("+e.Symbol+")")
	}
	return v, ext, nil
}
