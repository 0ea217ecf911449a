/*
 * sld_test.go, part of gosld.
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

package sld

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rmera/gosld/alias"
	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/elements"
	"github.com/rmera/gosld/formula"
)

func newEngine(Te *testing.T) *Engine {
	Te.Helper()
	E, err := New(nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return E
}

func TestWater(Te *testing.T) {
	E := newEngine(Te)
	r, err := E.Evaluate("H2O", DefaultInputs())
	if err != nil {
		Te.Fatal(err)
	}
	if !r.Valid || math.Abs(r.Electrons-10) > 1e-9 || math.Abs(r.Mass-18.015) > 0.01 {
		Te.Errorf("unexpected result for water: valid %v, %v electrons, %v g/mol", r.Valid, r.Electrons, r.Mass)
	}
	sum := 0.0
	for _, e := range r.Elements {
		sum += e.MassRatio
	}
	if math.Abs(sum-100) > 1e-7 {
		Te.Errorf("mass ratios add up to %v", sum)
	}
}

func TestAliasEquivalence(Te *testing.T) {
	E := newEngine(Te)
	if err := E.DefineAlias("Methyl", "CH3"); err != nil {
		Te.Fatal(err)
	}
	ref, err := E.Composition("C2H6")
	if err != nil {
		Te.Fatal(err)
	}
	for _, text := range []string{"Methyl2", "(CH3)2", "MethylMethyl"} {
		c, err := E.Composition(text)
		if err != nil {
			Te.Fatal(err)
		}
		if !c.Equal(ref, 1e-12) {
			Te.Errorf("%s differs from C2H6: %s", text, c.Empirical())
		}
	}
	a, _ := E.Evaluate("Methyl2", DefaultInputs())
	b, _ := E.Evaluate("C2H6", DefaultInputs())
	if math.Abs(a.Mass-b.Mass) > 1e-12 || math.Abs(real(a.Neutron.CoherentSLD)-real(b.Neutron.CoherentSLD)) > 1e-18 {
		Te.Errorf("Methyl2 and C2H6 give different results")
	}
}

func TestGroupScaling(Te *testing.T) {
	E := newEngine(Te)
	g, err := E.Composition("(F)3")
	if err != nil {
		Te.Fatal(err)
	}
	f, err := E.Composition("F")
	if err != nil {
		Te.Fatal(err)
	}
	f.Scale(3)
	if !g.Equal(f, 1e-12) {
		Te.Errorf("(F)3 is %s, 3F is %s", g.Empirical(), f.Empirical())
	}
}

func TestCycleRejected(Te *testing.T) {
	E := newEngine(Te)
	if err := E.DefineAlias("A", "B"); err != nil {
		Te.Fatal(err)
	}
	err := E.DefineAlias("B", "A")
	if !errors.Is(err, compo.ErrCyclic) {
		Te.Fatalf("expected ErrCyclic, got %v", err)
	}
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("%T does not implement Error", err)
	}
	deco := e.Decorate("")
	if len(deco) == 0 || deco[len(deco)-1] != "Engine.DefineAlias" {
		Te.Errorf("unexpected decoration %v", deco)
	}
	if len(E.ListAliases()) != 1 {
		Te.Errorf("aliases %v, expected only A", E.ListAliases())
	}
}

func TestMalformed(Te *testing.T) {
	E := newEngine(Te)
	E.DefineAlias("Methyl", "CH3")
	cases := map[string]error{
		"":             formula.ErrSyntax,
		"123":          formula.ErrSyntax,
		"(H2O":         formula.ErrUnbalanced,
		"H2O)":         formula.ErrUnbalanced,
		"Qq":           formula.ErrUnknownToken,
		"Methyl[13]":   formula.ErrInvalidIsotope,
		"(CH3)[13]2":   formula.ErrInvalidIsotope,
		"O[99]":        elements.ErrUnknownIsotope,
		"H2O+":         formula.ErrSyntax,
		"C(((((H)))))": nil,
	}
	for text, kind := range cases {
		_, err := E.Evaluate(text, DefaultInputs())
		if kind == nil {
			if err != nil {
				Te.Errorf("%q: unexpected error %v", text, err)
			}
			continue
		}
		if !errors.Is(err, kind) {
			Te.Errorf("%q: expected %v, got %v", text, kind, err)
		}
	}
	_, err := E.Evaluate("H2O", calc.Inputs{Density: 1, Energy: 0, Wavelength: 1})
	if !errors.Is(err, calc.ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTooDeep(Te *testing.T) {
	E := newEngine(Te)
	text := strings.Repeat("(", compo.MaxDepth+1) + "H" + strings.Repeat(")", compo.MaxDepth+1)
	if _, err := E.Evaluate(text, DefaultInputs()); !errors.Is(err, compo.ErrTooDeep) {
		Te.Errorf("expected ErrTooDeep, got %v", err)
	}
}

//The formulas used as examples in the package documentation.
func TestDocumentedFormulas(Te *testing.T) {
	E := newEngine(Te)
	if err := E.DefineAlias("Methyl", "CH3"); err != nil {
		Te.Fatal(err)
	}
	for _, text := range []string{"H2O", "Ca(OH)2", "H[2]2O", "(Methyl)2O"} {
		r, err := E.Evaluate(text, DefaultInputs())
		if err != nil || !r.Valid {
			Te.Errorf("%s: %v", text, err)
		}
	}
	r, _ := E.Evaluate("H[2]2O", DefaultInputs())
	if r != nil && math.Abs(r.Mass-20.03) > 0.01 {
		Te.Errorf("heavy water mass %v, expected about 20.03", r.Mass)
	}
}

func TestOverflow(Te *testing.T) {
	E := newEngine(Te)
	text := strings.Repeat("(", 60) + "H999999" + strings.Repeat(")999999", 60)
	r, err := E.Evaluate(text, DefaultInputs())
	if !errors.Is(err, compo.ErrOverflow) {
		Te.Errorf("expected ErrOverflow, got %v", err)
	}
	if r != nil && r.Valid {
		Te.Errorf("overflowing formula gave a valid result, mass %v", r.Mass)
	}
	if _, err := ParseAndEvaluate(elements.MustDefault(), text, nil, DefaultInputs()); !errors.Is(err, compo.ErrOverflow) {
		Te.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestLazyRemoval(Te *testing.T) {
	E := newEngine(Te)
	E.DefineAlias("Methyl", "CH3")
	E.DefineAlias("Ethyl", "CH2Methyl")
	if _, err := E.Evaluate("Ethyl2", DefaultInputs()); err != nil {
		Te.Fatal(err)
	}
	if err := E.RemoveAlias("Methyl"); err != nil {
		Te.Fatal(err)
	}
	if err := E.RemoveAlias("Methyl"); err != nil {
		Te.Errorf("removing twice failed: %v", err)
	}
	_, err := E.Evaluate("Ethyl2", DefaultInputs())
	if !errors.Is(err, formula.ErrUnknownToken) {
		Te.Errorf("expected ErrUnknownToken, got %v", err)
	}
	var fe *formula.Error
	if errors.As(err, &fe) && fe.Text != "Methyl" {
		Te.Errorf("offending token %q, expected Methyl", fe.Text)
	}
}

func TestEmpty(Te *testing.T) {
	E := newEngine(Te)
	r, err := E.Evaluate("H0", DefaultInputs())
	if err != nil {
		Te.Fatal(err)
	}
	if r.Valid {
		Te.Error("H0 should give an invalid result")
	}
}

func TestParseAndEvaluate(Te *testing.T) {
	db := elements.MustDefault()
	snap := alias.NewSnapshot([]alias.Entry{{Name: "Water", Formula: "H2O"}})
	r, err := ParseAndEvaluate(db, "Water2", snap, DefaultInputs())
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(r.Electrons-20) > 1e-9 {
		Te.Errorf("%v electrons, expected 20", r.Electrons)
	}
	if _, err := ParseAndEvaluate(db, "Water", nil, DefaultInputs()); !errors.Is(err, formula.ErrUnknownToken) {
		Te.Errorf("expected ErrUnknownToken without aliases, got %v", err)
	}
}

func TestConcurrentEvaluation(Te *testing.T) {
	E := newEngine(Te)
	E.DefineAlias("Unit", "CH2")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r, err := E.Evaluate("Unit10", DefaultInputs())
				if err != nil {
					Te.Error(err)
					return
				}
				//Unit is CH2 or CD2, never a mixture.
				if c := r.Elements[0].Count; math.Abs(c-10) > 1e-9 {
					Te.Errorf("%v carbons", c)
				}
			}
		}()
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				E.DefineAlias("Unit", "CH[2]2")
			} else {
				E.DefineAlias("Unit", "CH2")
			}
		}(i)
	}
	wg.Wait()
}
