/*
 * parser_test.go, part of gosld.
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

package formula

import (
	"errors"
	"reflect"
	"testing"
)

var testElements = Names{"H": true, "B": true, "C": true, "N": true, "O": true, "Co": true, "Ca": true, "S": true}

func TestParseCanonical(Te *testing.T) {
	aliases := Names{"Methyl": true, "Tris": true}
	cases := map[string]string{
		"H2O":              "H2O",
		"H2 O":             "H2O",
		"Ca(OH)2":          "Ca(OH)2",
		"CO":               "CO",
		"Co":               "Co",
		"O[18]":            "O[18]",
		"H[2]2O":           "H[2]2O",
		"Methyl2":          "Methyl2",
		"(Methyl)3Tris":    "(Methyl)3Tris",
		"C1H1":             "CH",
		"((CH3)2N)2S04":    "((CH3)2N)2S4",
		"\tH2\t(SO4)  ":    "H2(SO4)",
		"H0":               "H0",
		"Ca(C(H2)3)2O[16]": "Ca(C(H2)3)2O[16]",
	}
	for in, expected := range cases {
		f, err := Parse(in, testElements, aliases)
		if err != nil {
			Te.Errorf("%q: unexpected error %v", in, err)
			continue
		}
		if got := f.String(); got != expected {
			Te.Errorf("%q: got %q, expected %q", in, got, expected)
		}
		if f.Text() != in {
			Te.Errorf("%q: Text returned %q", in, f.Text())
		}
	}
}

func TestParseTree(Te *testing.T) {
	f, err := Parse("Ca(OH[2])2Methyl", testElements, Names{"Methyl": true})
	if err != nil {
		Te.Fatal(err)
	}
	expected := []Node{
		ElementRef{Symbol: "Ca", N: 1, Pos: 0},
		Group{
			Children: []Node{
				ElementRef{Symbol: "O", N: 1, Pos: 3},
				ElementRef{Symbol: "H", MassNumber: 2, N: 1, Pos: 4},
			},
			N:   2,
			Pos: 2,
		},
		AliasRef{Name: "Methyl", N: 1, Pos: 10},
	}
	if !reflect.DeepEqual(f.Terms, expected) {
		Te.Errorf("got %#v\nexpected %#v", f.Terms, expected)
	}
}

//B is both boron and, here, an alias. The element wins.
func TestElementPriority(Te *testing.T) {
	f, err := Parse("B2", testElements, Names{"B": true})
	if err != nil {
		Te.Fatal(err)
	}
	if _, ok := f.Terms[0].(ElementRef); !ok {
		Te.Errorf("B should be parsed as an element, got %T", f.Terms[0])
	}
}

func TestParseErrors(Te *testing.T) {
	aliases := Names{"Methyl": true}
	cases := []struct {
		in   string
		kind error
		pos  int
	}{
		{"", ErrSyntax, 0},
		{"   ", ErrSyntax, 0},
		{"123", ErrSyntax, 0},
		{"(H2O", ErrUnbalanced, 0},
		{"H2O)", ErrUnbalanced, 3},
		{"C((H2O)", ErrUnbalanced, 1},
		{"()", ErrSyntax, 0},
		{"H2O+", ErrSyntax, 3},
		{"h2o", ErrSyntax, 0},
		{"H2Ö", ErrSyntax, 2},
		{"H 2", ErrSyntax, 2},
		{"Xx2", ErrUnknownToken, 0},
		{"HXe", ErrUnknownToken, 1},
		{"O[18", ErrInvalidIsotope, 1},
		{"O[1a]", ErrInvalidIsotope, 3},
		{"O[]", ErrInvalidIsotope, 2},
		{"O[0]", ErrInvalidIsotope, 2},
		{"Methyl[13]", ErrInvalidIsotope, 6},
		{"(CH3)[13]", ErrInvalidIsotope, 5},
		{"[13]C", ErrInvalidIsotope, 0},
		{"H99999999", ErrSyntax, 1},
	}
	for _, c := range cases {
		f, err := Parse(c.in, testElements, aliases)
		if err == nil {
			Te.Errorf("%q: expected an error, got %v", c.in, f)
			continue
		}
		if !errors.Is(err, c.kind) {
			Te.Errorf("%q: expected %v, got %v", c.in, c.kind, err)
		}
		var e *Error
		if !errors.As(err, &e) {
			Te.Errorf("%q: error is not a *formula.Error: %T", c.in, err)
			continue
		}
		if e.Pos != c.pos {
			Te.Errorf("%q: error at position %d, expected %d (%v)", c.in, e.Pos, c.pos, err)
		}
	}
}

func TestUnknownTokenText(Te *testing.T) {
	_, err := Parse("CH3Ethyl", testElements, nil)
	var e *Error
	if !errors.As(err, &e) || !errors.Is(err, ErrUnknownToken) {
		Te.Fatalf("expected unknown token error, got %v", err)
	}
	if e.Text != "Ethyl" {
		Te.Errorf("offending text %q, expected Ethyl", e.Text)
	}
}

func TestIdentifiers(Te *testing.T) {
	f, err := Parse("B(Methyl)2O[18]BHMethyl", testElements, Names{"Methyl": true})
	if err != nil {
		Te.Fatal(err)
	}
	expected := []string{"B", "Methyl", "H"}
	if got := f.Identifiers(); !reflect.DeepEqual(got, expected) {
		Te.Errorf("got %v, expected %v", got, expected)
	}
}
