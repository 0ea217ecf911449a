/*
 * registry_test.go, part of gosld.
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

package alias

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/elements"
	"github.com/rmera/gosld/formula"
)

type memStore struct {
	entries []Entry
	saves   int
	fail    bool
}

var errDisk = errors.New("disk full")

func (m *memStore) Load() ([]Entry, error) { return append([]Entry(nil), m.entries...), nil }

func (m *memStore) Save(e []Entry) error {
	if m.fail {
		return errDisk
	}
	m.saves++
	m.entries = e
	return nil
}

func newRegistry(Te *testing.T, store Store) *Registry {
	Te.Helper()
	r, err := NewRegistry(elements.MustDefault(), store)
	if err != nil {
		Te.Fatal(err)
	}
	return r
}

func TestDefine(Te *testing.T) {
	store := &memStore{}
	r := newRegistry(Te, store)
	defs := []Entry{{"Methyl", "CH3"}, {"Ethyl", "CH2Methyl"}, {"Water", "H2O"}}
	for _, d := range defs {
		if err := r.Define(d.Name, d.Formula); err != nil {
			Te.Fatal(err)
		}
	}
	if !reflect.DeepEqual(r.List(), defs) {
		Te.Errorf("list %v, expected %v", r.List(), defs)
	}
	//Redefinition keeps the position.
	if err := r.Define("Methyl", "C[13]H3"); err != nil {
		Te.Fatal(err)
	}
	defs[0].Formula = "C[13]H3"
	if !reflect.DeepEqual(r.List(), defs) {
		Te.Errorf("list %v, expected %v", r.List(), defs)
	}
	if !reflect.DeepEqual(store.entries, defs) || store.saves != 4 {
		Te.Errorf("store has %v after %d saves", store.entries, store.saves)
	}
	if !r.Contains("Ethyl") || r.Contains("Propyl") {
		Te.Error("Contains gives wrong answers")
	}
}

func TestDefineErrors(Te *testing.T) {
	r := newRegistry(Te, nil)
	for _, name := range []string{"", "methyl", "METHYL", "Me1", "Me thyl", "Mé"} {
		err := r.Define(name, "CH3")
		if !errors.Is(err, ErrInvalidName) {
			Te.Errorf("%q: expected ErrInvalidName, got %v", name, err)
		}
	}
	if err := r.Define("Bad", "(CH3"); !errors.Is(err, formula.ErrUnbalanced) {
		Te.Errorf("expected ErrUnbalanced, got %v", err)
	}
	if err := r.Define("Bad", "CH3Ethyl"); !errors.Is(err, formula.ErrUnknownToken) {
		Te.Errorf("expected ErrUnknownToken, got %v", err)
	}
	if err := r.Define("Self", "CH2Self"); !errors.Is(err, compo.ErrCyclic) {
		Te.Errorf("expected ErrCyclic, got %v", err)
	}
	if len(r.List()) != 0 {
		Te.Errorf("failed definitions were kept: %v", r.List())
	}
}

//A is not an element symbol, but B is boron. Defining B in terms of A
//still closes a cycle by name.
func TestCycleByName(Te *testing.T) {
	r := newRegistry(Te, nil)
	if err := r.Define("A", "B"); err != nil {
		Te.Fatal(err)
	}
	err := r.Define("B", "A")
	if !errors.Is(err, compo.ErrCyclic) {
		Te.Fatalf("expected ErrCyclic, got %v", err)
	}
	var e *compo.Error
	if errors.As(err, &e) && !reflect.DeepEqual(e.Chain, []string{"B", "A", "B"}) {
		Te.Errorf("chain %v", e.Chain)
	}
	if r.Contains("B") {
		Te.Error("B should not have been defined")
	}
}

func TestRemove(Te *testing.T) {
	store := &memStore{}
	r := newRegistry(Te, store)
	r.Define("Methyl", "CH3")
	r.Define("Ethyl", "CH2Methyl")
	if err := r.Remove("Nothing"); err != nil {
		Te.Errorf("removing an unknown alias failed: %v", err)
	}
	if store.saves != 2 {
		Te.Errorf("a no-op removal saved the store")
	}
	if err := r.Remove("Methyl"); err != nil {
		Te.Fatal(err)
	}
	if expected := []Entry{{"Ethyl", "CH2Methyl"}}; !reflect.DeepEqual(r.List(), expected) {
		Te.Errorf("list %v, expected %v", r.List(), expected)
	}
	//Ethyl now refers to nothing, but it stays, and can be fixed.
	if err := r.Define("Methyl", "CD3"); !errors.Is(err, formula.ErrUnknownToken) {
		Te.Errorf("expected ErrUnknownToken for D, got %v", err)
	}
	if err := r.Define("Methyl", "CH[2]3"); err != nil {
		Te.Error(err)
	}
}

func TestSaveFailure(Te *testing.T) {
	store := &memStore{}
	r := newRegistry(Te, store)
	r.Define("Methyl", "CH3")
	store.fail = true
	if err := r.Define("Ethyl", "CH2Methyl"); !errors.Is(err, errDisk) {
		Te.Errorf("expected the store error, got %v", err)
	}
	if err := r.Define("Methyl", "CH4"); !errors.Is(err, errDisk) {
		Te.Errorf("expected the store error, got %v", err)
	}
	if err := r.Remove("Methyl"); !errors.Is(err, errDisk) {
		Te.Errorf("expected the store error, got %v", err)
	}
	if expected := []Entry{{"Methyl", "CH3"}}; !reflect.DeepEqual(r.List(), expected) {
		Te.Errorf("failed changes were not undone: %v", r.List())
	}
}

func TestLoadFromStore(Te *testing.T) {
	store := &memStore{entries: []Entry{
		{"Ethyl", "CH2Methyl"}, //defined before Methyl
		{"bad", "H"},
		{"Methyl", "CH3"},
		{"Ethyl", "C2H5"},
		{"Dangling", "Gone2"},
	}}
	r := newRegistry(Te, store)
	expected := []Entry{{"Ethyl", "C2H5"}, {"Methyl", "CH3"}, {"Dangling", "Gone2"}}
	if !reflect.DeepEqual(r.List(), expected) {
		Te.Errorf("list %v, expected %v", r.List(), expected)
	}
}

func TestSnapshot(Te *testing.T) {
	r := newRegistry(Te, nil)
	r.Define("Methyl", "CH3")
	s := r.Snapshot()
	r.Define("Methyl", "CH4")
	r.Define("Ethyl", "C2H5")
	if b, ok := s.Body("Methyl"); !ok || b != "CH3" {
		Te.Errorf("snapshot changed: %q %v", b, ok)
	}
	if s.Contains("Ethyl") || s.Len() != 1 {
		Te.Error("snapshot sees later definitions")
	}
	var null *Snapshot
	if null.Contains("Methyl") || null.Len() != 0 || null.Entries() != nil {
		Te.Error("nil snapshot should be empty")
	}
}

func TestConcurrent(Te *testing.T) {
	r := newRegistry(Te, &memStore{})
	var wg sync.WaitGroup
	names := []string{"Aa", "Bb", "Cc", "Dd", "Ee", "Ff", "Gg", "Hh"}
	for _, n := range names {
		wg.Add(2)
		go func(n string) {
			defer wg.Done()
			for i := 1; i <= 20; i++ {
				if err := r.Define(n, fmt.Sprintf("C%dH", i)); err != nil {
					Te.Error(err)
					return
				}
			}
		}(n)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				s := r.Snapshot()
				for _, e := range s.Entries() {
					if b, _ := s.Body(e.Name); b != e.Formula {
						Te.Errorf("inconsistent snapshot for %s", e.Name)
					}
				}
			}
		}()
	}
	wg.Wait()
	list := r.List()
	if len(list) != len(names) {
		Te.Fatalf("%d aliases, expected %d", len(list), len(names))
	}
	for _, e := range list {
		if e.Formula != "C20H" {
			Te.Errorf("%s is %q, expected C20H", e.Name, e.Formula)
		}
	}
}
