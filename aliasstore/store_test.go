/*
 * store_test.go, part of gosld.
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

package aliasstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rmera/gosld/alias"
	"github.com/rmera/gosld/elements"
)

var testEntries = []alias.Entry{
	{Name: "Methyl", Formula: "CH3"},
	{Name: "Ethyl", Formula: "CH2Methyl"},
	{Name: "Heavy", Formula: "H[2]2 O"},
	{Name: "Water", Formula: "H2O"},
}

func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	magic := map[string][]byte{
		"aliases.txt": []byte("Methyl=CH3"),
		"aliases.zst": {0x28, 0xb5, 0x2f, 0xfd},
		"aliases.gz":  {0x1f, 0x8b},
		"aliases.db":  []byte("SQLite format 3"),
	}
	for name, prefix := range magic {
		path := filepath.Join(dir, "sub", name)
		s, err := Open(path)
		if err != nil {
			Te.Fatal(err)
		}
		got, err := s.Load()
		if err != nil || len(got) != 0 {
			Te.Errorf("%s: a new store should be empty: %v %v", name, got, err)
		}
		if err := s.Save(testEntries); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		//saving again replaces the contents
		if err := s.Save(testEntries); err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if c, ok := s.(*DB); ok {
			c.Close()
			if s, err = Open(path); err != nil {
				Te.Fatal(err)
			}
		}
		got, err = s.Load()
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !reflect.DeepEqual(got, testEntries) {
			Te.Errorf("%s: got %v, expected %v", name, got, testEntries)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if !bytes.HasPrefix(data, prefix) {
			Te.Errorf("%s: unexpected file contents % x", name, data[:8])
		}
		if s.Name() != path {
			Te.Errorf("name %s, expected %s", s.Name(), path)
		}
		if c, ok := s.(*DB); ok {
			c.Close()
		}
	}
}

func TestReadFile(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "aliases")
	data := "# my aliases\n\n  Methyl =CH3\r\nthis line is broken\nEthyl=CH2Methyl\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		Te.Fatal(err)
	}
	got, err := NewFile(path).Load()
	if err != nil {
		Te.Fatal(err)
	}
	expected := testEntries[:2]
	if !reflect.DeepEqual(got, expected) {
		Te.Errorf("got %v, expected %v", got, expected)
	}
}

//Formulas are stored exactly as defined, with their blanks.
var blankEntries = []alias.Entry{
	{Name: "Water", Formula: " H2O "},
	{Name: "Methyl", Formula: "CH3\t"},
	{Name: "Ethyl", Formula: "\tCH2 Methyl  "},
}

func TestBlankFormulas(Te *testing.T) {
	dir := Te.TempDir()
	f := newFakeS3()
	for _, name := range []string{"aliases.txt", "aliases.gz", "aliases.zst", "aliases.sqlite"} {
		stores := []Store{newTestS3(Te, f, name)}
		s, err := Open(filepath.Join(dir, name))
		if err != nil {
			Te.Fatal(err)
		}
		stores = append(stores, s)
		for _, s := range stores {
			if err := s.Save(blankEntries); err != nil {
				Te.Fatalf("%s: %v", s.Name(), err)
			}
			got, err := s.Load()
			if err != nil {
				Te.Fatalf("%s: %v", s.Name(), err)
			}
			if !reflect.DeepEqual(got, blankEntries) {
				Te.Errorf("%s: got %q, expected %q", s.Name(), got, blankEntries)
			}
			if c, ok := s.(*DB); ok {
				c.Close()
			}
		}
	}
	//the registry keeps them as loaded
	path := filepath.Join(dir, "registry.txt")
	if err := NewFile(path).Save(blankEntries); err != nil {
		Te.Fatal(err)
	}
	r, err := alias.NewRegistry(elements.MustDefault(), NewFile(path))
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(r.List(), blankEntries) {
		Te.Errorf("registry holds %q, expected %q", r.List(), blankEntries)
	}
}

func TestErrors(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "aliases.gz")
	if err := os.WriteFile(path, []byte("not gzip at all"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err := NewFile(path).Load()
	if !errors.Is(err, ErrStore) {
		Te.Errorf("expected ErrStore, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.FileName() != path {
		Te.Errorf("error should carry the file name: %v", err)
	}
	//a directory where the file should be
	if err := NewFile(dir).Save(testEntries); !errors.Is(err, ErrStore) {
		Te.Errorf("expected ErrStore, got %v", err)
	}
}

func TestRegistry(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "aliases.zst")
	db := elements.MustDefault()
	r, err := alias.NewRegistry(db, NewFile(path))
	if err != nil {
		Te.Fatal(err)
	}
	for _, e := range testEntries {
		if err := r.Define(e.Name, e.Formula); err != nil {
			Te.Fatal(err)
		}
	}
	r.Remove("Water")
	again, err := alias.NewRegistry(db, NewFile(path))
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(again.List(), testEntries[:3]) {
		Te.Errorf("got %v, expected %v", again.List(), testEntries[:3])
	}
}
