/*
 * registry.go, part of gosld.
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

//Package alias keeps the user-defined aliases: names that stand for a
//formula, such as Methyl for CH3. Aliases are stored as formula text and
//expanded only when a formula that uses them is evaluated.
package alias

import (
	"log"
	"regexp"
	"sync"

	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/formula"
)

var validName = regexp.MustCompile(`^[A-Z][a-z]*$`)

//ValidName returns true if name can be used as an alias name.
func ValidName(name string) bool {
	return validName.MatchString(name)
}

//Entry is one alias definition.
type Entry struct {
	Name    string
	Formula string
}

//Store persists the list of aliases. Save always gets the complete list,
//in definition order.
type Store interface {
	Load() ([]Entry, error)
	Save([]Entry) error
}

//Registry holds the defined aliases. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	elements formula.NameSet
	store    Store
	entries  []Entry
	index    map[string]int
}

//NewRegistry returns a registry with the aliases saved in store, which can be
//nil. elements is the set of element symbols, used to parse alias bodies.
//Saved aliases are taken as they are, without checking their bodies, so
//whatever was saved is saved back unchanged.
func NewRegistry(elements formula.NameSet, store Store) (*Registry, error) {
	R := &Registry{elements: elements, store: store, index: make(map[string]int)}
	if store == nil {
		return R, nil
	}
	entries, err := store.Load()
	if err != nil {
		return nil, errDecorate(err, "NewRegistry")
	}
	for _, e := range entries {
		if !ValidName(e.Name) {
			log.Printf("goSLD/alias.NewRegistry: ignoring saved alias with invalid name '%s'", e.Name)
			continue
		}
		if i, ok := R.index[e.Name]; ok {
			log.Printf("goSLD/alias.NewRegistry: alias '%s' saved twice, keeping the last definition", e.Name)
			R.entries[i].Formula = e.Formula
			continue
		}
		R.index[e.Name] = len(R.entries)
		R.entries = append(R.entries, e)
	}
	return R, nil
}

//Define defines the alias name as the formula text, or replaces the formula
//of an existing alias, which keeps its place in the list. The text has to
//parse, and must not make any alias refer to itself. If the registry has a
//store, the new list is saved, and the change is undone if that fails.
func (R *Registry) Define(name, text string) error {
	if !ValidName(name) {
		return invalidName(name, "Registry.Define")
	}
	R.mu.Lock()
	defer R.mu.Unlock()
	current := R.snapshot()
	names := withName{current, name}
	if _, err := formula.Parse(text, R.elements, names); err != nil {
		return errDecorate(err, "Registry.Define")
	}
	if err := compo.CheckCycle(current, R.elements, name, text); err != nil {
		return errDecorate(err, "Registry.Define")
	}
	if R.elements != nil && R.elements.Contains(name) {
		log.Printf("goSLD/alias.Registry.Define: alias '%s' is spelled like an element symbol, formulas will read it as the element", name)
	}
	old, existed := "", false
	if i, ok := R.index[name]; ok {
		old, existed = R.entries[i].Formula, true
		R.entries[i].Formula = text
	} else {
		R.index[name] = len(R.entries)
		R.entries = append(R.entries, Entry{name, text})
	}
	if err := R.save(); err != nil {
		if existed {
			R.entries[R.index[name]].Formula = old
		} else {
			R.entries = R.entries[:len(R.entries)-1]
			delete(R.index, name)
		}
		return errDecorate(err, "Registry.Define")
	}
	return nil
}

//Remove removes the alias name. Removing an alias that does not exist is
//not an error. Formulas and aliases that use a removed alias fail when
//they are next evaluated.
func (R *Registry) Remove(name string) error {
	R.mu.Lock()
	defer R.mu.Unlock()
	i, ok := R.index[name]
	if !ok {
		return nil
	}
	old := R.entries
	R.entries = append(append([]Entry(nil), old[:i]...), old[i+1:]...)
	R.reindex()
	if err := R.save(); err != nil {
		R.entries = old
		R.reindex()
		return errDecorate(err, "Registry.Remove")
	}
	return nil
}

//Contains returns true if name is a defined alias.
func (R *Registry) Contains(name string) bool {
	R.mu.RLock()
	defer R.mu.RUnlock()
	_, ok := R.index[name]
	return ok
}

//List returns the aliases in the order they were first defined.
func (R *Registry) List() []Entry {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return append([]Entry(nil), R.entries...)
}

//Snapshot returns a copy of the current aliases that later changes
//to the registry do not affect.
func (R *Registry) Snapshot() *Snapshot {
	R.mu.RLock()
	defer R.mu.RUnlock()
	return R.snapshot()
}

//snapshot needs the lock to be held.
func (R *Registry) snapshot() *Snapshot {
	return NewSnapshot(R.entries)
}

func (R *Registry) reindex() {
	R.index = make(map[string]int, len(R.entries))
	for i, e := range R.entries {
		R.index[e.Name] = i
	}
}

func (R *Registry) save() error {
	if R.store == nil {
		return nil
	}
	return R.store.Save(append([]Entry(nil), R.entries...))
}

//withName adds one alias name to a snapshot, so a body can refer to the
//alias being defined. Such a reference is then reported as a cycle.
type withName struct {
	*Snapshot
	name string
}

func (W withName) Contains(name string) bool {
	return name == W.name || W.Snapshot.Contains(name)
}
