/*
 * snapshot.go, part of gosld.
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

//Snapshot is an immutable set of aliases. It implements compo.Aliases.
type Snapshot struct {
	entries []Entry
	bodies  map[string]string
}

//NewSnapshot returns a snapshot with a copy of entries. If a name
//appears more than once, the last definition wins.
func NewSnapshot(entries []Entry) *Snapshot {
	S := &Snapshot{bodies: make(map[string]string, len(entries))}
	for _, e := range entries {
		if _, ok := S.bodies[e.Name]; ok {
			for i := range S.entries {
				if S.entries[i].Name == e.Name {
					S.entries[i].Formula = e.Formula
				}
			}
		} else {
			S.entries = append(S.entries, e)
		}
		S.bodies[e.Name] = e.Formula
	}
	return S
}

//Contains returns true if name is an alias in the snapshot. A nil
//snapshot contains nothing.
func (S *Snapshot) Contains(name string) bool {
	if S == nil {
		return false
	}
	_, ok := S.bodies[name]
	return ok
}

//Body returns the formula text of the alias name.
func (S *Snapshot) Body(name string) (string, bool) {
	if S == nil {
		return "", false
	}
	b, ok := S.bodies[name]
	return b, ok
}

//Entries returns the aliases in definition order.
func (S *Snapshot) Entries() []Entry {
	if S == nil {
		return nil
	}
	return append([]Entry(nil), S.entries...)
}

func (S *Snapshot) Len() int {
	if S == nil {
		return 0
	}
	return len(S.entries)
}
