/*
 * resolve.go, part of gosld.
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

package compo

import (
	"fmt"
	"math"

	"github.com/rmera/gosld/elements"
	"github.com/rmera/gosld/formula"
)

//MaxDepth is the deepest nesting of groups and aliases that Resolve expands.
const MaxDepth = 64

//Aliases gives access to the defined aliases during an expansion.
type Aliases interface {
	formula.NameSet
	//Body returns the formula text of the alias name.
	Body(name string) (string, bool)
}

type noAliases struct{}

func (noAliases) Contains(string) bool       { return false }
func (noAliases) Body(string) (string, bool) { return "", false }

type resolver struct {
	db      *elements.Database
	aliases Aliases
	stack   []string //aliases being expanded, outermost first
}

//Resolve expands f into a flat composition. Alias bodies are taken from
//aliases, and parsed again each time they are expanded. aliases can be nil.
func Resolve(f *formula.Formula, db *elements.Database, aliases Aliases) (*Composition, error) {
	if aliases == nil {
		aliases = noAliases{}
	}
	r := &resolver{db: db, aliases: aliases}
	c := NewComposition()
	if err := r.nodes(f.Terms, 1, 0, c); err != nil {
		return nil, err
	}
	//each term can be finite while their sum is not
	if !finite(c.Total()) {
		return nil, overflow("Resolve")
	}
	return c, nil
}

//nodes adds factor times the atoms in nodes to c. depth is the nesting
//level of nodes.
func (r *resolver) nodes(nodes []formula.Node, factor float64, depth int, c *Composition) error {
	for _, node := range nodes {
		n := factor * float64(node.Count())
		if !finite(n) {
			return overflow("Resolve")
		}
		switch v := node.(type) {
		case formula.ElementRef:
			if v.MassNumber > 0 {
				if _, err := r.db.Isotope(v.Symbol, v.MassNumber); err != nil {
					errDecorate(err, "Resolve")
					return err
				}
				c.AddExplicit(v.Symbol, v.MassNumber, n)
				continue
			}
			e, err := r.db.Element(v.Symbol)
			if err != nil {
				errDecorate(err, "Resolve")
				return err
			}
			c.Add(e, n)
		case formula.Group:
			if depth+1 > MaxDepth {
				return tooDeep("Resolve")
			}
			if err := r.nodes(v.Children, n, depth+1, c); err != nil {
				return err
			}
		case formula.AliasRef:
			if err := r.alias(v.Name, n, depth+1, c); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("goSLD/compo.Resolve: unexpected node type %T", node))
		}
	}
	return nil
}

func (r *resolver) alias(name string, factor float64, depth int, c *Composition) error {
	for _, s := range r.stack {
		if s == name {
			chain := append(append([]string(nil), r.stack...), name)
			//the chain starts at the first appearance of name
			for i, s := range chain {
				if s == name {
					chain = chain[i:]
					break
				}
			}
			return cyclic(chain, "Resolve")
		}
	}
	if depth > MaxDepth {
		return tooDeep("Resolve")
	}
	body, ok := r.aliases.Body(name)
	if !ok {
		//The parser checked the name against the same aliases, so this
		//only happens with an inconsistent Aliases implementation.
		return &Error{
			kind:    formula.ErrUnknownToken,
			message: fmt.Sprintf("alias '%s' has no body", name),
			deco:    []string{"Resolve"},
		}
	}
	f, err := formula.Parse(body, r.db, r.aliases)
	if err != nil {
		errDecorate(err, fmt.Sprintf("Resolve (alias %s)", name))
		return err
	}
	r.stack = append(r.stack, name)
	err = r.nodes(f.Terms, factor, depth, c)
	r.stack = r.stack[:len(r.stack)-1]
	return err
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func errDecorate(err error, deco string) {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(deco)
	}
}

//everything is a NameSet that contains every name. Parsing against it turns
//every identifier that is not an element into an alias reference.
type everything struct{}

func (everything) Contains(string) bool { return true }

//CheckCycle returns an ErrCyclic error if defining the alias name with the
//formula text would create a cycle among aliases. References are taken by
//spelling: an identifier in a body that equals the name of an alias counts
//as a reference to that alias, even where the parser would read it as an
//element symbol.
func CheckCycle(aliases Aliases, elements formula.NameSet, name, text string) error {
	if aliases == nil {
		aliases = noAliases{}
	}
	isAlias := func(s string) bool { return s == name || aliases.Contains(s) }
	refs := func(alias string) []string {
		body := text
		if alias != name {
			var ok bool
			if body, ok = aliases.Body(alias); !ok {
				return nil
			}
		}
		f, err := formula.Parse(body, elements, everything{})
		if err != nil {
			return nil
		}
		var ret []string
		for _, id := range f.Identifiers() {
			if isAlias(id) {
				ret = append(ret, id)
			}
		}
		return ret
	}
	const (
		unseen = iota
		active
		done
	)
	state := make(map[string]int)
	var path []string
	var visit func(alias string) error
	visit = func(alias string) error {
		state[alias] = active
		path = append(path, alias)
		for _, next := range refs(alias) {
			switch state[next] {
			case active:
				chain := append([]string(nil), path...)
				for i, s := range chain {
					if s == next {
						chain = chain[i:]
						break
					}
				}
				return cyclic(append(chain, next), "CheckCycle")
			case unseen:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		state[alias] = done
		return nil
	}
	return visit(name)
}
