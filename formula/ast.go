/*
 * ast.go, part of gosld.
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
	"strconv"
	"strings"
)

//Node is a term of a parsed formula: an ElementRef, a Group or an AliasRef.
//Nodes are values and are not modified after parsing.
type Node interface {
	//Count is the repeat count that follows the term, 1 if none was given.
	Count() int
	//Position is the byte offset where the term starts in the parsed text.
	Position() int
	String() string
}

//ElementRef is a chemical element, with an optional isotope.
type ElementRef struct {
	Symbol     string
	MassNumber int //0 means the natural mixture
	N          int
	Pos        int
}

func (E ElementRef) Count() int    { return E.N }
func (E ElementRef) Position() int { return E.Pos }

func (E ElementRef) String() string {
	s := E.Symbol
	if E.MassNumber > 0 {
		s += "[" + strconv.Itoa(E.MassNumber) + "]"
	}
	return s + countString(E.N)
}

//Group is a parenthesized sub-formula.
type Group struct {
	Children []Node
	N        int
	Pos      int
}

func (G Group) Count() int    { return G.N }
func (G Group) Position() int { return G.Pos }

func (G Group) String() string {
	return "(" + joinNodes(G.Children) + ")" + countString(G.N)
}

//AliasRef is a reference to a user-defined alias. The body of the alias
//is not part of the tree, it is expanded later.
type AliasRef struct {
	Name string
	N    int
	Pos  int
}

func (A AliasRef) Count() int    { return A.N }
func (A AliasRef) Position() int { return A.Pos }

func (A AliasRef) String() string {
	return A.Name + countString(A.N)
}

//Formula is the tree obtained from parsing a formula text.
type Formula struct {
	text  string
	Terms []Node
}

//Text returns the text the formula was parsed from.
func (F *Formula) Text() string {
	return F.text
}

//String returns the canonical form of the formula: no blanks and
//no explicit counts of 1.
func (F *Formula) String() string {
	return joinNodes(F.Terms)
}

//Identifiers returns, in order of first appearance, every identifier in the
//formula that could name an alias: alias references and element symbols
//given without an isotope.
func (F *Formula) Identifiers() []string {
	var ret []string
	seen := make(map[string]bool)
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			var name string
			switch v := n.(type) {
			case AliasRef:
				name = v.Name
			case ElementRef:
				if v.MassNumber == 0 {
					name = v.Symbol
				}
			case Group:
				walk(v.Children)
			}
			if name != "" && !seen[name] {
				seen[name] = true
				ret = append(ret, name)
			}
		}
	}
	walk(F.Terms)
	return ret
}

func countString(n int) string {
	if n == 1 {
		return ""
	}
	return strconv.Itoa(n)
}

func joinNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.String())
	}
	return b.String()
}
