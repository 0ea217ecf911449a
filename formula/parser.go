/*
 * parser.go, part of gosld.
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

//Package formula parses chemical formulas such as "H2O", "Ca(OH)2",
//"H[2]2O" or "(Methyl)2O", where Methyl is a user-defined alias.
//
//The grammar is
//
//	formula := term+
//	term    := atom repeat?
//	atom    := element | element '[' digit+ ']' | alias | '(' formula ')'
//	element := UpperLetter LowerLetter*
//	alias   := UpperLetter LowerLetter*
//	repeat  := digit+
//
//Identifiers are read greedily, so "Co" is cobalt and "CO" carbon monoxide.
//An identifier spelled like both an element symbol and an alias name is
//always taken as the element. Isotope brackets are only allowed right after
//an element. Blanks may separate terms.
//
//Parsing only needs to know which names exist; alias bodies are not
//looked at here.
package formula

import (
	"strconv"
	"unicode/utf8"
)

//MaxRepeat is the largest repeat count accepted after a term.
const MaxRepeat = 1000000

//NameSet is a set of names, such as the element symbols of a database
//or the names of the defined aliases.
type NameSet interface {
	Contains(name string) bool
}

//Names is a simple NameSet.
type Names map[string]bool

func (N Names) Contains(name string) bool {
	return N[name]
}

type parser struct {
	src      string
	pos      int
	elements NameSet
	aliases  NameSet
}

//Parse parses text into a Formula. Identifiers are checked against
//elements first and aliases second. aliases can be nil.
func Parse(text string, elements, aliases NameSet) (*Formula, error) {
	if elements == nil {
		elements = Names(nil)
	}
	if aliases == nil {
		aliases = Names(nil)
	}
	p := &parser{src: text, elements: elements, aliases: aliases}
	terms, err := p.sequence(-1)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, newError(ErrSyntax, 0, "", "empty formula")
	}
	return &Formula{text: text, Terms: terms}, nil
}

//sequence reads terms until the end of the text or, inside a group, until
//the closing parenthesis, which is left unread. open is the position of the
//opening parenthesis, or -1 at the top level.
func (p *parser) sequence(open int) ([]Node, error) {
	var nodes []Node
	for {
		p.skipBlanks()
		if p.atEnd() {
			if open >= 0 {
				return nil, newError(ErrUnbalanced, open, "(", "'(' is never closed")
			}
			return nodes, nil
		}
		if p.src[p.pos] == ')' {
			if open < 0 {
				return nil, newError(ErrUnbalanced, p.pos, ")", "')' without matching '('")
			}
			return nodes, nil
		}
		n, err := p.term()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) term() (Node, error) {
	start := p.pos
	c := p.src[p.pos]
	switch {
	case c == '(':
		p.pos++
		children, err := p.sequence(start)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, newError(ErrSyntax, start, "()", "empty group")
		}
		p.pos++ //the ')'
		if p.peek() == '[' {
			return nil, newError(ErrInvalidIsotope, p.pos, "[", "isotopes can only be given for elements, not for groups")
		}
		n, err := p.repeat()
		if err != nil {
			return nil, err
		}
		return Group{Children: children, N: n, Pos: start}, nil
	case isUpper(c):
		ident := p.identifier()
		if p.elements.Contains(ident) {
			mass := 0
			if p.peek() == '[' {
				var err error
				if mass, err = p.isotope(); err != nil {
					return nil, err
				}
			}
			n, err := p.repeat()
			if err != nil {
				return nil, err
			}
			return ElementRef{Symbol: ident, MassNumber: mass, N: n, Pos: start}, nil
		}
		if p.aliases.Contains(ident) {
			if p.peek() == '[' {
				return nil, newError(ErrInvalidIsotope, p.pos, "[", "isotopes can only be given for elements, not for alias '%s'", ident)
			}
			n, err := p.repeat()
			if err != nil {
				return nil, err
			}
			return AliasRef{Name: ident, N: n, Pos: start}, nil
		}
		return nil, newError(ErrUnknownToken, start, ident, "'%s' is neither an element nor an alias", ident)
	case isDigit(c):
		digits := p.digits()
		return nil, newError(ErrSyntax, start, digits, "number '%s' does not follow an element, alias or group", digits)
	case c == '[':
		return nil, newError(ErrInvalidIsotope, start, "[", "isotope specifier without element")
	default:
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return nil, newError(ErrSyntax, start, string(r), "unexpected character '%c'", r)
	}
}

//identifier reads an upper case letter and all the lower case letters
//after it.
func (p *parser) identifier() string {
	start := p.pos
	p.pos++
	for !p.atEnd() && isLower(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

//isotope reads a '[' digit+ ']' specifier. The '[' is the current character.
func (p *parser) isotope() (int, error) {
	open := p.pos
	p.pos++
	start := p.pos
	digits := p.digits()
	if p.atEnd() {
		return 0, newError(ErrInvalidIsotope, open, p.src[open:], "'[' is never closed")
	}
	if p.src[p.pos] != ']' {
		r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
		return 0, newError(ErrInvalidIsotope, p.pos, string(r), "mass numbers can only contain digits")
	}
	if digits == "" {
		return 0, newError(ErrInvalidIsotope, start, "[]", "empty mass number")
	}
	p.pos++ //the ']'
	mass, err := strconv.Atoi(digits)
	if err != nil || mass <= 0 || mass > 999 {
		return 0, newError(ErrInvalidIsotope, start, digits, "invalid mass number %s", digits)
	}
	return mass, nil
}

func (p *parser) repeat() (int, error) {
	start := p.pos
	digits := p.digits()
	if digits == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxRepeat {
		return 0, newError(ErrSyntax, start, digits, "repeat count %s is larger than %d", digits, MaxRepeat)
	}
	return n, nil
}

func (p *parser) digits() string {
	start := p.pos
	for !p.atEnd() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) skipBlanks() {
	for !p.atEnd() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
