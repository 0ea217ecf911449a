/*
 * errors.go, part of gosld.
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
	"errors"
	"fmt"
	"strings"
)

var (
	//ErrCyclic means that an alias refers to itself, directly or through
	//other aliases.
	ErrCyclic = errors.New("cyclic alias reference")
	//ErrTooDeep means that the groups and aliases of a formula are nested
	//more than MaxDepth levels.
	ErrTooDeep = errors.New("expansion too deep")
	//ErrOverflow means that an atom count is too large to be represented.
	ErrOverflow = errors.New("atom count overflow")
)

//Error is an expansion error. For cyclic references, Chain holds the
//aliases involved, starting and ending with the same name.
type Error struct {
	kind    error
	message string
	Chain   []string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/compo: %s", err.message)
}

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Critical() bool { return false }

func (err *Error) Unwrap() error { return err.kind }

func cyclic(chain []string, caller string) *Error {
	c := append([]string(nil), chain...)
	return &Error{
		kind:    ErrCyclic,
		message: fmt.Sprintf("cyclic alias reference: %s", strings.Join(c, " -> ")),
		Chain:   c,
		deco:    []string{caller},
	}
}

func tooDeep(caller string) *Error {
	return &Error{
		kind:    ErrTooDeep,
		message: fmt.Sprintf("groups and aliases nested more than %d levels", MaxDepth),
		deco:    []string{caller},
	}
}

func overflow(caller string) *Error {
	return &Error{
		kind:    ErrOverflow,
		message: "the repeat counts multiply to more atoms than can be represented",
		deco:    []string{caller},
	}
}
