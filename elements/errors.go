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

package elements

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownElement = errors.New("unknown element")
	ErrUnknownIsotope = errors.New("unknown isotope")
	ErrInvalidData    = errors.New("invalid element data")
)

//Error is the error type returned by this package. It carries the symbol
//and, for isotope lookups, the mass number that could not be found.
type Error struct {
	kind       error
	message    string
	Symbol     string
	MassNumber int
	deco       []string
	critical   bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/elements: %s", err.message)
}

//Decorate adds deco to the call-stack information of the error, and returns
//the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical is true for failures to load a database, which leave the
//engine without data.
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.kind }

func unknownElement(symbol, caller string) *Error {
	return &Error{
		kind:    ErrUnknownElement,
		message: fmt.Sprintf("unknown element '%s'", symbol),
		Symbol:  symbol,
		deco:    []string{caller},
	}
}

func unknownIsotope(symbol string, a int, caller string) *Error {
	return &Error{
		kind:       ErrUnknownIsotope,
		message:    fmt.Sprintf("unknown isotope '%s[%d]'", symbol, a),
		Symbol:     symbol,
		MassNumber: a,
		deco:       []string{caller},
	}
}

func invalidData(caller, format string, args ...interface{}) *Error {
	return &Error{
		kind:     ErrInvalidData,
		message:  fmt.Sprintf(format, args...),
		deco:     []string{caller},
		critical: true,
	}
}
