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

package formula

import (
	"errors"
	"fmt"
)

//The kinds of parse errors. Use errors.Is to tell them apart.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrUnbalanced     = errors.New("unbalanced group")
	ErrUnknownToken   = errors.New("unknown token")
	ErrInvalidIsotope = errors.New("invalid isotope specifier")
)

//Error is a parse error. Pos is the byte offset of the offending
//character in the parsed text, and Text the offending token, if any.
type Error struct {
	kind    error
	Pos     int
	Text    string
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/formula: %s: %s at position %d", err.kind, err.message, err.Pos)
}

//Message returns the error description without kind and position.
func (err *Error) Message() string { return err.message }

//Decorate adds deco to the call-stack information of the error and
//returns the resulting slice.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Parse errors are never critical.
func (err *Error) Critical() bool { return false }

func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, pos int, text, format string, args ...interface{}) *Error {
	return &Error{
		kind:    kind,
		Pos:     pos,
		Text:    text,
		message: fmt.Sprintf(format, args...),
		deco:    []string{"Parse"},
	}
}
