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

package alias

import (
	"errors"
	"fmt"
)

//ErrInvalidName is returned for alias names that do not look like
//an upper case letter followed by lower case letters.
var ErrInvalidName = errors.New("invalid alias name")

type Error struct {
	kind    error
	message string
	Name    string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/alias: %s", err.message)
}

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Critical() bool { return false }

func (err *Error) Unwrap() error { return err.kind }

func invalidName(name, caller string) *Error {
	return &Error{
		kind:    ErrInvalidName,
		message: fmt.Sprintf("invalid alias name '%s': it must be an upper case letter followed by lower case letters", name),
		Name:    name,
		deco:    []string{caller},
	}
}

func errDecorate(err error, deco string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(deco)
	}
	return err
}
