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

package calc

import (
	"errors"
	"fmt"
)

var (
	//ErrInvalidInput is returned for a density, energy or wavelength
	//that is not a positive, finite number.
	ErrInvalidInput = errors.New("invalid input")
	//ErrTable is returned when a table cannot be interpolated.
	ErrTable = errors.New("invalid interpolation table")
)

type Error struct {
	kind    error
	message string
	Field   string //the offending input, for ErrInvalidInput
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("goSLD/calc: %s", err.message)
}

func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) Critical() bool { return false }

func (err *Error) Unwrap() error { return err.kind }

func invalidInput(field string, value float64, reason string) *Error {
	return &Error{
		kind:    ErrInvalidInput,
		message: fmt.Sprintf("invalid %s %v: %s", field, value, reason),
		Field:   field,
		deco:    []string{"Inputs.Validate"},
	}
}

func tableError(caller, format string, args ...interface{}) *Error {
	return &Error{
		kind:    ErrTable,
		message: fmt.Sprintf(format, args...),
		deco:    []string{caller},
	}
}

func errDecorate(err error, deco string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(deco)
	}
	return err
}
