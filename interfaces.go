/*
 * interfaces.go, part of gosld.
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

package sld

import "github.com/rmera/gosld/calc"

//Evaluator is anything that can obtain the properties of a formula.
//The Engine is one.
type Evaluator interface {
	Evaluate(text string, in calc.Inputs) (*calc.Result, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// The kind of an error (syntax error, unknown element, cyclic alias...) is a sentinel
// value in the package that returns it, and can be checked with errors.Is.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up, and returns the "decoration" slice. An empty string just returns the current slice.
	//The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing.
	//If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

//CriticalError is an Error that can tell whether the library can still
//work after it. Only failures to load element data are critical.
type CriticalError interface {
	Error
	Critical() bool
}

//errDecorate decorates err with the caller's name, if err implements Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
