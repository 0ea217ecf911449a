/*
 * json.go, part of gosld.
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

package sldjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/rmera/gosld/alias"
	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/elements"
	"github.com/rmera/gosld/formula"
)

//Complex is a complex number as a [real, imaginary] pair.
type Complex [2]float64

func complexOf(c complex128) Complex {
	return Complex{real(c), imag(c)}
}

//Complex128 returns C as a Go complex number.
func (C Complex) Complex128() complex128 {
	return complex(C[0], C[1])
}

//finite returns nil for infinite or NaN values, which JSON can't hold.
func finite(x float64) *float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil
	}
	return &x
}

//A ready-to-serialize container for neutron quantities.
type Neutron struct {
	Coherent      Complex
	Incoherent    float64
	CoherentSLD   Complex
	IncoherentSLD float64
	TotalSLD      Complex
	CoherentXS    float64
	IncoherentXS  float64
	AbsorptionXS  float64
	TotalXS       float64
}

func neutronOf(n calc.Neutron) Neutron {
	return Neutron{
		Coherent:      complexOf(n.Coherent),
		Incoherent:    n.Incoherent,
		CoherentSLD:   complexOf(n.CoherentSLD),
		IncoherentSLD: n.IncoherentSLD,
		TotalSLD:      complexOf(n.TotalSLD),
		CoherentXS:    n.CoherentXS,
		IncoherentXS:  n.IncoherentXS,
		AbsorptionXS:  n.AbsorptionXS,
		TotalXS:       n.TotalXS,
	}
}

//A ready-to-serialize container for X-ray quantities.
type Xray struct {
	Fp           float64
	Fpp          float64
	CoherentXS   float64
	IncoherentXS float64
	AbsorptionXS float64
	TotalXS      float64
	SLD          Complex
	Extrapolated bool
}

func xrayOf(x calc.Xray) Xray {
	return Xray{
		Fp:           x.Fp,
		Fpp:          x.Fpp,
		CoherentXS:   x.CoherentXS,
		IncoherentXS: x.IncoherentXS,
		AbsorptionXS: x.AbsorptionXS,
		TotalXS:      x.TotalXS,
		SLD:          complexOf(x.SLD),
		Extrapolated: x.Extrapolated,
	}
}

//A ready-to-serialize container for the properties of one element.
type Element struct {
	Symbol    string
	Name      string
	Z         int
	Count     float64
	Electrons float64
	Mass      float64
	MassRatio float64
	Volume    float64
	Neutron   Neutron
	Xray      Xray
}

//Result is the JSON form of a calc.Result. Units are those of package calc.
type Result struct {
	Text                   string //the formula as given
	Valid                  bool
	Formula                string //empirical formula
	Density                float64
	Energy                 float64
	Wavelength             float64
	XrayWavelength         float64
	Electrons              float64
	Mass                   float64
	Volume                 float64
	Elements               []Element
	Neutron                Neutron
	Xray                   Xray
	NeutronMassAttenuation *float64
	NeutronAttenuation     *float64
	XrayMassAttenuation    *float64
	XrayAttenuation        *float64
}

//NewResult puts r, obtained for the formula text, in a Result.
func NewResult(text string, r *calc.Result) *Result {
	J := &Result{
		Text:                   text,
		Valid:                  r.Valid,
		Formula:                r.Formula,
		Density:                r.Inputs.Density,
		Energy:                 r.Inputs.Energy,
		Wavelength:             r.Inputs.Wavelength,
		XrayWavelength:         r.XrayWavelength,
		Electrons:              r.Electrons,
		Mass:                   r.Mass,
		Volume:                 r.Volume,
		Neutron:                neutronOf(r.Neutron),
		Xray:                   xrayOf(r.Xray),
		NeutronMassAttenuation: finite(r.NeutronMassAttenuation),
		NeutronAttenuation:     finite(r.NeutronAttenuation),
		XrayMassAttenuation:    finite(r.XrayMassAttenuation),
		XrayAttenuation:        finite(r.XrayAttenuation),
	}
	for _, e := range r.Elements {
		J.Elements = append(J.Elements, Element{
			Symbol:    e.Symbol,
			Name:      e.Name,
			Z:         e.Z,
			Count:     e.Count,
			Electrons: e.Electrons,
			Mass:      e.Mass,
			MassRatio: e.MassRatio,
			Volume:    e.Volume,
			Neutron:   neutronOf(e.Neutron),
			Xray:      xrayOf(e.Xray),
		})
	}
	return J
}

//Send Marshals the result and writes to out, returns an error or nil
func (J *Result) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("Result.Send", err)
	}
	return nil
}

//An easily JSON-serializable error type.
type Error struct {
	IsError    bool     //If this is false (no error) all the other fields will be at their zero-values.
	Kind       string   //the kind of error, such as "syntax error" or "cyclic alias reference"
	Position   int      //for formula errors, the byte offset of the problem
	Token      string   //for formula errors, the offending text
	Chain      []string //for cyclic aliases, the aliases involved
	Field      string   //for invalid inputs, the offending input
	Function   string   //which go function gave the error
	Message    string   //the error itself
	Decoration []string //the call stack, as decorated by goSLD
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec != "" {
		J.Decoration = append(J.Decoration, dec)
	}
	return J.Decoration
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Send Marshals the error and writes it to out.
func (J *Error) Send(out io.Writer) error {
	_, err := out.Write(append(J.Marshal(), '\n'))
	return err
}

var kinds = []error{
	formula.ErrSyntax,
	formula.ErrUnbalanced,
	formula.ErrUnknownToken,
	formula.ErrInvalidIsotope,
	elements.ErrUnknownElement,
	elements.ErrUnknownIsotope,
	elements.ErrInvalidData,
	alias.ErrInvalidName,
	compo.ErrCyclic,
	compo.ErrTooDeep,
	compo.ErrOverflow,
	calc.ErrInvalidInput,
	calc.ErrTable,
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(function string, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Message: err.Error()}
	for _, k := range kinds {
		if errors.Is(err, k) {
			jerr.Kind = k.Error()
			break
		}
	}
	var ferr *formula.Error
	if errors.As(err, &ferr) {
		jerr.Position = ferr.Pos
		jerr.Token = ferr.Text
	}
	var cerr *compo.Error
	if errors.As(err, &cerr) {
		jerr.Chain = cerr.Chain
	}
	var ierr *calc.Error
	if errors.As(err, &ierr) {
		jerr.Field = ierr.Field
	}
	if d, ok := err.(interface{ Decorate(string) []string }); ok {
		jerr.Decoration = append([]string(nil), d.Decorate("")...)
	}
	return jerr
}

//Request is a job passed from an external program: a formula
//and, optionally, the conditions to evaluate it at.
type Request struct {
	Formula    string
	Density    float64
	Energy     float64
	Wavelength float64
}

//Inputs returns the conditions of the request. Those not given are
//taken from defaults.
func (R *Request) Inputs(defaults calc.Inputs) calc.Inputs {
	in := defaults
	if R.Density != 0 {
		in.Density = R.Density
	}
	if R.Energy != 0 {
		in.Energy = R.Energy
	}
	if R.Wavelength != 0 {
		in.Wavelength = R.Wavelength
	}
	return in
}

//DecodeRequest reads one line from stdin and decodes it into a Request.
func DecodeRequest(stdin *bufio.Reader) (*Request, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("DecodeRequest", err)
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("DecodeRequest", err)
	}
	return ret, nil
}
