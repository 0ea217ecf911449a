/*
 * calc.go, part of gosld.
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

//Package calc obtains the physical properties of a composition: mass,
//volume, electron count, neutron scattering lengths and scattering length
//densities, and X-ray anomalous scattering factors, cross sections and
//scattering length densities.
//
//Units: densities in g/cm3, X-ray energies in keV (eV in the element
//tables), wavelengths in A, scattering lengths in fm, cross sections in
//barn, volumes in nm3 and scattering length densities in A^-2.
package calc

import (
	"math"
	"math/cmplx"

	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/elements"
)

const (
	Avogadro          = 6.02214076e23   //1/mol
	ElectronRadius    = 2.8179403262e-5 //classical electron radius, A
	HC                = 12398.419843    //Planck constant times speed of light, eV A
	ThermalWavelength = 1.798           //wavelength of 2200 m/s neutrons, A
	barnA2            = 1e-8            //1 barn in A^2
	fmA               = 1e-5            //1 fm in A
	fm2barn           = 0.01            //1 fm^2 in barn
)

//Inputs are the conditions for a calculation.
type Inputs struct {
	Density    float64 //g/cm3
	Energy     float64 //X-ray energy, keV
	Wavelength float64 //neutron wavelength, A
}

//Validate returns an ErrInvalidInput error if any of the inputs is
//not a positive, finite number.
func (in Inputs) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"density", in.Density}, {"energy", in.Energy}, {"wavelength", in.Wavelength}} {
		switch {
		case math.IsNaN(f.v) || math.IsInf(f.v, 0):
			return invalidInput(f.name, f.v, "not a finite number")
		case f.v <= 0:
			return invalidInput(f.name, f.v, "it must be larger than zero")
		}
	}
	return nil
}

//XrayWavelength returns the X-ray wavelength, in A, for the
//energy of the inputs.
func (in Inputs) XrayWavelength() float64 {
	return HC / (in.Energy * 1000)
}

//Neutron holds neutron scattering quantities, for the whole formula or
//for one element.
type Neutron struct {
	Coherent      complex128 //bound coherent scattering length, fm. The imaginary part comes from absorption.
	Incoherent    float64    //bound incoherent scattering length, fm
	CoherentSLD   complex128 //A^-2
	IncoherentSLD float64    //A^-2
	TotalSLD      complex128 //A^-2
	CoherentXS    float64    //barn
	IncoherentXS  float64    //barn
	AbsorptionXS  float64    //barn, at the input wavelength
	TotalXS       float64    //barn
}

//Xray holds X-ray quantities. For an element, Fp, Fpp and the cross
//sections are per atom; for the formula they are summed over all atoms.
type Xray struct {
	Fp           float64
	Fpp          float64
	CoherentXS   float64 //barn
	IncoherentXS float64 //barn
	AbsorptionXS float64 //barn, from f''
	TotalXS      float64 //barn
	SLD          complex128
	Extrapolated bool //the energy is outside the tabulated range
}

//ElementResult are the properties of one element of the formula.
type ElementResult struct {
	Symbol    string
	Name      string
	Z         int
	Count     float64 //atoms in the formula
	Electrons float64
	Mass      float64 //partial mass, g/mol
	MassRatio float64 //percentage of the total mass
	Volume    float64 //partial volume, nm3
	Neutron   Neutron
	Xray      Xray
}

//Result is the outcome of a calculation. If Valid is false, the formula
//had no atoms, or more atoms than can be counted, and no other field
//but Inputs is meaningful.
type Result struct {
	Valid          bool
	Formula        string //empirical formula
	Inputs         Inputs
	XrayWavelength float64 //A
	Electrons      float64
	Mass           float64 //g/mol
	Volume         float64 //molecular volume, nm3
	Elements       []ElementResult
	Neutron        Neutron
	Xray           Xray
	//Mass attenuation coefficients, cm2/g, and attenuation lengths, micrometres
	NeutronMassAttenuation float64
	NeutronAttenuation     float64
	XrayMassAttenuation    float64
	XrayAttenuation        float64
}

//volume returns the volume, in nm3, taken by mass g/mol at density g/cm3.
func volume(mass, density float64) float64 {
	return mass / (density * Avogadro) * 1e21
}

//sld returns b/v, in A^-2, for b in fm and v in nm3.
func sld(b complex128, v float64) complex128 {
	if v == 0 {
		return 0
	}
	return b * fmA / complex(v*1e3, 0)
}

//absorption scales the thermal absorption cross section sigma, in barn,
//to the wavelength lambda (1/v law).
func absorption(sigma, lambda float64) float64 {
	return sigma * lambda / ThermalWavelength
}

//Calculate returns the properties of c. c must have been obtained
//with the same database db.
func Calculate(c *compo.Composition, db *elements.Database, in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, errDecorate(err, "Calculate")
	}
	R := &Result{Inputs: in, XrayWavelength: in.XrayWavelength()}
	if c == nil || c.IsZero() {
		return R, nil
	}
	R.Formula = c.Empirical()
	lambda := in.Wavelength
	xlambda := R.XrayWavelength
	energy := in.Energy * 1000
	for _, sym := range c.Elements() {
		count := c.ElementCount(sym)
		if count <= 0 {
			continue
		}
		e, err := db.Element(sym)
		if err != nil {
			return nil, errDecorate(err, "Calculate")
		}
		er := ElementResult{Symbol: sym, Name: e.Name, Z: e.Z, Count: count, Electrons: count * float64(e.Z)}
		for _, nuc := range c.NuclidesOf(sym) {
			iso, err := db.Isotope(sym, nuc.A)
			if err != nil {
				return nil, errDecorate(err, "Calculate")
			}
			n := c.Count(nuc)
			abs := absorption(iso.Absorption, lambda)
			er.Mass += n * iso.Mass
			//sigma_a/(2 lambda), barn/A to fm
			er.Neutron.Coherent += complex(n, 0) * complex(iso.Bcoh, -abs*barnA2/(2*lambda)/fmA)
			er.Neutron.Incoherent += n * iso.Binc
			er.Neutron.IncoherentXS += n * 4 * math.Pi * iso.Binc * iso.Binc * fm2barn
			er.Neutron.AbsorptionXS += n * abs
		}
		//coherent scattering from the average scattering length of the element
		bmean := cmplx.Abs(er.Neutron.Coherent) / count
		er.Neutron.CoherentXS = count * 4 * math.Pi * bmean * bmean * fm2barn
		er.Neutron.TotalXS = er.Neutron.CoherentXS + er.Neutron.IncoherentXS + er.Neutron.AbsorptionXS

		x, err := elementXray(e, energy, xlambda)
		if err != nil {
			return nil, errDecorate(err, "Calculate")
		}
		er.Xray = x
		R.Electrons += er.Electrons
		R.Mass += er.Mass
		R.Neutron.Coherent += er.Neutron.Coherent
		R.Neutron.Incoherent += er.Neutron.Incoherent
		R.Neutron.CoherentXS += er.Neutron.CoherentXS
		R.Neutron.IncoherentXS += er.Neutron.IncoherentXS
		R.Neutron.AbsorptionXS += er.Neutron.AbsorptionXS
		R.Xray.Fp += count * x.Fp
		R.Xray.Fpp += count * x.Fpp
		R.Xray.CoherentXS += count * x.CoherentXS
		R.Xray.IncoherentXS += count * x.IncoherentXS
		R.Xray.AbsorptionXS += count * x.AbsorptionXS
		R.Xray.Extrapolated = R.Xray.Extrapolated || x.Extrapolated
		R.Elements = append(R.Elements, er)
		//the per-element X-ray SLD needs the partial volume, set below.
		R.Elements[len(R.Elements)-1].Xray.SLD = xrayLength(er.Electrons, count*x.Fp, count*x.Fpp)
	}
	//no atoms, or more than a float64 can count
	if !(R.Mass > 0) || math.IsInf(R.Mass, 1) {
		return &Result{Inputs: in, XrayWavelength: xlambda}, nil
	}
	R.Valid = true
	R.Volume = volume(R.Mass, in.Density)
	R.Neutron.TotalXS = R.Neutron.CoherentXS + R.Neutron.IncoherentXS + R.Neutron.AbsorptionXS
	setSLD(&R.Neutron, R.Volume)
	R.Xray.TotalXS = R.Xray.CoherentXS + R.Xray.IncoherentXS + R.Xray.AbsorptionXS
	sl := xrayLength(R.Electrons, R.Xray.Fp, R.Xray.Fpp)
	R.Xray.SLD = complex(ElectronRadius*real(sl)/(R.Volume*1e3), ElectronRadius*imag(sl)/(R.Volume*1e3))
	for i := range R.Elements {
		er := &R.Elements[i]
		er.MassRatio = 100 * er.Mass / R.Mass
		er.Volume = volume(er.Mass, in.Density)
		setSLD(&er.Neutron, er.Volume)
		s := er.Xray.SLD
		er.Xray.SLD = complex(ElectronRadius*real(s)/(er.Volume*1e3), ElectronRadius*imag(s)/(er.Volume*1e3))
	}
	R.NeutronMassAttenuation, R.NeutronAttenuation = attenuation(R.Neutron.TotalXS, R.Mass, in.Density)
	R.XrayMassAttenuation, R.XrayAttenuation = attenuation(R.Xray.TotalXS, R.Mass, in.Density)
	return R, nil
}

//xrayLength returns the X-ray scattering power, in electrons, of a
//group of atoms with the given number of electrons and total f' and f''.
//The relativistic correction (Z/82.5)^2.37 is taken over all the
//electrons of the group at once.
func xrayLength(electrons, fp, fpp float64) complex128 {
	return complex(electrons-math.Pow(electrons/82.5, 2.37)+fp, fpp)
}

func setSLD(n *Neutron, v float64) {
	n.CoherentSLD = sld(n.Coherent, v)
	n.IncoherentSLD = real(sld(complex(n.Incoherent, 0), v))
	n.TotalSLD = n.CoherentSLD + complex(n.IncoherentSLD, 0)
}

//attenuation returns the mass attenuation coefficient, in cm2/g, and the
//attenuation length, in micrometres, for a total cross section sigma barn
//per formula unit of mass g/mol, at density g/cm3.
func attenuation(sigma, mass, density float64) (float64, float64) {
	mu := sigma * 1e-24 * Avogadro / mass
	if mu == 0 {
		return 0, math.Inf(1)
	}
	return mu, 1e4 / (mu * density)
}

//elementXray returns the per-atom X-ray quantities of e at energy eV.
//lambda is the corresponding wavelength in A.
func elementXray(e *elements.Element, energy, lambda float64) (Xray, error) {
	var x Xray
	values := make([]float64, 0, 4)
	for _, p := range Properties() {
		v, ext, err := ElementProperty(e, p, energy)
		if err != nil {
			return x, err
		}
		values = append(values, v)
		x.Extrapolated = x.Extrapolated || ext
	}
	x.Fp, x.Fpp, x.CoherentXS, x.IncoherentXS = values[0], values[1], values[2], values[3]
	x.AbsorptionXS = 2 * ElectronRadius * lambda * x.Fpp / barnA2
	x.TotalXS = x.CoherentXS + x.IncoherentXS + x.AbsorptionXS
	return x, nil
}
