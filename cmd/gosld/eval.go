/*
 * eval.go, part of gosld.
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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/sldjson"
)

// newEvalCmd wires the `eval` command.
func newEvalCmd(o *options) *cobra.Command {
	var density, energy, wavelength float64
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "eval FORMULA",
		Short: "Calculate the properties of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := o.cfg.Inputs()
			if cmd.Flags().Changed("density") {
				in.Density = density
			}
			if cmd.Flags().Changed("energy") {
				in.Energy = energy
			}
			if cmd.Flags().Changed("wavelength") {
				in.Wavelength = wavelength
			}
			out := cmd.OutOrStdout()
			e, done, err := o.engine()
			if err != nil {
				return err
			}
			defer done()
			r, err := e.Evaluate(args[0], in)
			if err != nil {
				if asJSON {
					sldjson.NewError("eval", err).Send(out)
				}
				return err
			}
			if asJSON {
				if jerr := sldjson.NewResult(args[0], r).Send(out); jerr != nil {
					return jerr
				}
				return nil
			}
			printResult(out, args[0], r)
			return nil
		},
	}
	cmd.Flags().Float64Var(&density, "density", 0, "Mass density, g/cm3")
	cmd.Flags().Float64Var(&energy, "energy", 0, "X-ray energy, keV")
	cmd.Flags().Float64Var(&wavelength, "wavelength", 0, "Neutron wavelength, Angstrom")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the result as JSON")
	return cmd
}

func printResult(out io.Writer, text string, r *calc.Result) {
	fmt.Fprintln(out, headerStyle.Render(text))
	if !r.Valid {
		fmt.Fprintln(out, warningStyle.Render("The formula has no atoms."))
		return
	}
	in := r.Inputs
	fmt.Fprint(out, lines(
		field("Formula", r.Formula),
		field("Density", num(in.Density)+" g/cm3"),
		field("Molecular mass", num(r.Mass)+" g/mol"),
		field("Molecular volume", num(r.Volume)+" nm3"),
		field("Electrons", num(r.Electrons)),
	))
	n := r.Neutron
	fmt.Fprint(out, lines(
		sectionStyle.Render(fmt.Sprintf("Neutrons, %s A", num(in.Wavelength))),
		field("Coherent b", cplx(n.Coherent)+" fm"),
		field("Incoherent b", num(n.Incoherent)+" fm"),
		field("Coherent SLD", cplx(n.CoherentSLD)+" A^-2"),
		field("Incoherent SLD", num(n.IncoherentSLD)+" A^-2"),
		field("Total SLD", cplx(n.TotalSLD)+" A^-2"),
		field("Coherent cross section", num(n.CoherentXS)+" barn"),
		field("Incoherent cross section", num(n.IncoherentXS)+" barn"),
		field("Absorption cross section", num(n.AbsorptionXS)+" barn"),
		field("Total cross section", num(n.TotalXS)+" barn"),
		field("Mass attenuation", num(r.NeutronMassAttenuation)+" cm2/g"),
		field("Attenuation length", num(r.NeutronAttenuation)+" um"),
	))
	x := r.Xray
	fmt.Fprint(out, lines(
		sectionStyle.Render(fmt.Sprintf("X-rays, %s keV (%s A)", num(in.Energy), num(r.XrayWavelength))),
		field("f'", num(x.Fp)),
		field("f''", num(x.Fpp)),
		field("SLD", cplx(x.SLD)+" A^-2"),
		field("Coherent cross section", num(x.CoherentXS)+" barn"),
		field("Incoherent cross section", num(x.IncoherentXS)+" barn"),
		field("Absorption cross section", num(x.AbsorptionXS)+" barn"),
		field("Total cross section", num(x.TotalXS)+" barn"),
		field("Mass attenuation", num(r.XrayMassAttenuation)+" cm2/g"),
		field("Attenuation length", num(r.XrayAttenuation)+" um"),
	))
	if x.Extrapolated {
		fmt.Fprintln(out, warningStyle.Render("The energy is outside the X-ray tables of some elements; the closest values were used."))
	}
	fmt.Fprintln(out, sectionStyle.Render("Elements"))
	fmt.Fprintln(out, row("", "count", "mass %", "b coh / fm", "SLD n / A^-2", "f'", "f''"))
	for _, e := range r.Elements {
		fmt.Fprintln(out, row(e.Symbol, num(e.Count), fmt.Sprintf("%.3f", e.MassRatio),
			fmt.Sprintf("%.4f", real(e.Neutron.Coherent)), fmt.Sprintf("%.4e", real(e.Neutron.CoherentSLD)),
			fmt.Sprintf("%.4f", e.Xray.Fp), fmt.Sprintf("%.4f", e.Xray.Fpp)))
	}
}
