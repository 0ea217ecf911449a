/*
 * element.go, part of gosld.
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

	"github.com/spf13/cobra"
)

// newElementCmd wires the `element` command.
func newElementCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "element SYMBOL",
		Short: "Show the isotopes and the X-ray table of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := o.database()
			if err != nil {
				return err
			}
			e, err := db.Element(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s, %s", e.Symbol, e.Name)))
			fmt.Fprint(out, lines(
				field("Atomic number", fmt.Sprint(e.Z)),
				field("Atomic mass", num(e.Mass())+" g/mol"),
			))
			fmt.Fprintln(out, sectionStyle.Render("Isotopes"))
			fmt.Fprintln(out, row("A", "mass / u", "abundance", "b coh / fm", "b inc / fm", "abs / barn"))
			for _, i := range e.Isotopes() {
				fmt.Fprintln(out, row(fmt.Sprint(i.A), num(i.Mass), num(i.Abundance), num(i.Bcoh), num(i.Binc), num(i.Absorption)))
			}
			fmt.Fprintln(out, sectionStyle.Render("X-ray table"))
			fmt.Fprintln(out, row("keV", "f'", "f''", "coh / barn", "inc / barn"))
			for _, s := range e.Xray() {
				fmt.Fprintln(out, row(num(s.Energy/1000), num(s.Fp), num(s.Fpp), num(s.Coherent), num(s.Incoherent)))
			}
			return nil
		},
	}
}
