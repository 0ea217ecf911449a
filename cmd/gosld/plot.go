/*
 * plot.go, part of gosld.
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
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/sldplot"
)

var propertyNames = map[string]calc.Property{
	"fp":         calc.Fp,
	"fpp":        calc.Fpp,
	"coherent":   calc.CoherentXS,
	"incoherent": calc.IncoherentXS,
}

func propertyByName(name string) (calc.Property, error) {
	if p, ok := propertyNames[strings.ToLower(name)]; ok {
		return p, nil
	}
	for _, p := range calc.Properties() {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown property %q, use fp, fpp, coherent or incoherent", name)
}

// newPlotCmd wires the `plot` command.
func newPlotCmd(o *options) *cobra.Command {
	var output, property string
	var energy float64
	cmd := &cobra.Command{
		Use:   "plot FORMULA",
		Short: "Plot X-ray data of the elements in a formula against energy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output required")
			}
			p, err := propertyByName(property)
			if err != nil {
				return err
			}
			mark := o.cfg.Energy
			if cmd.Flags().Changed("energy") {
				mark = energy
			}
			e, done, err := o.engine()
			if err != nil {
				return err
			}
			defer done()
			c, err := e.Composition(args[0])
			if err != nil {
				return err
			}
			pl, err := sldplot.Chart(e.Database(), c.Elements(), p, mark)
			if err != nil {
				return err
			}
			if err := sldplot.Save(pl, output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", p, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Image file; the format is taken from the extension")
	cmd.Flags().StringVar(&property, "property", "fpp", "Property to plot: fp, fpp, coherent or incoherent")
	cmd.Flags().Float64Var(&energy, "energy", 0, "Energy to mark, keV")
	return cmd
}
