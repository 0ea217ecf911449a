/*
 * root.go, part of gosld.
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
	"io"

	"github.com/spf13/cobra"

	sld "github.com/rmera/gosld"
	"github.com/rmera/gosld/alias"
	"github.com/rmera/gosld/aliasstore"
	"github.com/rmera/gosld/config"
	"github.com/rmera/gosld/elements"
)

//options are the global flags and the configuration they select.
type options struct {
	cfgFile  string
	aliases  string
	elements string
	cfg      *config.Config
}

//newRootCmd wires the cobra tree.
func newRootCmd() *cobra.Command {
	o := new(options)
	root := &cobra.Command{
		Use:           "gosld",
		Short:         "Scattering length densities and cross sections of chemical formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load()
		},
	}
	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "Path to the configuration file")
	root.PersistentFlags().StringVar(&o.aliases, "aliases", "", "Alias store (.db or .sqlite for SQLite; .gz or .zst for compressed text)")
	root.PersistentFlags().StringVar(&o.elements, "elements", "", "Element data file, instead of the built-in data")

	root.AddCommand(
		newEvalCmd(o),
		newAliasCmd(o),
		newElementCmd(o),
		newPlotCmd(o),
	)
	return root
}

//load reads the configuration. Flags take precedence over it.
func (o *options) load() error {
	if o.cfgFile == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		o.cfgFile = path
	}
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.cfg = cfg
	if o.aliases == "" {
		o.aliases = cfg.Aliases
	}
	if o.elements == "" {
		o.elements = cfg.Elements
	}
	return nil
}

func (o *options) database() (*elements.Database, error) {
	if o.elements == "" {
		return elements.Default()
	}
	return elements.LoadFile(o.elements)
}

//engine returns an Engine with the selected elements and aliases. The
//returned function releases the alias store.
func (o *options) engine() (*sld.Engine, func(), error) {
	db, err := o.database()
	if err != nil {
		return nil, nil, err
	}
	store, err := aliasstore.Open(o.aliases)
	if err != nil {
		return nil, nil, err
	}
	done := func() {
		if c, ok := store.(io.Closer); ok {
			c.Close()
		}
	}
	reg, err := alias.NewRegistry(db, store)
	if err != nil {
		done()
		return nil, nil, err
	}
	e, err := sld.New(db, reg)
	if err != nil {
		done()
		return nil, nil, err
	}
	return e, done, nil
}
