/*
 * sld.go, part of gosld.
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

import (
	"github.com/rmera/gosld/alias"
	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/compo"
	"github.com/rmera/gosld/elements"
	"github.com/rmera/gosld/formula"
)

//DefaultInputs returns the inputs used when nothing else is given:
//density 1 g/cm3, the Cu K-alpha energy and 2200 m/s neutrons.
func DefaultInputs() calc.Inputs {
	return calc.Inputs{Density: 1, Energy: 8.0478, Wavelength: calc.ThermalWavelength}
}

//ParseAndEvaluate parses text, expands it using the aliases in snap,
//which can be nil, and calculates its properties for the inputs in.
//A formula without atoms, such as "H0", gives a Result with Valid false.
func ParseAndEvaluate(db *elements.Database, text string, snap *alias.Snapshot, in calc.Inputs) (*calc.Result, error) {
	if err := in.Validate(); err != nil {
		return nil, errDecorate(err, "ParseAndEvaluate")
	}
	c, err := resolve(db, text, snap)
	if err != nil {
		return nil, errDecorate(err, "ParseAndEvaluate")
	}
	r, err := calc.Calculate(c, db, in)
	if err != nil {
		return nil, errDecorate(err, "ParseAndEvaluate")
	}
	return r, nil
}

func resolve(db *elements.Database, text string, snap *alias.Snapshot) (*compo.Composition, error) {
	f, err := formula.Parse(text, db, snap)
	if err != nil {
		return nil, err
	}
	return compo.Resolve(f, db, snap)
}

//Engine evaluates formulas with an element database and a set of aliases.
//It is safe for concurrent use.
type Engine struct {
	db      *elements.Database
	aliases *alias.Registry
}

//New returns an Engine. If db is nil, the built-in element database
//is used. If aliases is nil, a registry without a store is created.
func New(db *elements.Database, aliases *alias.Registry) (*Engine, error) {
	var err error
	if db == nil {
		if db, err = elements.Default(); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	if aliases == nil {
		if aliases, err = alias.NewRegistry(db, nil); err != nil {
			return nil, errDecorate(err, "New")
		}
	}
	return &Engine{db: db, aliases: aliases}, nil
}

//Database returns the element database of the engine.
func (E *Engine) Database() *elements.Database {
	return E.db
}

//Evaluate calculates the properties of the formula text. All aliases
//are taken from one snapshot of the registry, so concurrent changes
//do not affect an evaluation in progress.
func (E *Engine) Evaluate(text string, in calc.Inputs) (*calc.Result, error) {
	r, err := ParseAndEvaluate(E.db, text, E.aliases.Snapshot(), in)
	if err != nil {
		return nil, errDecorate(err, "Engine.Evaluate")
	}
	return r, nil
}

//Composition returns the flat composition of the formula text.
func (E *Engine) Composition(text string) (*compo.Composition, error) {
	c, err := resolve(E.db, text, E.aliases.Snapshot())
	if err != nil {
		return nil, errDecorate(err, "Engine.Composition")
	}
	return c, nil
}

//DefineAlias defines, or redefines, the alias name as the formula text.
func (E *Engine) DefineAlias(name, text string) error {
	if err := E.aliases.Define(name, text); err != nil {
		return errDecorate(err, "Engine.DefineAlias")
	}
	return nil
}

//RemoveAlias removes the alias name, if it exists.
func (E *Engine) RemoveAlias(name string) error {
	if err := E.aliases.Remove(name); err != nil {
		return errDecorate(err, "Engine.RemoveAlias")
	}
	return nil
}

//ListAliases returns the aliases in definition order.
func (E *Engine) ListAliases() []alias.Entry {
	return E.aliases.List()
}
