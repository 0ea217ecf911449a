/*
 * doc.go, part of gosld.
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

/*Package sld is the main package of the goSLD library. It takes chemical
formulas, such as "H2O", "Ca(OH)2", "H[2]2O" or "(Methyl)2O", and obtains the
scattering properties of the corresponding compound: molecular mass and
volume, electron count, neutron scattering lengths, scattering length
densities and cross sections, and X-ray anomalous scattering factors, cross
sections and scattering length densities at a given energy.


	**goSLD Capabilities**


    Parses formulas with nested, repeated groups and explicit isotopes.

    Keeps user-defined aliases, names that stand for a formula, which can
	be used inside other formulas and aliases. Aliases referring to
	themselves, directly or indirectly, are rejected.

    Stores aliases in plain, gzip or zstd-compressed text files, or in
	SQLite databases (package aliasstore).

    Carries a built-in element and isotope database, which can be replaced
	by a YAML file (package elements).

    Interpolates the tabulated X-ray data of each element at any energy.

    Writes results as JSON (package sldjson) and plots the tabulated X-ray
	data (package sldplot).

The subpackages can be used on their own: formula parses, compo expands
parsed formulas into compositions, and calc computes properties.
The Engine in this package puts them together.
*/
package sld
