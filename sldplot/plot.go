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

//Package sldplot draws the tabulated X-ray data of elements against
//energy, using gonum plot.
package sldplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/rmera/gosld/calc"
	"github.com/rmera/gosld/elements"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("goSLD/sldplot: no elements to plot")

//Points is the number of points at which each curve is interpolated.
const Points = 200

//Width and Height are the size of the saved images.
var (
	Width  = 16 * vg.Centimeter
	Height = 11 * vg.Centimeter
)

//Chart plots the property p of the elements in symbols against the energy,
//in keV, over the tabulated range of each element. The tabulated points
//are marked. If mark is larger than 0, a dashed vertical line is drawn at
//that energy, in keV.
func Chart(db *elements.Database, symbols []string, p calc.Property, mark float64) (*plot.Plot, error) {
	if len(symbols) == 0 {
		return nil, ErrNoData
	}
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s against energy", p)
	pl.X.Label.Text = "Energy / keV"
	pl.Y.Label.Text = p.String()
	if u := p.Unit(); u != "" {
		pl.Y.Label.Text += " / " + u
	}
	pl.Add(plotter.NewGrid())
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for key, s := range symbols {
		e, err := db.Element(s)
		if err != nil {
			return nil, err
		}
		curve, err := interpolated(e, p)
		if err != nil {
			return nil, err
		}
		table := tabulated(e, p)
		for _, xy := range table {
			ymin = math.Min(ymin, xy.Y)
			ymax = math.Max(ymax, xy.Y)
		}
		r, g, b := colors(key, len(symbols))
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		l, err := plotter.NewLine(curve)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1.5)
		sc, err := plotter.NewScatter(table)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = c
		pl.Add(l, sc)
		pl.Legend.Add(e.Symbol, l, sc)
	}
	if mark > 0 {
		if ymin == ymax {
			ymin, ymax = ymin-1, ymax+1
		}
		m, err := plotter.NewLine(plotter.XYs{{X: mark, Y: ymin}, {X: mark, Y: ymax}})
		if err != nil {
			return nil, err
		}
		m.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		m.LineStyle.Color = color.Gray{Y: 90}
		pl.Add(m)
		pl.Legend.Add(fmt.Sprintf("%.4g keV", mark), m)
	}
	return pl, nil
}

//tabulated returns the table of e for p, with energies in keV.
func tabulated(e *elements.Element, p calc.Property) plotter.XYs {
	x := e.Xray()
	ret := make(plotter.XYs, len(x))
	for i, s := range x {
		ret[i].X = s.Energy / 1000
		ret[i].Y = p.Of(s)
	}
	return ret
}

//interpolated returns Points values of p for e, evenly spread over its
//table, with energies in keV.
func interpolated(e *elements.Element, p calc.Property) (plotter.XYs, error) {
	x := e.Xray()
	lo, hi := x[0].Energy, x[len(x)-1].Energy
	ret := make(plotter.XYs, Points)
	for i := range ret {
		en := lo + (hi-lo)*float64(i)/float64(Points-1)
		v, _, err := calc.ElementProperty(e, p, en)
		if err != nil {
			return nil, err
		}
		ret[i].X = en / 1000
		ret[i].Y = v
	}
	return ret, nil
}

//Save writes pl to the file name. The format is taken from the extension.
func Save(pl *plot.Plot, name string) error {
	return pl.Save(Width, Height, name)
}

//WritePNG writes pl to w as a PNG image.
func WritePNG(pl *plot.Plot, w io.Writer) error {
	wt, err := pl.WriterTo(Width, Height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
