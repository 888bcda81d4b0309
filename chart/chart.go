/*
DESCRIPTION
  chart.go provides plotting of sample sets and the curves fitted to them.

AUTHORS
  The approx contributors

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean)

  It is free software: you can redistribute it and/or modify them
  under the terms of the GNU General Public License as published by the
  Free Software Foundation, either version 3 of the License, or (at your
  option) any later version.

  It is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
  FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License
  for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses.
*/

// Package chart draws sample scatter plots with fitted curves superimposed.
package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/approx/fit"
)

// Curve sampling.
const (
	margin = 0.1 // Fraction of the domain width drawn either side of the samples.
	steps  = 100 // Curve steps per domain width.
)

// Default chart size.
const (
	DefaultWidth  = 15 * vg.Centimeter
	DefaultHeight = 15 * vg.Centimeter
)

// Curve returns m evaluated over the domain of s widened by 10% each side, at
// a spacing of 1/100 of the domain width. s must hold at least two distinct x
// values.
func Curve(m fit.Model, s fit.Samples) plotter.XYs {
	d := s.Domain()
	w := d.Width()
	lo := d.Min - margin*w
	step := w / steps
	n := int(steps*(1+2*margin)) + 1

	xy := make(plotter.XYs, n)
	for i := range xy {
		x := lo + float64(i)*step
		xy[i].X = x
		xy[i].Y = m.Predict(x)
	}
	return xy
}

// New returns a plot of s with m superimposed. m may be nil to plot the
// samples alone.
func New(s fit.Samples, m fit.Model) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	switch {
	case len(s) == 0:
		p.Title.Text = "No data"
		return p, nil
	case m == nil:
		p.Title.Text = "Data Visualization"
	default:
		p.Title.Text = "Curve Fitting: " + m.Spec().Name()
	}

	err := plotutil.AddScatters(p, "Data Points", plotterXY(s))
	if err != nil {
		return nil, fmt.Errorf("could not add samples: %w", err)
	}
	if m == nil {
		return p, nil
	}

	err = plotutil.AddLines(p, m.Spec().Name()+" Fitting", Curve(m, s))
	if err != nil {
		return nil, fmt.Errorf("could not add fitted curve: %w", err)
	}
	return p, nil
}

// Render writes p to w in the given format, e.g. "png" or "svg".
func Render(w io.Writer, p *plot.Plot, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("could not create %s canvas: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("could not write %s chart: %w", format, err)
	}
	return nil
}

// Save plots s and m to the named file; the format follows the extension.
func Save(path string, s fit.Samples, m fit.Model, width, height vg.Length) error {
	p, err := New(s, m)
	if err != nil {
		return fmt.Errorf("could not draw plot contents: %w", err)
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}

// plotterXY provides a plotter.XYs type value based on the given samples.
func plotterXY(s fit.Samples) plotter.XYs {
	xy := make(plotter.XYs, len(s))
	for i, p := range s {
		xy[i].X = p.X
		xy[i].Y = p.Y
	}
	return xy
}
