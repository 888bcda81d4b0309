/*
DESCRIPTION
  chart_test.go provides testing for chart rendering.

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

package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausocean/approx/fit"
)

var samples = fit.Samples{{X: 1, Y: 2.1}, {X: 2, Y: 3.9}, {X: 3, Y: 6.0}, {X: 4, Y: 8.1}, {X: 5, Y: 9.9}, {X: 6, Y: 12.0}}

func TestCurve(t *testing.T) {
	m := fit.LinearModel{Slope: 2, Intercept: 1}
	xy := Curve(m, samples)

	require.Len(t, xy, 121)
	assert.InDelta(t, 0.5, xy[0].X, 1e-12)
	assert.InDelta(t, 6.5, xy[len(xy)-1].X, 1e-9)
	for _, p := range xy {
		assert.InDelta(t, 2*p.X+1, p.Y, 1e-12)
	}
}

func TestNew(t *testing.T) {
	m, err := fit.FitMethod(samples, fit.Cubic, 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		s     fit.Samples
		m     fit.Model
		title string
	}{
		{"empty", nil, nil, "No data"},
		{"samples only", samples, nil, "Data Visualization"},
		{"fitted", samples, m, "Curve Fitting: Cubic"},
	}
	for _, test := range tests {
		p, err := New(test.s, test.m)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.title, p.Title.Text, test.name)
	}
}

func TestRender(t *testing.T) {
	m, err := fit.FitMethod(samples, fit.Fourier, 0)
	require.NoError(t, err)
	p, err := New(samples, m)
	require.NoError(t, err)

	var png bytes.Buffer
	require.NoError(t, Render(&png, p, "png", DefaultWidth, DefaultHeight))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "not a PNG")

	var svg bytes.Buffer
	require.NoError(t, Render(&svg, p, "svg", DefaultWidth, DefaultHeight))
	assert.Contains(t, svg.String(), "<svg")

	assert.Error(t, Render(&svg, p, "bmp", DefaultWidth, DefaultHeight))
}

func TestSave(t *testing.T) {
	m, err := fit.FitMethod(samples, fit.Linear, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "linear.png")
	require.NoError(t, Save(path, samples, m, DefaultWidth, DefaultHeight))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
