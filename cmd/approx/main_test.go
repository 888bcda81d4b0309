/*
DESCRIPTION
  main_test.go provides testing for the approx command.

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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausocean/approx/fit"
	"github.com/ausocean/approx/sampleio"
	"github.com/ausocean/approx/session"
)

func quiet() *log.Logger { return log.New(io.Discard) }

func TestRunSingle(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "fit.png")
	reportPath := filepath.Join(dir, "fit.html")
	exportPath := filepath.Join(dir, "samples.csv")

	var out bytes.Buffer
	err := run([]string{
		"-method", "cubic",
		"-chart", chartPath,
		"-report", reportPath,
		"-export", exportPath,
	}, &out, quiet())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Samples (6)")
	assert.Contains(t, out.String(), "Curve Fitting: Cubic")
	assert.Contains(t, out.String(), "RMSE")

	b, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

	b, err = os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<table>")

	got, err := sampleio.ReadFile(exportPath)
	require.NoError(t, err)
	assert.Equal(t, session.Example(), got)
}

func TestRunCompare(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(file, []byte("x,y\n0,1\n1,2\n2,5\n3,10\n"), 0o644))
	reportPath := filepath.Join(dir, "best.md")

	var out bytes.Buffer
	err := run([]string{"-file", file, "-method", "ALL", "-report", reportPath}, &out, quiet())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Method comparison")
	assert.Contains(t, out.String(), "insufficient data")

	b, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# Curve Fitting: "))
}

func TestRunConfigMethod(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "approx.conf")
	require.NoError(t, os.WriteFile(cfgPath, []byte("Method quadratic\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgPath}, &out, quiet()))
	assert.Contains(t, out.String(), "Curve Fitting: Quadratic")

	out.Reset()
	require.NoError(t, run([]string{"-config", cfgPath, "-method", "linear"}, &out, quiet()))
	assert.Contains(t, out.String(), "Curve Fitting: Linear")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte("1,1\n"), 0o644))

	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown method", []string{"-method", "spline"}, fit.ErrUnrecognizedMethod},
		{"missing file", []string{"-file", filepath.Join(dir, "none.csv")}, os.ErrNotExist},
		{"too few samples", []string{"-file", short, "-method", "linear"}, fit.ErrInsufficientData},
		{"bad order", []string{"-method", "fourier", "-order", "-2"}, fit.ErrUnrecognizedMethod},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := run(test.args, io.Discard, quiet())
			assert.ErrorIs(t, err, test.err)
		})
	}

	assert.Error(t, run([]string{"-nosuchflag"}, io.Discard, quiet()))
}
