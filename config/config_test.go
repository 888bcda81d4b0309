/*
DESCRIPTION
  config_test.go provides testing for configuration loading.

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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ausocean/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/approx/fit"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "approx.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, fit.Linear, c.FitMethod())

	w, h := c.ChartSize()
	assert.Equal(t, 15*vg.Centimeter, w)
	assert.Equal(t, 15*vg.Centimeter, h)
}

func TestLoadLayers(t *testing.T) {
	path := writeFile(t, "Addr :9000\nLogLevel debug\nChebyshevOrder 5\nMethod Fourier\nRequestTimeout 2s\n")
	t.Setenv("APPROX_CHEBYSHEVORDER", "6")
	t.Setenv("APPROX_CHARTWIDTH", "20.5")

	c, err := Load(path, WithAddr(":9100"), WithValue(KeyFourierOrder, "4"))
	require.NoError(t, err)

	assert.Equal(t, ":9100", c.Addr)
	assert.Equal(t, int8(logging.Debug), c.LogLevel)
	assert.Equal(t, 6, c.Orders.Chebyshev)
	assert.Equal(t, 4, c.Orders.Fourier)
	assert.Equal(t, fit.DefaultTrigonometricOrder, c.Orders.Trigonometric)
	assert.Equal(t, "fourier", c.Method)
	assert.Equal(t, fit.Fourier, c.FitMethod())
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
	assert.Equal(t, 20.5, c.ChartWidth)
	assert.Equal(t, 15.0, c.ChartHeight)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
		opts []Option
		err  error
	}{
		{name: "unknown key", file: "Colour blue\n", err: ErrUnknownKey},
		{name: "bad level", file: "LogLevel loud\n", err: ErrInvalidValue},
		{name: "level out of range", file: "LogLevel 9\n", err: ErrInvalidValue},
		{name: "bad method", file: "Method spline\n", err: ErrInvalidValue},
		{name: "order too high", file: "TrigOrder 11\n", err: ErrInvalidValue},
		{name: "negative size", file: "LogMaxSize -1\n", err: ErrInvalidValue},
		{name: "bad duration", file: "RequestTimeout soon\n", err: ErrInvalidValue},
		{name: "zero chart", file: "ChartHeight 0\n", err: ErrInvalidValue},
		{name: "bad env", env: map[string]string{"APPROX_FOURIERORDER": "many"}, err: ErrInvalidValue},
		{name: "bad option", opts: []Option{WithLogLevel(42)}, err: ErrInvalidValue},
		{name: "bad option key", opts: []Option{WithValue("Nope", "1")}, err: ErrUnknownKey},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			path := ""
			if test.file != "" {
				path = writeFile(t, test.file)
			}
			_, err := Load(path, test.opts...)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}

func TestLevelNames(t *testing.T) {
	c := Default()
	for name, want := range levels {
		require.NoError(t, c.Set(KeyLogLevel, name))
		assert.Equal(t, want, c.LogLevel, name)
	}
	require.NoError(t, c.Set(KeyLogLevel, "WARNING"))
	assert.Equal(t, int8(logging.Warning), c.LogLevel)
}
