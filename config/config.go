/*
DESCRIPTION
  config.go provides approx configuration, layered from defaults, a config
  file, APPROX_ environment variables and programmatic options.

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

// Package config holds the settings shared by the approx commands.
//
// A config file holds one "Key value" pair per line, for example:
//
//	Addr :8080
//	LogLevel info
//	ChebyshevOrder 4
//
// Every key may also be set by an environment variable named APPROX_ followed
// by the key in upper case, such as APPROX_LOGLEVEL. The environment takes
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ausocean/utils/filemap"
	"github.com/ausocean/utils/logging"
	"github.com/ausocean/utils/sliceutils"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/approx/fit"
	"github.com/ausocean/approx/session"
)

// EnvPrefix prefixes the names of environment variables read by Load.
const EnvPrefix = "APPROX_"

// Config keys.
const (
	KeyAddr            = "Addr"
	KeyLogPath         = "LogPath"
	KeyLogLevel        = "LogLevel"
	KeyLogMaxSize      = "LogMaxSize"
	KeyLogMaxBackups   = "LogMaxBackups"
	KeyLogMaxAge       = "LogMaxAge"
	KeyRequestTimeout  = "RequestTimeout"
	KeyChartWidth      = "ChartWidth"
	KeyChartHeight     = "ChartHeight"
	KeyMethod          = "Method"
	KeyPolynomialOrder = "PolynomialOrder"
	KeyChebyshevOrder  = "ChebyshevOrder"
	KeyTrigOrder       = "TrigOrder"
	KeyFourierOrder    = "FourierOrder"
)

// Keys lists every config key.
var Keys = []string{
	KeyAddr, KeyLogPath, KeyLogLevel, KeyLogMaxSize, KeyLogMaxBackups, KeyLogMaxAge,
	KeyRequestTimeout, KeyChartWidth, KeyChartHeight, KeyMethod,
	KeyPolynomialOrder, KeyChebyshevOrder, KeyTrigOrder, KeyFourierOrder,
}

var (
	// ErrUnknownKey is returned by Set and Load for a key not in Keys.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalidValue is returned when a value cannot be parsed for its key
	// or is out of range.
	ErrInvalidValue = errors.New("config: invalid value")
)

var levels = map[string]int8{
	"debug":   logging.Debug,
	"info":    logging.Info,
	"warning": logging.Warning,
	"error":   logging.Error,
	"fatal":   logging.Fatal,
}

// Config holds approx settings. Chart sizes are in centimetres.
type Config struct {
	Addr           string
	LogPath        string
	LogLevel       int8
	LogMaxSize     int // Megabytes.
	LogMaxBackups  int
	LogMaxAge      int // Days.
	RequestTimeout time.Duration
	ChartWidth     float64
	ChartHeight    float64
	Method         string
	Orders         session.Orders
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		LogPath:        "/var/log/approx/approx.log",
		LogLevel:       logging.Info,
		LogMaxSize:     500,
		LogMaxBackups:  10,
		LogMaxAge:      28,
		RequestTimeout: 10 * time.Second,
		ChartWidth:     15,
		ChartHeight:    15,
		Method:         fit.Linear.String(),
		Orders: session.Orders{
			Polynomial:    fit.DefaultPolynomialOrder,
			Chebyshev:     fit.DefaultChebyshevOrder,
			Trigonometric: fit.DefaultTrigonometricOrder,
			Fourier:       fit.DefaultFourierOrder,
		},
	}
}

// Option modifies a Config after it has been loaded.
type Option func(*Config) error

// WithValue returns an Option that sets key to value as if read from a file.
func WithValue(key, value string) Option {
	return func(c *Config) error { return c.Set(key, value) }
}

// WithAddr returns an Option that sets the listen address.
func WithAddr(addr string) Option {
	return func(c *Config) error {
		c.Addr = addr
		return nil
	}
}

// WithLogLevel returns an Option that sets the log level.
func WithLogLevel(l int8) Option {
	return func(c *Config) error {
		if l < logging.Debug || l > logging.Fatal {
			return fmt.Errorf("%w: log level %d", ErrInvalidValue, l)
		}
		c.LogLevel = l
		return nil
	}
}

// Load returns the default configuration overridden by the config file at
// path, if path is not empty, then by APPROX_ environment variables, then by
// opts.
func Load(path string, opts ...Option) (*Config, error) {
	c := Default()

	if path != "" {
		m, err := filemap.ReadFrom(path, "\n", " ")
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		for k, v := range m {
			k = strings.TrimSpace(k)
			if k == "" || strings.HasPrefix(k, "#") {
				continue
			}
			if err := c.Set(k, v); err != nil {
				return nil, fmt.Errorf("config file %s: %w", path, err)
			}
		}
	}

	for _, k := range Keys {
		v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(k))
		if !ok {
			continue
		}
		if err := c.Set(k, v); err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
	}

	for i, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("could not apply option %d: %w", i, err)
		}
	}
	return c, nil
}

// Set parses value and assigns it to the setting named by key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	invalid := func(err error) error {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, key, value, err)
	}

	switch key {
	case KeyAddr:
		c.Addr = value
	case KeyLogPath:
		c.LogPath = value
	case KeyLogLevel:
		l, err := parseLevel(value)
		if err != nil {
			return invalid(err)
		}
		c.LogLevel = l
	case KeyLogMaxSize, KeyLogMaxBackups, KeyLogMaxAge:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return invalid(errors.New("want a non-negative integer"))
		}
		switch key {
		case KeyLogMaxSize:
			c.LogMaxSize = n
		case KeyLogMaxBackups:
			c.LogMaxBackups = n
		default:
			c.LogMaxAge = n
		}
	case KeyRequestTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return invalid(errors.New("want a positive duration"))
		}
		c.RequestTimeout = d
	case KeyChartWidth, KeyChartHeight:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || !(f > 0) {
			return invalid(errors.New("want a positive number"))
		}
		if key == KeyChartWidth {
			c.ChartWidth = f
		} else {
			c.ChartHeight = f
		}
	case KeyMethod:
		v := strings.ToLower(value)
		if !sliceutils.ContainsString(fit.MethodNames(), v) {
			return invalid(fmt.Errorf("want one of %s", strings.Join(fit.MethodNames(), ", ")))
		}
		c.Method = v
	case KeyPolynomialOrder, KeyChebyshevOrder, KeyTrigOrder, KeyFourierOrder:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > fit.MaxOrder {
			return invalid(fmt.Errorf("want an integer in [0, %d]", fit.MaxOrder))
		}
		switch key {
		case KeyPolynomialOrder:
			c.Orders.Polynomial = n
		case KeyChebyshevOrder:
			c.Orders.Chebyshev = n
		case KeyTrigOrder:
			c.Orders.Trigonometric = n
		default:
			c.Orders.Fourier = n
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}

// FitMethod returns the configured default method.
func (c *Config) FitMethod() fit.Method {
	m, err := fit.ParseMethod(c.Method)
	if err != nil {
		return fit.Linear
	}
	return m
}

// ChartSize returns the configured chart dimensions.
func (c *Config) ChartSize() (width, height vg.Length) {
	return vg.Length(c.ChartWidth) * vg.Centimeter, vg.Length(c.ChartHeight) * vg.Centimeter
}

func parseLevel(s string) (int8, error) {
	if l, ok := levels[strings.ToLower(s)]; ok {
		return l, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < int(logging.Debug) || n > int(logging.Fatal) {
		return 0, errors.New("want a level name or number")
	}
	return int8(n), nil
}
