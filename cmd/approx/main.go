/*
DESCRIPTION
  approx fits curves to (x, y) samples read from a CSV or XLSX file, or to
  the built-in example data, and prints the equation and goodness of fit.

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

// approx is a command line curve fitter.
//
// Usage:
//
//	approx [-file data.csv] [-method cubic|all] [-order n] [-chart fit.png] [-report fit.html]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/ausocean/approx/chart"
	"github.com/ausocean/approx/config"
	"github.com/ausocean/approx/fit"
	"github.com/ausocean/approx/report"
	"github.com/ausocean/approx/sampleio"
	"github.com/ausocean/approx/session"
)

const allMethods = "all"

func main() {
	_ = godotenv.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "approx"})
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal("failed", "err", err)
	}
}

type options struct {
	configFile string
	file       string
	method     string
	order      int
	chart      string
	report     string
	export     string
	debug      bool
}

func parseFlags(args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet("approx", flag.ContinueOnError)
	fs.StringVar(&o.configFile, "config", "", "config file")
	fs.StringVar(&o.file, "file", "", "CSV or XLSX sample file; the example data is used if empty")
	fs.StringVar(&o.method, "method", "", fmt.Sprintf("method, one of %s or %s", strings.Join(fit.MethodNames(), ", "), allMethods))
	fs.IntVar(&o.order, "order", 0, "order for polynomial, chebyshev, trigonometric and fourier; 0 for default")
	fs.StringVar(&o.chart, "chart", "", "save a chart to this .png or .svg file")
	fs.StringVar(&o.report, "report", "", "save a report to this .md or .html file")
	fs.StringVar(&o.export, "export", "", "save the samples to this CSV file")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &o, nil
}

func run(args []string, out io.Writer, logger *log.Logger) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if o.debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	compare := strings.EqualFold(o.method, allMethods)
	m := cfg.FitMethod()
	if o.method != "" && !compare {
		if m, err = fit.ParseMethod(o.method); err != nil {
			return err
		}
	}

	samples := session.Example()
	if o.file != "" {
		samples, err = sampleio.ReadFile(o.file)
		if err != nil {
			return err
		}
		logger.Debug("read samples", "file", o.file, "n", len(samples))
	} else {
		logger.Info("no file given, using example data")
	}
	sess, err := session.New(session.WithSamples(samples), session.WithOrders(cfg.Orders))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderSamples(samples))

	var best *session.Outcome
	if compare {
		ranked, err := sess.Compare(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderRanking(ranked))
		for _, r := range ranked {
			if r.Outcome != nil {
				best = r.Outcome
				break
			}
		}
		if best == nil {
			return fmt.Errorf("no method could fit %d samples", len(samples))
		}
		logger.Info("best fit", "method", best.Type, "rmse", report.Number(best.Metrics.RMSE))
	} else {
		best, err = sess.Fit(m, o.order)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderOutcome(best))
	}

	return save(o, cfg, best, logger)
}

// save writes whichever of the chart, report and sample files were asked for.
func save(o *options, cfg *config.Config, best *session.Outcome, logger *log.Logger) error {
	if o.chart != "" {
		w, h := cfg.ChartSize()
		if err := chart.Save(o.chart, best.Samples, best.Model, w, h); err != nil {
			return err
		}
		logger.Info("saved chart", "file", o.chart)
	}

	if o.report != "" {
		var b []byte
		switch strings.ToLower(filepath.Ext(o.report)) {
		case ".html", ".htm":
			b = report.HTML(best)
		default:
			b = []byte(report.Markdown(best))
		}
		if err := os.WriteFile(o.report, b, 0o644); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
		logger.Info("saved report", "file", o.report)
	}

	if o.export != "" {
		f, err := os.Create(o.export)
		if err != nil {
			return fmt.Errorf("could not create sample file: %w", err)
		}
		if err := sampleio.WriteCSV(f, best.Samples); err != nil {
			f.Close()
			return fmt.Errorf("could not write samples: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("saved samples", "file", o.export)
	}
	return nil
}
