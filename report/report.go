/*
DESCRIPTION
  report.go provides Markdown and HTML reports of a fit outcome.

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

// Package report writes human readable reports of fit outcomes.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/ausocean/approx/session"
)

// Markdown returns a Markdown report of o giving its equation,
// coefficients, metrics and per-sample residuals.
func Markdown(o *session.Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Curve Fitting: %s\n\n", o.Type)
	fmt.Fprintf(&b, "Equation: `%s`\n\n", o.Equation)

	b.WriteString("## Coefficients\n\n| Term | Value |\n|---|---|\n")
	for _, t := range o.Coefficients {
		fmt.Fprintf(&b, "| %s | %.6f |\n", t.Label, t.Value)
	}

	b.WriteString("\n## Metrics\n\n| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| SSE | %s |\n", Number(o.Metrics.SSE))
	fmt.Fprintf(&b, "| R² | %s |\n", Number(o.Metrics.R2))
	fmt.Fprintf(&b, "| RMSE | %s |\n", Number(o.Metrics.RMSE))
	fmt.Fprintf(&b, "| Max error | %s |\n", Number(o.Metrics.MaxError))

	b.WriteString("\n## Residuals\n\n| x | y | ŷ | Residual |\n|---|---|---|---|\n")
	for _, r := range o.Residuals {
		fmt.Fprintf(&b, "| %g | %g | %s | %s |\n", r.X, r.Y, Number(r.Predicted), Number(r.Residual))
	}
	fmt.Fprintf(&b, "\nAbsolute residuals: median %s, standard deviation %s, 95th percentile %s.\n",
		Number(o.Summary.Median), Number(o.Summary.StdDev), Number(o.Summary.P95))

	return b.String()
}

// HTML returns the Markdown report of o rendered as a complete HTML page.
func HTML(o *session.Outcome) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{
		Title: "Curve Fitting: " + o.Type,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(Markdown(o)), p, r)
}

// Number formats v for display with four decimals. Non-finite values, such
// as R² of constant data, are shown as "undefined".
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", v)
}
