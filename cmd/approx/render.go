/*
DESCRIPTION
  render.go provides styled terminal output of samples and fit outcomes.

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
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ausocean/approx/fit"
	"github.com/ausocean/approx/report"
	"github.com/ausocean/approx/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	equationStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	failStyle     = cellStyle.Foreground(lipgloss.Color("196"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderSamples(s fit.Samples) string {
	t := newTable("#", "x", "y")
	for i, p := range s {
		t.Row(strconv.Itoa(i+1), strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Samples (%d)", len(s))),
		t.String(),
	)
}

func renderOutcome(o *session.Outcome) string {
	coeffs := newTable("Term", "Value")
	for _, c := range o.Coefficients {
		coeffs.Row(c.Label, strconv.FormatFloat(c.Value, 'f', 6, 64))
	}

	metrics := newTable("Metric", "Value").
		Row("SSE", report.Number(o.Metrics.SSE)).
		Row("R²", report.Number(o.Metrics.R2)).
		Row("RMSE", report.Number(o.Metrics.RMSE)).
		Row("Max error", report.Number(o.Metrics.MaxError))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Curve Fitting: "+o.Type),
		equationStyle.Render(o.Equation),
		lipgloss.JoinHorizontal(lipgloss.Top, coeffs.String(), " ", metrics.String()),
	)
}

func renderRanking(ranked []session.Ranked) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Method", "RMSE", "R²", "Equation")
	failed := make(map[int]bool)
	for i, r := range ranked {
		if r.Outcome == nil {
			failed[i] = true
			t.Row("-", r.Method.String(), "-", "-", r.Err)
			continue
		}
		t.Row(strconv.Itoa(i+1), r.Outcome.Type, report.Number(r.Outcome.Metrics.RMSE), report.Number(r.Outcome.Metrics.R2), r.Outcome.Equation)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case failed[row]:
			return failStyle
		default:
			return cellStyle
		}
	})
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Method comparison"), t.String())
}
