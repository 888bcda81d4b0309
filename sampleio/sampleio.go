/*
DESCRIPTION
  sampleio.go provides reading and writing of sample sets as CSV and XLSX
  files.

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

// Package sampleio reads and writes (x, y) sample sets. Both formats hold x
// in the first column and y in the second; a single non-numeric header row
// is skipped and further columns are ignored.
package sampleio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ausocean/approx/fit"
)

// ErrFormat is returned for unreadable or malformed sample data.
var ErrFormat = errors.New("sampleio: bad format")

// ReadCSV reads samples from comma separated values. Lines starting with '#'
// are ignored.
func ReadCSV(r io.Reader) (fit.Samples, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read CSV: %v", ErrFormat, err)
	}
	return parseRows(rows)
}

// ReadXLSX reads samples from the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) (fit.Samples, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open workbook: %v", ErrFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrFormat)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: could not read sheet %q: %v", ErrFormat, sheets[0], err)
	}
	return parseRows(rows)
}

// ReadFile reads samples from the named file, choosing the format from its
// extension.
func ReadFile(path string) (fit.Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open sample file: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", ErrFormat, ext)
	}
}

// WriteCSV writes s to w with an "x,y" header.
func WriteCSV(w io.Writer, s fit.Samples) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range s {
		err := cw.Write([]string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// parseRows converts rows of cells to samples. Blank rows are skipped.
func parseRows(rows [][]string) (fit.Samples, error) {
	var s fit.Samples
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, need 2", ErrFormat, i+1, len(row))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errX != nil || errY != nil {
			if len(s) == 0 && i == firstNonBlank(rows) {
				continue // Header.
			}
			return nil, fmt.Errorf("%w: row %d: could not parse %q", ErrFormat, i+1, row[:2])
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("%w: row %d: non-finite value in %q", ErrFormat, i+1, row[:2])
		}
		s = append(s, fit.Sample{X: x, Y: y})
	}
	return s, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func firstNonBlank(rows [][]string) int {
	for i, row := range rows {
		if !blank(row) {
			return i
		}
	}
	return -1
}
