// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crime reads crime-incident exports and aggregates them.
//
// An export is a table with a header row and at least ten columns.
// Only three columns are used: the occurrence timestamp (column 2),
// the area name (column 5) and the crime description (column 9).
// Rows that are too short to contain a column get a sentinel value
// for it instead of being rejected.
package crime

import (
	"fmt"
	"io"

	"github.com/crimestat/crimeplot/internal/source"
)

// Record is a single incident.
type Record struct {
	// Area is the location or precinct label.
	Area string

	// CrimeDesc is the crime category label.
	CrimeDesc string

	// CrimeDate is the unparsed occurrence timestamp, normally in
	// DateLayout. Use ParseDate to convert it.
	CrimeDate string
}

// Column positions in an export, and the values used when a row is
// too short to contain them.
const (
	DateColumn  = 2
	AreaColumn  = 5
	DescColumn  = 9
	UnknownArea = "Unknown"
	UnknownDesc = "Unknown"
	UnknownDate = "1970-01-01"
)

// A RowReader yields the rows of a table. Read returns io.EOF after
// the last row.
type RowReader interface {
	Read() ([]string, error)
}

// Read reads every incident in the export at path. The first row is
// taken to be the header and skipped. Records are returned in file
// order.
func Read(path string) ([]Record, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	records, err := ReadFrom(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ReadFrom is like Read, but reads rows from r.
func ReadFrom(r RowReader) ([]Record, error) {
	if _, err := r.Read(); err == io.EOF {
		return []Record{}, nil
	} else if err != nil {
		return nil, err
	}

	records := []Record{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, Record{
			Area:      field(row, AreaColumn, UnknownArea),
			CrimeDesc: field(row, DescColumn, UnknownDesc),
			CrimeDate: field(row, DateColumn, UnknownDate),
		})
	}
	return records, nil
}

func field(row []string, i int, def string) string {
	if i < len(row) {
		return row[i]
	}
	return def
}
