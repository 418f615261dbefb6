// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source opens tabular input files and returns their rows.
//
// Plain CSV, gzip-, bzip2- and xz-compressed CSV, and XLSX workbooks
// are recognized. Compression is detected from the leading magic
// bytes, not the file name.
package source

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Format identifies the encoding of an input file.
type Format int

const (
	CSV Format = iota
	GzipCSV
	Bzip2CSV
	XZCSV
	XLSX
)

func (f Format) String() string {
	switch f {
	case GzipCSV:
		return "csv+gzip"
	case Bzip2CSV:
		return "csv+bzip2"
	case XZCSV:
		return "csv+xz"
	case XLSX:
		return "xlsx"
	}
	return "csv"
}

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	zipMagic   = []byte("PK\x03\x04")
)

// Detect returns the Format indicated by the leading bytes of a file
// named name. Unrecognized content is assumed to be plain CSV.
func Detect(name string, head []byte) Format {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return GzipCSV
	case bytes.HasPrefix(head, bzip2Magic):
		return Bzip2CSV
	case bytes.HasPrefix(head, xzMagic):
		return XZCSV
	case bytes.HasPrefix(head, zipMagic), strings.EqualFold(filepath.Ext(name), ".xlsx"):
		return XLSX
	}
	return CSV
}

// A Source is an open input file. Read returns successive rows,
// including the header row, and io.EOF after the last one.
type Source struct {
	Format Format

	read    func() ([]string, error)
	closers []io.Closer
}

// Read returns the next row. The returned slice may be reused by
// the next call to Read.
func (s *Source) Read() ([]string, error) {
	return s.read()
}

// Close releases the file and any decompressor or workbook state.
func (s *Source) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// Open opens path and prepares to read its rows.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s := &Source{closers: []io.Closer{f}}
	if err := s.init(path, f); err != nil {
		s.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Source) init(path string, f *os.File) error {
	br := bufio.NewReader(f)
	head, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return err
	}
	s.Format = Detect(path, head)

	var r io.Reader = br
	switch s.Format {
	case GzipCSV:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("creating gzip reader: %w", err)
		}
		s.closers = append(s.closers, zr)
		r = zr
	case Bzip2CSV:
		r = bzip2.NewReader(br)
	case XZCSV:
		xr, err := xz.NewReader(br)
		if err != nil {
			return fmt.Errorf("creating xz reader: %w", err)
		}
		r = xr
	case XLSX:
		rows, err := openWorkbook(br)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, rows)
		s.read = rows.Read
		return nil
	}

	cr := csv.NewReader(r)
	// Exports are often ragged; missing trailing columns are
	// handled by the caller.
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	s.read = cr.Read
	return nil
}
