// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
)

const testCSV = "h1,h2,h3\na,b,c\nd,e\n\"f,g\",h,i\n"

var testRows = [][]string{
	{"h1", "h2", "h3"},
	{"a", "b", "c"},
	{"d", "e"},
	{"f,g", "h", "i"},
}

func readAll(t *testing.T, path string) (Format, [][]string) {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	defer s.Close()
	var rows [][]string
	for {
		row, err := s.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Read: %v", err)
		}
		rows = append(rows, append([]string(nil), row...))
	}
	return s.Format, rows
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	for _, test := range []struct {
		name string
		head []byte
		want Format
	}{
		{"x.csv", []byte("a,b,c"), CSV},
		{"x.csv", nil, CSV},
		{"x.csv.gz", []byte{0x1f, 0x8b, 8, 0}, GzipCSV},
		{"x", []byte("BZh91AY"), Bzip2CSV},
		{"x.csv", []byte{0xfd, '7', 'z', 'X', 'Z', 0}, XZCSV},
		{"x.bin", []byte("PK\x03\x04"), XLSX},
		{"x.XLSX", []byte("garbage"), XLSX},
	} {
		if got := Detect(test.name, test.head); got != test.want {
			t.Errorf("Detect(%q, %q) = %v, want %v", test.name, test.head, got, test.want)
		}
	}
}

func TestPlainCSV(t *testing.T) {
	format, rows := readAll(t, writeFile(t, "in.csv", []byte(testCSV)))
	if format != CSV {
		t.Errorf("format = %v, want %v", format, CSV)
	}
	if !reflect.DeepEqual(rows, testRows) {
		t.Errorf("rows = %q, want %q", rows, testRows)
	}
}

func TestEmptyCSV(t *testing.T) {
	_, rows := readAll(t, writeFile(t, "in.csv", nil))
	if len(rows) != 0 {
		t.Errorf("rows = %q, want none", rows)
	}
}

func TestGzipCSV(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(testCSV))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	format, rows := readAll(t, writeFile(t, "in.csv.gz", buf.Bytes()))
	if format != GzipCSV {
		t.Errorf("format = %v, want %v", format, GzipCSV)
	}
	if !reflect.DeepEqual(rows, testRows) {
		t.Errorf("rows = %q, want %q", rows, testRows)
	}
}

func TestXZCSV(t *testing.T) {
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	xw.Write([]byte(testCSV))
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}
	format, rows := readAll(t, writeFile(t, "in.csv.xz", buf.Bytes()))
	if format != XZCSV {
		t.Errorf("format = %v, want %v", format, XZCSV)
	}
	if !reflect.DeepEqual(rows, testRows) {
		t.Errorf("rows = %q, want %q", rows, testRows)
	}
}

func TestXLSX(t *testing.T) {
	for _, blank := range []bool{false, true} {
		f := excelize.NewFile()
		r := 1
		for _, row := range testRows {
			cells := make([]interface{}, len(row))
			for j, c := range row {
				cells[j] = c
			}
			cell, err := excelize.CoordinatesToCellName(1, r)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetSheetRow("Sheet1", cell, &cells); err != nil {
				t.Fatal(err)
			}
			r++
			if blank {
				// Leave an empty worksheet row after each row.
				r++
			}
		}
		path := filepath.Join(t.TempDir(), "in.xlsx")
		if err := f.SaveAs(path); err != nil {
			t.Fatal(err)
		}
		f.Close()

		format, rows := readAll(t, path)
		if format != XLSX {
			t.Errorf("format = %v, want %v", format, XLSX)
		}
		if !reflect.DeepEqual(rows, testRows) {
			t.Errorf("blank=%v: rows = %q, want %q", blank, rows, testRows)
		}
	}
}

func TestMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open of missing file: got %v, want ErrNotExist", err)
	}
}

func TestBadQuoting(t *testing.T) {
	s, err := Open(writeFile(t, "in.csv", []byte("h\n\"a\"b\n")))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := s.Read(); err != nil {
		t.Fatalf("reading header: %v", err)
	}
	if _, err := s.Read(); err == nil || err == io.EOF {
		t.Errorf("reading bad row: got %v, want parse error", err)
	}
}
