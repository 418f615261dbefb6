// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// workbookRows streams the rows of the first sheet of a workbook.
type workbookRows struct {
	file *excelize.File
	rows *excelize.Rows
}

func openWorkbook(r io.Reader) (*workbookRows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return &workbookRows{f, rows}, nil
}

// Read returns the next non-blank row.
func (w *workbookRows) Read() ([]string, error) {
	for w.rows.Next() {
		cols, err := w.rows.Columns()
		if err != nil {
			return nil, err
		}
		if len(cols) > 0 {
			return cols, nil
		}
	}
	if err := w.rows.Error(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (w *workbookRows) Close() error {
	err := w.rows.Close()
	if err2 := w.file.Close(); err == nil {
		err = err2
	}
	return err
}
