// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crime

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type rows [][]string

func (r *rows) Read() ([]string, error) {
	if len(*r) == 0 {
		return nil, io.EOF
	}
	row := (*r)[0]
	*r = (*r)[1:]
	return row, nil
}

// row returns a 10-column row with the used columns set.
func row(date, area, desc string) string {
	f := make([]string, 10)
	f[DateColumn], f[AreaColumn], f[DescColumn] = date, area, desc
	return strings.Join(f, ",")
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crime.csv")
	data := strings.Join(append([]string{"c0,c1,c2,c3,c4,c5,c6,c7,c8,c9"}, lines...), "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFrom(t *testing.T) {
	for _, test := range []struct {
		rows rows
		want []Record
	}{
		// No header.
		{rows{}, []Record{}},

		// Header only.
		{rows{{"a", "b", "c"}}, []Record{}},

		// Full row.
		{rows{
			{"h"},
			{"0", "1", "01/02/2023 10:00:00 AM", "3", "4", "Hollywood", "6", "7", "8", "THEFT"},
		}, []Record{
			{"Hollywood", "THEFT", "01/02/2023 10:00:00 AM"},
		}},

		// Short rows get sentinels.
		{rows{
			{"h"},
			{},
			{"0", "1", "d"},
			{"0", "1", "d", "3", "4", "Central"},
		}, []Record{
			{UnknownArea, UnknownDesc, UnknownDate},
			{UnknownArea, UnknownDesc, "d"},
			{"Central", UnknownDesc, "d"},
		}},

		// Empty fields are present, not missing.
		{rows{
			{"h"},
			{"", "", "", "", "", "", "", "", "", ""},
		}, []Record{
			{"", "", ""},
		}},
	} {
		got, err := ReadFrom(&test.rows)
		if err != nil {
			t.Errorf("ReadFrom: %v", err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ReadFrom: got %+v, want %+v", got, test.want)
		}
	}
}

func TestReadOrder(t *testing.T) {
	path := writeCSV(t,
		row("01/01/2023 10:00:00 AM", "A", "ONE"),
		row("01/02/2023 10:00:00 AM", "B", "TWO"),
		row("01/03/2023 10:00:00 AM", "A", "ONE"),
		row("01/04/2023 10:00:00 AM", "C", "THREE"),
	)
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{"A", "ONE", "01/01/2023 10:00:00 AM"},
		{"B", "TWO", "01/02/2023 10:00:00 AM"},
		{"A", "ONE", "01/03/2023 10:00:00 AM"},
		{"C", "THREE", "01/04/2023 10:00:00 AM"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read: got %+v, want %+v", got, want)
	}
}

func TestReadQuoted(t *testing.T) {
	path := writeCSV(t, `0,1,"03/04/2021 01:02:03 PM",3,4,"North, Hills",6,7,8,"ASSAULT WITH ""WEAPON"""`)
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{"North, Hills", `ASSAULT WITH "WEAPON"`, "03/04/2021 01:02:03 PM"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read: got %+v, want %+v", got, want)
	}
}

func TestReadShortRow(t *testing.T) {
	path := writeCSV(t, "a,b,01/01/2023 10:00:00 AM,d")
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{{UnknownArea, UnknownDesc, "01/01/2023 10:00:00 AM"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Read: got %+v, want %+v", got, want)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	got, err := Read(writeCSV(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Read: got %+v, want no records", got)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nonexistent.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read: got error %v, want ErrNotExist", err)
	}
}

func TestReadLexError(t *testing.T) {
	path := writeCSV(t, row("d", "a", "ok"), `0,1,"bad"quote,3`)
	recs, err := Read(path)
	if err == nil {
		t.Fatalf("Read: got %d records and no error, want error", len(recs))
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Read error %q does not name %s", err, path)
	}
}
