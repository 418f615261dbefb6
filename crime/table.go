// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crime

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// CountTable returns kcs as a table with "key" and "count" columns.
func CountTable(kcs []KeyCount) *table.Table {
	keys := make([]string, len(kcs))
	counts := make([]int, len(kcs))
	for i, kc := range kcs {
		keys[i], counts[i] = kc.Key, kc.Count
	}
	return new(table.Builder).Add("key", keys).Add("count", counts).Done()
}

// DateTable returns des as a table with "date" and "count" columns.
// Dates are formatted as YYYY-MM-DD so they sort chronologically.
func DateTable(des []DateEntry) *table.Table {
	dates := make([]string, len(des))
	counts := make([]int, len(des))
	for i, de := range des {
		dates[i], counts[i] = de.Date.String(), de.Count
	}
	return new(table.Builder).Add("date", dates).Add("count", counts).Done()
}

// FprintTable writes a titled table to w.
func FprintTable(w io.Writer, title string, t *table.Table) {
	fmt.Fprintf(w, "# %s\n", title)
	table.Fprint(w, t)
	fmt.Fprintf(w, "\n")
}

// Summary describes the distribution of per-day counts.
type Summary struct {
	Days     int
	Total    int
	First    Date
	Last     Date
	Min, Max float64
	Mean     float64
	StdDev   float64
}

// Summarize returns a Summary of m. For an empty m, only Days and
// Total are meaningful.
func Summarize(m DateCount) Summary {
	des := SortedDates(m)
	s := Summary{Days: len(des)}
	if len(des) == 0 {
		return s
	}
	xs := make([]float64, len(des))
	for i, de := range des {
		xs[i] = float64(de.Count)
		s.Total += de.Count
	}
	s.First, s.Last = des[0].Date, des[len(des)-1].Date
	s.Min, s.Max = stats.Bounds(xs)
	s.Mean = stats.Mean(xs)
	if len(xs) > 1 {
		s.StdDev = stats.StdDev(xs)
	}
	return s
}

func (s Summary) String() string {
	if s.Days == 0 {
		return "no dated records"
	}
	return fmt.Sprintf("%d records over %d days (%s to %s); per day min %g max %g mean %.2f stddev %.2f",
		s.Total, s.Days, s.First, s.Last, s.Min, s.Max, s.Mean, s.StdDev)
}
