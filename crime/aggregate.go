// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crime

import (
	"fmt"
	"sort"
	"time"
)

// CategoryCount maps a key to the number of records with that key.
// Keys with no records are absent, never zero.
type CategoryCount map[string]int

// CountBy counts records by the key returned by key.
func CountBy(records []Record, key func(Record) string) CategoryCount {
	counts := make(CategoryCount)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// ByArea and ByCrimeDesc are key functions for CountBy.
func ByArea(r Record) string      { return r.Area }
func ByCrimeDesc(r Record) string { return r.CrimeDesc }

// Match selects records with exactly the given crime description
// and area. Comparison is byte-wise and case-sensitive.
type Match struct {
	CrimeDesc string
	Area      string
}

func (m Match) Matches(r Record) bool {
	return r.CrimeDesc == m.CrimeDesc && r.Area == m.Area
}

// Filter returns the records for which keep returns true, in order.
func Filter(records []Record, keep func(Record) bool) []Record {
	out := []Record{}
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// KeyCount is one entry of a CategoryCount.
type KeyCount struct {
	Key   string
	Count int
}

// TopK returns the k entries of m with the largest counts, largest
// first. Entries with equal counts are ordered by key. If m has
// fewer than k entries, all of them are returned.
func TopK(m CategoryCount, k int) []KeyCount {
	if k <= 0 {
		return []KeyCount{}
	}
	kcs := make([]KeyCount, 0, len(m))
	for key, count := range m {
		kcs = append(kcs, KeyCount{key, count})
	}
	sort.Slice(kcs, func(i, j int) bool {
		if kcs[i].Count != kcs[j].Count {
			return kcs[i].Count > kcs[j].Count
		}
		return kcs[i].Key < kcs[j].Key
	})
	if len(kcs) > k {
		kcs = kcs[:k]
	}
	return kcs
}

// DateLayout is the layout of Record.CrimeDate.
const DateLayout = "01/02/2006 03:04:05 PM"

// Date is a calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{y, m, d}
}

// ParseDate parses s in DateLayout and returns its day. The time of
// day is discarded.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Epoch is the date used for an empty time axis.
var Epoch = Date{1970, time.January, 1}

// DateCount maps a day to the number of records on that day.
type DateCount map[Date]int

// CountByDate counts records by the day of their CrimeDate. Records
// whose CrimeDate cannot be parsed are skipped.
func CountByDate(records []Record) DateCount {
	counts := make(DateCount)
	for _, r := range records {
		if d, ok := ParseDate(r.CrimeDate); ok {
			counts[d]++
		}
	}
	return counts
}

// DateEntry is one entry of a DateCount.
type DateEntry struct {
	Date  Date
	Count int
}

// SortedDates returns the entries of m in increasing date order.
func SortedDates(m DateCount) []DateEntry {
	des := make([]DateEntry, 0, len(m))
	for d, c := range m {
		des = append(des, DateEntry{d, c})
	}
	sort.Slice(des, func(i, j int) bool {
		return des[i].Date.Before(des[j].Date)
	})
	return des
}
