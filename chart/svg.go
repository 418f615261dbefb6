// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"io"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/crimestat/crimeplot/crime"
)

// ErrNoData is returned by the SVG renderers for empty input, which
// gg cannot scale.
var ErrNoData = errors.New("no data to plot")

// BarChartSVG writes an SVG point plot of the limit largest entries
// of counts to outputPath, one point per category in decreasing count
// order.
func BarChartSVG(outputPath, title string, counts crime.CategoryCount, limit int) error {
	top := crime.TopK(counts, limit)
	if len(top) == 0 {
		return ErrNoData
	}
	return writeFile(outputPath, func(w io.Writer) error {
		return WriteBarSVG(w, title, top)
	})
}

// TimeSeriesSVG is like TimeSeries, but writes an SVG plot.
func TimeSeriesSVG(counts crime.DateCount, outputPath string) error {
	des := crime.SortedDates(counts)
	if len(des) == 0 {
		return ErrNoData
	}
	return writeFile(outputPath, func(w io.Writer) error {
		return WriteTimeSeriesSVG(w, des)
	})
}

// WriteBarSVG writes a point plot of top to w.
func WriteBarSVG(w io.Writer, title string, top []crime.KeyCount) error {
	cats := make([]string, len(top))
	counts := make([]float64, len(top))
	for i, kc := range top {
		cats[i], counts[i] = kc.Key, float64(kc.Count)
	}
	tab := new(table.Builder).Add("category", cats).Add("count", counts).Done()

	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerPoints{X: "category", Y: "count"})
	p.Add(gg.Title(title))
	p.Add(gg.AxisLabel("x", "Categories"), gg.AxisLabel("y", "Counts"))
	return p.WriteSVG(w, width, height)
}

// WriteTimeSeriesSVG writes a line plot of des to w.
func WriteTimeSeriesSVG(w io.Writer, des []crime.DateEntry) error {
	days := make([]float64, len(des))
	counts := make([]float64, len(des))
	for i, de := range des {
		days[i], counts[i] = dayNumber(de.Date), float64(de.Count)
	}
	tab := new(table.Builder).Add("date", days).Add("count", counts).Done()

	x := gg.NewLinearScaler()
	x.SetFormatter(func(day float64) string {
		return dateOfDay(day).String()
	})
	p := gg.NewPlot(tab)
	p.SetScale("x", x)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerLines{X: "date", Y: "count"})
	p.Add(gg.Title("Crime Trends Over Time"))
	p.Add(gg.AxisLabel("y", SeriesLabel))
	return p.WriteSVG(w, width, height)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(f)
}
