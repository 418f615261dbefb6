// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command crimeplot charts a crime-incident export.
//
// crimeplot reads a CSV export with one incident per row (gzip, bzip2
// and xz compressed CSV and XLSX workbooks are also accepted) and
// writes three PNG charts:
//
//	crime_over_time_plot.png  daily stolen-vehicle reports in Hollywood
//	top_5_crimes.png          the five most common crime descriptions
//	top_5_locations.png       the five areas with the most incidents
//
// The first chart is skipped if no incident matches. A line naming
// each written chart is printed to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/crimestat/crimeplot/chart"
	"github.com/crimestat/crimeplot/crime"
)

func main() {
	log.SetPrefix("crimeplot: ")
	log.SetFlags(0)

	cfg := defaultConfig
	var (
		flagConfig  = flag.String("config", "", "read settings from YAML `file`")
		flagOut     = flag.String("o", cfg.OutputDir, "write charts to `dir`")
		flagTop     = flag.Int("top", cfg.Top, "chart the `n` largest categories")
		flagSVG     = flag.Bool("svg", false, "also write an SVG version of each chart")
		flagTable   = flag.Bool("table", false, "print the charted counts as tables")
		flagVerbose = flag.Bool("v", false, "log ingest and aggregation details")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagConfig != "" {
		if err := loadConfig(*flagConfig, &cfg); err != nil {
			log.Fatal(err)
		}
	}

	// Explicit flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.OutputDir = *flagOut
		case "top":
			cfg.Top = *flagTop
		case "svg":
			cfg.SVG = *flagSVG
		case "table":
			cfg.Table = *flagTable
		case "v":
			cfg.Verbose = *flagVerbose
		}
	})
	if flag.NArg() == 1 {
		cfg.Input = flag.Arg(0)
	}
	if cfg.Top < 0 {
		fmt.Fprintf(os.Stderr, "-top must be >= 0\n")
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdout io.Writer) error {
	records, err := crime.Read(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("read %d records from %s", len(records), cfg.Input)
	}

	// Trend of the selected crime in the selected area.
	match := crime.Match{CrimeDesc: cfg.Crime, Area: cfg.Area}
	filtered := crime.Filter(records, match.Matches)
	if len(filtered) > 0 {
		byDate := crime.CountByDate(filtered)
		if cfg.Verbose {
			log.Printf("%s in %s: %d records, %s", cfg.Crime, cfg.Area, len(filtered), crime.Summarize(byDate))
		}
		path := filepath.Join(cfg.OutputDir, cfg.TimeSeries)
		if err := chart.TimeSeries(byDate, path); err != nil {
			return err
		}
		if err := writeSVG(cfg, path, func(svg string) error {
			return chart.TimeSeriesSVG(byDate, svg)
		}); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Crime trend plot for '%s' in '%s' saved as %s.\n", cfg.Crime, cfg.Area, path)
		if cfg.Table {
			crime.FprintTable(stdout, "daily counts", crime.DateTable(crime.SortedDates(byDate)))
		}
	} else {
		fmt.Fprintf(stdout, "No records found for the specified crime and location.\n")
	}

	for _, bar := range []struct {
		file, title, what string
		key               func(crime.Record) string
	}{
		{cfg.TopCrimes, "Most Common Crimes", "most common crimes", crime.ByCrimeDesc},
		{cfg.TopLocations, "Locations with Most Crimes", "locations", crime.ByArea},
	} {
		counts := crime.CountBy(records, bar.key)
		title := fmt.Sprintf("Top %d %s", cfg.Top, bar.title)
		path := filepath.Join(cfg.OutputDir, bar.file)
		if err := chart.BarChart(path, title, counts, cfg.Top); err != nil {
			return err
		}
		if err := writeSVG(cfg, path, func(svg string) error {
			return chart.BarChartSVG(svg, title, counts, cfg.Top)
		}); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Bar chart for the top %d %s saved as %s.\n", cfg.Top, bar.what, path)
		if cfg.Table {
			crime.FprintTable(stdout, title, crime.CountTable(crime.TopK(counts, cfg.Top)))
		}
	}
	return nil
}

// writeSVG calls write with the SVG name for pngPath if SVG output is
// enabled.
func writeSVG(cfg config, pngPath string, write func(string) error) error {
	if !cfg.SVG {
		return nil
	}
	svg := strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".svg"
	err := write(svg)
	if errors.Is(err, chart.ErrNoData) {
		if cfg.Verbose {
			log.Printf("%s: %v, skipping", svg, err)
		}
		return nil
	}
	return err
}
