// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds everything a run needs. The filter is fixed; only
// input and output locations and presentation can be changed.
type config struct {
	Input        string `yaml:"input"`
	Top          int    `yaml:"top"`
	OutputDir    string `yaml:"output_dir"`
	TimeSeries   string `yaml:"time_series"`
	TopCrimes    string `yaml:"top_crimes"`
	TopLocations string `yaml:"top_locations"`
	SVG          bool   `yaml:"svg"`
	Table        bool   `yaml:"table"`
	Verbose      bool   `yaml:"verbose"`

	Crime string `yaml:"-"`
	Area  string `yaml:"-"`
}

var defaultConfig = config{
	Input:        "Crime_Data_from_2020_to_Present_20241204.csv",
	Top:          5,
	OutputDir:    ".",
	TimeSeries:   "crime_over_time_plot.png",
	TopCrimes:    "top_5_crimes.png",
	TopLocations: "top_5_locations.png",

	Crime: "VEHICLE - STOLEN",
	Area:  "Hollywood",
}

// loadConfig overlays the YAML file at path onto c. Keys absent from
// the file leave c unchanged; unknown keys are an error.
func loadConfig(path string, c *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	next := *c
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&next); err != nil && err != io.EOF {
		return fmt.Errorf("%s: %w", path, err)
	}
	if next.Top < 0 {
		return fmt.Errorf("%s: top must be >= 0, got %d", path, next.Top)
	}
	*c = next
	return nil
}
