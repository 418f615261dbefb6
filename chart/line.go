// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"math"
	"strconv"
	"time"

	"github.com/crimestat/crimeplot/crime"
)

// SeriesLabel is the legend label of the time series line.
const SeriesLabel = "Crime Count"

// TimeSeries writes a line chart of counts by date to outputPath.
// An empty counts produces empty axes at 1970-01-01.
func TimeSeries(counts crime.DateCount, outputPath string) error {
	return drawTimeSeries(crime.SortedDates(counts)).writePNG(outputPath)
}

const day = 24 * time.Hour

// dayNumber returns the number of days from the Unix epoch to d.
func dayNumber(d crime.Date) float64 {
	return float64(d.Time().Unix() / int64(day/time.Second))
}

func dateOfDay(n float64) crime.Date {
	return crime.DateOf(time.Unix(int64(n)*int64(day/time.Second), 0).UTC())
}

var seriesFrame = frame{
	width: width, height: height,
	margin:      20,
	caption:     "Crime Trends Over Time",
	captionSize: 20,
	xLabelArea:  50,
	yLabelArea:  50,
}

func drawTimeSeries(des []crime.DateEntry) *canvas {
	c := newCanvas(width, height)
	pa := seriesFrame.drawFrame(c)

	first, last := crime.Epoch, crime.Epoch
	maxCount := 0
	if len(des) > 0 {
		first, last = des[0].Date, des[len(des)-1].Date
	}
	for _, de := range des {
		if de.Count > maxCount {
			maxCount = de.Count
		}
	}
	xa := axis{dayNumber(first), dayNumber(last), pa.Min.X, pa.Max.X}
	ya := axis{0, float64(maxCount), pa.Max.Y, pa.Min.Y}

	yAxis(c, pa, ya, 10, func(v float64) string {
		return strconv.Itoa(int(v))
	})
	for _, t := range xa.ticks(10) {
		x := int(math.Round(xa.pos(t)))
		if x != pa.Min.X {
			c.vline(x, pa.Min.Y, pa.Max.Y-1, mesh)
		}
		c.vline(x, pa.Max.Y, pa.Max.Y+tickLen, black)
		c.text(dateOfDay(t).String(), labelSize, x, pa.Max.Y+tickLen+2, alignCenter, alignStart, black)
	}

	pts := make([]point, len(des))
	for i, de := range des {
		pts[i] = point{xa.pos(dayNumber(de.Date)), ya.pos(float64(de.Count))}
	}
	c.polyline(pts, 1.5, blue)

	legend(c, pa, SeriesLabel)
	return c
}

// legend draws a bordered legend box with one line entry in the top
// right corner of the plot area.
func legend(c *canvas, pa image.Rectangle, label string) {
	const pad, swatch = 8, 20
	w, h := c.textSize(label, labelSize)
	box := image.Rect(pa.Max.X-pad-swatch-pad-w-pad-pad, pa.Min.Y+pad, pa.Max.X-pad, pa.Min.Y+pad+h+2*pad)
	c.fill(box, white)
	c.strokeRect(box, black)
	y := (box.Min.Y + box.Max.Y) / 2
	x0 := box.Min.X + pad
	c.polyline([]point{{float64(x0), float64(y)}, {float64(x0 + swatch), float64(y)}}, 1.5, blue)
	c.text(label, labelSize, x0+swatch+pad, y, alignStart, alignCenter, black)
}
