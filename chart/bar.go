// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders crime aggregations as 1280x720 PNG charts.
//
// Charts are drawn on a white, opaque background with the Go
// sans-serif font. Rendering is deterministic: the same input always
// produces the same bytes.
package chart

import (
	"image"
	"math"
	"strconv"

	"github.com/crimestat/crimeplot/crime"
)

// BarChart writes a bar chart of the limit largest entries of counts
// to outputPath. Bars are ordered by decreasing count.
func BarChart(outputPath, title string, counts crime.CategoryCount, limit int) error {
	return drawBars(title, crime.TopK(counts, limit)).writePNG(outputPath)
}

func drawBars(title string, top []crime.KeyCount) *canvas {
	c := newCanvas(width, height)
	f := frame{
		width: width, height: height,
		margin:      20,
		caption:     title,
		captionSize: 20,
		xLabelArea:  20,
		yLabelArea:  50,
	}
	pa := f.drawFrame(c)

	maxCount := 0
	for _, kc := range top {
		if kc.Count > maxCount {
			maxCount = kc.Count
		}
	}
	n := len(top)
	xa := axis{0, float64(n), pa.Min.X, pa.Max.X}
	ya := axis{0, float64(maxCount), pa.Max.Y, pa.Min.Y}

	yAxis(c, pa, ya, 10, func(v float64) string {
		return strconv.Itoa(int(v))
	})

	// One x label per bar, centered under it.
	for i := 0; i <= n; i++ {
		x := int(math.Round(xa.pos(float64(i))))
		c.vline(x, pa.Max.Y, pa.Max.Y+tickLen, black)
		if i < n {
			mid := int(math.Round(xa.pos(float64(i) + 0.5)))
			c.text(top[i].Key, labelSize, mid, pa.Max.Y+tickLen, alignCenter, alignStart, black)
		}
	}

	for i, kc := range top {
		r := image.Rect(
			int(math.Round(xa.pos(float64(i)))), int(math.Round(ya.pos(float64(kc.Count)))),
			int(math.Round(xa.pos(float64(i+1))))+1, int(math.Round(ya.pos(0)))+1)
		c.fill(r, blue)
		c.strokeRect(r, blue)
	}

	c.text("Categories", descSize, (pa.Min.X+pa.Max.X)/2, f.height-f.margin/2, alignCenter, alignCenter, black)
	c.vtext("Counts", descSize, f.margin/2+2, (pa.Min.Y+pa.Max.Y)/2, black)
	return c
}
