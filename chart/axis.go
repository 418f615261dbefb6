// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// axis maps a closed data interval onto a pixel interval.
type axis struct {
	min, max float64
	lo, hi   int // pixel positions of min and max
}

// pos returns the pixel position of v. A degenerate axis maps
// everything to lo.
func (a axis) pos(v float64) float64 {
	if a.max <= a.min {
		return float64(a.lo)
	}
	s := scale.Linear{Min: a.min, Max: a.max}
	return float64(a.lo) + s.Map(v)*float64(a.hi-a.lo)
}

// Tick steps run 1, 2, 5, 10, 20, 50, ... Level l has step
// tickMantissa[l%3] * 10^(l/3).
var tickMantissa = [...]float64{1, 2, 5}

func tickStep(level int) float64 {
	return tickMantissa[level%3] * math.Pow(10, float64(level/3))
}

// ticks returns the densest set of at most n integer tick positions
// in [a.min, a.max] whose step is 1, 2 or 5 times a power of ten.
func (a axis) ticks(n int) []float64 {
	if a.max <= a.min {
		return []float64{a.min}
	}
	span := func(level int) (lo, hi float64) {
		step := tickStep(level)
		return math.Ceil(a.min / step), math.Floor(a.max / step)
	}
	count := func(level int) int {
		lo, hi := span(level)
		return int(hi-lo) + 1
	}
	ticks := func(level int) []float64 {
		lo, hi := span(level)
		step := tickStep(level)
		var out []float64
		for i := lo; i <= hi; i++ {
			out = append(out, i*step)
		}
		return out
	}
	// Negative levels would have fractional steps.
	o := scale.TickOptions{Max: n, MinLevel: 0, MaxLevel: 60}
	level, ok := o.FindLevel(count, ticks, 0)
	if !ok {
		return []float64{a.min}
	}
	return ticks(level)
}

// frame is the layout shared by both chart kinds.
type frame struct {
	width, height int
	margin        int
	caption       string
	captionSize   float64
	xLabelArea    int
	yLabelArea    int
}

const (
	width  = 1280
	height = 720

	labelSize = 12
	descSize  = 15
	tickLen   = 5
)

// plotArea returns the rectangle inside the axes.
func (f frame) plotArea() image.Rectangle {
	top := f.margin
	if f.caption != "" {
		top += int(f.captionSize) + 10
	}
	return image.Rect(
		f.margin+f.yLabelArea, top,
		f.width-f.margin, f.height-f.margin-f.xLabelArea)
}

// drawFrame draws the caption and the two axis lines and returns the
// plot area.
func (f frame) drawFrame(c *canvas) image.Rectangle {
	if f.caption != "" {
		c.text(f.caption, f.captionSize, f.width/2, f.margin, alignCenter, alignStart, black)
	}
	pa := f.plotArea()
	c.vline(pa.Min.X, pa.Min.Y, pa.Max.Y, black)
	c.hline(pa.Min.X, pa.Max.X, pa.Max.Y, black)
	return pa
}

// yAxis draws horizontal mesh lines and labels at the y ticks.
func yAxis(c *canvas, pa image.Rectangle, ya axis, n int, label func(float64) string) {
	for _, t := range ya.ticks(n) {
		y := int(math.Round(ya.pos(t)))
		if y != pa.Max.Y {
			c.hline(pa.Min.X+1, pa.Max.X, y, mesh)
		}
		c.hline(pa.Min.X-tickLen, pa.Min.X, y, black)
		c.text(label(t), labelSize, pa.Min.X-tickLen-3, y, alignEnd, alignCenter, black)
	}
}
