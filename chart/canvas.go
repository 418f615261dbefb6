// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	mesh  = color.RGBA{220, 220, 220, 255}
)

// The sans-serif face. Go Regular is embedded so rendering does not
// depend on fonts installed on the host. mu guards sans and faces.
var (
	mu    sync.Mutex
	sans  *opentype.Font
	faces = map[float64]font.Face{}
)

func face(size float64) (font.Face, error) {
	mu.Lock()
	defer mu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	if sans == nil {
		var err error
		if sans, err = opentype.Parse(goregular.TTF); err != nil {
			return nil, err
		}
	}
	f, err := opentype.NewFace(sans, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}

type align int

const (
	alignStart align = iota
	alignCenter
	alignEnd
)

// canvas is an opaque RGBA image with simple drawing operations.
// Errors from font loading are sticky and reported by err.
type canvas struct {
	img *image.RGBA
	err error
}

func newCanvas(w, h int) *canvas {
	c := &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return c
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// strokeRect draws a width-1 outline just inside r.
func (c *canvas) strokeRect(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	c.fill(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	c.fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	c.fill(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (c *canvas) hline(x0, x1, y int, col color.Color) {
	c.fill(image.Rect(x0, y, x1+1, y+1), col)
}

func (c *canvas) vline(x, y0, y1 int, col color.Color) {
	c.fill(image.Rect(x, y0, x+1, y1+1), col)
}

// polyline strokes the path through pts with an anti-aliased line of
// the given width.
func (c *canvas) polyline(pts []point, width float64, col color.Color) {
	if len(pts) == 0 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	hw := width / 2
	if len(pts) == 1 {
		p := pts[0]
		quad(z, point{p.x - hw, p.y - hw}, point{p.x + hw, p.y - hw}, point{p.x + hw, p.y + hw}, point{p.x - hw, p.y + hw})
	}
	for i := 1; i < len(pts); i++ {
		p, q := pts[i-1], pts[i]
		dx, dy := q.x-p.x, q.y-p.y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// Extend each segment by half the width so joins overlap.
		ex, ey := dx/l*hw, dy/l*hw
		nx, ny := -ey, ex
		p0 := point{p.x - ex, p.y - ey}
		q0 := point{q.x + ex, q.y + ey}
		quad(z,
			point{p0.x + nx, p0.y + ny},
			point{q0.x + nx, q0.y + ny},
			point{q0.x - nx, q0.y - ny},
			point{p0.x - nx, p0.y - ny})
	}
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func quad(z *vector.Rasterizer, a, b, c, d point) {
	z.MoveTo(float32(a.x), float32(a.y))
	z.LineTo(float32(b.x), float32(b.y))
	z.LineTo(float32(c.x), float32(c.y))
	z.LineTo(float32(d.x), float32(d.y))
	z.ClosePath()
}

type point struct {
	x, y float64
}

// textSize returns the advance width and line height of s.
func (c *canvas) textSize(s string, size float64) (w, h int) {
	f, err := face(size)
	if err != nil {
		c.setErr(err)
		return 0, 0
	}
	m := f.Metrics()
	return font.MeasureString(f, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// text draws s so that (x, y) is at the given horizontal and vertical
// alignment of its bounding box.
func (c *canvas) text(s string, size float64, x, y int, h, v align, col color.Color) {
	c.drawText(c.img, s, size, x, y, h, v, col)
}

func (c *canvas) drawText(dst draw.Image, s string, size float64, x, y int, h, v align, col color.Color) {
	f, err := face(size)
	if err != nil {
		c.setErr(err)
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: f}
	m := f.Metrics()
	adv := d.MeasureString(s)
	dot := fixed.P(x, y)
	switch h {
	case alignCenter:
		dot.X -= adv / 2
	case alignEnd:
		dot.X -= adv
	}
	switch v {
	case alignStart:
		dot.Y += m.Ascent
	case alignCenter:
		dot.Y += (m.Ascent - m.Descent) / 2
	case alignEnd:
		dot.Y -= m.Descent
	}
	d.Dot = dot
	d.DrawString(s)
}

// vtext draws s rotated a quarter turn counter-clockwise, centered
// on (x, y).
func (c *canvas) vtext(s string, size float64, x, y int, col color.Color) {
	w, h := c.textSize(s, size)
	if w == 0 || h == 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	c.drawText(tmp, s, size, 0, 0, alignStart, alignStart, col)

	rot := image.NewRGBA(image.Rect(0, 0, h, w))
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			rot.SetRGBA(ty, w-1-tx, tmp.RGBAAt(tx, ty))
		}
	}
	r := image.Rect(x-h/2, y-w/2, x-h/2+h, y-w/2+w)
	draw.Draw(c.img, r, rot, image.Point{}, draw.Over)
}

func (c *canvas) setErr(err error) {
	if c.err == nil {
		c.err = fmt.Errorf("loading font: %w", err)
	}
}

// writePNG encodes c to path, replacing any existing file.
func (c *canvas) writePNG(path string) (err error) {
	if c.err != nil {
		return c.err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, c.img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
