// Package raster fills anti-aliased shapes onto an image using
// golang.org/x/image/vector. Coordinates are in pixels with (0,0) at the
// top-left corner of the destination bounds; pixel (x,y) covers the unit
// square [x,x+1)×[y,y+1).
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control distance for a quarter circle of
// radius 1.
const kappa = 0.5522847498

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// FillRoundedRect fills r with c, replacing each corner with a circular
// arc of the given radius. The radius is clamped to half the shorter side;
// a radius of zero fills a plain rectangle. Zero-area rects draw nothing.
func FillRoundedRect(dst draw.Image, r Rect, radius float64, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	radius = math.Max(0, math.Min(radius, math.Min(r.W, r.H)/2))

	z, ok := newRasterizer(dst)
	if !ok {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H

	if radius == 0 {
		z.MoveTo(f32(x0), f32(y0))
		z.LineTo(f32(x1), f32(y0))
		z.LineTo(f32(x1), f32(y1))
		z.LineTo(f32(x0), f32(y1))
		z.ClosePath()
		fill(z, dst, c)
		return
	}

	k := radius * kappa
	z.MoveTo(f32(x0+radius), f32(y0))
	z.LineTo(f32(x1-radius), f32(y0))
	z.CubeTo(f32(x1-radius+k), f32(y0), f32(x1), f32(y0+radius-k), f32(x1), f32(y0+radius))
	z.LineTo(f32(x1), f32(y1-radius))
	z.CubeTo(f32(x1), f32(y1-radius+k), f32(x1-radius+k), f32(y1), f32(x1-radius), f32(y1))
	z.LineTo(f32(x0+radius), f32(y1))
	z.CubeTo(f32(x0+radius-k), f32(y1), f32(x0), f32(y1-radius+k), f32(x0), f32(y1-radius))
	z.LineTo(f32(x0), f32(y0+radius))
	z.CubeTo(f32(x0), f32(y0+radius-k), f32(x0+radius-k), f32(y0), f32(x0+radius), f32(y0))
	z.ClosePath()
	fill(z, dst, c)
}

// FillPolygon fills the closed polygon through pts with c. Fewer than
// three points draws nothing.
func FillPolygon(dst draw.Image, pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	z, ok := newRasterizer(dst)
	if !ok {
		return
	}
	z.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(f32(p.X), f32(p.Y))
	}
	z.ClosePath()
	fill(z, dst, c)
}

func newRasterizer(dst draw.Image) (*vector.Rasterizer, bool) {
	b := dst.Bounds()
	if b.Empty() {
		return nil, false
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	return z, true
}

// fill composites c through the rasterizer's coverage mask (source-over).
func fill(z *vector.Rasterizer, dst draw.Image, c color.Color) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func f32(v float64) float32 { return float32(v) }
