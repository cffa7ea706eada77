// Package icon draws the extension's "chat bubble with play button" icon.
// All geometry is a fraction of the requested size, so the same design
// renders at any resolution.
package icon

import (
	"image"
	"image/color"

	"github.com/Mavwarf/bubbleicon/internal/raster"
)

var (
	DeepPurple = color.RGBA{R: 103, G: 58, B: 183, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Geometry is the pixel-space layout of one icon.
type Geometry struct {
	Size         int
	Background   raster.Rect
	BgRadius     float64
	Bubble       raster.Rect
	BubbleRadius float64
	Tail         [3]raster.Point
	Play         [3]raster.Point
}

// Layout computes the geometry Draw uses for the given size.
func Layout(size int) Geometry {
	s := float64(size)

	bw, bh := s*0.7, s*0.5
	bx := (s - bw) / 2
	by := (s-bh)/2 - s*0.05
	bottom := by + bh

	ps := bh * 0.5
	px := bx + (bw-ps)/2 + ps*0.1 // nudged right for optical centre
	py := by + (bh-ps)/2

	return Geometry{
		Size:         size,
		Background:   raster.Rect{X: 0, Y: 0, W: s, H: s},
		BgRadius:     float64(size / 5),
		Bubble:       raster.Rect{X: bx, Y: by, W: bw, H: bh},
		BubbleRadius: float64(size / 8),
		// The tail starts one pixel inside the bubble so the seam is hidden.
		Tail: [3]raster.Point{
			{X: bx + bw*0.2, Y: bottom - 1},
			{X: bx + bw*0.2, Y: bottom + s*0.15},
			{X: bx + bw*0.5, Y: bottom - 1},
		},
		Play: [3]raster.Point{
			{X: px, Y: py},
			{X: px, Y: py + ps},
			{X: px + ps*0.866, Y: py + ps/2},
		},
	}
}

// Draw renders a size×size icon on a transparent canvas. Shapes are
// painted back to front: background, bubble, tail, play glyph.
// A non-positive size returns an empty image.
func Draw(size int) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	g := Layout(size)

	raster.FillRoundedRect(img, g.Background, g.BgRadius, DeepPurple)
	raster.FillRoundedRect(img, g.Bubble, g.BubbleRadius, White)
	raster.FillPolygon(img, g.Tail[:], White)
	raster.FillPolygon(img, g.Play[:], DeepPurple)
	return img
}
