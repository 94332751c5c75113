package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bezier handle length approximating a quarter circle.
const kappa = 0.5522847498307936

// canvas rasterizes filled paths onto an NRGBA image, one shape at a time.
// The single rasterizer is reset between shapes so a full render allocates
// its accumulation buffer once.
type canvas struct {
	img  *image.NRGBA
	rast *vector.Rasterizer
	size int
}

func newCanvas(size int) *canvas {
	return &canvas{
		img:  image.NewNRGBA(image.Rect(0, 0, size, size)),
		rast: vector.NewRasterizer(size, size),
		size: size,
	}
}

// paint composites the current path onto the image with the given color.
func (c *canvas) paint(col color.NRGBA) {
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.rast.Reset(c.size, c.size)
}

func (c *canvas) fillRect(x0, y0, x1, y1 float32, col color.NRGBA) {
	r := c.rast
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
	c.paint(col)
}

// fillRoundedRect fills the rectangle with quarter-circle corners of the
// given radius, traced clockwise from the top edge.
func (c *canvas) fillRoundedRect(x0, y0, x1, y1, rad float32, col color.NRGBA) {
	k := rad * kappa
	r := c.rast
	r.MoveTo(x0+rad, y0)
	r.LineTo(x1-rad, y0)
	r.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	r.LineTo(x1, y1-rad)
	r.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	r.LineTo(x0+rad, y1)
	r.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	r.LineTo(x0, y0+rad)
	r.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	r.ClosePath()
	c.paint(col)
}

// circlePath appends a circle contour. dir is +1 for clockwise, -1 for
// counterclockwise; opposite directions cancel under the winding rule,
// which is how strokeCircle cuts its hole.
func (c *canvas) circlePath(cx, cy, rad, dir float32) {
	k := rad * kappa
	r := c.rast
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+dir*k, cx+k, cy+dir*rad, cx, cy+dir*rad)
	r.CubeTo(cx-k, cy+dir*rad, cx-rad, cy+dir*k, cx-rad, cy)
	r.CubeTo(cx-rad, cy-dir*k, cx-k, cy-dir*rad, cx, cy-dir*rad)
	r.CubeTo(cx+k, cy-dir*rad, cx+rad, cy-dir*k, cx+rad, cy)
	r.ClosePath()
}

func (c *canvas) fillCircle(cx, cy, rad float32, col color.NRGBA) {
	c.circlePath(cx, cy, rad, 1)
	c.paint(col)
}

// strokeCircle draws a circle outline of the given width. The stroke sits
// inside the nominal radius, matching outline-with-width semantics where
// the outer edge stays on the bounding circle.
func (c *canvas) strokeCircle(cx, cy, rad, width float32, col color.NRGBA) {
	inner := rad - width
	if inner <= 0 {
		c.fillCircle(cx, cy, rad, col)
		return
	}
	c.circlePath(cx, cy, rad, 1)
	c.circlePath(cx, cy, inner, -1)
	c.paint(col)
}

// strokeLine draws a straight segment of the given width with butt caps.
func (c *canvas) strokeLine(x0, y0, x1, y1, width float32, col color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	r := c.rast
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
	c.paint(col)
}
