// Package icon draws the SubNetree tree topology icon at arbitrary pixel
// sizes. The artwork is authored once in a 256x256 design space (scene.go)
// and scaled per render; fine detail drops out below fixed size thresholds.
package icon

import (
	"image"
	"image/color"

	"subnetree-icons/palette"
)

// designSize is the side length of the authoring coordinate system.
const designSize = 256

// Render draws the icon at size x size pixels using the given theme. The
// background is a rounded square when roundedBG is set, a plain square
// otherwise; everything outside the background stays transparent. Output is
// deterministic for a given (size, palette, roundedBG).
func Render(size int, p palette.Palette, roundedBG bool) *image.NRGBA {
	c := newCanvas(size)
	s := float64(size) / designSize

	// Coordinates truncate like the design was authored; widths and radii
	// never collapse below one pixel.
	sc := func(v float64) float32 { return float32(int(v * s)) }
	lw := func(w float64) float32 { return float32(max(1, int(w*s))) }

	if roundedBG {
		r := max(2, int(32*s))
		c.fillRoundedRect(0, 0, float32(size), float32(size), float32(r), p.BG)
	} else {
		c.fillRect(0, 0, float32(size), float32(size), p.BG)
	}

	for _, sh := range scene {
		if size < sh.MinSize {
			continue
		}
		switch {
		case sh.Line != nil:
			l := sh.Line
			c.strokeLine(sc(l.X0), sc(l.Y0), sc(l.X1), sc(l.Y1), lw(l.Width), colorFor(p, l.Color))
		case sh.Ring != nil:
			r := sh.Ring
			c.strokeCircle(sc(r.CX), sc(r.CY), float32(int(r.Radius*s)), lw(r.Width), colorFor(p, r.Color))
		case sh.Node != nil:
			n := sh.Node
			cx, cy := sc(n.CX), sc(n.CY)
			outer := lw(n.OuterR)
			c.fillCircle(cx, cy, outer, p.Card)
			c.strokeCircle(cx, cy, outer, lw(n.StrokeW), colorFor(p, n.Stroke))
			if n.InnerR > 0 {
				c.fillCircle(cx, cy, lw(n.InnerR), colorFor(p, n.Fill))
			}
		}
	}

	return c.img
}

// colorFor resolves a scene color role against a theme.
func colorFor(p palette.Palette, r colorRole) color.NRGBA {
	switch r {
	case roleBG:
		return p.BG
	case roleCard:
		return p.Card
	case roleGreen:
		return p.Green
	case roleEarth:
		return p.Earth
	case roleSage:
		return p.Sage
	case roleLineGreen:
		return p.LineGreen
	case roleLineEarth:
		return p.LineEarth
	case roleLineFaint:
		return p.LineFaint
	case roleRing:
		return p.Ring
	case roleSageDim:
		return p.SageDim
	case roleSatLine:
		return p.SatLine
	}
	return p.BG
}
