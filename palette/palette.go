// Package palette defines the two fixed SubNetree icon color themes.
package palette

import "image/color"

// Palette holds the named colors for one icon theme. Translucent roles
// carry their alpha pre-blended in the literal channel values; the integer
// alphas are authoritative, the percentage comments approximate.
type Palette struct {
	Name string

	// Solid colors
	BG    color.NRGBA // canvas background
	Card  color.NRGBA // node fill behind strokes
	Green color.NRGBA // primary accent (root, gateways, junction)
	Earth color.NRGBA // leaf device accent
	Sage  color.NRGBA // satellite accent

	// Translucent variants
	LineGreen color.NRGBA // trunk/branch strokes
	LineEarth color.NRGBA // leaf branch strokes
	LineFaint color.NRGBA // discovery link
	Ring      color.NRGBA // decorative/glow rings
	SageDim   color.NRGBA // satellite node strokes
	SatLine   color.NRGBA // satellite connector lines
}

// Dark is the theme used on dark UI surfaces and for the primary ICO.
var Dark = Palette{
	Name:      "dark",
	BG:        color.NRGBA{12, 26, 14, 255},    // #0c1a0e
	Card:      color.NRGBA{26, 46, 28, 255},    // #1a2e1c
	Green:     color.NRGBA{74, 222, 128, 255},  // #4ade80
	Earth:     color.NRGBA{196, 167, 125, 255}, // #c4a77d
	Sage:      color.NRGBA{156, 163, 137, 255}, // #9ca389
	LineGreen: color.NRGBA{74, 222, 128, 89},   // 0.35 alpha
	LineEarth: color.NRGBA{196, 167, 125, 89},  // 0.35 alpha
	LineFaint: color.NRGBA{74, 222, 128, 18},   // 0.07 alpha
	Ring:      color.NRGBA{74, 222, 128, 25},   // 0.10 alpha
	SageDim:   color.NRGBA{156, 163, 137, 127}, // 0.50 alpha
	SatLine:   color.NRGBA{156, 163, 137, 38},  // 0.15 alpha
}

// Light is the theme for light UI surfaces. Card matches BG so node
// interiors read as cutouts rather than chips.
var Light = Palette{
	Name:      "light",
	BG:        color.NRGBA{245, 245, 240, 255}, // #f5f5f0
	Card:      color.NRGBA{245, 245, 240, 255},
	Green:     color.NRGBA{22, 163, 74, 255},  // #16a34a
	Earth:     color.NRGBA{146, 115, 78, 255}, // #92734e
	Sage:      color.NRGBA{107, 122, 86, 255}, // #6b7a56
	LineGreen: color.NRGBA{22, 101, 52, 102},  // 0.40 alpha
	LineEarth: color.NRGBA{146, 116, 78, 102}, // 0.40 alpha
	LineFaint: color.NRGBA{22, 101, 52, 18},   // 0.07 alpha
	Ring:      color.NRGBA{22, 101, 52, 25},   // 0.10 alpha
	SageDim:   color.NRGBA{100, 116, 80, 127}, // 0.50 alpha
	SatLine:   color.NRGBA{107, 122, 86, 38},  // 0.15 alpha
}
