package ndview

import (
	"image/color"
	"strconv"
)

// RGBA represents a colour with red, green, blue and alpha components
// in the range [0, 1]. The pipeline never interprets colours; they are
// carried through to the backend unchanged.
type RGBA struct {
	R, G, B, A float64
}

// Common colours.
var (
	Black = RGBA{0, 0, 0, 1}
	White = RGBA{1, 1, 1, 1}
	Red   = RGBA{1, 0, 0, 1}
	Green = RGBA{0, 1, 0, 1}
	Blue  = RGBA{0, 0, 1, 1}
)

// RGB creates an opaque colour from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Hex returns the colour as a #RRGGBB hex string, ignoring alpha.
func (c RGBA) Hex() string {
	v := uint32(clamp255(c.R*255))<<16 | uint32(clamp255(c.G*255))<<8 | uint32(clamp255(c.B*255))
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 6 {
		s = "0" + s
	}
	return "#" + s
}

// ParseHex creates a colour from a hex string. Supports "RGB",
// "RRGGBB" and "RRGGBBAA", with or without a leading '#'. Invalid
// input yields opaque black.
func ParseHex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3:
		r := hexNibble(hex[0])
		g := hexNibble(hex[1])
		b := hexNibble(hex[2])
		return RGBA{R: float64(r*17) / 255, G: float64(g*17) / 255, B: float64(b*17) / 255, A: 1}
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return Black
		}
		if len(hex) == 6 {
			v = v<<8 | 0xff
		}
		return RGBA{
			R: float64(v>>24&0xff) / 255,
			G: float64(v>>16&0xff) / 255,
			B: float64(v>>8&0xff) / 255,
			A: float64(v&0xff) / 255,
		}
	}
	return Black
}

func hexNibble(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return uint32(b-'A') + 10
	}
	return 0
}

func clamp255(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return f
}

// Style carries the stroke and fill appearance of emitted primitives.
// Lines use Stroke; faces use Fill for the interior and Stroke for the
// outline.
type Style struct {
	Stroke      RGBA
	Fill        RGBA
	StrokeWidth float64
}

// DefaultStyle returns an opaque black stroke of width 1 over a
// light grey fill.
func DefaultStyle() Style {
	return Style{
		Stroke:      Black,
		Fill:        RGBA{0.8, 0.8, 0.8, 1},
		StrokeWidth: 1,
	}
}
