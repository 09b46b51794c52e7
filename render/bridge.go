package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellToRGB converts tcell.Color to RGB
// ColorDefault maps to the arena background
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RgbBackgroundTop
	}
	r, g, b := c.RGB()
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// RGBToRGBA converts to an image color with the given alpha in [0,1]
// Premultiplied as image/color requires
func RGBToRGBA(rgb RGB, alpha float64) color.RGBA {
	a := clamp(alpha * 255)
	return color.RGBA{
		R: uint8(uint16(rgb.R) * uint16(a) / 255),
		G: uint8(uint16(rgb.G) * uint16(a) / 255),
		B: uint8(uint16(rgb.B) * uint16(a) / 255),
		A: a,
	}
}
