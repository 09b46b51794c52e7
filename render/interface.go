package render

// Point is a screen position in canvas pixels
type Point struct {
	X, Y float64
}

// Align controls horizontal text anchoring
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the flat drawing surface the projection renderer targets
// Coordinates are pixels with the origin top-left, alpha is in [0,1]
type Canvas interface {
	Size() (width, height int)
	FillGradient(g Gradient)
	FillRect(x, y, w, h float64, c RGB, alpha float64)
	FillCircle(cx, cy, r float64, c RGB, alpha float64)
	FillPolygon(pts []Point, c RGB, alpha float64)
	Text(x, y float64, s string, c RGB, align Align)
	// LineHeight is the vertical pixel advance of one text line
	LineHeight() float64
}
