package render

import "math"

// PixelBuffer is a software RGB framebuffer with alpha compositing
// Shapes are rasterized by pixel-center sampling
type PixelBuffer struct {
	pix    []RGB
	width  int
	height int
}

// NewPixelBuffer creates a buffer with the specified dimensions
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *PixelBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.pix) < size {
		b.pix = make([]RGB, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.width = width
	b.height = height
	b.Clear(RGBBlack)
}

// Clear fills every pixel using exponential copy
func (b *PixelBuffer) Clear(c RGB) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// Size returns buffer dimensions
func (b *PixelBuffer) Size() (int, int) {
	return b.width, b.height
}

// At returns the pixel, black when out of bounds
func (b *PixelBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.pix[y*b.width+x]
}

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *PixelBuffer) blend(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pix[idx] = Blend(b.pix[idx], c, alpha)
}

// span converts a continuous [lo, hi) range into covered pixel indices by center sampling
func span(lo, hi float64, limit int) (int, int) {
	// Clip before int conversion, projected points near the camera can be huge
	edge := float64(limit) + 1
	lo = math.Min(math.Max(lo, -1), edge)
	hi = math.Min(math.Max(hi, -1), edge)
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Ceil(hi-0.5)) - 1
	return max(first, 0), min(last, limit-1)
}

// FillGradient paints each row with the gradient sampled at its center
func (b *PixelBuffer) FillGradient(g Gradient) {
	if b.height == 0 {
		return
	}
	for y := 0; y < b.height; y++ {
		c := g.Sample((float64(y) + 0.5) / float64(b.height))
		row := b.pix[y*b.width : (y+1)*b.width]
		for x := range row {
			row[x] = c
		}
	}
}

// FillRect composites an axis-aligned rectangle
func (b *PixelBuffer) FillRect(x, y, w, h float64, c RGB, alpha float64) {
	x0, x1 := span(x, x+w, b.width)
	y0, y1 := span(y, y+h, b.height)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			b.blend(px, py, c, alpha)
		}
	}
}

// FillCircle composites a disc
// A disc too small to cover any pixel center still lights its nearest pixel
func (b *PixelBuffer) FillCircle(cx, cy, r float64, c RGB, alpha float64) {
	if r <= 0 {
		return
	}
	x0, x1 := span(cx-r, cx+r, b.width)
	y0, y1 := span(cy-r, cy+r, b.height)
	r2 := r * r
	hit := false
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				b.blend(px, py, c, alpha)
				hit = true
			}
		}
	}
	if !hit && cx >= 0 && cy >= 0 && cx < float64(b.width) && cy < float64(b.height) {
		b.blend(int(math.Floor(cx)), int(math.Floor(cy)), c, alpha)
	}
}

// FillPolygon composites a simple polygon with the even-odd rule
func (b *PixelBuffer) FillPolygon(pts []Point, c RGB, alpha float64) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0, y1 := span(minY, maxY, b.height)

	xs := make([]float64, 0, len(pts))
	for py := y0; py <= y1; py++ {
		sy := float64(py) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, e := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (e.Y <= sy) {
				continue
			}
			t := (sy - a.Y) / (e.Y - a.Y)
			xs = append(xs, a.X+t*(e.X-a.X))
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := span(xs[i], xs[i+1], b.width)
			for px := x0; px <= x1; px++ {
				b.blend(px, py, c, alpha)
			}
		}
	}
}

// sortFloats is an insertion sort, scanline crossings are few
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
