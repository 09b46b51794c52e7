package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kebab-arena/render"
)

// HalfBlock is the glyph used for pixel pairs
const HalfBlock = '▀'

// textCell is one overlay glyph, wide glyphs mark their trailing cell as cont
type textCell struct {
	r    rune
	fg   render.RGB
	set  bool
	cont bool
}

// Canvas is a half-block pixel canvas of cols x 2*rows pixels
// Text lands in a per-frame cell overlay drawn over the pixels
type Canvas struct {
	*render.PixelBuffer
	cols, rows int
	text       []textCell
}

// NewCanvas creates a canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{PixelBuffer: render.NewPixelBuffer(0, 0)}
	c.Resize(cols, rows)
	return c
}

// Resize takes terminal cell dimensions
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	c.cols, c.rows = cols, rows
	c.PixelBuffer.Resize(cols, rows*2)
	if cap(c.text) >= cols*rows {
		c.text = c.text[:cols*rows]
	} else {
		c.text = make([]textCell, cols*rows)
	}
	c.clearText()
}

// LineHeight is one cell row
func (c *Canvas) LineHeight() float64 { return 2 }

// Text places s on the cell row containing pixel row y
// x is the anchor column for the alignment
func (c *Canvas) Text(x, y float64, s string, fg render.RGB, align render.Align) {
	row := int(y) / 2
	if y < 0 || row >= c.rows || s == "" {
		return
	}

	w := runewidth.StringWidth(s)
	col := int(x)
	switch align {
	case render.AlignCenter:
		col -= w / 2
	case render.AlignRight:
		col -= w
	}

	base := row * c.cols
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col >= 0 && col+rw <= c.cols {
			c.text[base+col] = textCell{r: r, fg: fg, set: true}
			for i := 1; i < rw; i++ {
				c.text[base+col+i] = textCell{set: true, cont: true}
			}
		}
		col += rw
	}
}

// Flush writes every cell to screen and clears the text overlay
// The caller shows the screen
func (c *Canvas) Flush(s tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.At(col, row*2)
			bottom := c.At(col, row*2+1)
			tc := c.text[row*c.cols+col]
			switch {
			case tc.cont:
				continue
			case tc.set:
				bg := render.Lerp(top, bottom, 0.5)
				style := tcell.StyleDefault.Foreground(render.RGBToTcell(tc.fg)).Background(render.RGBToTcell(bg))
				s.SetContent(col, row, tc.r, nil, style)
			default:
				style := tcell.StyleDefault.Foreground(render.RGBToTcell(top)).Background(render.RGBToTcell(bottom))
				s.SetContent(col, row, HalfBlock, nil, style)
			}
		}
	}
	c.clearText()
}

func (c *Canvas) clearText() {
	clear(c.text)
}
