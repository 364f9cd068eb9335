package model

import (
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

// cellRect is a rectangle of terminal cells; X1 and Y1 are exclusive.
type cellRect struct {
	X0, Y0, X1, Y1 int
}

// toCells maps a layout rectangle to the cells whose top-left corner it
// contains, which is also the rectangle a mouse hit on that cell resolves to.
// Shared edges map to the same column, so tiling is preserved.
func toCells(r entity.Rect) cellRect {
	return cellRect{
		X0: int(math.Ceil(r.X)),
		Y0: int(math.Ceil(r.Y)),
		X1: int(math.Ceil(r.MaxX())),
		Y1: int(math.Ceil(r.MaxY())),
	}
}

func (r cellRect) W() int { return r.X1 - r.X0 }
func (r cellRect) H() int { return r.Y1 - r.Y0 }

// canvas is a grid of styled cells rendered to a string once per frame.
// Style 0 is the base style.
type canvas struct {
	w, h   int
	runes  []rune
	style  []int
	styles []lipgloss.Style
}

func newCanvas(w, h int, base lipgloss.Style) *canvas {
	w, h = max(w, 0), max(h, 0)
	c := &canvas{
		w:      w,
		h:      h,
		runes:  make([]rune, w*h),
		style:  make([]int, w*h),
		styles: []lipgloss.Style{base},
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

// addStyle registers a style and returns its index.
func (c *canvas) addStyle(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

func (c *canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y*c.w+x] = r
	c.style[y*c.w+x] = style
}

func (c *canvas) at(x, y int) rune {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.runes[y*c.w+x]
}

// text writes s at (x, y), cut to maxW cells. Control characters become
// spaces and tabs expand to the next multiple of 8.
func (c *canvas) text(x, y, maxW int, s string, style int) {
	col := 0
	for _, r := range s {
		if col >= maxW {
			return
		}
		switch {
		case r == '\t':
			next := min((col/8+1)*8, maxW)
			for ; col < next; col++ {
				c.set(x+col, y, ' ', style)
			}
			continue
		case !unicode.IsPrint(r):
			r = ' '
		}
		c.set(x+col, y, r, style)
		col++
	}
}

func (c *canvas) fill(r cellRect, ch rune, style int) {
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			c.set(x, y, ch, style)
		}
	}
}

// box draws a rounded border along the edges of r.
func (c *canvas) box(r cellRect, style int) {
	if r.W() < 2 || r.H() < 2 {
		return
	}
	x1, y1 := r.X1-1, r.Y1-1
	for x := r.X0 + 1; x < x1; x++ {
		c.set(x, r.Y0, '─', style)
		c.set(x, y1, '─', style)
	}
	for y := r.Y0 + 1; y < y1; y++ {
		c.set(r.X0, y, '│', style)
		c.set(x1, y, '│', style)
	}
	c.set(r.X0, r.Y0, '╭', style)
	c.set(x1, r.Y0, '╮', style)
	c.set(r.X0, y1, '╰', style)
	c.set(x1, y1, '╯', style)
}

// render joins runs of equally styled cells into styled strings.
func (c *canvas) render() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := y * c.w
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.style[row+x] == c.style[row+start] {
				continue
			}
			b.WriteString(c.styles[c.style[row+start]].Render(string(c.runes[row+start : row+x])))
			start = x
		}
	}
	return b.String()
}
