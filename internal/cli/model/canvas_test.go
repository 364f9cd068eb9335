package model

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/vibeterm/internal/domain/entity"
)

func TestToCells_TilesLikeHitTests(t *testing.T) {
	root := entity.NewSplit(entity.SplitHorizontal, 0.5, entity.NewLeaf(entity.PaneID(0), ""), entity.NewLeaf(entity.PaneID(1), ""))
	layout := entity.ComputeLayout(root, entity.Rect{W: 80, H: 10}, 1)

	left := toCells(layout.Panes[0])
	div := toCells(layout.Dividers[0].Rect)
	right := toCells(layout.Panes[1])
	assert.Equal(t, left.X1, div.X0)
	assert.Equal(t, div.X1, right.X0)
	assert.Equal(t, 80, right.X1)

	for x := 0; x < 80; x++ {
		p := entity.Point{X: float64(x), Y: 3}
		id, inPane := layout.PaneAt(p)
		switch {
		case x < left.X1:
			assert.True(t, inPane && id == 0, "column %d", x)
		case x >= right.X0:
			assert.True(t, inPane && id == 1, "column %d", x)
		default:
			assert.False(t, inPane, "column %d", x)
		}
	}
}

func TestCanvas_Render(t *testing.T) {
	c := newCanvas(6, 3, lipgloss.NewStyle())
	c.box(cellRect{X0: 0, Y0: 0, X1: 6, Y1: 3}, 0)
	c.text(1, 1, 4, "ab\tcdefgh", 0)

	lines := strings.Split(c.render(), "\n")
	assert.Equal(t, []string{"╭────╮", "│ab  │", "╰────╯"}, lines)
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := newCanvas(2, 1, lipgloss.NewStyle())
	c.set(-1, 0, 'x', 0)
	c.set(5, 0, 'x', 0)
	c.fill(cellRect{X0: -3, Y0: -3, X1: 1, Y1: 5}, '#', 0)
	assert.Equal(t, "# ", c.render())
	assert.Equal(t, rune(0), c.at(9, 9))
}
