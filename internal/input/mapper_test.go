package input

import (
	"testing"

	"go-nova-defense/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_PassesThrough(t *testing.T) {
	v := Identity()
	assert.Equal(t, utils.Point{X: 400, Y: 0}, v.ToLogical(400, 0))
	assert.Equal(t, utils.Point{X: 123.5, Y: 456.25}, v.ToLogical(123.5, 456.25))
}

func TestToLogical_ScalesAndOffsets(t *testing.T) {
	v := Viewport{Width: 400, Height: 300, OffsetX: 100, OffsetY: 50}
	assert.Equal(t, utils.Point{X: 0, Y: 0}, v.ToLogical(100, 50))
	assert.Equal(t, utils.Point{X: 400, Y: 300}, v.ToLogical(300, 200))
	assert.Equal(t, utils.Point{X: 800, Y: 600}, v.ToLogical(500, 350))
}

func TestToLogical_Clamps(t *testing.T) {
	v := Viewport{Width: 400, Height: 300, OffsetX: 100, OffsetY: 50}
	assert.Equal(t, utils.Point{X: 0, Y: 0}, v.ToLogical(0, 0))
	assert.Equal(t, utils.Point{X: 800, Y: 600}, v.ToLogical(10000, 10000))
}

func TestToLogical_DegenerateViewport(t *testing.T) {
	assert.Equal(t, utils.Point{}, Viewport{}.ToLogical(10, 10))
}

func TestRoundTrip(t *testing.T) {
	v := Viewport{Width: 1024, Height: 768, OffsetX: 32, OffsetY: 16}
	p := utils.Point{X: 321, Y: 123}
	x, y := v.ToDevice(p)
	back := v.ToLogical(x, y)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestTerminalCells(t *testing.T) {
	v := Stretch(80, 24)

	p := v.CellToLogical(0, 0)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 12.5, p.Y, 1e-9)

	col, row := v.LogicalToCell(utils.Point{X: 400, Y: 570})
	assert.Equal(t, 40, col)
	assert.Equal(t, 22, row)

	col, row = v.LogicalToCell(utils.Point{X: 800, Y: 600})
	assert.Equal(t, 79, col)
	assert.Equal(t, 23, row)

	for c := 0; c < 80; c++ {
		gotCol, _ := v.LogicalToCell(v.CellToLogical(c, 3))
		assert.Equal(t, c, gotCol)
	}
}
