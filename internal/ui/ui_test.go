package ui

import (
	"image"
	"image/color"
	"testing"
	"time"

	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0000", FormatScore(0))
	assert.Equal(t, "0020", FormatScore(20))
	assert.Equal(t, "1000", FormatScore(1000))
	assert.Equal(t, "12340", FormatScore(12340))
}

func TestFooterLines(t *testing.T) {
	tr := defs.DefaultCatalog().Get(defs.LangEN)
	assert.Equal(t, "Cities: 4 / 6", CitiesLine(tr, 4))
	assert.Equal(t, "Target: 1000", TargetLine(tr))

	w := entity.Reset(0)
	assert.Equal(t, "Missiles: 300", MissilesLine(tr, w))
	w.Batteries[0].Destroyed = true
	w.Batteries[1].Missiles = 7
	assert.Equal(t, "Missiles: 107", MissilesLine(tr, w), "destroyed batteries hold no stock")
}

func TestButton_ContainsAndCooldown(t *testing.T) {
	b := NewButton(CenteredRect(400, 300, 200, 50), "Start", basicfont.Face7x13)
	assert.Equal(t, image.Rect(300, 275, 500, 325), b.Rect)

	assert.True(t, b.Contains(utils.Point{X: 300, Y: 275}))
	assert.False(t, b.Contains(utils.Point{X: 500, Y: 300}), "max edge is exclusive")

	now := time.Now()
	assert.False(t, b.Click(utils.Point{X: 10, Y: 10}, now))
	assert.True(t, b.Click(utils.Point{X: 400, Y: 300}, now))
	assert.False(t, b.Click(utils.Point{X: 400, Y: 300}, now.Add(100*time.Millisecond)))
	assert.True(t, b.Click(utils.Point{X: 400, Y: 300}, now.Add(200*time.Millisecond)))
}

func TestPauseButton(t *testing.T) {
	b := NewPauseButton(760, 80, 14, color.White, color.White)
	assert.True(t, b.IsClicked(utils.Point{X: 770, Y: 80}))
	assert.False(t, b.IsClicked(utils.Point{X: 790, Y: 80}))

	b.TogglePause()
	assert.True(t, b.IsPaused)
	b.SetPaused(false)
	assert.False(t, b.IsPaused)
}

func TestDarkenRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 0, 255}, DarkenRGBA(color.RGBA{100, 200, 0, 255}, 0.5))
}
