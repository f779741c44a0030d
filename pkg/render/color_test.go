package render

import (
	"image/color"
	"testing"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestColors(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 25, 200}, DarkenColor(color.RGBA{100, 200, 50, 200}))
	assert.Equal(t, color.NRGBA{255, 0, 0, 10}, WithAlpha(color.RGBA{255, 0, 0, 255}, 10))

	r, g, b, a := vertexColor(color.NRGBA{255, 0, 255, 51})
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(0), g)
	assert.Equal(t, float32(1), b)
	assert.InDelta(t, 0.2, a, 1e-6)
}

func TestGlowColor_KeepsHueWithGlowAlpha(t *testing.T) {
	assert.Equal(t, color.NRGBA{255, 68, 68, 70}, glowColor(config.RocketHeadColor))
	assert.Equal(t, color.NRGBA{68, 255, 68, 70}, glowColor(config.MissileHeadColor))
}

func TestBatteryBaseColor_DarkensWhenEmpty(t *testing.T) {
	loaded := component.Battery{Missiles: 1}
	empty := component.Battery{Missiles: 0}

	assert.Equal(t, config.BatteryBaseColor, batteryBaseColor(loaded))
	assert.Equal(t, color.RGBA{51, 51, 51, 255}, batteryBaseColor(empty))
}
