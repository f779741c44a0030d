package shape

import (
	"image/color"
	"math"
	"testing"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStars_DeterministicAndInside(t *testing.T) {
	a := Stars(50, 800, 600)
	b := Stars(50, 800, 600)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)
	for _, s := range a {
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.LessOrEqual(t, s.X, 800.0)
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.LessOrEqual(t, s.Y, 600.0)
	}
	// нулевая звезда: sin(0)=0, cos(0)=1
	assert.Equal(t, utils.Point{X: 400, Y: 600}, a[0])
}

func TestCityBlocks(t *testing.T) {
	blocks := CityBlocks(utils.Point{X: 100, Y: 570})
	require.Len(t, blocks, 3)
	assert.Equal(t, Rect{X: 85, Y: 555, W: 30, H: 15}, blocks[0])
}

func TestBatteryBase(t *testing.T) {
	base := BatteryBase(utils.Point{X: 400, Y: 560})
	assert.Equal(t, []utils.Point{{X: 375, Y: 560}, {X: 425, Y: 560}, {X: 415, Y: 540}, {X: 385, Y: 540}}, base)
}

func TestBarrel_Rotation(t *testing.T) {
	pivot := utils.Point{X: 400, Y: 540}

	flat := Barrel(pivot, 0)
	assert.InDelta(t, 420, flat[1].X, 1e-9)
	assert.InDelta(t, 535, flat[1].Y, 1e-9)

	up := Barrel(pivot, -math.Pi/2)
	// ствол вверх: дальний край на 20 выше оси
	assert.InDelta(t, 520, (up[1].Y+up[2].Y)/2, 1e-9)
	assert.InDelta(t, 400, (up[1].X+up[2].X)/2, 1e-9)
}

func TestExplosionLayers(t *testing.T) {
	assert.Empty(t, ExplosionLayers(component.Explosion{Radius: 0}))

	layers := ExplosionLayers(component.Explosion{Radius: 40, MaxRadius: 40})
	require.Len(t, layers, 4)
	assert.Equal(t, 40.0, layers[0].Radius)
	assert.InDelta(t, 4.8, layers[3].Radius, 1e-6)
	for i := 1; i < len(layers); i++ {
		assert.Less(t, layers[i].Radius, layers[i-1].Radius)
	}
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, layers[3].Color)
}
