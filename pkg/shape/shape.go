// pkg/shape/shape.go
package shape

import (
	"image/color"
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/utils"
)

// Rect - прямоугольник в координатах поля.
type Rect struct {
	X, Y, W, H float64
}

// Stars - детерминированное звёздное небо: одни и те же точки на каждом кадре.
func Stars(n int, width, height float64) []utils.Point {
	stars := make([]utils.Point, n)
	for i := range stars {
		fi := float64(i)
		stars[i] = utils.Point{
			X: (math.Sin(fi*123.45)*0.5 + 0.5) * width,
			Y: (math.Cos(fi*678.90)*0.5 + 0.5) * height,
		}
	}
	return stars
}

// CityBlocks - силуэт целого города: основной квартал и две башни.
func CityBlocks(p utils.Point) []Rect {
	return []Rect{
		{X: p.X - 15, Y: p.Y - 15, W: 30, H: 15},
		{X: p.X - 10, Y: p.Y - 25, W: 10, H: 10},
		{X: p.X + 5, Y: p.Y - 20, W: 8, H: 5},
	}
}

// Радиусы куполов-развалин.
const (
	CityRubbleRadius    = 10.0
	BatteryRubbleRadius = 15.0
)

// BatteryBase - трапеция основания батареи.
func BatteryBase(p utils.Point) []utils.Point {
	return []utils.Point{
		{X: p.X - 25, Y: p.Y},
		{X: p.X + 25, Y: p.Y},
		{X: p.X + 15, Y: p.Y - config.TurretPivotHeight},
		{X: p.X - 15, Y: p.Y - config.TurretPivotHeight},
	}
}

// Размеры ствола и шарнира.
const (
	BarrelLength = 20.0
	BarrelWidth  = 10.0
	PivotRadius  = 8.0
)

// Barrel - ствол, повёрнутый на angle вокруг pivot.
func Barrel(pivot utils.Point, angle float64) []utils.Point {
	sin, cos := math.Sincos(angle)
	local := []utils.Point{
		{X: 0, Y: -BarrelWidth / 2},
		{X: BarrelLength, Y: -BarrelWidth / 2},
		{X: BarrelLength, Y: BarrelWidth / 2},
		{X: 0, Y: BarrelWidth / 2},
	}
	out := make([]utils.Point, len(local))
	for i, p := range local {
		out[i] = utils.Point{
			X: pivot.X + p.X*cos - p.Y*sin,
			Y: pivot.Y + p.X*sin + p.Y*cos,
		}
	}
	return out
}

// Layer - один слой взрыва.
type Layer struct {
	Radius float64
	Color  color.NRGBA
}

// ExplosionLayers - вложенные диски, которыми рисуется взрыв: от прозрачно-красного
// края к белому ядру. Слои нулевого радиуса пропускаются.
func ExplosionLayers(e component.Explosion) []Layer {
	layers := make([]Layer, 0, len(config.ExplosionStops))
	for i, stop := range config.ExplosionStops {
		r := e.Radius * float64(stop)
		if r <= 0 {
			continue
		}
		layers = append(layers, Layer{Radius: r, Color: config.ExplosionColors[i]})
	}
	return layers
}
