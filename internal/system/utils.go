package system

import (
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// spawnExplosion добавляет взрыв со стандартными параметрами в мир.
func spawnExplosion(w *entity.World, at utils.Point) event.Event {
	exp := component.Explosion{
		ID:         w.NewEntity(),
		Center:     at,
		MaxRadius:  config.ExplosionMaxRadius,
		GrowthRate: config.ExplosionGrowthRate,
	}
	w.Explosions = append(w.Explosions, exp)
	return event.Event{Type: event.ExplosionSpawned, Data: event.EntityData{ID: exp.ID, Position: at}}
}

// insideBox - точка p попала в квадрат с полустороной half вокруг center. Границы не включаются.
func insideBox(center, p utils.Point, half float64) bool {
	return math.Abs(center.X-p.X) < half && math.Abs(center.Y-p.Y) < half
}

// scaleOrOne защищает интеграцию от нулевого и отрицательного шага.
func scaleOrOne(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}
