package system

import (
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// Tick - входные данные одного шага симуляции.
type Tick struct {
	Now   time.Duration // часы сессии
	Scale float64       // множитель движения; 1 - один опорный кадр при 60 TPS
}

// Step выполняет один тик: спавн, движение, попадания, взрывы, уборка, проверка исхода.
// Вне фазы PLAYING мир возвращается без изменений.
func Step(prev entity.World, tick Tick, rng utils.Rand) (entity.World, []event.Event) {
	if prev.Phase != component.PhasePlaying {
		return prev, nil
	}

	var all []event.Event
	collect := func(w entity.World, events []event.Event) entity.World {
		all = append(all, events...)
		return w
	}

	w := collect(Spawn(prev, tick.Now, rng))
	w = collect(MoveRockets(w, tick.Scale))
	w = collect(MoveMissiles(w, tick.Scale))
	w = collect(UpdateExplosions(w, tick.Scale))
	w = Cleanup(w)
	w = collect(EvaluateOutcome(w))
	return w, all
}
