// internal/system/explosion.go
package system

import (
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// UpdateExplosions растит взрывы и уничтожает попавшие в радиус ракеты.
// Проверка попаданий идёт и на том тике, где взрыв достиг максимума: флаг
// Finished только помечает взрыв к удалению.
func UpdateExplosions(prev entity.World, scale float64) (entity.World, []event.Event) {
	w := prev.Clone()
	scale = scaleOrOne(scale)

	var events []event.Event
	for i := range w.Explosions {
		exp := &w.Explosions[i]
		if exp.Finished {
			continue
		}
		exp.Radius += exp.GrowthRate * scale
		if exp.Radius >= exp.MaxRadius {
			exp.Radius = exp.MaxRadius
			exp.Finished = true
		}

		for j := range w.Rockets {
			r := &w.Rockets[j]
			if r.Destroyed {
				continue
			}
			if utils.Distance(r.Current, exp.Center) < exp.Radius {
				r.Destroyed = true
				w.Score += config.ScorePerKill
				events = append(events, event.Event{
					Type: event.RocketIntercepted,
					Data: event.ScoreData{ID: r.ID, Score: w.Score},
				})
			}
		}
	}
	return w, events
}
