// internal/system/movement.go
package system

import (
	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// MoveRockets сдвигает вражеские ракеты к их целям и обрабатывает попадания.
// Ракета считается долетевшей, как только её Y дошёл до Y цели; сравнивается
// только вертикаль.
func MoveRockets(prev entity.World, scale float64) (entity.World, []event.Event) {
	w := prev.Clone()
	scale = scaleOrOne(scale)

	var events []event.Event
	for i := range w.Rockets {
		r := &w.Rockets[i]
		if r.Destroyed {
			continue
		}
		dir := utils.Direction(r.Start, r.End)
		r.Current = utils.Step(r.Current, dir, r.Speed*scale)

		if r.Current.Y >= r.End.Y {
			// точка удара - сама цель End, а не точка перелёта: ракета не уходит за конец отрезка
			r.Current = r.End
			r.Destroyed = true
			events = append(events, impact(&w, *r)...)
		}
	}
	return w, events
}

// impact - ракета долетела: взрыв в точке удара и разрушение всего, что попало в коробку.
func impact(w *entity.World, r component.Rocket) []event.Event {
	at := r.Current
	events := []event.Event{
		{Type: event.RocketImpact, Data: event.EntityData{ID: r.ID, Position: at}},
		spawnExplosion(w, at),
	}

	for i := range w.Cities {
		c := &w.Cities[i]
		if !c.Destroyed && insideBox(c.Position, at, config.CityHitHalfSize) {
			c.Destroyed = true
			events = append(events, event.Event{
				Type: event.CityDestroyed,
				Data: event.EntityData{ID: c.ID, Position: c.Position},
			})
		}
	}
	for i := range w.Batteries {
		b := &w.Batteries[i]
		if !b.Destroyed && insideBox(b.Position, at, config.BatteryHitHalfSize) {
			b.Destroyed = true
			events = append(events, event.Event{
				Type: event.BatteryDestroyed,
				Data: event.EntityData{ID: b.ID, Position: b.Position},
			})
		}
	}
	return events
}
