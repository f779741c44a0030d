// internal/system/projectile.go
package system

import (
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// MoveMissiles двигает перехватчики игрока. Перехватчик взрывается в точке цели,
// когда до неё остаётся меньше одного шага.
func MoveMissiles(prev entity.World, scale float64) (entity.World, []event.Event) {
	w := prev.Clone()
	scale = scaleOrOne(scale)

	var events []event.Event
	for i := range w.Missiles {
		m := &w.Missiles[i]
		if m.Exploded {
			continue
		}
		step := m.Speed * scale
		dir := utils.Direction(m.Start, m.Target)
		m.Current = utils.Step(m.Current, dir, step)

		if utils.Distance(m.Current, m.Target) < math.Max(m.Speed, step) {
			m.Current = m.Target
			m.Exploded = true
			events = append(events, spawnExplosion(&w, m.Target))
		}
	}
	return w, events
}

// SelectBattery возвращает индекс батареи, ближайшей к x по горизонтали,
// среди целых и заряженных. При равенстве побеждает первая. -1, если стрелять некому.
func SelectBattery(batteries []component.Battery, x float64) int {
	best := -1
	minDist := math.Inf(1)
	for i, b := range batteries {
		if !b.CanFire() {
			continue
		}
		if d := math.Abs(b.Position.X - x); d < minDist {
			minDist = d
			best = i
		}
	}
	return best
}

// Fire выполняет команду выстрела в точку target. Вне фазы PLAYING и при
// отсутствии подходящей батареи команда ничего не делает и возвращает false.
func Fire(prev entity.World, target utils.Point) (entity.World, []event.Event, bool) {
	if prev.Phase != component.PhasePlaying {
		return prev, nil, false
	}
	idx := SelectBattery(prev.Batteries, target.X)
	if idx < 0 {
		return prev, nil, false
	}

	w := prev.Clone()
	b := &w.Batteries[idx]
	b.Missiles--

	missile := component.PlayerMissile{
		ID:           w.NewEntity(),
		Start:        b.Position,
		Target:       target,
		Current:      b.Position,
		Speed:        config.PlayerMissileSpeed,
		BatteryIndex: idx,
	}
	w.Missiles = append(w.Missiles, missile)

	return w, []event.Event{{
		Type: event.MissileFired,
		Data: event.MissileData{
			ID:           missile.ID,
			BatteryIndex: idx,
			Target:       target,
			Remaining:    b.Missiles,
		},
	}}, true
}
