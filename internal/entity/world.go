// internal/entity/world.go
package entity

import (
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/types"
	"go-nova-defense/internal/utils"
)

// World - снимок состояния партии на один тик.
// Снимки не разделяют срезы: всё, что меняет снимок, сначала делает Clone.
type World struct {
	Phase       component.Phase
	Score       int
	NextID      types.EntityID
	StartedAt   time.Duration // по часам сессии
	LastSpawnAt time.Duration

	Rockets    []component.Rocket
	Missiles   []component.PlayerMissile
	Explosions []component.Explosion
	Cities     []component.City
	Batteries  []component.Battery
}

// NewWorld - пустой мир в фазе START.
func NewWorld() World {
	return World{Phase: component.PhaseStart, NextID: 1}
}

// NewEntity выдаёт следующий идентификатор.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Clone делает глубокую копию снимка.
func (w World) Clone() World {
	c := w
	c.Rockets = append([]component.Rocket(nil), w.Rockets...)
	c.Missiles = append([]component.PlayerMissile(nil), w.Missiles...)
	c.Explosions = append([]component.Explosion(nil), w.Explosions...)
	c.Cities = append([]component.City(nil), w.Cities...)
	c.Batteries = append([]component.Battery(nil), w.Batteries...)
	return c
}

// Reset создаёт новую партию: три батареи, шесть городов, счёт 0, фаза PLAYING.
func Reset(now time.Duration) World {
	w := World{
		Phase:       component.PhasePlaying,
		NextID:      1,
		StartedAt:   now,
		LastSpawnAt: now,
	}

	batteryY := float64(config.ScreenHeight) - config.BatteryGroundOffset
	batteryXs := []float64{
		config.BatteryEdgeOffset,
		float64(config.ScreenWidth) / 2,
		float64(config.ScreenWidth) - config.BatteryEdgeOffset,
	}
	for _, x := range batteryXs[:config.BatteryCount] {
		w.Batteries = append(w.Batteries, component.Battery{
			ID:          w.NewEntity(),
			Position:    utils.Point{X: x, Y: batteryY},
			Missiles:    config.InitialMissiles,
			MaxMissiles: config.InitialMissiles,
		})
	}

	spacing := (float64(config.ScreenWidth) - 2*config.CityMarginX) / float64(config.CityCount-1)
	cityY := float64(config.ScreenHeight) - config.CityGroundOffset
	for i := 0; i < config.CityCount; i++ {
		w.Cities = append(w.Cities, component.City{
			ID:       w.NewEntity(),
			Position: utils.Point{X: config.CityMarginX + float64(i)*spacing, Y: cityY},
		})
	}
	return w
}

// Targets - позиции живых городов, затем живых батарей.
func (w World) Targets() []utils.Point {
	var out []utils.Point
	for _, c := range w.Cities {
		if !c.Destroyed {
			out = append(out, c.Position)
		}
	}
	for _, b := range w.Batteries {
		if !b.Destroyed {
			out = append(out, b.Position)
		}
	}
	return out
}

// AliveCities - сколько городов ещё стоит.
func (w World) AliveCities() int {
	n := 0
	for _, c := range w.Cities {
		if !c.Destroyed {
			n++
		}
	}
	return n
}

// AllBatteriesDestroyed - ни одной целой батареи. Пустой список тоже считается поражением.
func (w World) AllBatteriesDestroyed() bool {
	for _, b := range w.Batteries {
		if !b.Destroyed {
			return false
		}
	}
	return true
}

// MissilesLeft - суммарный запас у целых батарей.
func (w World) MissilesLeft() int {
	n := 0
	for _, b := range w.Batteries {
		if !b.Destroyed {
			n += b.Missiles
		}
	}
	return n
}
