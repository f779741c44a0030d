// internal/system/wave.go
package system

import (
	"math"
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/utils"
)

// SpawnInterval - пауза между залпами. Сокращается и от счёта, и от времени,
// но не опускается ниже MinSpawnInterval.
func SpawnInterval(score int, elapsed time.Duration) time.Duration {
	bonus := score
	if bonus > config.MaxScoreSpawnBonus {
		bonus = config.MaxScoreSpawnBonus
	}
	ms := float64(config.BaseSpawnInterval) - float64(bonus) - elapsed.Seconds()*config.SpawnDecayPerSecond
	ms = math.Max(config.MinSpawnInterval, ms)
	return time.Duration(ms * float64(time.Millisecond))
}

// SpawnCount - ракет в залпе: одна плюс ещё одна за каждые 20 секунд игры.
func SpawnCount(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1 + int(math.Floor(elapsed.Seconds()/config.ExtraRocketEvery))
}

// Spawn решает, пора ли выпускать новый залп, и выпускает его.
// Таймер залпа сбрасывается даже если целей не осталось и ни одна ракета не вышла.
func Spawn(prev entity.World, now time.Duration, rng utils.Rand) (entity.World, []event.Event) {
	elapsed := now - prev.StartedAt
	if now-prev.LastSpawnAt <= SpawnInterval(prev.Score, elapsed) {
		return prev, nil
	}

	w := prev.Clone()
	var events []event.Event
	count := SpawnCount(elapsed)
	for i := 0; i < count; i++ {
		startX := rng.Float64() * config.ScreenWidth
		targets := w.Targets()
		if len(targets) == 0 {
			continue
		}
		target := targets[rng.Intn(len(targets))]
		start := utils.Point{X: startX, Y: 0}
		rocket := component.Rocket{
			ID:      w.NewEntity(),
			Start:   start,
			End:     target,
			Current: start,
			Speed:   utils.Uniform(rng, config.RocketSpeedMin, config.RocketSpeedMax),
		}
		w.Rockets = append(w.Rockets, rocket)
		events = append(events, event.Event{
			Type: event.RocketSpawned,
			Data: event.EntityData{ID: rocket.ID, Position: target},
		})
	}
	w.LastSpawnAt = now
	return w, events
}
