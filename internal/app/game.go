// internal/app/game.go
package app

import (
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/interfaces"
	"go-nova-defense/internal/logging"
	"go-nova-defense/internal/system"
	"go-nova-defense/internal/utils"

	"github.com/rs/zerolog"
)

var _ interfaces.Session = (*Game)(nil)

// Game - одна игровая сессия: текущий снимок мира, часы, генератор и прицел.
// Все методы вызываются из одного потока игрового цикла.
type Game struct {
	EventDispatcher *event.Dispatcher
	Rng             utils.Rand
	Turrets         []component.Turret

	world    entity.World
	clock    time.Duration
	aim      utils.Point
	isPaused bool
	logger   zerolog.Logger
}

// NewGame создаёт сессию в фазе START.
func NewGame(rng utils.Rand, logger zerolog.Logger) *Game {
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		world:           entity.NewWorld(),
		aim:             DefaultAim(),
		logger:          logging.Component(logger, "game"),
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.SubscribeAll(listener,
		event.GameStarted,
		event.GameWon,
		event.GameLost,
		event.CityDestroyed,
		event.BatteryDestroyed,
	)
	return g
}

// DefaultAim - куда смотрят стволы до первого движения мыши.
func DefaultAim() utils.Point {
	return utils.Point{X: config.ScreenWidth / 2, Y: 0}
}

// Reset начинает новую партию. Вызывается и из START, и из WON/LOST.
func (g *Game) Reset() {
	g.world = entity.Reset(g.clock)
	g.isPaused = false
	g.Turrets = system.AimTurrets(nil, g.world.Batteries, g.aim, 1)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

// Update продвигает симуляцию на deltaTime секунд. На паузе и вне PLAYING часы стоят.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.world.Phase != component.PhasePlaying {
		return
	}
	if deltaTime <= 0 {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.clock += time.Duration(deltaTime * float64(time.Second))
	scale := deltaTime * config.TPS

	next, events := system.Step(g.world, system.Tick{Now: g.clock, Scale: scale}, g.Rng)
	g.world = next
	g.Turrets = system.AimTurrets(g.Turrets, g.world.Batteries, g.aim, scale)
	g.EventDispatcher.DispatchAll(events)
}

// Fire стреляет ближайшей батареей в точку target. Точка становится и новым прицелом.
func (g *Game) Fire(target utils.Point) bool {
	g.aim = target
	if g.isPaused {
		return false
	}
	next, events, ok := system.Fire(g.world, target)
	if !ok {
		return false
	}
	g.world = next
	g.EventDispatcher.DispatchAll(events)
	return true
}

// Aim обновляет точку прицеливания, ничего не запуская.
func (g *Game) Aim(p utils.Point) {
	g.aim = p
}

// AimPoint - текущая точка прицеливания.
func (g *Game) AimPoint() utils.Point {
	return g.aim
}

// Snapshot возвращает копию текущего мира для отрисовки.
func (g *Game) Snapshot() entity.World {
	return g.world.Clone()
}

// TurretAngles - углы стволов батарей в радианах, по индексу батареи.
func (g *Game) TurretAngles() []float64 {
	out := make([]float64, len(g.Turrets))
	for i, t := range g.Turrets {
		out[i] = t.CurrentAngle
	}
	return out
}

func (g *Game) Phase() component.Phase {
	return g.world.Phase
}

func (g *Game) Score() int {
	return g.world.Score
}

// Clock - время сессии без учёта пауз.
func (g *Game) Clock() time.Duration {
	return g.clock
}

func (g *Game) HandlePauseClick() {
	g.SetPaused(!g.isPaused)
}

func (g *Game) SetPaused(paused bool) {
	if g.world.Phase != component.PhasePlaying {
		paused = false
	}
	if g.isPaused != paused {
		g.logger.Debug().Bool("paused", paused).Msg("pause toggled")
	}
	g.isPaused = paused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// GameEventListener пишет в лог события, важные для хода партии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.logger
	switch e.Type {
	case event.GameStarted:
		log.Info().Dur("clock", l.game.clock).Msg("game started")
	case event.GameWon, event.GameLost:
		score := l.game.world.Score
		if data, ok := e.Data.(event.ScoreData); ok {
			score = data.Score
		}
		log.Info().
			Str("phase", l.game.world.Phase.String()).
			Int("score", score).
			Int("cities", l.game.world.AliveCities()).
			Dur("elapsed", l.game.clock-l.game.world.StartedAt).
			Msg("game finished")
	case event.CityDestroyed, event.BatteryDestroyed:
		if data, ok := e.Data.(event.EntityData); ok {
			log.Debug().
				Str("event", string(e.Type)).
				Uint64("id", uint64(data.ID)).
				Float64("x", data.Position.X).
				Msg("structure lost")
		}
	}
}
