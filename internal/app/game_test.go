package app

import (
	"bytes"
	"testing"
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/event"
	"go-nova-defense/internal/logging"
	"go-nova-defense/internal/system"
	"go-nova-defense/internal/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func newTestGame(t *testing.T) (*Game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewGame(utils.NewPRNGService(42), logging.New("debug", &buf)), &buf
}

// recorder запоминает все события, на которые подписан.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func TestNewGame_StartsInStartPhase(t *testing.T) {
	g, _ := newTestGame(t)
	assert.Equal(t, component.PhaseStart, g.Phase())
	assert.Equal(t, utils.Point{X: 400, Y: 0}, g.AimPoint())

	g.Update(frame)
	assert.Equal(t, time.Duration(0), g.Clock(), "clock stands still before the game starts")
	assert.False(t, g.Fire(utils.Point{X: 400, Y: 100}))
}

func TestGame_ResetAndFire(t *testing.T) {
	g, buf := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.MissileFired, rec)

	g.Reset()
	require.Equal(t, component.PhasePlaying, g.Phase())
	assert.Contains(t, buf.String(), "game started")

	require.True(t, g.Fire(utils.Point{X: 400, Y: 0}))
	w := g.Snapshot()
	assert.Equal(t, 99, w.Batteries[1].Missiles)
	require.Len(t, rec.events, 1)
	assert.Equal(t, utils.Point{X: 400, Y: 0}, g.AimPoint())
}

func TestGame_SnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t)
	g.Reset()

	w := g.Snapshot()
	w.Batteries[0].Missiles = 0
	w.Cities[0].Destroyed = true

	again := g.Snapshot()
	assert.Equal(t, 100, again.Batteries[0].Missiles)
	assert.False(t, again.Cities[0].Destroyed)
}

func TestGame_UpdateClampsDelta(t *testing.T) {
	g, _ := newTestGame(t)
	g.Reset()
	start := g.Clock()

	g.Update(5)
	assert.Equal(t, 60*time.Millisecond, g.Clock()-start)

	g.Update(-1)
	assert.Equal(t, 60*time.Millisecond, g.Clock()-start)
}

func TestGame_PauseStopsClock(t *testing.T) {
	g, _ := newTestGame(t)
	g.Reset()
	g.Update(frame)
	before := g.Clock()
	snap := g.Snapshot()

	g.HandlePauseClick()
	require.True(t, g.IsPaused())
	for i := 0; i < 120; i++ {
		g.Update(frame)
	}
	assert.Equal(t, before, g.Clock())
	assert.Equal(t, snap, g.Snapshot())
	assert.False(t, g.Fire(utils.Point{X: 100, Y: 100}), "no firing while paused")

	g.HandlePauseClick()
	g.Update(frame)
	assert.Greater(t, g.Clock(), before)
}

func TestGame_PauseOnlyWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetPaused(true)
	assert.False(t, g.IsPaused())
}

func TestGame_RunsUntilTerminal(t *testing.T) {
	g, buf := newTestGame(t)
	rec := &recorder{}
	g.EventDispatcher.SubscribeAll(rec, event.GameWon, event.GameLost)
	g.Reset()

	for i := 0; i < 60*600 && g.Phase() == component.PhasePlaying; i++ {
		g.Update(frame)
	}
	require.True(t, g.Phase().Terminal())
	require.Len(t, rec.events, 1)
	assert.Contains(t, buf.String(), "game finished")

	clock := g.Clock()
	g.Update(frame)
	assert.Equal(t, clock, g.Clock(), "terminal phases do not advance")

	g.Reset()
	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 6, g.Snapshot().AliveCities())
}

func TestGame_TurretsFollowAim(t *testing.T) {
	g, _ := newTestGame(t)
	g.Reset()
	require.Len(t, g.Turrets, 3)

	target := utils.Point{X: 50, Y: 300}
	g.Aim(target)
	for i := 0; i < 120; i++ {
		g.Update(frame)
		if g.Phase() != component.PhasePlaying {
			break
		}
	}
	w := g.Snapshot()
	if !w.Batteries[0].Destroyed {
		assert.InDelta(t, utils.Angle(system.TurretPivot(w.Batteries[0]), target), g.Turrets[0].CurrentAngle, 1e-3)
	}
}

func TestGameEventListener_LogsStructureLoss(t *testing.T) {
	var buf bytes.Buffer
	g := NewGame(utils.NewPRNGService(1), zerolog.New(&buf).Level(zerolog.DebugLevel))
	g.Reset()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.CityDestroyed,
		Data: event.EntityData{ID: 5, Position: utils.Point{X: 220, Y: 570}},
	})
	assert.Contains(t, buf.String(), "structure lost")
	assert.Contains(t, buf.String(), `"component":"game"`)
}
