package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher_RoutesByType(t *testing.T) {
	d := NewDispatcher()
	won := &recorder{}
	fired := &recorder{}
	d.Subscribe(GameWon, won)
	d.Subscribe(MissileFired, fired)

	d.Dispatch(Event{Type: MissileFired, Data: MissileData{BatteryIndex: 1}})
	d.Dispatch(Event{Type: CityDestroyed})

	assert.Empty(t, won.got)
	assert.Len(t, fired.got, 1)
	assert.Equal(t, 1, fired.got[0].Data.(MissileData).BatteryIndex)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(GameLost, a)
	d.Subscribe(GameLost, b)
	d.Unsubscribe(GameLost, a)

	d.Dispatch(Event{Type: GameLost})
	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestDispatcher_DispatchAllKeepsOrder(t *testing.T) {
	d := NewDispatcher()
	var order []EventType
	d.SubscribeAll(ListenerFunc(func(e Event) { order = append(order, e.Type) }),
		RocketImpact, CityDestroyed, ExplosionSpawned)

	d.DispatchAll([]Event{
		{Type: RocketImpact},
		{Type: ExplosionSpawned},
		{Type: CityDestroyed},
	})
	assert.Equal(t, []EventType{RocketImpact, ExplosionSpawned, CityDestroyed}, order)
}
