package metrics

import (
	"context"
	"fmt"

	"go-nova-defense/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-nova-defense/internal/metrics"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Events - события, которые считает Recorder.
var Events = []event.EventType{
	event.RocketSpawned,
	event.RocketIntercepted,
	event.MissileFired,
	event.CityDestroyed,
	event.BatteryDestroyed,
	event.GameWon,
	event.GameLost,
}

// Recorder переводит игровые события в счётчики OpenTelemetry.
type Recorder struct {
	spawned     metric.Int64Counter
	intercepted metric.Int64Counter
	fired       metric.Int64Counter
	destroyed   metric.Int64Counter
	finished    metric.Int64Counter
}

// NewRecorder создаёт счётчики на глобальном meter. Без установленного
// провайдера глобальный meter - no-op, и запись ничего не стоит.
func NewRecorder() (*Recorder, error) {
	return NewRecorderWithMeter(meter())
}

func NewRecorderWithMeter(m metric.Meter) (*Recorder, error) {
	var (
		r   Recorder
		err error
	)
	if r.spawned, err = m.Int64Counter("nova.rockets.spawned",
		metric.WithDescription("Enemy rockets launched")); err != nil {
		return nil, fmt.Errorf("failed to create spawned counter: %w", err)
	}
	if r.intercepted, err = m.Int64Counter("nova.rockets.intercepted",
		metric.WithDescription("Enemy rockets destroyed by explosions")); err != nil {
		return nil, fmt.Errorf("failed to create intercepted counter: %w", err)
	}
	if r.fired, err = m.Int64Counter("nova.missiles.fired",
		metric.WithDescription("Interceptors launched by the player")); err != nil {
		return nil, fmt.Errorf("failed to create fired counter: %w", err)
	}
	if r.destroyed, err = m.Int64Counter("nova.structures.destroyed",
		metric.WithDescription("Cities and batteries lost")); err != nil {
		return nil, fmt.Errorf("failed to create destroyed counter: %w", err)
	}
	if r.finished, err = m.Int64Counter("nova.games.finished",
		metric.WithDescription("Games that reached a terminal phase")); err != nil {
		return nil, fmt.Errorf("failed to create finished counter: %w", err)
	}
	return &r, nil
}

// Subscribe подписывает Recorder на считаемые события.
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(r, Events...)
}

// OnEvent реализует интерфейс event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.RocketSpawned:
		r.spawned.Add(ctx, 1)
	case event.RocketIntercepted:
		r.intercepted.Add(ctx, 1)
	case event.MissileFired:
		var attrs []attribute.KeyValue
		if data, ok := e.Data.(event.MissileData); ok {
			attrs = append(attrs, attribute.Int("battery", data.BatteryIndex))
		}
		r.fired.Add(ctx, 1, metric.WithAttributes(attrs...))
	case event.CityDestroyed:
		r.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "city")))
	case event.BatteryDestroyed:
		r.destroyed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "battery")))
	case event.GameWon:
		r.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "won")))
	case event.GameLost:
		r.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "lost")))
	}
}
