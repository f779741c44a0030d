package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-nova-defense/internal/config"
	"go-nova-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Sum[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				out[m.Name] = sum
			}
		}
	}
	return out
}

func total(sum metricdata.Sum[int64]) int64 {
	var n int64
	for _, dp := range sum.DataPoints {
		n += dp.Value
	}
	return n
}

func valueWith(sum metricdata.Sum[int64], key, value string) int64 {
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			return dp.Value
		}
	}
	return 0
}

func TestRecorder_CountsEvents(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r, err := NewRecorderWithMeter(mp.Meter(instrumentationName))
	require.NoError(t, err)

	d := event.NewDispatcher()
	r.Subscribe(d)
	d.DispatchAll([]event.Event{
		{Type: event.RocketSpawned},
		{Type: event.RocketSpawned},
		{Type: event.RocketIntercepted, Data: event.ScoreData{Score: 20}},
		{Type: event.MissileFired, Data: event.MissileData{BatteryIndex: 1, Remaining: 99}},
		{Type: event.CityDestroyed},
		{Type: event.CityDestroyed},
		{Type: event.BatteryDestroyed},
		{Type: event.GameLost},
		{Type: event.ExplosionSpawned},
	})

	sums := collect(t, reader)
	assert.Equal(t, int64(2), total(sums["nova.rockets.spawned"]))
	assert.Equal(t, int64(1), total(sums["nova.rockets.intercepted"]))
	assert.Equal(t, int64(1), total(sums["nova.missiles.fired"]))
	assert.Equal(t, int64(2), valueWith(sums["nova.structures.destroyed"], "kind", "city"))
	assert.Equal(t, int64(1), valueWith(sums["nova.structures.destroyed"], "kind", "battery"))
	assert.Equal(t, int64(1), valueWith(sums["nova.games.finished"], "outcome", "lost"))
	assert.Equal(t, int64(0), valueWith(sums["nova.games.finished"], "outcome", "won"))
}

func TestRecorder_GlobalNoopMeter(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		r.OnEvent(event.Event{Type: event.GameWon})
	})
}

func TestProvider_Disabled(t *testing.T) {
	p, err := New(config.MetricsConfig{Enabled: false})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_DisabledConstructor(t *testing.T) {
	p := Disabled()
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.NoError(t, p.Shutdown(context.Background()), "shutdown is repeatable")
}

func TestProvider_WritesToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "metrics.json")
	p, err := New(config.MetricsConfig{Enabled: true, Output: out, Interval: time.Hour})
	require.NoError(t, err)

	r, err := NewRecorder()
	require.NoError(t, err)
	r.OnEvent(event.Event{Type: event.RocketSpawned})

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "nova.rockets.spawned")
}

func TestProvider_BadOutput(t *testing.T) {
	_, err := New(config.MetricsConfig{Enabled: true, Output: filepath.Join(t.TempDir(), "no", "such", "dir.json"), Interval: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open metrics output")
}
