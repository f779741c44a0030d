package audio

import (
	"math"
	"testing"
	"time"

	"go-nova-defense/internal/config"
	"go-nova-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain дочитывает поток до конца и возвращает число сэмплов и максимальную амплитуду.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			require.False(t, math.IsNaN(buf[j][0]))
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestOscillator_LengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	assert.Equal(t, rate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.NoError(t, osc.Err())
}

func TestOscillator_Square(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, 44100)
	buf := make([][2]float64, 100)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		v := buf[i][0]
		assert.True(t, v == 1 || v == -1, "sample %d = %f", i, v)
	}
}

func TestEnvelope_FadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 0, 500*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	require.Equal(t, 1000, n)
	assert.Equal(t, 1.0, buf[100][0])
	assert.InDelta(t, 0.5, buf[750][0], 0.01)
	assert.InDelta(t, 0.0, buf[999][0], 0.01)
}

func TestEffects_Finite(t *testing.T) {
	for name, create := range map[string]func(beep.SampleRate, float64) beep.Streamer{
		"launch":    CreateLaunchSound,
		"explosion": CreateExplosionSound,
		"lost":      CreateStructureLostSound,
		"victory":   CreateVictorySound,
		"defeat":    CreateDefeatSound,
	} {
		t.Run(name, func(t *testing.T) {
			n, _ := drain(t, create(sampleRate, 0.3))
			assert.Greater(t, n, 0)
			assert.Less(t, n, sampleRate.N(2*time.Second))
		})
	}
}

func TestEffects_ZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateExplosionSound(sampleRate, 0))
	assert.Equal(t, 0.0, peak)
}

func TestSoundFor(t *testing.T) {
	for _, et := range Events {
		_, ok := SoundFor(et)
		assert.True(t, ok, et)
	}
	s, _ := SoundFor(event.CityDestroyed)
	assert.Equal(t, SoundStructureLost, s)
	_, ok := SoundFor(event.RocketSpawned)
	assert.False(t, ok)
}

func TestSoundManager_DisabledStaysMuted(t *testing.T) {
	sm := NewSoundManager(config.AudioSettings{Enabled: false, Volume: 0.3}, zerolog.Nop())
	require.NoError(t, sm.Initialize())
	assert.True(t, sm.Muted())

	d := event.NewDispatcher()
	sm.Subscribe(d)
	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.MissileFired})
		d.Dispatch(event.Event{Type: event.GameWon})
	})
	sm.Cleanup()
}
