package audio

import (
	"fmt"
	"sync"
	"time"

	"go-nova-defense/internal/config"
	"go-nova-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Sound - звуковой эффект игры
type Sound int

const (
	SoundLaunch Sound = iota
	SoundExplosion
	SoundStructureLost
	SoundVictory
	SoundDefeat
)

// SoundFor - какой звук играет на событие.
func SoundFor(t event.EventType) (Sound, bool) {
	switch t {
	case event.MissileFired:
		return SoundLaunch, true
	case event.ExplosionSpawned:
		return SoundExplosion, true
	case event.CityDestroyed, event.BatteryDestroyed:
		return SoundStructureLost, true
	case event.GameWon:
		return SoundVictory, true
	case event.GameLost:
		return SoundDefeat, true
	}
	return 0, false
}

// Events - события, на которые подписывается SoundManager.
var Events = []event.EventType{
	event.MissileFired,
	event.ExplosionSpawned,
	event.CityDestroyed,
	event.BatteryDestroyed,
	event.GameWon,
	event.GameLost,
}

// SoundManager озвучивает игровые события. Если динамик не удалось открыть,
// менеджер остаётся немым и молча пропускает звуки.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	logger      zerolog.Logger
}

func NewSoundManager(cfg config.AudioSettings, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Initialize открывает динамик. Ошибка не фатальна: вызывающий пишет её в лог и играет без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Subscribe подписывает менеджер на звучащие события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, Events...)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s, ok := SoundFor(e.Type); ok {
		sm.Play(s)
	}
}

// Play запускает эффект, не дожидаясь его окончания.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := sm.create(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func (sm *SoundManager) create(s Sound) beep.Streamer {
	switch s {
	case SoundLaunch:
		return CreateLaunchSound(sampleRate, sm.volume)
	case SoundExplosion:
		return CreateExplosionSound(sampleRate, sm.volume)
	case SoundStructureLost:
		return CreateStructureLostSound(sampleRate, sm.volume)
	case SoundVictory:
		return CreateVictorySound(sampleRate, sm.volume)
	case SoundDefeat:
		return CreateDefeatSound(sampleRate, sm.volume)
	}
	sm.logger.Debug().Int("sound", int(s)).Msg("unknown sound")
	return nil
}

// Muted - звук выключен настройками или динамик не открылся.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return !sm.initialized
}

// Cleanup останавливает все звуки и закрывает динамик.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
