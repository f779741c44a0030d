package main

import (
	"time"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/interfaces"
	"go-nova-defense/internal/utils"
	"go-nova-defense/pkg/termrender"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// frontend - терминальная оболочка вокруг игровой сессии.
type frontend struct {
	screen   tcell.Screen
	session  interfaces.Session
	renderer *termrender.Renderer
	catalog  defs.Catalog
	lang     defs.Language
	logger   zerolog.Logger

	buttonDown bool
	lastTick   time.Time
}

func newFrontend(screen tcell.Screen, session interfaces.Session, catalog defs.Catalog, lang defs.Language, logger zerolog.Logger) *frontend {
	return &frontend{
		screen:   screen,
		session:  session,
		renderer: termrender.NewRenderer(screen),
		catalog:  catalog,
		lang:     lang,
		logger:   logger,
	}
}

// handleEvent применяет одно событие терминала. false - пора выходить.
func (f *frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		p := f.renderer.Viewport().CellToLogical(col, row)
		f.session.Aim(p)

		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !f.buttonDown {
			f.click(p)
		}
		f.buttonDown = pressed

	case *tcell.EventResize:
		f.screen.Sync()
		f.renderer.Resize()
	}
	return true
}

func (f *frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		f.start()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case ' ':
		f.start()
	case 'p', 'P':
		f.session.HandlePauseClick()
	case 'l', 'L':
		f.lang = f.lang.Next()
		f.logger.Debug().Str("language", string(f.lang)).Msg("language changed")
	case 'q', 'Q':
		return false
	}
	return true
}

// start начинает партию со стартового или итогового экрана.
func (f *frontend) start() {
	if f.session.Phase() == component.PhasePlaying {
		return
	}
	f.session.Reset()
	f.lastTick = time.Time{}
}

// click - выстрел во время партии, на остальных экранах то же, что Enter.
func (f *frontend) click(p utils.Point) {
	if f.session.Phase() == component.PhasePlaying {
		f.session.Fire(p)
		return
	}
	f.start()
}

// tick продвигает симуляцию на прошедшее время и перерисовывает экран.
func (f *frontend) tick(now time.Time) {
	if !f.lastTick.IsZero() {
		dt := now.Sub(f.lastTick).Seconds()
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}
		f.session.Update(dt)
	}
	f.lastTick = now
	f.draw()
}

func (f *frontend) draw() {
	f.renderer.Draw(termrender.Scene{
		World:        f.session.Snapshot(),
		TurretAngles: f.session.TurretAngles(),
		Aim:          f.session.AimPoint(),
		Tr:           f.catalog.Get(f.lang),
		Paused:       f.session.IsPaused(),
	})
}

// run - главный цикл: события приходят из горутины PollEvent, кадры по тикеру.
func (f *frontend) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	for {
		select {
		case ev := <-events:
			if !f.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			f.tick(now)
		}
	}
}
