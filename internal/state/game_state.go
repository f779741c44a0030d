// internal/state/game_state.go
package state

import (
	"time"

	"go-nova-defense/internal/config"
	"go-nova-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// timeNow подменяется в тестах.
var timeNow = time.Now

// GameState - идёт партия (фаза PLAYING)
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	pauseButton *ui.PauseButton
	pointer     Pointer
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{
		sm:          sm,
		ctx:         ctx,
		pauseButton: ui.NewPauseButton(config.ScreenWidth-100, 74, 12, config.TextLightColor, config.AccentColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.ctx.Session.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	g.pointer = g.ctx.Pointer.Read()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if g.ctx.handleLanguage(g.pointer) {
		return
	}

	if g.pointer.Moved {
		g.ctx.Session.Aim(g.pointer.Position)
	}
	if g.pointer.Pressed {
		if g.pauseButton.IsClicked(g.pointer.Position) {
			g.pause()
			return
		}
		g.ctx.Session.Fire(g.pointer.Position)
	}

	g.ctx.Session.Update(deltaTime)

	if g.ctx.Session.Phase().Terminal() {
		g.sm.SetState(NewResultState(g.sm, g.ctx))
	}
}

func (g *GameState) pause() {
	g.ctx.Session.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.ctx.drawScene(screen)
	g.pauseButton.Draw(screen)
	g.ctx.drawLanguageButton(screen, g.pointer)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
