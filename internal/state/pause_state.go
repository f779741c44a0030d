// internal/state/pause_state.go
package state

import (
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию поверх предыдущего экрана.
type PauseState struct {
	stateMachine  *StateMachine
	ctx           *Context
	previousState *GameState
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		ctx:           ctx,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	p := s.ctx.Pointer.Read()
	if s.ctx.handleLanguage(p) {
		return
	}

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if p.Pressed && s.previousState.pauseButton.IsClicked(p.Position) {
		unpause = true
	}
	if unpause {
		// При выходе из паузы «отжимаем» кнопку в самом игровом состоянии
		s.ctx.Session.HandlePauseClick()
		s.previousState.pauseButton.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	drawOverlay(screen)

	tr := s.ctx.T()
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, tr.Paused, s.ctx.Fonts.Title, cx, config.ScreenHeight/2, config.TextLightColor)
	ui.DrawCentered(screen, tr.Resume, s.ctx.Fonts.Small, cx, config.ScreenHeight/2+32, config.MutedTextColor)
	s.previousState.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
