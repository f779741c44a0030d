// internal/state/menu_state.go
package state

import (
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState - стартовый экран (фаза START)
type MenuState struct {
	sm      *StateMachine
	ctx     *Context
	start   *ui.Button
	pointer Pointer
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		start: ui.NewButton(ui.CenteredRect(config.ScreenWidth/2, 380, 220, 48), "", ctx.Fonts.Normal),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	m.pointer = m.ctx.Pointer.Read()
	if m.ctx.handleLanguage(m.pointer) {
		return
	}

	startPressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if m.pointer.Pressed && m.start.Click(m.pointer.Position, timeNow()) {
		startPressed = true
	}
	if startPressed {
		m.ctx.Session.Reset()
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.ctx.Renderer.Draw(screen, m.ctx.Session.Snapshot(), nil)
	drawOverlay(screen)

	tr := m.ctx.T()
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, tr.Title, m.ctx.Fonts.Title, cx, 250, config.AccentColor)
	ui.DrawCentered(screen, tr.Instructions, m.ctx.Fonts.Small, cx, 300, config.MutedTextColor)

	m.start.Text = tr.Start
	m.start.Draw(screen, m.start.Contains(m.pointer.Position))
	m.ctx.drawLanguageButton(screen, m.pointer)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
