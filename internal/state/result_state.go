// internal/state/result_state.go
package state

import (
	"fmt"
	"image/color"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultState - итог партии (фазы WON и LOST) с кнопкой «Играть снова».
type ResultState struct {
	sm        *StateMachine
	ctx       *Context
	playAgain *ui.Button
	pointer   Pointer
}

func NewResultState(sm *StateMachine, ctx *Context) *ResultState {
	b := ui.NewButton(ui.CenteredRect(config.ScreenWidth/2, 420, 220, 48), "", ctx.Fonts.Normal)
	b.BgColor = config.TextLightColor
	b.HoverColor = config.MutedTextColor
	b.TextColor = config.TextDarkColor
	return &ResultState{sm: sm, ctx: ctx, playAgain: b}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Update(deltaTime float64) {
	r.pointer = r.ctx.Pointer.Read()
	if r.ctx.handleLanguage(r.pointer) {
		return
	}

	again := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if r.pointer.Pressed && r.playAgain.Click(r.pointer.Position, timeNow()) {
		again = true
	}
	if again {
		r.ctx.Session.Reset()
		r.sm.SetState(NewGameState(r.sm, r.ctx))
	}
}

// resultText - заголовок, описание и цвет итогового экрана.
func (r *ResultState) resultText() (string, string, color.Color) {
	tr := r.ctx.T()
	if r.ctx.Session.Phase() == component.PhaseWon {
		return tr.Win, tr.VictoryDesc, config.WinColor
	}
	return tr.Loss, tr.DefeatDesc, config.LossColor
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	r.ctx.drawScene(screen)
	drawOverlay(screen)

	tr := r.ctx.T()
	title, desc, clr := r.resultText()
	cx := config.ScreenWidth / 2
	ui.DrawCentered(screen, title, r.ctx.Fonts.Title, cx, 230, clr)
	ui.DrawCentered(screen, desc, r.ctx.Fonts.Small, cx, 270, config.MutedTextColor)

	score := fmt.Sprintf("%s: %d", tr.Score, r.ctx.Session.Snapshot().Score)
	ui.DrawCentered(screen, score, r.ctx.Fonts.Title, cx, 340, config.TextLightColor)

	r.playAgain.Text = tr.PlayAgain
	r.playAgain.Draw(screen, r.playAgain.Contains(r.pointer.Position))
	r.ctx.drawLanguageButton(screen, r.pointer)
}

func (r *ResultState) Exit() {}
