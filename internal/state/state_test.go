package state

import (
	"testing"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name  string
	log   *[]string
	ticks int
}

func (s *recordingState) Enter()                   { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(deltaTime float64) { s.ticks++ }
func (s *recordingState) Draw(*ebiten.Image)       {}
func (s *recordingState) Exit()                    { *s.log = append(*s.log, "exit "+s.name) }

type fakeSession struct {
	phase component.Phase
	score int
}

func (f *fakeSession) Reset()                  { f.phase = component.PhasePlaying }
func (f *fakeSession) Update(float64)          {}
func (f *fakeSession) Fire(utils.Point) bool   { return false }
func (f *fakeSession) Aim(utils.Point)         {}
func (f *fakeSession) AimPoint() utils.Point   { return utils.Point{} }
func (f *fakeSession) Snapshot() entity.World  { return entity.World{Phase: f.phase, Score: f.score} }
func (f *fakeSession) TurretAngles() []float64 { return nil }
func (f *fakeSession) Phase() component.Phase  { return f.phase }
func (f *fakeSession) HandlePauseClick()       {}
func (f *fakeSession) IsPaused() bool          { return false }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine(zerolog.Nop())
	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}

	sm.Update(1.0 / 60) // без состояния ничего не происходит

	sm.SetState(a)
	sm.Update(1.0 / 60)
	sm.SetState(b)
	sm.Update(1.0 / 60)
	sm.Update(1.0 / 60)

	assert.Equal(t, []string{"enter a", "exit a", "enter b"}, log)
	assert.Equal(t, 1, a.ticks)
	assert.Equal(t, 2, b.ticks)
	assert.Same(t, b, sm.Current())

	sm.SetState(nil)
	assert.Nil(t, sm.Current())
	assert.Equal(t, "exit b", log[len(log)-1])
}

func TestContext_ToggleLanguage(t *testing.T) {
	ctx := &Context{Catalog: defs.DefaultCatalog(), Language: defs.LangZH, Logger: zerolog.Nop()}

	zh := ctx.T()
	ctx.ToggleLanguage()
	assert.Equal(t, defs.LangEN, ctx.Language)
	assert.NotEqual(t, zh.Title, ctx.T().Title)

	ctx.ToggleLanguage()
	assert.Equal(t, defs.LangZH, ctx.Language)
}

func TestResultState_Text(t *testing.T) {
	session := &fakeSession{phase: component.PhaseWon, score: 1020}
	ctx := &Context{Session: session, Catalog: defs.DefaultCatalog(), Language: defs.LangEN, Logger: zerolog.Nop()}
	r := &ResultState{ctx: ctx}

	title, desc, clr := r.resultText()
	tr := ctx.T()
	assert.Equal(t, tr.Win, title)
	assert.Equal(t, tr.VictoryDesc, desc)
	assert.Equal(t, config.WinColor, clr)

	session.phase = component.PhaseLost
	title, desc, clr = r.resultText()
	assert.Equal(t, tr.Loss, title)
	assert.Equal(t, tr.DefeatDesc, desc)
	assert.Equal(t, config.LossColor, clr)
}
