// cmd/game/main.go
package main

import (
	"os"
	"time"

	"go-nova-defense/internal/app"
	"go-nova-defense/internal/assets"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rt, err := app.Bootstrap(app.Options{ConfigDir: "."})
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to start")
	}
	defer rt.Close()
	logger := rt.Logger

	fonts, err := assets.LoadFonts(rt.Settings.FontPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", rt.Settings.FontPath).Msg("using built-in font")
	}

	ctx := state.NewContext(rt.Game, fonts, rt.Catalog, rt.Language, logger)
	ctx.ShowTPS = logger.GetLevel() <= zerolog.DebugLevel

	sm := state.NewStateMachine(logger)
	sm.SetState(state.NewMenuState(sm, ctx))

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	scale := rt.Settings.Window.Scale
	ebiten.SetWindowSize(int(config.ScreenWidth*scale), int(config.ScreenHeight*scale))
	ebiten.SetWindowTitle(ctx.T().Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
		rt.Close()
		os.Exit(1)
	}
}
