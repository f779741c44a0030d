// internal/app/runtime.go
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go-nova-defense/internal/audio"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/logging"
	"go-nova-defense/internal/metrics"
	"go-nova-defense/internal/utils"

	"github.com/rs/zerolog"
)

// Options - чем фронтенды отличаются при запуске.
type Options struct {
	ConfigDir string
	LogOutput io.Writer // nil - консольный вывод в stderr
	Terminal  bool      // stdout занят экраном, метрики туда писать нельзя
}

// Runtime - собранная игра со всем окружением: настройки, логгер, звук, метрики, переводы.
type Runtime struct {
	Settings config.Settings
	Logger   zerolog.Logger
	Game     *Game
	Sound    *audio.SoundManager
	Metrics  *metrics.Provider
	Catalog  defs.Catalog
	Language defs.Language
}

// Bootstrap читает настройки и поднимает всё, без чего игра не запустится.
// Сбои звука, метрик и переводов не фатальны: пишем предупреждение и продолжаем.
func Bootstrap(opts Options) (*Runtime, error) {
	settings, err := config.Load(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logger := logging.New(settings.LogLevel, opts.LogOutput)
	rt := &Runtime{
		Settings: settings,
		Logger:   logger,
		Catalog:  defs.DefaultCatalog(),
		Language: defs.ParseLanguage(settings.Language),
	}

	if settings.TranslationsPath != "" {
		catalog, err := defs.LoadCatalog(settings.TranslationsPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", settings.TranslationsPath).Msg("using built-in translations")
		} else {
			rt.Catalog = catalog
		}
	}

	metricsCfg := settings.Metrics
	if opts.Terminal && metricsCfg.Enabled && metricsCfg.Output == "" {
		logger.Warn().Msg("metrics need an output file in terminal mode, disabled")
		metricsCfg.Enabled = false
	}
	rt.Metrics, err = metrics.New(metricsCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("metrics disabled")
		rt.Metrics = metrics.Disabled()
	}

	rng := utils.NewPRNGService(settings.Seed)
	logger.Info().Int64("seed", rng.Seed()).Msg("random seed")
	rt.Game = NewGame(rng, logger)

	recorder, err := metrics.NewRecorder()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to create metric instruments")
	} else {
		recorder.Subscribe(rt.Game.EventDispatcher)
	}

	rt.Sound = audio.NewSoundManager(settings.Audio, logging.Component(logger, "audio"))
	if err := rt.Sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, playing muted")
	} else {
		rt.Sound.Subscribe(rt.Game.EventDispatcher)
	}

	return rt, nil
}

// Close останавливает звук и выгружает метрики.
func (rt *Runtime) Close() {
	rt.Sound.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rt.Metrics.Shutdown(ctx); err != nil {
		rt.Logger.Warn().Err(err).Msg("failed to flush metrics")
	}
}
