package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigName - имя необязательного файла настроек рядом с бинарником.
const ConfigName = "nova.cfg.json"

// Settings - то, что можно поменять без пересборки. Баланс игры сюда
// намеренно не входит, он живёт в константах.
type Settings struct {
	LogLevel         string        `mapstructure:"logLevel"`
	Language         string        `mapstructure:"language"`
	Seed             int64         `mapstructure:"seed"`
	FontPath         string        `mapstructure:"fontPath"`
	TranslationsPath string        `mapstructure:"translationsPath"`
	Audio            AudioSettings `mapstructure:"audio"`
	Window           WindowConfig  `mapstructure:"window"`
	Metrics          MetricsConfig `mapstructure:"metrics"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type WindowConfig struct {
	Scale float64 `mapstructure:"scale"`
}

type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Output   string        `mapstructure:"output"`
	Interval time.Duration `mapstructure:"interval"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("language", "zh")
	v.SetDefault("seed", 0)
	v.SetDefault("fontPath", "")
	v.SetDefault("translationsPath", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)

	v.SetDefault("window.scale", 1.0)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.output", "")
	v.SetDefault("metrics.interval", "10s")
}

// Load читает настройки из configDir/nova.cfg.json и переменных окружения NOVA_*.
// Отсутствие файла ошибкой не считается: игра должна запускаться «из коробки».
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("NOVA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	switch s.Language {
	case "en", "zh":
	default:
		s.Language = "zh"
	}
	if s.Window.Scale <= 0 {
		s.Window.Scale = 1
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
	if s.Metrics.Interval <= 0 {
		s.Metrics.Interval = 10 * time.Second
	}
}
