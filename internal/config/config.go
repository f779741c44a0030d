// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60   // тиков симуляции в секунду у ebiten
	MaxDeltaTime = 0.06 // секунд, больше не интегрируем за один тик

	CityCount    = 6
	BatteryCount = 3

	InitialMissiles = 100
	WinScore        = 1000
	ScorePerKill    = 20

	ExplosionMaxRadius  = 40.0
	ExplosionGrowthRate = 1.5

	RocketSpeedMin      = 0.5
	RocketSpeedMax      = 1.5
	PlayerMissileSpeed  = 10.0
	CityHitHalfSize     = 20.0 // полуширина «коробки» попадания по городу
	BatteryHitHalfSize  = 30.0
	BatteryEdgeOffset   = 50.0 // отступ крайних батарей от краёв поля
	BatteryGroundOffset = 40.0
	CityGroundOffset    = 30.0
	CityMarginX         = 100.0

	// Спавн ракет, всё в миллисекундах
	BaseSpawnInterval   = 1500
	MinSpawnInterval    = 300
	MaxScoreSpawnBonus  = 800
	SpawnDecayPerSecond = 5
	ExtraRocketEvery    = 20 // секунд игры на одну дополнительную ракету в залпе

	TurretTurnRate    = 0.25 // доля оставшегося угла за кадр
	TurretPivotHeight = 20.0 // ось ствола над позицией батареи

	GroundHeight = 20
	StarCount    = 50

	ClickCooldown = 150 // мс между кликами по кнопкам UI

	GlowAlpha = 70 // ореол вокруг головы ракеты и перехватчика
)

var (
	SkyColor          = color.RGBA{5, 5, 16, 255}
	StarColor         = color.RGBA{255, 255, 255, 255}
	GroundColor       = color.RGBA{34, 17, 0, 255}
	CityColor         = color.RGBA{68, 136, 255, 255}
	CityTowerColor    = color.RGBA{51, 102, 204, 255}
	CityRubbleColor   = color.RGBA{51, 51, 51, 255}
	BatteryBaseColor  = color.RGBA{102, 102, 102, 255}
	BatteryTurret     = color.RGBA{68, 68, 68, 255}
	BatteryRubble     = color.RGBA{34, 34, 34, 255}
	RocketTrailColor  = color.NRGBA{255, 68, 68, 153}
	RocketHeadColor   = color.RGBA{255, 68, 68, 255}
	MissileTrailColor = color.NRGBA{68, 255, 68, 153}
	MissileHeadColor  = color.RGBA{68, 255, 68, 255}
	CoreColor         = color.RGBA{255, 255, 255, 255}
	TargetMarkerColor = color.NRGBA{255, 255, 255, 128}
	OverlayColor      = color.NRGBA{0, 0, 0, 204}
	AccentColor       = color.RGBA{16, 185, 129, 255} // изумрудный, как у заголовка
	WinColor          = color.RGBA{234, 179, 8, 255}
	LossColor         = color.RGBA{239, 68, 68, 255}
	MutedTextColor    = color.RGBA{163, 163, 163, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}

	// Слои взрыва от края к центру
	ExplosionColors = []color.NRGBA{
		{255, 0, 0, 64},
		{255, 136, 0, 200},
		{255, 255, 0, 230},
		{255, 255, 255, 255},
	}
	ExplosionStops = []float32{1.0, 0.6, 0.3, 0.12}
)
