package event

import (
	"go-nova-defense/internal/types"
	"go-nova-defense/internal/utils"
)

const (
	GameStarted       EventType = "GameStarted"       // Партия (пере)запущена
	GameWon           EventType = "GameWon"           // Набран победный счёт
	GameLost          EventType = "GameLost"          // Все батареи уничтожены
	RocketSpawned     EventType = "RocketSpawned"     // Новая вражеская ракета
	RocketIntercepted EventType = "RocketIntercepted" // Ракета сбита взрывом, начислены очки
	RocketImpact      EventType = "RocketImpact"      // Ракета дошла до земли
	MissileFired      EventType = "MissileFired"      // Игрок выпустил перехватчик
	ExplosionSpawned  EventType = "ExplosionSpawned"  // Появился взрыв
	CityDestroyed     EventType = "CityDestroyed"
	BatteryDestroyed  EventType = "BatteryDestroyed"
)

// EntityData - полезная нагрузка большинства событий.
type EntityData struct {
	ID       types.EntityID
	Position utils.Point
}

// MissileData - нагрузка MissileFired.
type MissileData struct {
	ID           types.EntityID
	BatteryIndex int
	Target       utils.Point
	Remaining    int // ракет осталось у батареи
}

// ScoreData - нагрузка RocketIntercepted и событий конца партии.
type ScoreData struct {
	ID    types.EntityID
	Score int
}
