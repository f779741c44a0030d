package interfaces

import (
	"go-nova-defense/internal/component"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/utils"
)

// Session - то, что экраны и фронтенды знают об игровой сессии.
type Session interface {
	Reset()
	Update(deltaTime float64)
	Fire(target utils.Point) bool
	Aim(p utils.Point)
	AimPoint() utils.Point
	Snapshot() entity.World
	TurretAngles() []float64
	Phase() component.Phase
	HandlePauseClick()
	IsPaused() bool
}
