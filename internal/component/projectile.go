// internal/component/projectile.go
package component

import (
	"go-nova-defense/internal/types"
	"go-nova-defense/internal/utils"
)

// Rocket - вражеская ракета. Current всегда лежит на отрезке Start-End.
type Rocket struct {
	ID        types.EntityID
	Start     utils.Point
	End       utils.Point
	Current   utils.Point
	Speed     float64 // логических единиц за тик
	Destroyed bool
}

// PlayerMissile - ракета-перехватчик игрока.
type PlayerMissile struct {
	ID           types.EntityID
	Start        utils.Point // позиция батареи в момент пуска
	Target       utils.Point // точка клика
	Current      utils.Point
	Speed        float64
	BatteryIndex int
	Exploded     bool
}
