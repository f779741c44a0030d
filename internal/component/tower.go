// internal/component/tower.go
package component

import (
	"go-nova-defense/internal/types"
	"go-nova-defense/internal/utils"
)

// City - защищаемый город. Уничтожается навсегда.
type City struct {
	ID        types.EntityID
	Position  utils.Point
	Destroyed bool
}

// Battery - пусковая установка игрока с конечным запасом ракет.
type Battery struct {
	ID          types.EntityID
	Position    utils.Point
	Missiles    int
	MaxMissiles int
	Destroyed   bool
}

// CanFire - батарея цела и ей есть чем стрелять.
func (b Battery) CanFire() bool {
	return !b.Destroyed && b.Missiles > 0
}
