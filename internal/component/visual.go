// internal/component/visual.go
package component

import (
	"go-nova-defense/internal/types"
	"go-nova-defense/internal/utils"
)

// Explosion - растущая область, уничтожающая ракеты внутри радиуса.
type Explosion struct {
	ID         types.EntityID
	Center     utils.Point
	Radius     float64
	MaxRadius  float64
	GrowthRate float64 // прирост радиуса за тик
	Finished   bool
}

// Progress - доля от максимального радиуса, 0..1. Нужна только рендеру.
func (e Explosion) Progress() float64 {
	if e.MaxRadius <= 0 {
		return 1
	}
	p := e.Radius / e.MaxRadius
	if p > 1 {
		return 1
	}
	return p
}
