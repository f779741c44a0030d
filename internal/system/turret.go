// internal/system/turret.go
package system

import (
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/utils"
)

// AimTurrets поворачивает стволы батарей к точке прицеливания.
// Стволы чисто визуальные: на симуляцию они не влияют.
func AimTurrets(turrets []component.Turret, batteries []component.Battery, aim utils.Point, scale float64) []component.Turret {
	out := make([]component.Turret, len(batteries))
	k := utils.Clamp(config.TurretTurnRate*scaleOrOne(scale), 0, 1)
	for i, b := range batteries {
		t := component.Turret{CurrentAngle: -math.Pi / 2, TurnRate: config.TurretTurnRate}
		if i < len(turrets) {
			t = turrets[i]
		}
		if b.Destroyed {
			out[i] = t
			continue
		}
		t.TargetAngle = utils.Angle(TurretPivot(b), aim)
		t.CurrentAngle = utils.LerpAngle(t.CurrentAngle, t.TargetAngle, k)
		out[i] = t
	}
	return out
}

// TurretPivot - точка вращения ствола: над центром основания батареи.
func TurretPivot(b component.Battery) utils.Point {
	return utils.Point{X: b.Position.X, Y: b.Position.Y - config.TurretPivotHeight}
}
