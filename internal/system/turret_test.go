package system

import (
	"math"
	"testing"

	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestAimTurrets_ConvergesToAim(t *testing.T) {
	w := entity.Reset(0)
	aim := utils.Point{X: 750, Y: 200}

	turrets := AimTurrets(nil, w.Batteries, aim, 1)
	assert.Len(t, turrets, 3)
	for i := 0; i < 100; i++ {
		turrets = AimTurrets(turrets, w.Batteries, aim, 1)
	}
	for i, b := range w.Batteries {
		assert.InDelta(t, utils.Angle(TurretPivot(b), aim), turrets[i].CurrentAngle, 1e-6)
	}
}

func TestAimTurrets_DefaultAimIsStraightUp(t *testing.T) {
	w := entity.Reset(0)
	turrets := AimTurrets(nil, w.Batteries, utils.Point{X: 400, Y: 0}, 1)
	assert.InDelta(t, -math.Pi/2, turrets[1].CurrentAngle, 1e-9)
}

func TestAimTurrets_DestroyedBatteryFrozen(t *testing.T) {
	w := entity.Reset(0)
	w.Batteries[0].Destroyed = true
	turrets := AimTurrets(nil, w.Batteries, utils.Point{X: 800, Y: 560}, 1)
	assert.InDelta(t, -math.Pi/2, turrets[0].CurrentAngle, 1e-9)
	assert.NotEqual(t, -math.Pi/2, turrets[2].CurrentAngle)
}

func TestTurretPivot(t *testing.T) {
	w := entity.Reset(0)
	assert.Equal(t, utils.Point{X: 400, Y: 540}, TurretPivot(w.Batteries[1]))
}
