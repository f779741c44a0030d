// internal/component/turret.go
package component

// Turret отвечает за вращение ствола батареи к точке прицеливания.
// Это чисто визуальное состояние, симуляция его не читает.
type Turret struct {
	// CurrentAngle - текущий угол поворота в радианах.
	CurrentAngle float64
	// TargetAngle - угол, к которому стремится ствол.
	TargetAngle float64
	// TurnRate - доля оставшегося угла, проходимая за кадр.
	TurnRate float64
}
