// internal/utils/math.go
package utils

import "math"

// Point - точка логического поля 800x600.
type Point struct {
	X, Y float64
}

// Distance - евклидово расстояние между точками.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Direction возвращает единичный вектор от from к to.
// Для совпадающих точек возвращается нулевой вектор, а не NaN.
func Direction(from, to Point) Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return Point{}
	}
	return Point{X: dx / dist, Y: dy / dist}
}

// Step сдвигает p вдоль dir на расстояние distance.
func Step(p, dir Point, distance float64) Point {
	return Point{X: p.X + dir.X*distance, Y: p.Y + dir.Y*distance}
}

// Finite - обе координаты конечны.
func Finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Angle - угол вектора from->to в радианах, как atan2.
func Angle(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpAngle выполняет линейную интерполяцию между двумя углами с учётом кратчайшего пути
func LerpAngle(from, to float64, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
