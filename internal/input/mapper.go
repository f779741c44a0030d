// internal/input/mapper.go
package input

import (
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/utils"
)

// Viewport - прямоугольник в координатах устройства, в который вписано поле 800x600.
type Viewport struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Identity - поле один к одному, как его видит ebiten после Layout.
func Identity() Viewport {
	return Viewport{Width: config.ScreenWidth, Height: config.ScreenHeight}
}

// Stretch растягивает поле на всю область без сохранения пропорций.
// Так устроен терминал: ячейки не квадратные, и поле занимает весь экран.
func Stretch(outerW, outerH float64) Viewport {
	if outerW <= 0 || outerH <= 0 {
		return Identity()
	}
	return Viewport{Width: outerW, Height: outerH}
}

// ToLogical переводит точку устройства в координаты поля. Точки за пределами
// вьюпорта прижимаются к краю поля.
func (v Viewport) ToLogical(x, y float64) utils.Point {
	if v.Width <= 0 || v.Height <= 0 {
		return utils.Point{}
	}
	lx := (x - v.OffsetX) * config.ScreenWidth / v.Width
	ly := (y - v.OffsetY) * config.ScreenHeight / v.Height
	return utils.Point{
		X: utils.Clamp(lx, 0, config.ScreenWidth),
		Y: utils.Clamp(ly, 0, config.ScreenHeight),
	}
}

// ToDevice - обратное преобразование, для отрисовки поля на устройстве.
func (v Viewport) ToDevice(p utils.Point) (float64, float64) {
	return v.OffsetX + p.X*v.Width/config.ScreenWidth, v.OffsetY + p.Y*v.Height/config.ScreenHeight
}

// CellToLogical - центр ячейки терминала (col, row) в координатах поля.
func (v Viewport) CellToLogical(col, row int) utils.Point {
	return v.ToLogical(float64(col)+0.5, float64(row)+0.5)
}

// LogicalToCell - ячейка терминала, в которую попадает точка поля.
func (v Viewport) LogicalToCell(p utils.Point) (int, int) {
	x, y := v.ToDevice(p)
	col, row := int(x), int(y)
	if maxCol := int(v.OffsetX + v.Width); col >= maxCol && maxCol > 0 {
		col = maxCol - 1
	}
	if maxRow := int(v.OffsetY + v.Height); row >= maxRow && maxRow > 0 {
		row = maxRow - 1
	}
	return col, row
}
