// internal/state/pointer.go
package state

import (
	"go-nova-defense/internal/input"
	"go-nova-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer - состояние мыши или касания за один кадр, уже в координатах поля.
type Pointer struct {
	Position utils.Point
	Pressed  bool // нажатие или касание началось в этом кадре
	Moved    bool
}

// PointerReader следит за мышью и касаниями ebiten между кадрами.
type PointerReader struct {
	viewport input.Viewport
	lastX    int
	lastY    int
	touchIDs []ebiten.TouchID
}

func NewPointerReader(v input.Viewport) *PointerReader {
	return &PointerReader{viewport: v, lastX: -1, lastY: -1}
}

// Read опрашивает ebiten. Касание обрабатывается так же, как щелчок левой кнопкой.
func (r *PointerReader) Read() Pointer {
	r.touchIDs = inpututil.AppendJustPressedTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(r.touchIDs[0])
		r.lastX, r.lastY = x, y
		return Pointer{Position: r.viewport.ToLogical(float64(x), float64(y)), Pressed: true, Moved: true}
	}

	x, y := ebiten.CursorPosition()
	p := Pointer{
		Position: r.viewport.ToLogical(float64(x), float64(y)),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Moved:    x != r.lastX || y != r.lastY,
	}
	r.lastX, r.lastY = x, y
	return p
}
