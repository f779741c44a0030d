// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром по cx; y - базовая линия.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2-bounds.Min.X, y, clr)
}

// DrawRight рисует строку, прижатую правым краем к right.
func DrawRight(screen *ebiten.Image, s string, face font.Face, right, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, right-bounds.Max.X, y, clr)
}
