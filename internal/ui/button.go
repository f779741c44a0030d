// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-nova-defense/internal/config"
	"go-nova-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	Face          font.Face
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    config.AccentColor,
		HoverColor: DarkenRGBA(config.AccentColor, 0.8),
		Face:       face,
	}
}

// CenteredRect - прямоугольник w x h с центром в (cx, cy).
func CenteredRect(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
}

// Contains - точка поля внутри кнопки.
func (b *Button) Contains(p utils.Point) bool {
	return image.Pt(int(p.X), int(p.Y)).In(b.Rect)
}

// Click регистрирует нажатие в точке p. Повторные нажатия чаще ClickCooldown игнорируются.
func (b *Button) Click(p utils.Point, now time.Time) bool {
	if !b.Contains(p) {
		return false
	}
	if now.Sub(b.LastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

// Draw отрисовывает кнопку. После клика кнопка коротко «вспухает».
func (b *Button) Draw(screen *ebiten.Image, hover bool) {
	bg := b.BgColor
	if hover {
		bg = b.HoverColor
	}

	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.08*math.Exp(-elapsed*8)
	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	x, y := float32(cx-w/2), float32(cy-h/2)

	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), bg, true)
	vector.StrokeRect(screen, x, y, float32(w), float32(h), 2, color.White, true)

	bounds := text.BoundString(b.Face, b.Text)
	textX := int(cx) - bounds.Dx()/2 - bounds.Min.X
	textY := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}

// DarkenRGBA умножает яркость цвета на k.
func DarkenRGBA(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
