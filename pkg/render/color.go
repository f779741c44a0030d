// pkg/render/color.go
package render

import (
	"image/color"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with straight alpha a.
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// vertexColor returns straight-alpha components in [0, 1] for ebiten vertices.
func vertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

// glowColor - полупрозрачный ореол цвета головы снаряда.
func glowColor(head color.Color) color.NRGBA {
	return WithAlpha(head, config.GlowAlpha)
}

// batteryBaseColor - пустая батарея темнеет, чтобы было видно, что стрелять ей нечем.
func batteryBaseColor(b component.Battery) color.RGBA {
	if b.Missiles <= 0 {
		return DarkenColor(config.BatteryBaseColor)
	}
	return config.BatteryBaseColor
}
