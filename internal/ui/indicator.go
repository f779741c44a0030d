// internal/ui/indicator.go
package ui

import (
	"fmt"
	"strconv"

	"go-nova-defense/internal/assets"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// FormatScore - счёт, дополненный нулями до четырёх знаков.
func FormatScore(score int) string {
	return fmt.Sprintf("%04d", score)
}

// CitiesLine - «Cities: n / 6».
func CitiesLine(tr defs.Translation, alive int) string {
	return fmt.Sprintf("%s: %d / %d", tr.Cities, alive, config.CityCount)
}

// TargetLine - «Target: 1000».
func TargetLine(tr defs.Translation) string {
	return fmt.Sprintf("%s: %d", tr.Target, config.WinScore)
}

// MissilesLine - общий запас целых батарей, «Missiles: 300».
func MissilesLine(tr defs.Translation, w entity.World) string {
	return fmt.Sprintf("%s: %d", tr.Missiles, w.MissilesLeft())
}

// ScoreIndicator рисует HUD поверх поля: заголовок, счёт, запасы батарей и подвал.
type ScoreIndicator struct {
	fonts assets.Fonts
}

func NewScoreIndicator(fonts assets.Fonts) *ScoreIndicator {
	return &ScoreIndicator{fonts: fonts}
}

func (i *ScoreIndicator) Draw(screen *ebiten.Image, w entity.World, tr defs.Translation) {
	text.Draw(screen, tr.Title, i.fonts.Normal, 16, 28, config.AccentColor)

	right := config.ScreenWidth - 16
	DrawRight(screen, tr.Score, i.fonts.Small, right, 20, config.MutedTextColor)
	DrawRight(screen, FormatScore(w.Score), i.fonts.Title, right, 52, config.AccentColor)

	for _, b := range w.Batteries {
		if b.Destroyed {
			continue
		}
		DrawCentered(screen, strconv.Itoa(b.Missiles), i.fonts.Small, int(b.Position.X), int(b.Position.Y)+16, config.TextLightColor)
	}

	footerY := config.ScreenHeight - 4
	text.Draw(screen, CitiesLine(tr, w.AliveCities()), i.fonts.Small, 16, footerY, config.MutedTextColor)
	DrawCentered(screen, MissilesLine(tr, w), i.fonts.Small, config.ScreenWidth/2, footerY, config.MutedTextColor)
	DrawRight(screen, TargetLine(tr), i.fonts.Small, right, footerY, config.MutedTextColor)
}
