// internal/state/context.go
package state

import (
	"fmt"
	"image"

	"go-nova-defense/internal/assets"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/input"
	"go-nova-defense/internal/interfaces"
	"go-nova-defense/internal/ui"
	"go-nova-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

// Context - то общее, что экраны передают друг другу.
type Context struct {
	Session  interfaces.Session
	Renderer *render.SceneRenderer
	HUD      *ui.ScoreIndicator
	Fonts    assets.Fonts
	Catalog  defs.Catalog
	Language defs.Language
	Pointer  *PointerReader
	Logger   zerolog.Logger
	ShowTPS  bool

	langButton *ui.Button
}

func NewContext(session interfaces.Session, fonts assets.Fonts, catalog defs.Catalog, lang defs.Language, logger zerolog.Logger) *Context {
	c := &Context{
		Session:  session,
		Renderer: render.NewSceneRenderer(config.ScreenWidth, config.ScreenHeight),
		HUD:      ui.NewScoreIndicator(fonts),
		Fonts:    fonts,
		Catalog:  catalog,
		Language: lang,
		Pointer:  NewPointerReader(input.Identity()),
		Logger:   logger,
	}
	c.langButton = ui.NewButton(image.Rect(config.ScreenWidth-70, 62, config.ScreenWidth-16, 86), "", fonts.Small)
	c.langButton.BgColor = config.OverlayColor
	c.langButton.HoverColor = config.TextDarkColor
	return c
}

// T - строки текущего языка.
func (c *Context) T() defs.Translation {
	return c.Catalog.Get(c.Language)
}

// ToggleLanguage переключает язык интерфейса по кругу.
func (c *Context) ToggleLanguage() {
	c.Language = c.Language.Next()
	c.Logger.Debug().Str("language", string(c.Language)).Msg("language changed")
}

// handleLanguage обрабатывает клавишу L и кнопку языка. true - ввод поглощён.
func (c *Context) handleLanguage(p Pointer) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		c.ToggleLanguage()
		return true
	}
	if p.Pressed && c.langButton.Click(p.Position, timeNow()) {
		c.ToggleLanguage()
		return true
	}
	return false
}

func (c *Context) drawLanguageButton(screen *ebiten.Image, p Pointer) {
	c.langButton.Text = c.T().LanguageName
	c.langButton.Draw(screen, c.langButton.Contains(p.Position))
}

// drawScene рисует поле и HUD текущего снимка.
func (c *Context) drawScene(screen *ebiten.Image) {
	w := c.Session.Snapshot()
	c.Renderer.Draw(screen, w, c.Session.TurretAngles())
	c.HUD.Draw(screen, w, c.T())
	if c.ShowTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 16, 36)
	}
}

// drawOverlay затемняет поле под модальным окном.
func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}
