// pkg/termrender/termrender.go
package termrender

import (
	"fmt"
	"image/color"
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/defs"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/input"
	"go-nova-defense/internal/utils"
	"go-nova-defense/pkg/shape"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Scene - всё, что нужно для одного кадра в терминале.
type Scene struct {
	World        entity.World
	TurretAngles []float64
	Aim          utils.Point
	Tr           defs.Translation
	Paused       bool
}

// Renderer рисует снимок мира символами tcell. Поле растягивается на весь экран.
type Renderer struct {
	screen tcell.Screen
	view   input.Viewport
	stars  []utils.Point
	sky    tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		stars:  shape.Stars(config.StarCount, config.ScreenWidth, config.ScreenHeight),
		sky:    tcell.StyleDefault.Background(toColor(config.SkyColor)),
	}
	r.Resize()
	return r
}

// Resize пересчитывает отображение поля после изменения размера терминала.
func (r *Renderer) Resize() {
	cols, rows := r.screen.Size()
	r.view = input.Stretch(float64(cols), float64(rows))
}

// Viewport - текущее отображение ячеек на поле, нужно вводу мыши.
func (r *Renderer) Viewport() input.Viewport {
	return r.view
}

func (r *Renderer) Draw(s Scene) {
	r.screen.Fill(' ', r.sky)
	r.drawBackground()

	w := s.World
	for _, c := range w.Cities {
		r.drawCity(c)
	}
	for i, b := range w.Batteries {
		angle := -math.Pi / 2
		if i < len(s.TurretAngles) {
			angle = s.TurretAngles[i]
		}
		r.drawBattery(b, angle)
	}
	for _, rocket := range w.Rockets {
		if rocket.Destroyed {
			continue
		}
		r.line(rocket.Start, rocket.Current, '.', toColor(config.RocketTrailColor))
		r.put(rocket.Current, '*', toColor(config.RocketHeadColor))
	}
	for _, m := range w.Missiles {
		if m.Exploded {
			continue
		}
		r.line(m.Start, m.Current, '.', toColor(config.MissileTrailColor))
		r.put(m.Target, 'x', toColor(config.TargetMarkerColor))
		r.put(m.Current, '+', toColor(config.MissileHeadColor))
	}
	for _, e := range w.Explosions {
		r.drawExplosion(e)
	}

	r.drawHUD(s)
	r.drawOverlay(s)
	r.screen.Show()
}

func (r *Renderer) drawBackground() {
	star := r.sky.Foreground(toColor(config.StarColor))
	for _, p := range r.stars {
		col, row := r.view.LogicalToCell(p)
		r.screen.SetContent(col, row, '·', nil, star)
	}

	_, groundRow := r.view.LogicalToCell(utils.Point{Y: config.ScreenHeight - config.GroundHeight})
	cols, rows := r.screen.Size()
	ground := tcell.StyleDefault.Background(toColor(config.GroundColor))
	for row := groundRow; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, ground)
		}
	}
}

func (r *Renderer) drawCity(c component.City) {
	if c.Destroyed {
		r.span(c.Position, shape.CityRubbleRadius, '_', toColor(config.CityRubbleColor))
		return
	}
	top := utils.Point{X: c.Position.X, Y: c.Position.Y - 20}
	r.span(c.Position, 15, '█', toColor(config.CityColor))
	r.put(top, '▲', toColor(config.CityTowerColor))
}

func (r *Renderer) drawBattery(b component.Battery, angle float64) {
	if b.Destroyed {
		r.span(b.Position, shape.BatteryRubbleRadius, '_', toColor(config.BatteryRubble))
		return
	}
	r.span(b.Position, 15, '▀', toColor(config.BatteryBaseColor))
	pivot := utils.Point{X: b.Position.X, Y: b.Position.Y - config.TurretPivotHeight}
	r.put(pivot, barrelRune(angle), toColor(config.BatteryTurret))
}

// barrelRune - символ ствола, ближайший к направлению angle.
func barrelRune(angle float64) rune {
	// Угол от вертикали: отрицательный - влево, положительный - вправо
	d := angle + math.Pi/2
	d = math.Atan2(math.Sin(d), math.Cos(d))
	switch {
	case d < -3*math.Pi/8:
		return '-'
	case d < -math.Pi/8:
		return '\\'
	case d <= math.Pi/8:
		return '|'
	case d <= 3*math.Pi/8:
		return '/'
	default:
		return '-'
	}
}

func (r *Renderer) drawExplosion(e component.Explosion) {
	layers := shape.ExplosionLayers(e)
	if len(layers) == 0 {
		return
	}
	outer := layers[0].Radius
	c0, r0 := r.view.LogicalToCell(utils.Point{X: e.Center.X - outer, Y: e.Center.Y - outer})
	c1, r1 := r.view.LogicalToCell(utils.Point{X: e.Center.X + outer, Y: e.Center.Y + outer})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			d := utils.Distance(r.view.CellToLogical(col, row), e.Center)
			idx := -1
			for i, l := range layers {
				if d <= l.Radius {
					idx = i
				}
			}
			if idx < 0 {
				continue
			}
			r.screen.SetContent(col, row, explosionRunes[idx], nil, r.sky.Foreground(toColor(layers[idx].Color)))
		}
	}
	// Даже крошечный взрыв виден хотя бы одной ячейкой
	r.put(e.Center, explosionRunes[len(layers)-1], toColor(layers[len(layers)-1].Color))
}

// explosionRunes - символы слоёв от края к центру.
var explosionRunes = []rune{'░', '▒', '▓', '█'}

func (r *Renderer) drawHUD(s Scene) {
	cols, rows := r.screen.Size()
	w := s.World
	tr := s.Tr

	r.text(1, 0, tr.Title, toColor(config.AccentColor))
	score := fmt.Sprintf("%s: %04d", tr.Score, w.Score)
	r.text(cols-1-runewidth.StringWidth(score), 0, score, toColor(config.TextLightColor))

	for _, b := range w.Batteries {
		if b.Destroyed {
			continue
		}
		col, _ := r.view.LogicalToCell(b.Position)
		n := fmt.Sprint(b.Missiles)
		r.text(col-runewidth.StringWidth(n)/2, rows-2, n, toColor(config.TextLightColor))
	}

	footer := fmt.Sprintf("%s: %d / %d   %s: %d   %s: %d",
		tr.Cities, w.AliveCities(), config.CityCount,
		tr.Missiles, w.MissilesLeft(),
		tr.Target, config.WinScore)
	r.text(1, rows-1, footer, toColor(config.MutedTextColor))
}

func (r *Renderer) drawOverlay(s Scene) {
	tr := s.Tr
	var lines []string
	var clr color.Color = config.TextLightColor

	switch {
	case s.World.Phase == component.PhaseStart:
		lines = []string{tr.Title, tr.Instructions, "[Enter] " + tr.Start}
		clr = config.AccentColor
	case s.World.Phase == component.PhaseWon:
		lines = []string{tr.Win, tr.VictoryDesc, fmt.Sprintf("%s: %d", tr.Score, s.World.Score), "[Enter] " + tr.PlayAgain}
		clr = config.WinColor
	case s.World.Phase == component.PhaseLost:
		lines = []string{tr.Loss, tr.DefeatDesc, fmt.Sprintf("%s: %d", tr.Score, s.World.Score), "[Enter] " + tr.PlayAgain}
		clr = config.LossColor
	case s.Paused:
		lines = []string{tr.Paused, "[P] " + tr.Resume}
	default:
		return
	}

	cols, rows := r.screen.Size()
	top := rows/2 - len(lines)
	for i, l := range lines {
		var fg color.Color = config.MutedTextColor
		if i == 0 {
			fg = clr
		}
		r.text((cols-runewidth.StringWidth(l))/2, top+i*2, l, toColor(fg))
	}
}

// put ставит один символ в ячейку логической точки p.
func (r *Renderer) put(p utils.Point, ch rune, fg tcell.Color) {
	col, row := r.view.LogicalToCell(p)
	r.screen.SetContent(col, row, ch, nil, r.style(col, row).Foreground(fg))
}

// span заполняет ячейки на расстоянии half по горизонтали от p.
func (r *Renderer) span(p utils.Point, half float64, ch rune, fg tcell.Color) {
	c0, row := r.view.LogicalToCell(utils.Point{X: p.X - half, Y: p.Y})
	c1, _ := r.view.LogicalToCell(utils.Point{X: p.X + half, Y: p.Y})
	for col := c0; col <= c1; col++ {
		r.screen.SetContent(col, row, ch, nil, r.style(col, row).Foreground(fg))
	}
}

// line - след от a до b, по одной ячейке на шаг.
func (r *Renderer) line(a, b utils.Point, ch rune, fg tcell.Color) {
	ac, ar := r.view.LogicalToCell(a)
	bc, br := r.view.LogicalToCell(b)
	steps := max(abs(bc-ac), abs(br-ar))
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := ac + int(math.Round(t*float64(bc-ac)))
		row := ar + int(math.Round(t*float64(br-ar)))
		r.screen.SetContent(col, row, ch, nil, r.style(col, row).Foreground(fg))
	}
}

// text пишет строку с учётом ширины символов (иероглифы занимают две ячейки).
func (r *Renderer) text(col, row int, s string, fg tcell.Color) {
	for _, ch := range s {
		r.screen.SetContent(col, row, ch, nil, r.style(col, row).Foreground(fg))
		col += runewidth.RuneWidth(ch)
	}
}

// style сохраняет фон ячейки (небо или земля), меняя только цвет символа.
func (r *Renderer) style(col, row int) tcell.Style {
	_, _, st, _ := r.screen.GetContent(col, row)
	return st
}

func toColor(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
