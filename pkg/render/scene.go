// pkg/render/scene.go
package render

import (
	"image"
	"image/color"
	"math"

	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/system"
	"go-nova-defense/internal/utils"
	"go-nova-defense/pkg/shape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer рисует снимок мира на экран ebiten.
type SceneRenderer struct {
	screenWidth   int
	screenHeight  int
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
	background    *ebiten.Image // небо, звёзды и земля не меняются между кадрами
}

func NewSceneRenderer(screenWidth, screenHeight int) *SceneRenderer {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)

	r := &SceneRenderer{
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		whiteImage:    whiteImage,
		whiteSubImage: whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices:      make([]ebiten.Vertex, 0, 64),
		indices:       make([]uint16, 0, 96),
		background:    ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderBackground()
	return r
}

// RenderBackground пересобирает задник.
func (r *SceneRenderer) RenderBackground() {
	bg := r.background
	bg.Fill(config.SkyColor)

	for _, s := range shape.Stars(config.StarCount, float64(r.screenWidth), float64(r.screenHeight)) {
		vector.DrawFilledRect(bg, float32(s.X), float32(s.Y), 1, 1, config.StarColor, false)
	}

	groundY := float32(r.screenHeight - config.GroundHeight)
	vector.DrawFilledRect(bg, 0, groundY, float32(r.screenWidth), config.GroundHeight, config.GroundColor, false)
}

// Draw рисует весь кадр. turretAngles - углы стволов по индексу батареи;
// если их меньше, чем батарей, ствол смотрит вверх.
func (r *SceneRenderer) Draw(screen *ebiten.Image, w entity.World, turretAngles []float64) {
	screen.DrawImage(r.background, nil)

	for _, c := range w.Cities {
		r.drawCity(screen, c)
	}
	for i, b := range w.Batteries {
		angle := -math.Pi / 2
		if i < len(turretAngles) {
			angle = turretAngles[i]
		}
		r.drawBattery(screen, b, angle)
	}
	for _, rocket := range w.Rockets {
		r.drawRocket(screen, rocket)
	}
	for _, m := range w.Missiles {
		r.drawMissile(screen, m)
	}
	for _, e := range w.Explosions {
		r.drawExplosion(screen, e)
	}
}

func (r *SceneRenderer) drawCity(screen *ebiten.Image, c component.City) {
	if c.Destroyed {
		r.fillDome(screen, c.Position, shape.CityRubbleRadius, config.CityRubbleColor)
		return
	}
	for i, rect := range shape.CityBlocks(c.Position) {
		clr := config.CityTowerColor
		if i == 0 {
			clr = config.CityColor
		}
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), clr, false)
	}
}

func (r *SceneRenderer) drawBattery(screen *ebiten.Image, b component.Battery, angle float64) {
	if b.Destroyed {
		r.fillDome(screen, b.Position, shape.BatteryRubbleRadius, config.BatteryRubble)
		return
	}
	r.fillPolygon(screen, shape.BatteryBase(b.Position), batteryBaseColor(b))

	pivot := system.TurretPivot(b)
	r.fillPolygon(screen, shape.Barrel(pivot, angle), config.BatteryTurret)
	vector.DrawFilledCircle(screen, float32(pivot.X), float32(pivot.Y), shape.PivotRadius, config.BatteryTurret, true)
}

func (r *SceneRenderer) drawRocket(screen *ebiten.Image, rocket component.Rocket) {
	vector.StrokeLine(screen,
		float32(rocket.Start.X), float32(rocket.Start.Y),
		float32(rocket.Current.X), float32(rocket.Current.Y),
		3, config.RocketTrailColor, true)

	x, y := float32(rocket.Current.X), float32(rocket.Current.Y)
	vector.DrawFilledCircle(screen, x, y, 12, glowColor(config.RocketHeadColor), true)
	vector.DrawFilledCircle(screen, x, y, 5, config.RocketHeadColor, true)
	vector.DrawFilledCircle(screen, x, y, 2.5, config.CoreColor, true)
}

func (r *SceneRenderer) drawMissile(screen *ebiten.Image, m component.PlayerMissile) {
	vector.StrokeLine(screen,
		float32(m.Start.X), float32(m.Start.Y),
		float32(m.Current.X), float32(m.Current.Y),
		2, config.MissileTrailColor, true)

	x, y := float32(m.Current.X), float32(m.Current.Y)
	vector.DrawFilledCircle(screen, x, y, 9, glowColor(config.MissileHeadColor), true)
	vector.DrawFilledCircle(screen, x, y, 4, config.MissileHeadColor, true)
	vector.DrawFilledCircle(screen, x, y, 2, config.CoreColor, true)

	// крестик на точке подрыва
	tx, ty := float32(m.Target.X), float32(m.Target.Y)
	vector.StrokeLine(screen, tx-5, ty-5, tx+5, ty+5, 1, config.TargetMarkerColor, true)
	vector.StrokeLine(screen, tx+5, ty-5, tx-5, ty+5, 1, config.TargetMarkerColor, true)
}

func (r *SceneRenderer) drawExplosion(screen *ebiten.Image, e component.Explosion) {
	cx, cy := float32(e.Center.X), float32(e.Center.Y)
	for _, l := range shape.ExplosionLayers(e) {
		vector.DrawFilledCircle(screen, cx, cy, float32(l.Radius), l.Color, true)
	}
}

// fillDome рисует верхнюю половину круга - так выглядят развалины.
func (r *SceneRenderer) fillDome(dst *ebiten.Image, center utils.Point, radius float64, clr color.Color) {
	var path vector.Path
	cx, cy := float32(center.X), float32(center.Y)
	path.MoveTo(cx-float32(radius), cy)
	path.Arc(cx, cy, float32(radius), math.Pi, 2*math.Pi, vector.Clockwise)
	path.Close()
	r.fillPath(dst, &path, clr)
}

func (r *SceneRenderer) fillPolygon(dst *ebiten.Image, pts []utils.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	r.fillPath(dst, &path, clr)
}

func (r *SceneRenderer) fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])

	cr, cg, cb, ca := vertexColor(clr)
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.vertices, r.indices, r.whiteSubImage, op)
}
