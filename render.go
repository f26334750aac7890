package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
	"golang.org/x/image/colornames"
)

// View maps world units (y up) onto the fixed base resolution (y down).
type View struct {
	bounds cp.BB
	scale  float64
}

func NewView(bounds cp.BB) View {
	scale := float64(common.PixelsPerUnit)
	if w := bounds.R - bounds.L; w > 0 {
		scale = math.Min(common.BaseWidth/w, common.BaseHeight/(bounds.T-bounds.B))
	}
	return View{bounds: bounds, scale: scale}
}

func (v View) ToScreen(p cp.Vector) (float32, float32) {
	return float32((p.X - v.bounds.L) * v.scale), float32((v.bounds.T - p.Y) * v.scale)
}

func (v View) ToWorld(x, y float64) cp.Vector {
	return cp.Vector{X: x/v.scale + v.bounds.L, Y: v.bounds.T - y/v.scale}
}

func (v View) Scale() float32 { return float32(v.scale) }

type palette struct {
	background color.Color
	player     color.Color
	enemy      color.Color
	beam       color.Color
	beamWidth  float32
	shots      map[component.Faction]color.Color
}

// Renderer draws the match with vector primitives and a text HUD.
type Renderer struct {
	view    View
	debug   bool
	palette palette
}

func NewRenderer(bounds cp.BB, debug bool) (*Renderer, error) {
	r := &Renderer{view: NewView(bounds), debug: debug}
	if err := r.ReloadPalette(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) View() View { return r.view }

// ReloadPalette re-reads colors from the prefab specs.
func (r *Renderer) ReloadPalette() error {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return err
	}
	projectiles, err := prefabs.LoadProjectilesSpec()
	if err != nil {
		return err
	}
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return err
	}

	p := palette{
		background: arenaSpec.Background,
		player:     player.Render.Color,
		enemy:      enemy.Render.Color,
		beam:       enemy.Beam.Color,
		beamWidth:  float32(enemy.Beam.Width),
		shots: map[component.Faction]color.Color{
			component.FactionPlayer: colornames.Yellow,
			component.FactionEnemy:  colornames.Orange,
		},
	}
	if spec, ok := projectiles.Find(player.Shooting.Projectile); ok {
		p.shots[component.FactionPlayer] = spec.Render.Color
	}
	if spec, ok := projectiles.Find(enemy.Attack.Projectile); ok {
		p.shots[component.FactionEnemy] = spec.Render.Color
	}
	if p.beamWidth <= 0 {
		p.beamWidth = 0.1
	}
	r.palette = p
	return nil
}

func (r *Renderer) Draw(screen *ebiten.Image, m *arena.Match) {
	screen.Fill(r.palette.background)
	actors := m.Actors()

	for _, a := range actors {
		if a.Kind != arena.ActorEnemy || !a.Beam.Active {
			continue
		}
		x1, y1 := r.view.ToScreen(a.Beam.Start)
		x2, y2 := r.view.ToScreen(a.Beam.End)
		width := r.palette.beamWidth * r.view.Scale() * float32(0.3+0.7*a.ChargeProgress)
		vector.StrokeLine(screen, x1, y1, x2, y2, width, r.palette.beam, true)
	}

	for _, a := range actors {
		switch a.Kind {
		case arena.ActorProjectile:
			r.circle(screen, a.Position, a.Radius, r.palette.shots[a.Faction])
		case arena.ActorEnemy:
			r.circle(screen, a.Position, a.Radius, r.palette.enemy)
			r.facing(screen, a.Position, a.Rotation, a.Radius)
			r.healthBar(screen, a.Position, a.Radius, a.HealthRatio)
		case arena.ActorPlayer:
			// the dash tilt squashes the body along its lean
			radius := a.Radius * (1 - 0.3*math.Abs(math.Sin(a.Tilt)))
			r.circle(screen, a.Position, radius, r.palette.player)
			r.facing(screen, a.Position, a.Rotation, a.Radius)
		}
		if r.debug {
			x, y := r.view.ToScreen(a.Position)
			vector.StrokeCircle(screen, x, y, float32(a.Radius)*r.view.Scale(), 1, colornames.Lime, false)
		}
	}

	r.drawHUD(screen, m.HUD())
}

func (r *Renderer) circle(screen *ebiten.Image, p cp.Vector, radius float64, clr color.Color) {
	x, y := r.view.ToScreen(p)
	vector.FillCircle(screen, x, y, float32(radius)*r.view.Scale(), clr, true)
}

func (r *Renderer) facing(screen *ebiten.Image, p cp.Vector, rotation, radius float64) {
	x1, y1 := r.view.ToScreen(p)
	x2, y2 := r.view.ToScreen(p.Add(cp.ForAngle(rotation).Mult(radius * 1.4)))
	vector.StrokeLine(screen, x1, y1, x2, y2, 3, colornames.White, true)
}

func (r *Renderer) healthBar(screen *ebiten.Image, p cp.Vector, radius, ratio float64) {
	x, y := r.view.ToScreen(p.Add(cp.Vector{X: -radius, Y: radius + 0.25}))
	w := float32(radius*2) * r.view.Scale()
	vector.FillRect(screen, x, y, w, 4, colornames.Darkred, false)
	vector.FillRect(screen, x, y, w*float32(ratio), 4, colornames.Limegreen, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud arena.HUD) {
	const barW, barH = 200, 14
	vector.FillRect(screen, 10, 10, barW, barH, colornames.Darkred, false)
	vector.FillRect(screen, 10, 10, barW*float32(hud.HealthRatio), barH, colornames.Limegreen, false)
	vector.StrokeRect(screen, 10, 10, barW, barH, 1, colornames.White, false)

	ammo := fmt.Sprintf("Ammo %d/%d", hud.Ammo, hud.MaxAmmo)
	if hud.Reloading {
		ammo = fmt.Sprintf("Reloading %.1fs", hud.ReloadRemaining)
		vector.FillRect(screen, 10, 28, barW*float32(hud.ReloadProgress), 4, colornames.Lightskyblue, false)
	}
	dash := "Dash ready"
	if hud.DashCooldown > 0 {
		dash = fmt.Sprintf("Dash %.1fs", hud.DashCooldown)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d   %s   %s", hud.Health, hud.MaxHealth, ammo, dash), 10, 36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Round %d   Kills %d/%d   Score %d   Difficulty x%.2f",
		hud.Round, hud.Defeated, hud.Needed, hud.Score, hud.Difficulty), 10, 52)
	if r.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("t=%.2f enemies=%d FPS %.0f", hud.Time, hud.Enemies, ebiten.ActualFPS()), 10, 68)
	}
}
