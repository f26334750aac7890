package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/ecs/component"
)

var (
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCharging = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBeam     = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleShots    = map[component.Faction]tcell.Style{
		component.FactionPlayer: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		component.FactionEnemy:  tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}
)

// spectator draws the arena as character cells. Row 0 is the HUD.
type spectator struct {
	screen        tcell.Screen
	width, height int
	bounds        cp.BB
}

func newSpectator(bounds cp.BB) (*spectator, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	s := &spectator{screen: screen, bounds: bounds}
	s.width, s.height = screen.Size()
	return s, nil
}

// runTUI paces ticks in real time. Esc, q or Ctrl+C quit.
func (r *runner) runTUI(ctx context.Context) error {
	s, err := newSpectator(r.match.Bounds())
	if err != nil {
		return fmt.Errorf("headless: terminal: %w", err)
	}
	defer s.screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(r.match.TickDuration() * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				s.width, s.height = s.screen.Size()
				s.screen.Sync()
			}
		case <-ticker.C:
			if r.done() {
				s.draw(r.match)
				continue
			}
			if evs := r.match.Step(r.bot); len(evs) > 0 {
				r.onEvents(evs)
			}
			r.played++
			r.drainReloads()
			s.draw(r.match)
		}
	}
}

// cell maps a world point into the play area below the HUD row.
func (s *spectator) cell(p cp.Vector) (int, int, bool) {
	w := s.bounds.R - s.bounds.L
	h := s.bounds.T - s.bounds.B
	rows := s.height - 1
	if w <= 0 || h <= 0 || s.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	x := int(math.Floor((p.X - s.bounds.L) / w * float64(s.width)))
	y := 1 + int(math.Floor((s.bounds.T-p.Y)/h*float64(rows)))
	if x < 0 || x >= s.width || y < 1 || y >= s.height {
		return 0, 0, false
	}
	return x, y, true
}

func (s *spectator) put(p cp.Vector, r rune, style tcell.Style) {
	if x, y, ok := s.cell(p); ok {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *spectator) beam(b component.Beam) {
	length := b.End.Distance(b.Start)
	cellSize := (s.bounds.R - s.bounds.L) / float64(max(s.width, 1))
	steps := int(length/cellSize) + 1
	for i := 0; i <= steps; i++ {
		s.put(b.Start.Lerp(b.End, float64(i)/float64(steps)), '·', styleBeam)
	}
}

func (s *spectator) text(x, y int, str string, style tcell.Style) {
	for i, r := range str {
		if x+i >= s.width {
			return
		}
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *spectator) draw(m *arena.Match) {
	s.screen.Clear()

	actors := m.Actors()
	for _, a := range actors {
		if a.Kind == arena.ActorEnemy && a.Beam.Active {
			s.beam(a.Beam)
		}
	}
	for _, a := range actors {
		switch a.Kind {
		case arena.ActorProjectile:
			s.put(a.Position, '*', styleShots[a.Faction])
		case arena.ActorEnemy:
			if a.Phase == component.EnemyCharging {
				s.put(a.Position, 'E', styleCharging)
			} else {
				s.put(a.Position, 'e', styleEnemy)
			}
		case arena.ActorPlayer:
			s.put(a.Position, '@', stylePlayer)
		}
	}

	hud := m.HUD()
	line := fmt.Sprintf(" HP %d/%d  AMMO %d/%d  ROUND %d  x%.2f  SCORE %d  %d/%d  ENEMIES %d  %.1fs ",
		hud.Health, hud.MaxHealth, hud.Ammo, hud.MaxAmmo, hud.Round, hud.Difficulty,
		hud.Score, hud.Defeated, hud.Needed, hud.Enemies, hud.Time)
	if hud.Reloading {
		line += "RELOADING "
	}
	if hud.GameOver {
		line += "GAME OVER (q to quit) "
	}
	s.text(0, 0, fmt.Sprintf("%-*s", s.width, line), styleHUD)

	s.screen.Show()
}
