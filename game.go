package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/bot"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/prefabs"
)

type GameConfig struct {
	Seed   int64
	Debug  bool
	Watch  bool
	Bot    *bot.Bot
	Logger *slog.Logger
}

type Game struct {
	cfg    GameConfig
	logger *slog.Logger

	match    *arena.Match
	input    *Input
	provider arena.InputProvider
	renderer *Renderer
	watcher  *prefabs.Watcher

	paused bool
	quit   bool

	pauseUI    *ebitenui.UI
	overlay    *ebitenui.UI
	offerRound int
	overShown  bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{cfg: cfg, logger: logger}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts"))
		if err != nil {
			logger.Warn("game: hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) restart() error {
	match, err := arena.NewMatch(arena.Config{Seed: g.cfg.Seed, Logger: g.logger})
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	renderer, err := NewRenderer(match.Bounds(), g.cfg.Debug)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.match = match
	g.renderer = renderer
	g.input = NewInput(renderer.View())
	g.provider = g.input
	if g.cfg.Bot != nil {
		g.provider = g.cfg.Bot
	}
	g.overlay = nil
	g.offerRound = 0
	g.overShown = false
	g.paused = false
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.match.GameOver() && g.match.Offer() == nil {
		g.paused = !g.paused
	}

	switch {
	case g.match.GameOver():
		if !g.overShown {
			g.overlay = NewGameOverUI(g, g.match.HUD())
			g.overShown = true
		}
		g.overlay.Update()
	case g.match.Offer() != nil:
		hud := g.match.HUD()
		if g.cfg.Bot != nil {
			g.match.SelectUpgrade(g.cfg.Bot.Choose(g.match, hud.Offer))
			return nil
		}
		if g.overlay == nil || g.offerRound != hud.Round {
			g.overlay = NewUpgradeUI(g, hud.Round, hud.Offer)
			g.offerRound = hud.Round
		}
		g.overlay.Update()
	case g.paused:
		g.pauseUI.Update()
	default:
		g.overlay = nil
		g.input.Update(g.match.PlayerPosition())
		g.match.Step(g.provider)
	}
	return nil
}

// drainReloads applies file changes reported by the watcher. The watcher
// goroutine only sends names; all reloading happens here on the game loop.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("game: watcher error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	g.logger.Debug("game: file changed", "file", name)
	switch filepath.Ext(name) {
	case ".tengo":
		if g.cfg.Bot != nil {
			if err := g.cfg.Bot.Reload(); err != nil {
				g.logger.Warn("game: bot reload failed", "err", err)
			}
		}
	default:
		_ = g.match.ReloadTemplates()
		if err := g.renderer.ReloadPalette(); err != nil {
			g.logger.Warn("game: palette reload failed", "err", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.match)

	switch {
	case g.overlay != nil && (g.match.GameOver() || g.match.Offer() != nil):
		g.overlay.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
