package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/ecs/component"
)

var upgradeLabels = map[component.UpgradeKind]string{
	component.UpgradeMoveSpeed:     "Move speed +1",
	component.UpgradeShootCooldown: "Shoot cooldown -0.1s",
	component.UpgradeHealth:        "Max health +1",
}

// NewUpgradeUI offers the round's upgrade choices. The match stays paused
// until one is clicked.
func NewUpgradeUI(g *Game, round int, options []component.UpgradeKind) *ebitenui.UI {
	m := newMenu(fmt.Sprintf("Round %d - choose an upgrade", round))
	for _, kind := range options {
		label, ok := upgradeLabels[kind]
		if !ok {
			label = kind.String()
		}
		m.button(label, func() {
			if g.match.SelectUpgrade(kind) {
				g.overlay = nil
			}
		})
	}
	return m.ui()
}

// NewGameOverUI shows the final score with restart and quit buttons.
func NewGameOverUI(g *Game, hud arena.HUD) *ebitenui.UI {
	m := newMenu("Game over")
	m.label(fmt.Sprintf("Score %d   Round %d   %.0fs survived", hud.Score, hud.Round, hud.Time))
	m.button("Restart", func() {
		if err := g.restart(); err != nil {
			g.logger.Error("game: restart failed", "err", err)
			g.quit = true
		}
	})
	m.button("Quit", func() { g.quit = true })
	return m.ui()
}
