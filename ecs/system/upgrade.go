package system

import (
	"math"

	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

type UpgradeConfig struct {
	MoveSpeedDelta     float64
	ShootCooldownDelta float64
	ShootCooldownFloor float64
	HealthDelta        int
}

func DefaultUpgradeConfig() UpgradeConfig {
	return UpgradeConfig{
		MoveSpeedDelta:     1,
		ShootCooldownDelta: 0.1,
		ShootCooldownFloor: 0.1,
		HealthDelta:        1,
	}
}

// ApplyUpgrade resolves the pending upgrade offer with kind. Selections that
// were not offered, or arrive with no offer pending, are ignored and return
// false. A valid selection is applied to the player and resumes the clock.
func ApplyUpgrade(w *ecs.World, kind component.UpgradeKind, cfg UpgradeConfig) bool {
	if w == nil {
		return false
	}
	rs, ok := roundState(w)
	if !ok || !rs.Offer.Contains(kind) {
		return false
	}
	player, _, ok := livePlayer(w)
	if !ok {
		return false
	}
	stats, ok := ecs.Get(w, player, component.PlayerStatsComponent.Kind())
	if !ok {
		return false
	}

	switch kind {
	case component.UpgradeMoveSpeed:
		stats.MoveSpeed += cfg.MoveSpeedDelta
	case component.UpgradeShootCooldown:
		stats.ShootCooldown = math.Max(cfg.ShootCooldownFloor, stats.ShootCooldown-cfg.ShootCooldownDelta)
	case component.UpgradeHealth:
		h, ok := ecs.Get(w, player, component.HealthComponent.Kind())
		if !ok {
			return false
		}
		h.Max += cfg.HealthDelta
		h.Current += cfg.HealthDelta
	default:
		return false
	}

	rs.Offer = component.UpgradeOffer{}
	w.Clock().Resume()
	w.Events().Push(ecs.Event{Type: ecs.EventUpgradeApplied, Entity: player, Data: kind})
	return true
}
