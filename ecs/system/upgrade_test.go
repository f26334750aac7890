package system

import (
	"testing"

	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(f *fixture, options ...component.UpgradeKind) {
	rs, _ := roundState(f.w)
	rs.Offer = component.UpgradeOffer{Pending: true, Round: 2, Options: options}
	f.w.Clock().Pause()
}

func TestApplyUpgrade(t *testing.T) {
	tests := []struct {
		name  string
		kind  component.UpgradeKind
		check func(t *testing.T, stats *component.PlayerStats, h *component.Health)
	}{
		{
			name: "move speed",
			kind: component.UpgradeMoveSpeed,
			check: func(t *testing.T, stats *component.PlayerStats, _ *component.Health) {
				assert.InDelta(t, 6, stats.MoveSpeed, 1e-9)
			},
		},
		{
			name: "shoot cooldown",
			kind: component.UpgradeShootCooldown,
			check: func(t *testing.T, stats *component.PlayerStats, _ *component.Health) {
				assert.InDelta(t, 0.1, stats.ShootCooldown, 1e-9)
			},
		},
		{
			name: "health",
			kind: component.UpgradeHealth,
			check: func(t *testing.T, _ *component.PlayerStats, h *component.Health) {
				assert.Equal(t, 11, h.Max)
				assert.Equal(t, 8, h.Current)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.health(f.player).Current = 7
			offer(f, component.AllUpgrades()...)

			require.True(t, ApplyUpgrade(f.w, tc.kind, DefaultUpgradeConfig()))

			stats, _ := ecs.Get(f.w, f.player, component.PlayerStatsComponent.Kind())
			tc.check(t, stats, f.health(f.player))

			rs, _ := roundState(f.w)
			assert.False(t, rs.Offer.Pending)
			assert.False(t, f.w.Clock().Paused())
			assert.Equal(t, 1, countEvents(f.w.Events().Pending(), ecs.EventUpgradeApplied))
		})
	}
}

func TestShootCooldownFloor(t *testing.T) {
	f := newFixture(t)
	cfg := DefaultUpgradeConfig()
	stats, _ := ecs.Get(f.w, f.player, component.PlayerStatsComponent.Kind())

	for i := 0; i < 4; i++ {
		offer(f, component.UpgradeShootCooldown)
		require.True(t, ApplyUpgrade(f.w, component.UpgradeShootCooldown, cfg))
	}
	assert.InDelta(t, 0.1, stats.ShootCooldown, 1e-9)
}

func TestApplyUpgradeRejects(t *testing.T) {
	f := newFixture(t)
	cfg := DefaultUpgradeConfig()

	assert.False(t, ApplyUpgrade(f.w, component.UpgradeHealth, cfg), "no offer pending")

	offer(f, component.UpgradeMoveSpeed, component.UpgradeShootCooldown)
	assert.False(t, ApplyUpgrade(f.w, component.UpgradeHealth, cfg), "not offered")
	assert.False(t, ApplyUpgrade(f.w, component.UpgradeKind(42), cfg))
	assert.True(t, f.w.Clock().Paused())

	assert.True(t, ApplyUpgrade(f.w, component.UpgradeMoveSpeed, cfg))
	assert.False(t, ApplyUpgrade(f.w, component.UpgradeShootCooldown, cfg), "offer already resolved")
}
