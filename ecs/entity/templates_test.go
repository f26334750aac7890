package entity

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTemplates(t *testing.T) *Templates {
	t.Helper()
	templates, err := LoadTemplates()
	require.NoError(t, err)
	return templates
}

func TestLoadTemplatesDefaults(t *testing.T) {
	templates := loadTemplates(t)

	player, err := templates.PlayerProjectile()
	require.NoError(t, err)
	assert.Equal(t, 15.0, player.Speed)
	assert.Equal(t, 2.0, player.Lifetime)
	assert.Equal(t, 1, player.Damage)

	enemy, err := templates.EnemyProjectile()
	require.NoError(t, err)
	assert.InDelta(t, player.Radius*1.5, enemy.Radius, 1e-9)

	stats := PlayerStats(templates.Player)
	assert.Equal(t, 5, stats.MaxAmmo)
	assert.Equal(t, 3, stats.BulletsPerShot)
	assert.InDelta(t, math.Pi/6, stats.SpreadAngle, 1e-9)
}

func TestValidateMissingTemplates(t *testing.T) {
	base := loadTemplates(t)

	cases := []struct {
		name   string
		mutate func(tm *Templates)
	}{
		{"no player", func(tm *Templates) { tm.Player = nil }},
		{"no enemy", func(tm *Templates) { tm.Enemy = nil }},
		{"no projectiles", func(tm *Templates) { tm.Projectiles = nil }},
		{"unknown enemy projectile", func(tm *Templates) {
			enemy := *tm.Enemy
			enemy.Attack.Projectile = "plasma"
			tm.Enemy = &enemy
		}},
		{"zero speed", func(tm *Templates) {
			tm.Projectiles = &prefabs.ProjectilesSpec{Projectiles: []prefabs.ProjectileSpec{
				{Name: "player_bullet", Speed: 0, Lifetime: 2},
				{Name: "enemy_bullet", Speed: 15, Lifetime: 2},
			}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm := *base
			tc.mutate(&tm)
			assert.ErrorIs(t, tm.Validate(), ErrMissingTemplate)
		})
	}

	var nilTemplates *Templates
	assert.ErrorIs(t, nilTemplates.Validate(), ErrMissingTemplate)
}

func TestEnemyStatsDefaults(t *testing.T) {
	spec := &prefabs.EnemySpec{BaseSpeed: 3}
	stats := EnemyStats(spec, 0)
	assert.Equal(t, 1.0, stats.SpeedMultiplier)
	assert.Equal(t, 0.5, stats.RetreatFactor)

	assert.Equal(t, 1.21, EnemyStats(spec, 1.21).SpeedMultiplier)
	assert.Equal(t, component.EnemyStats{}, EnemyStats(nil, 2))
}

func TestNewProjectileStampsOwner(t *testing.T) {
	w := ecs.NewWorld()
	w.Clock().Advance(0.5)
	owner := ecs.CreateEntity(w)
	tmpl := component.ProjectileTemplate{Name: "shot", Speed: 10, Lifetime: 1, Damage: 2, Radius: 0.2}

	p, err := NewProjectile(w, owner, component.FactionEnemy, tmpl, cp.Vector{X: 1, Y: 1}, cp.Vector{X: 0, Y: 3})
	require.NoError(t, err)

	proj, ok := ecs.Get(w, p, component.ProjectileComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, uint64(owner), proj.OwnerID)
	assert.Equal(t, component.FactionEnemy, proj.OwnerFaction)
	assert.Equal(t, 0.5, proj.SpawnTime)
	assert.Equal(t, uint64(1), proj.SpawnTick)

	vel, ok := ecs.Get(w, p, component.VelocityComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 0, vel.Linear.X, 1e-9)
	assert.InDelta(t, 10, vel.Linear.Y, 1e-9)

	_, err = NewProjectile(w, owner, component.FactionEnemy, tmpl, cp.Vector{}, cp.Vector{})
	assert.Error(t, err)
	_, err = NewProjectile(w, owner, component.FactionEnemy, component.ProjectileTemplate{Name: "bad"}, cp.Vector{}, cp.Vector{X: 1})
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestNewMatchDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewMatch(w, 0, cp.BB{L: -1, B: -1, R: 1, T: 1})
	require.NoError(t, err)

	rs, ok := ecs.Get(w, e, component.RoundStateComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.RoundState{Round: 1, Difficulty: 1, Needed: 10}, *rs)
}
