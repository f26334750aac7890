package bot

import (
	"context"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T, selector arena.UpgradeSelector) *arena.Match {
	t.Helper()
	m, err := arena.NewMatch(arena.Config{Seed: 5, Selector: selector})
	require.NoError(t, err)
	return m
}

func TestDefaultScriptIdle(t *testing.T) {
	b, err := New(DefaultScript, nil)
	require.NoError(t, err)
	m := newTestMatch(t, nil)

	in := b.Input(m)
	assert.Equal(t, component.Input{}, in)
}

func TestDefaultScriptEngagesEnemy(t *testing.T) {
	b, err := New(DefaultScript, nil)
	require.NoError(t, err)
	m := newTestMatch(t, nil)
	_, err = m.Spawner().Spawn(m.World(), cp.Vector{X: 8})
	require.NoError(t, err)

	in := b.Input(m)
	assert.True(t, in.HasAim)
	assert.Equal(t, cp.Vector{X: 8}, in.AimTarget)
	assert.True(t, in.Fire)
	assert.False(t, in.Dash)
	assert.InDelta(t, 0, in.Move.X, 1e-9)
	assert.InDelta(t, 1, in.Move.Y, 1e-9)
}

func TestChoose(t *testing.T) {
	b, err := New(DefaultScript, nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		options []component.UpgradeKind
		want    component.UpgradeKind
	}{
		{name: "prefers health", options: component.AllUpgrades(), want: component.UpgradeHealth},
		{name: "then cooldown", options: []component.UpgradeKind{component.UpgradeMoveSpeed, component.UpgradeShootCooldown}, want: component.UpgradeShootCooldown},
		{name: "single", options: []component.UpgradeKind{component.UpgradeMoveSpeed}, want: component.UpgradeMoveSpeed},
		{name: "none", options: nil, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Choose(nil, tc.options))
		})
	}
}

func TestScriptFailuresAreContained(t *testing.T) {
	src := []byte(`
decide := func(engine, snap) {
	engine.move(1, 1)
	x := snap.missing + 1
}
choose := func(engine, options) {
	return "teleport"
}
`)
	b, err := NewFromSource("broken", src, nil)
	require.NoError(t, err)
	m := newTestMatch(t, nil)

	assert.Equal(t, component.Input{}, b.Input(m))

	options := []component.UpgradeKind{component.UpgradeShootCooldown, component.UpgradeHealth}
	assert.Equal(t, component.UpgradeShootCooldown, b.Choose(m, options))
}

func TestCompileError(t *testing.T) {
	_, err := NewFromSource("bad", []byte(`decide := func(engine, snap) {`), nil)
	assert.Error(t, err)

	_, err = NewFromSource("no_choose", []byte(`decide := func(engine, snap) {}`), nil)
	assert.Error(t, err)
}

func TestMoveIsClamped(t *testing.T) {
	src := []byte(`
decide := func(engine, snap) { engine.move(3, 4) }
choose := func(engine, options) { return options[0] }
`)
	b, err := NewFromSource("fast", src, nil)
	require.NoError(t, err)

	in := b.Input(newTestMatch(t, nil))
	assert.InDelta(t, 1, in.Move.Length(), 1e-9)
	assert.InDelta(t, 0.6, in.Move.X, 1e-9)
}

func TestBotPlaysMatch(t *testing.T) {
	b, err := New(DefaultScript, nil)
	require.NoError(t, err)
	m := newTestMatch(t, b)

	require.NoError(t, m.Run(context.Background(), b, 1800, nil))
	hud := m.HUD()
	assert.Greater(t, hud.Time, 0.0)
	if !hud.GameOver {
		assert.InDelta(t, 30, hud.Time, 1e-6)
	}
}
