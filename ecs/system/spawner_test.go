package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{BaseSpawnInterval: 2, BaseMaxEnemies: 10, Padding: 1}
}

func TestEdgePositionOutsideBounds(t *testing.T) {
	bb := cp.BB{L: -16, B: -9, R: 16, T: 9}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		p := EdgePosition(rng, bb, 1)
		onVertical := p.X == bb.L-1 || p.X == bb.R+1
		onHorizontal := p.Y == bb.B-1 || p.Y == bb.T+1
		require.True(t, onVertical || onHorizontal, "point %v not on a padded edge", p)
		if onVertical {
			assert.True(t, p.Y >= bb.B && p.Y <= bb.T)
		} else {
			assert.True(t, p.X >= bb.L && p.X <= bb.R)
		}
	}
}

func TestSpawnerInterval(t *testing.T) {
	f := newFixture(t)
	sys := NewSpawnerSystem(testSpawnerConfig(), f.templates, rand.New(rand.NewSource(1)), nil)

	enemies := func() int { return len(f.w.Query(component.EnemyTagComponent.Kind())) }

	for f.w.Clock().Now() < 1.9 {
		f.step(sys)
	}
	assert.Zero(t, enemies())

	for f.w.Clock().Now() < 2.05 {
		f.step(sys)
	}
	assert.Equal(t, 1, enemies())

	for f.w.Clock().Now() < 3.9 {
		f.step(sys)
	}
	assert.Equal(t, 1, enemies())
}

func TestSpawnerRespectsCap(t *testing.T) {
	f := newFixture(t)
	sys := NewSpawnerSystem(SpawnerConfig{BaseSpawnInterval: 0.1, BaseMaxEnemies: 3, Padding: 1}, f.templates, rand.New(rand.NewSource(1)), nil)

	for i := 0; i < 120; i++ {
		f.step(sys)
	}
	assert.Len(t, f.w.Query(component.EnemyTagComponent.Kind()), 3)
}

func TestSpawnerStopsOnGameOver(t *testing.T) {
	f := newFixture(t)
	sys := NewSpawnerSystem(testSpawnerConfig(), f.templates, rand.New(rand.NewSource(1)), nil)
	rs, _ := roundState(f.w)
	rs.GameOver = true

	for i := 0; i < 300; i++ {
		f.step(sys)
	}
	assert.Empty(t, f.w.Query(component.EnemyTagComponent.Kind()))
}

func TestSpawnerSetDifficulty(t *testing.T) {
	f := newFixture(t)
	sys := NewSpawnerSystem(testSpawnerConfig(), f.templates, rand.New(rand.NewSource(1)), nil)

	for f.w.Clock().Now() < 1.5 {
		f.step(sys)
	}
	sys.SetDifficulty(2, 1.1)

	params := sys.Params()
	assert.InDelta(t, 2/1.1, params.SpawnInterval, 1e-9)
	assert.Equal(t, 11, params.MaxEnemies)

	// The timer restarts, so nothing spawns at the old two second mark.
	for f.w.Clock().Now() < 2.5 {
		f.step(sys)
	}
	assert.Empty(t, f.w.Query(component.EnemyTagComponent.Kind()))

	for f.w.Clock().Now() < 3.5 {
		f.step(sys)
	}
	spawned := f.w.Query(component.EnemyTagComponent.Kind())
	require.Len(t, spawned, 1)

	stats, _ := ecs.Get(f.w, spawned[0], component.EnemyStatsComponent.Kind())
	assert.InDelta(t, 1.1, stats.SpeedMultiplier, 1e-9)
}
