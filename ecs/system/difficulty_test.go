package system

import (
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/system/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoundAdvanceOffersUpgrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)
	spawner.EXPECT().SetDifficulty(2, 1.1).Times(1)

	f := newFixture(t)
	sys := NewDifficultySystem(DefaultDifficultyConfig(), spawner, rand.New(rand.NewSource(7)), nil)

	for i := 0; i < 9; i++ {
		f.step()
		f.w.Events().Emit(ecs.EventEnemyKilled, ecs.Entity(100+i))
		sys.Update(f.w)
	}
	rs, _ := roundState(f.w)
	assert.Equal(t, 1, rs.Round)
	assert.Equal(t, 90, rs.Score)
	assert.False(t, f.w.Clock().Paused())

	f.step()
	f.w.Events().Emit(ecs.EventEnemyKilled, ecs.Entity(200))
	sys.Update(f.w)

	assert.Equal(t, 2, rs.Round)
	assert.Equal(t, 100, rs.Score)
	assert.Equal(t, 0, rs.Defeated)
	assert.Equal(t, 15, rs.Needed)
	assert.InDelta(t, 1.1, rs.Difficulty, 1e-12)
	assert.True(t, f.w.Clock().Paused())

	require.True(t, rs.Offer.Pending)
	assert.Equal(t, 2, rs.Offer.Round)
	assert.Len(t, rs.Offer.Options, 3)

	pending := f.w.Events().Pending()
	assert.Equal(t, 1, countEvents(pending, ecs.EventRoundAdvanced))
	assert.Equal(t, 1, countEvents(pending, ecs.EventUpgradeOffered))

	before := f.w.Clock().Now()
	f.step()
	assert.Equal(t, before, f.w.Clock().Now(), "paused clock does not advance")
}

func TestOneAdvancePerOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	spawner := mocks.NewMockSpawner(ctrl)
	gomock.InOrder(
		spawner.EXPECT().SetDifficulty(2, 1.1),
		spawner.EXPECT().SetDifficulty(3, gomock.Any()),
	)

	f := newFixture(t)
	rs, _ := roundState(f.w)
	rs.Needed = 1
	sys := NewDifficultySystem(DefaultDifficultyConfig(), spawner, rand.New(rand.NewSource(3)), nil)

	f.step()
	for i := 0; i < 3; i++ {
		f.w.Events().Emit(ecs.EventEnemyKilled, ecs.Entity(100+i))
	}
	sys.Update(f.w)

	assert.Equal(t, 2, rs.Round)
	assert.Equal(t, 30, rs.Score)
	assert.Equal(t, 2, rs.Defeated, "kills after the advance count toward the next round")
	require.True(t, rs.Offer.Pending)
	assert.Equal(t, 2, rs.Offer.Round)
	assert.Equal(t, 1, countEvents(f.w.Events().Pending(), ecs.EventUpgradeOffered))

	require.True(t, ApplyUpgrade(f.w, component.UpgradeHealth, DefaultUpgradeConfig()))

	f.step()
	f.w.Events().Emit(ecs.EventEnemyKilled, ecs.Entity(200))
	sys.Update(f.w)
	assert.Equal(t, 3, rs.Round)
	assert.Equal(t, 3, rs.Offer.Round)
}

func TestThresholdSequence(t *testing.T) {
	cfg := DefaultDifficultyConfig()
	rs := &component.RoundState{Round: 1, Difficulty: 1, Needed: 10}

	var needed []int
	for len(needed) < 5 {
		needed = appendIfAdvanced(needed, rs, cfg)
	}
	assert.Equal(t, []int{15, 22, 33, 50, 75}, needed)
	assert.Equal(t, 6, rs.Round)
	assert.InDelta(t, 1.61051, rs.Difficulty, 1e-9)
}

func appendIfAdvanced(needed []int, rs *component.RoundState, cfg DifficultyConfig) []int {
	if RecordKill(rs, cfg) {
		return append(needed, rs.Needed)
	}
	return needed
}

func TestDifficultyScaling(t *testing.T) {
	tests := []struct {
		name         string
		round        int
		multiplier   float64
		wantInterval float64
		wantMax      int
		wantSpeed    float64
	}{
		{name: "first round", round: 1, multiplier: 1, wantInterval: 2, wantMax: 10, wantSpeed: 1},
		{name: "second round", round: 2, multiplier: 1.1, wantInterval: 2 / 1.1, wantMax: 11, wantSpeed: 1.1},
		{name: "third round compounds", round: 3, multiplier: 1.21, wantInterval: 2 / 1.4641, wantMax: 15, wantSpeed: 1.4641},
		{name: "round below one", round: 0, multiplier: 3, wantInterval: 2, wantMax: 10, wantSpeed: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DifficultyScaling(tc.round, tc.multiplier, 2, 10)
			assert.InDelta(t, tc.wantInterval, got.SpawnInterval, 1e-9)
			assert.Equal(t, tc.wantMax, got.MaxEnemies)
			assert.InDelta(t, tc.wantSpeed, got.SpeedMultiplier, 1e-9)
		})
	}
}

func TestPickUpgradesDistinct(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		got := PickUpgrades(rand.New(rand.NewSource(seed)), 3)
		require.Len(t, got, 3)
		seen := map[component.UpgradeKind]bool{}
		for _, k := range got {
			assert.False(t, seen[k], "seed %d repeated %s", seed, k)
			seen[k] = true
		}
	}

	assert.Len(t, PickUpgrades(rand.New(rand.NewSource(1)), 2), 2)
	assert.Len(t, PickUpgrades(rand.New(rand.NewSource(1)), 9), 3)
}

func TestDifficultyIgnoresOtherEvents(t *testing.T) {
	f := newFixture(t)
	sys := NewDifficultySystem(DefaultDifficultyConfig(), nil, nil, nil)
	enemy := f.spawnEnemy(t, cp.Vector{X: 5})

	f.step()
	f.w.Events().Emit(ecs.EventEntityDamaged, enemy)
	f.w.Events().Emit(ecs.EventPlayerDied, f.player)
	sys.Update(f.w)

	rs, _ := roundState(f.w)
	assert.Zero(t, rs.Score)
}
