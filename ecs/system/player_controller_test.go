package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadOffsets(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		total float64
		want  []float64
	}{
		{name: "none", n: 0, total: 1, want: nil},
		{name: "single", n: 1, total: 1, want: []float64{0}},
		{name: "three", n: 3, total: 30, want: []float64{-15, 0, 15}},
		{name: "four", n: 4, total: 30, want: []float64{-15, -5, 5, 15}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SpreadOffsets(tc.n, tc.total)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestPlayerShootsSpreadAlongAim(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)

	f.setInput(component.Input{Fire: true, HasAim: true, AimTarget: cp.Vector{X: 10}})
	f.step(sys)

	shots := f.projectiles()
	require.Len(t, shots, 3)
	assert.Equal(t, 4, f.playerState().Ammo)

	var angles []float64
	for _, p := range shots {
		vel, ok := ecs.Get(f.w, p, component.VelocityComponent.Kind())
		require.True(t, ok)
		assert.InDelta(t, 15, vel.Linear.Length(), 1e-9)
		angles = append(angles, common.Rad2Deg(vel.Linear.ToAngle()))

		proj, _ := ecs.Get(f.w, p, component.ProjectileComponent.Kind())
		assert.Equal(t, uint64(f.player), proj.OwnerID)
		assert.Equal(t, component.FactionPlayer, proj.OwnerFaction)
	}
	assert.InDelta(t, -15, angles[0], 1e-6)
	assert.InDelta(t, 0, angles[1], 1e-6)
	assert.InDelta(t, 15, angles[2], 1e-6)
}

func TestPlayerShootGates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
		in    component.Input
		shots int
	}{
		{
			name:  "no fire input",
			setup: func(*fixture) {},
			in:    component.Input{},
			shots: 0,
		},
		{
			name: "cooldown not elapsed",
			setup: func(f *fixture) {
				f.playerState().LastShotTime = 0
			},
			in:    component.Input{Fire: true},
			shots: 0,
		},
		{
			name: "reloading",
			setup: func(f *fixture) {
				s := f.playerState()
				s.Ammo = 2
				s.Reloading = true
				s.ReloadDeadline = 100
			},
			in:    component.Input{Fire: true},
			shots: 0,
		},
		{
			name: "empty magazine",
			setup: func(f *fixture) {
				f.playerState().Ammo = 0
			},
			in:    component.Input{Fire: true},
			shots: 0,
		},
		{
			name:  "ready",
			setup: func(*fixture) {},
			in:    component.Input{Fire: true},
			shots: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			tc.setup(f)
			f.setInput(tc.in)
			f.step(NewPlayerControllerSystem(nil))
			assert.Len(t, f.projectiles(), tc.shots)
		})
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)
	f.setInput(component.Input{Fire: true})

	var volleys []float64
	for i := 0; i < 30; i++ {
		before := len(f.projectiles())
		f.step(sys)
		if len(f.projectiles()) > before {
			volleys = append(volleys, f.w.Clock().Now())
		}
	}
	require.GreaterOrEqual(t, len(volleys), 2)
	for i := 1; i < len(volleys); i++ {
		assert.GreaterOrEqual(t, volleys[i]-volleys[i-1], 0.2-1e-9)
	}
}

func TestPlayerReloadNeverEarly(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)
	state := f.playerState()
	state.Ammo = 0

	f.step(sys)
	require.True(t, state.Reloading)
	start := state.ReloadStart
	assert.InDelta(t, start+1.5, state.ReloadDeadline, 1e-9)

	for state.Reloading {
		f.step(sys)
	}
	now := f.w.Clock().Now()
	assert.GreaterOrEqual(t, now, start+1.5)
	assert.Less(t, now, start+1.5+tickDT+1e-9)
	assert.Equal(t, 5, state.Ammo)
}

func TestPlayerExplicitReload(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)

	assert.False(t, sys.StartReload(f.w, f.player), "full magazine")

	f.playerState().Ammo = 3
	f.setInput(component.Input{Reload: true})
	f.step(sys)
	assert.True(t, f.playerState().Reloading)
	assert.Equal(t, 1, countEvents(f.w.Events().Pending(), ecs.EventReloadStarted))

	assert.False(t, sys.StartReload(f.w, f.player), "already reloading")
}

func TestPlayerDashDisplacement(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)
	move := NewMovementSystem()

	f.setInput(component.Input{Move: cp.Vector{X: 1}, Dash: true})
	f.step(sys, move)

	state := f.playerState()
	require.True(t, state.Dashing())
	assert.InDelta(t, 3, state.Dash.Target.X, 1e-9)
	assert.InDelta(t, 0, state.Dash.Target.Y, 1e-9)

	for i := 0; state.Dash.Phase == component.DashMoving; i++ {
		require.Less(t, i, 30)
		f.step(sys, move)
	}

	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	assert.InDelta(t, 3, tr.Position.X, 1e-9)
	assert.InDelta(t, 0, tr.Position.Y, 1e-9)

	for i := 0; state.Dashing(); i++ {
		require.Less(t, i, 30)
		f.step(sys, move)
		assert.InDelta(t, 3, tr.Position.X, 1e-9, "input is ignored while the tilt returns")
	}
	assert.Zero(t, state.Dash.Tilt)

	f.step(sys, move)
	assert.Greater(t, tr.Position.X, 3.0)
}

func TestPlayerDashTilt(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)
	f.setInput(component.Input{Move: cp.Vector{Y: 1}, Dash: true})
	f.step(sys)
	f.setInput(component.Input{})

	state := f.playerState()
	peak := 0.0
	for state.Dash.Phase == component.DashMoving {
		f.step(sys)
		peak = math.Min(peak, state.Dash.Tilt)
	}
	assert.InDelta(t, common.Deg2Rad(-15), peak, 1e-9)
	assert.InDelta(t, 1, state.Dash.Axis.X, 1e-9)
	assert.InDelta(t, 0, state.Dash.Axis.Y, 1e-9)
}

func TestPlayerDashCooldown(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem(nil)

	f.w.Clock().Advance(tickDT)
	require.True(t, sys.StartDash(f.w, f.player))
	assert.False(t, sys.StartDash(f.w, f.player), "already dashing")

	f.playerState().Dash = component.Dash{}
	f.w.Clock().Advance(0.5)
	assert.False(t, sys.StartDash(f.w, f.player), "cooldown running")

	f.w.Clock().Advance(0.6)
	assert.True(t, sys.StartDash(f.w, f.player))
}

func TestDashDirection(t *testing.T) {
	tr := &component.Transform{Rotation: math.Pi}

	tests := []struct {
		name string
		in   component.Input
		want cp.Vector
	}{
		{name: "move wins", in: component.Input{Move: cp.Vector{Y: 2}, HasAim: true, AimTarget: cp.Vector{X: 5}}, want: cp.Vector{Y: 1}},
		{name: "tiny move falls back to aim", in: component.Input{Move: cp.Vector{X: 0.1}, HasAim: true, AimTarget: cp.Vector{X: 5}}, want: cp.Vector{X: 1}},
		{name: "facing", in: component.Input{}, want: cp.Vector{X: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DashDirection(tr, tc.in, 0.1)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}
