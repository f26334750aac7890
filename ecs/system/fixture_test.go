package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
	"github.com/stretchr/testify/require"
)

const tickDT = 1.0 / 60.0

type fixture struct {
	w         *ecs.World
	templates *entity.Templates
	player    ecs.Entity
	match     ecs.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	templates, err := entity.LoadTemplates()
	require.NoError(t, err)

	proj, err := templates.PlayerProjectile()
	require.NoError(t, err)
	player, err := entity.NewPlayer(w, templates.Player, proj)
	require.NoError(t, err)

	match, err := entity.NewMatch(w, 10, cp.BB{L: -16, B: -9, R: 16, T: 9})
	require.NoError(t, err)

	return &fixture{w: w, templates: templates, player: player, match: match}
}

func (f *fixture) spawnEnemy(t *testing.T, pos cp.Vector) ecs.Entity {
	t.Helper()
	proj, err := f.templates.EnemyProjectile()
	require.NoError(t, err)
	e, err := entity.NewEnemy(f.w, f.templates.Enemy, proj, pos, 1)
	require.NoError(t, err)
	return e
}

func (f *fixture) setPlayerPos(pos cp.Vector) {
	tr, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	tr.Position = pos
}

func (f *fixture) setInput(in component.Input) {
	stored, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	*stored = in
}

func (f *fixture) health(e ecs.Entity) *component.Health {
	h, _ := ecs.Get(f.w, e, component.HealthComponent.Kind())
	return h
}

func (f *fixture) playerState() *component.PlayerState {
	s, _ := ecs.Get(f.w, f.player, component.PlayerStateComponent.Kind())
	return s
}

func (f *fixture) enemyState(e ecs.Entity) *component.EnemyState {
	s, _ := ecs.Get(f.w, e, component.EnemyStateComponent.Kind())
	return s
}

// step advances the clock one tick and runs systems in order.
func (f *fixture) step(systems ...ecs.System) {
	f.w.Events().Drain()
	f.w.Clock().Advance(tickDT)
	for _, s := range systems {
		s.Update(f.w)
	}
}

func (f *fixture) projectiles() []ecs.Entity {
	return f.w.Query(component.ProjectileComponent.Kind())
}

func countEvents(events []ecs.Event, t ecs.EventType) int {
	n := 0
	for _, evt := range events {
		if evt.Type == t {
			n++
		}
	}
	return n
}
