package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

// ErrMissingTemplate is returned when a spawnable entity has no usable
// template. It is a startup error; nothing recovers from it at runtime.
var ErrMissingTemplate = errors.New("entity: missing template")

// Templates are the loaded prefab specs every builder draws from.
type Templates struct {
	Player      *prefabs.PlayerSpec
	Enemy       *prefabs.EnemySpec
	Projectiles *prefabs.ProjectilesSpec
}

// LoadTemplates reads the combatant and projectile specs and validates them.
func LoadTemplates() (*Templates, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("%w: player: %w", ErrMissingTemplate, err)
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, fmt.Errorf("%w: enemy: %w", ErrMissingTemplate, err)
	}
	projectiles, err := prefabs.LoadProjectilesSpec()
	if err != nil {
		return nil, fmt.Errorf("%w: projectiles: %w", ErrMissingTemplate, err)
	}

	t := &Templates{Player: player, Enemy: enemy, Projectiles: projectiles}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every template a builder needs is present.
func (t *Templates) Validate() error {
	if t == nil || t.Player == nil {
		return fmt.Errorf("%w: player", ErrMissingTemplate)
	}
	if t.Enemy == nil {
		return fmt.Errorf("%w: enemy", ErrMissingTemplate)
	}
	if _, err := t.PlayerProjectile(); err != nil {
		return err
	}
	if _, err := t.EnemyProjectile(); err != nil {
		return err
	}
	return nil
}

// PlayerProjectile resolves the player's projectile template.
func (t *Templates) PlayerProjectile() (component.ProjectileTemplate, error) {
	if t == nil || t.Player == nil {
		return component.ProjectileTemplate{}, fmt.Errorf("%w: player", ErrMissingTemplate)
	}
	return t.projectile(t.Player.Shooting.Projectile, 1)
}

// EnemyProjectile resolves the enemy's projectile template with its scale
// applied to the radius.
func (t *Templates) EnemyProjectile() (component.ProjectileTemplate, error) {
	if t == nil || t.Enemy == nil {
		return component.ProjectileTemplate{}, fmt.Errorf("%w: enemy", ErrMissingTemplate)
	}
	return t.projectile(t.Enemy.Attack.Projectile, t.Enemy.Attack.ProjectileScale)
}

func (t *Templates) projectile(name string, scale float64) (component.ProjectileTemplate, error) {
	spec, ok := t.Projectiles.Find(name)
	if !ok {
		return component.ProjectileTemplate{}, fmt.Errorf("%w: projectile %q", ErrMissingTemplate, name)
	}
	if spec.Speed <= 0 || spec.Lifetime <= 0 {
		return component.ProjectileTemplate{}, fmt.Errorf("%w: projectile %q needs positive speed and lifetime", ErrMissingTemplate, name)
	}
	if scale <= 0 {
		scale = 1
	}
	return component.ProjectileTemplate{
		Name:     spec.Name,
		Speed:    spec.Speed,
		Lifetime: spec.Lifetime,
		Damage:   spec.Damage,
		Radius:   spec.Radius * scale,
	}, nil
}

// PlayerStats converts the player spec into runtime stats. Angles in the spec
// are degrees.
func PlayerStats(spec *prefabs.PlayerSpec) component.PlayerStats {
	if spec == nil {
		return component.PlayerStats{}
	}
	return component.PlayerStats{
		MoveSpeed:          spec.MoveSpeed,
		ShootCooldown:      spec.Shooting.Cooldown,
		ReloadTime:         spec.Shooting.ReloadTime,
		MaxAmmo:            spec.Shooting.MaxAmmo,
		BulletsPerShot:     spec.Shooting.BulletsPerShot,
		SpreadAngle:        common.Deg2Rad(spec.Shooting.SpreadAngle),
		DashDistance:       spec.Dash.Distance,
		DashDuration:       spec.Dash.Duration,
		DashCooldown:       spec.Dash.Cooldown,
		DashInputThreshold: spec.Dash.InputThreshold,
		TiltAngle:          common.Deg2Rad(spec.Dash.TiltAngle),
		TiltReturn:         spec.Dash.TiltReturn,
	}
}

// EnemyStats converts the enemy spec into runtime stats.
func EnemyStats(spec *prefabs.EnemySpec, speedMultiplier float64) component.EnemyStats {
	if spec == nil {
		return component.EnemyStats{}
	}
	if speedMultiplier <= 0 {
		speedMultiplier = 1
	}
	retreat := spec.RetreatFactor
	if retreat <= 0 {
		retreat = 0.5
	}
	return component.EnemyStats{
		BaseSpeed:          spec.BaseSpeed,
		SpeedMultiplier:    speedMultiplier,
		PreferredRange:     spec.PreferredRange,
		StoppingDistance:   spec.StoppingDistance,
		RetreatFactor:      retreat,
		ChargeTime:         spec.Attack.ChargeTime,
		PostAttackDelay:    spec.Attack.PostAttackDelay,
		BeamMaxLength:      spec.Beam.MaxLength,
		BeamDamage:         spec.Beam.Damage,
		BeamDamageInterval: spec.Beam.DamageInterval,
	}
}
