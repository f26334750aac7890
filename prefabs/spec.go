package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Render    RenderSpec    `yaml:"render"`
	Health    int           `yaml:"health"`
	MoveSpeed float64       `yaml:"move_speed"`
	Shooting  ShootingSpec  `yaml:"shooting"`
	Dash      DashSpec      `yaml:"dash"`
}

type ShootingSpec struct {
	Cooldown       float64 `yaml:"cooldown"`
	ReloadTime     float64 `yaml:"reload_time"`
	MaxAmmo        int     `yaml:"max_ammo"`
	BulletsPerShot int     `yaml:"bullets_per_shot"`
	// SpreadAngle is the total fan in degrees.
	SpreadAngle float64 `yaml:"spread_angle"`
	Projectile  string  `yaml:"projectile"`
}

type DashSpec struct {
	Distance       float64 `yaml:"distance"`
	Duration       float64 `yaml:"duration"`
	Cooldown       float64 `yaml:"cooldown"`
	InputThreshold float64 `yaml:"input_threshold"`
	TiltAngle      float64 `yaml:"tilt_angle"`
	TiltReturn     float64 `yaml:"tilt_return"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name             string       `yaml:"name"`
	Collider         ColliderSpec `yaml:"collider"`
	Render           RenderSpec   `yaml:"render"`
	Health           int          `yaml:"health"`
	BaseSpeed        float64      `yaml:"base_speed"`
	PreferredRange   float64      `yaml:"preferred_range"`
	StoppingDistance float64      `yaml:"stopping_distance"`
	RetreatFactor    float64      `yaml:"retreat_factor"`
	Attack           AttackSpec   `yaml:"attack"`
	Beam             BeamSpec     `yaml:"beam"`
}

type AttackSpec struct {
	ChargeTime      float64 `yaml:"charge_time"`
	PostAttackDelay float64 `yaml:"post_attack_delay"`
	Projectile      string  `yaml:"projectile"`
	ProjectileScale float64 `yaml:"projectile_scale"`
}

type BeamSpec struct {
	MaxLength      float64   `yaml:"max_length"`
	Damage         int       `yaml:"damage"`
	DamageInterval float64   `yaml:"damage_interval"`
	Width          float64   `yaml:"width"`
	Color          YAMLColor `yaml:"color"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ProjectileSpec struct {
	Name     string     `yaml:"name"`
	Speed    float64    `yaml:"speed"`
	Lifetime float64    `yaml:"lifetime"`
	Damage   int        `yaml:"damage"`
	Radius   float64    `yaml:"radius"`
	Render   RenderSpec `yaml:"render"`
}

type ProjectilesSpec struct {
	Projectiles []ProjectileSpec `yaml:"projectiles"`
}

// Find returns the projectile template called name.
func (s *ProjectilesSpec) Find(name string) (ProjectileSpec, bool) {
	if s == nil {
		return ProjectileSpec{}, false
	}
	for _, p := range s.Projectiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return ProjectileSpec{}, false
}

func LoadProjectilesSpec() (*ProjectilesSpec, error) {
	spec, err := LoadSpec[ProjectilesSpec]("projectiles.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ArenaSpec struct {
	TickRate           int        `yaml:"tick_rate"`
	Bounds             BoundsSpec `yaml:"bounds"`
	SpawnPadding       float64    `yaml:"spawn_padding"`
	Seed               int64      `yaml:"seed"`
	LegacyFriendlyFire bool       `yaml:"legacy_friendly_fire"`
	Background         YAMLColor  `yaml:"background"`
}

type BoundsSpec struct {
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
}

// BB returns the bounds as a Chipmunk bounding box.
func (b BoundsSpec) BB() cp.BB {
	return cp.BB{L: b.Left, B: b.Bottom, R: b.Right, T: b.Top}
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type DirectorSpec struct {
	InitialThreshold  int         `yaml:"initial_threshold"`
	ThresholdGrowth   float64     `yaml:"threshold_growth"`
	DifficultyGrowth  float64     `yaml:"difficulty_growth"`
	PointsPerKill     int         `yaml:"points_per_kill"`
	BaseSpawnInterval float64     `yaml:"base_spawn_interval"`
	BaseMaxEnemies    int         `yaml:"base_max_enemies"`
	Upgrades          UpgradeSpec `yaml:"upgrades"`
}

type UpgradeSpec struct {
	Options            int     `yaml:"options"`
	MoveSpeedDelta     float64 `yaml:"move_speed_delta"`
	ShootCooldownDelta float64 `yaml:"shoot_cooldown_delta"`
	ShootCooldownFloor float64 `yaml:"shoot_cooldown_floor"`
	HealthDelta        int     `yaml:"health_delta"`
}

func LoadDirectorSpec() (*DirectorSpec, error) {
	spec, err := LoadSpec[DirectorSpec]("director.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Radius float64 `yaml:"radius"`
}

type RenderSpec struct {
	Color YAMLColor `yaml:"color"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA falls back to white when no color was configured.
func (c YAMLColor) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return color.White.RGBA()
	}
	return c.Color.RGBA()
}
