package component

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type EnemyPhase uint8

const (
	EnemyApproach EnemyPhase = iota
	EnemyRetreat
	EnemyHolding
	EnemyCharging
	EnemyFiring
	EnemyCooldown
)

func (p EnemyPhase) String() string {
	switch p {
	case EnemyApproach:
		return "approach"
	case EnemyRetreat:
		return "retreat"
	case EnemyHolding:
		return "holding"
	case EnemyCharging:
		return "charging"
	case EnemyFiring:
		return "firing"
	case EnemyCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Attacking reports whether an attack sequence owns the enemy.
func (p EnemyPhase) Attacking() bool {
	return p == EnemyCharging || p == EnemyFiring || p == EnemyCooldown
}

type EnemyStats struct {
	BaseSpeed        float64
	SpeedMultiplier  float64
	PreferredRange   float64
	StoppingDistance float64
	RetreatFactor    float64

	ChargeTime      float64
	PostAttackDelay float64

	BeamMaxLength      float64
	BeamDamage         int
	BeamDamageInterval float64
}

var EnemyStatsComponent = NewComponent[EnemyStats]()

type EnemyState struct {
	Phase              EnemyPhase
	ChargeDeadline     float64
	CooldownDeadline   float64
	LastBeamDamageTime float64
	Beam               Beam
}

var EnemyStateComponent = NewComponent[EnemyState]()
