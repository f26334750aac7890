package component

import "math"

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// PlayerStats are the tunable numbers upgrades modify.
type PlayerStats struct {
	MoveSpeed      float64
	ShootCooldown  float64
	ReloadTime     float64
	MaxAmmo        int
	BulletsPerShot int
	// SpreadAngle is the total fan angle in radians.
	SpreadAngle float64

	DashDistance       float64
	DashDuration       float64
	DashCooldown       float64
	DashInputThreshold float64
	TiltAngle          float64
	TiltReturn         float64
}

var PlayerStatsComponent = NewComponent[PlayerStats]()

type PlayerState struct {
	Ammo           int
	Reloading      bool
	ReloadStart    float64
	ReloadDeadline float64
	LastShotTime   float64
	LastDashTime   float64
	Dash           Dash
}

// NewPlayerState returns a full magazine with every action ready.
func NewPlayerState(maxAmmo int) PlayerState {
	return PlayerState{
		Ammo:         maxAmmo,
		LastShotTime: math.Inf(-1),
		LastDashTime: math.Inf(-1),
	}
}

func (p PlayerState) Dashing() bool {
	return p.Dash.Phase != DashIdle
}

var PlayerStateComponent = NewComponent[PlayerState]()
