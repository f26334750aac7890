package component

// ProjectileTemplate describes the shot a weapon fires.
type ProjectileTemplate struct {
	Name     string
	Speed    float64
	Lifetime float64
	Damage   int
	Radius   float64
}

type Weapon struct {
	Projectile ProjectileTemplate
}

var WeaponComponent = NewComponent[Weapon]()
