package component

import "strings"

type UpgradeKind uint8

const (
	UpgradeMoveSpeed UpgradeKind = iota + 1
	UpgradeShootCooldown
	UpgradeHealth
)

// AllUpgrades lists every upgrade in a fixed order.
func AllUpgrades() []UpgradeKind {
	return []UpgradeKind{UpgradeMoveSpeed, UpgradeShootCooldown, UpgradeHealth}
}

func (k UpgradeKind) String() string {
	switch k {
	case UpgradeMoveSpeed:
		return "move_speed"
	case UpgradeShootCooldown:
		return "shoot_cooldown"
	case UpgradeHealth:
		return "health"
	default:
		return ""
	}
}

// ParseUpgradeKind maps a name back to its kind; unknown names return 0.
func ParseUpgradeKind(name string) UpgradeKind {
	for _, k := range AllUpgrades() {
		if strings.EqualFold(strings.TrimSpace(name), k.String()) {
			return k
		}
	}
	return 0
}

// UpgradeOffer is the pending pause-and-upgrade interrupt.
type UpgradeOffer struct {
	Pending bool
	Round   int
	Options []UpgradeKind
}

func (o UpgradeOffer) Contains(k UpgradeKind) bool {
	if !o.Pending {
		return false
	}
	for _, opt := range o.Options {
		if opt == k {
			return true
		}
	}
	return false
}
