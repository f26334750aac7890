// Package arena wires the combat systems into a playable match: it owns the
// world, the fixed system order, the round director and the collaborators
// that feed input and pick upgrades.
package arena

import (
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
)

//go:generate go tool mockgen -destination=./mocks/collaborators.go -package=mocks . InputProvider,UpgradeSelector

// ErrMissingTemplate is returned by NewMatch when a combatant or projectile
// template is missing or unusable.
var ErrMissingTemplate = entity.ErrMissingTemplate

// InputProvider supplies the player's intent for the next tick. It never
// sees raw device state through the match, only the read-only views.
type InputProvider interface {
	Input(m *Match) component.Input
}

// UpgradeSelector resolves an upgrade offer synchronously. It must return one
// of options; anything else is rejected and the offer stays pending.
type UpgradeSelector interface {
	Choose(m *Match, options []component.UpgradeKind) component.UpgradeKind
}
