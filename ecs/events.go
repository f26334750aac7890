package ecs

// EventType names a simulation event.
type EventType string

const (
	EventProjectileFired EventType = "projectile_fired"
	EventEntityDamaged   EventType = "entity_damaged"
	EventEnemyKilled     EventType = "enemy_killed"
	EventPlayerDied      EventType = "player_died"
	EventAttackStarted   EventType = "attack_started"
	EventRoundAdvanced   EventType = "round_advanced"
	EventUpgradeOffered  EventType = "upgrade_offered"
	EventUpgradeApplied  EventType = "upgrade_applied"
	EventReloadStarted   EventType = "reload_started"
	EventDashStarted     EventType = "dash_started"
)

// Event is a generic ECS event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// DamageEvent is the payload of EventEntityDamaged.
type DamageEvent struct {
	Source Entity
	Amount int
	Beam   bool
}

// RoundEvent is the payload of EventRoundAdvanced.
type RoundEvent struct {
	Round      int
	Difficulty float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Emit is shorthand for pushing an event without a payload.
func (q *EventQueue) Emit(t EventType, e Entity) {
	q.Push(Event{Type: t, Entity: e})
}

// Pending returns the queued events without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
