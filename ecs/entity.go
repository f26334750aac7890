package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. A handle goes stale once its slot is reused.
type Entity uint64

// NoEntity is the zero handle. Slot 0 is never allocated.
const NoEntity Entity = 0

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }

func (e Entity) generation() generation { return generation(uint32(uint64(e) >> 32)) }

func (e Entity) Valid() bool { return e.id() != 0 }

// String formats the handle as "id.generation" so reused slots are told apart
// in logs.
func (e Entity) String() string {
	if !e.Valid() {
		return "none"
	}
	return strconv.FormatUint(uint64(e.id()), 10) + "." + strconv.FormatUint(uint64(e.generation()), 10)
}
