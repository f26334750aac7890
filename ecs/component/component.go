package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type inside a World. Zero is never
// assigned.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key used by ecs.Add, ecs.Get and friends.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String is the Go type name of T, used in error messages.
func (k ComponentKind[T]) String() string {
	if k.name == "" {
		return "invalid"
	}
	return k.name
}

// ComponentHandle is what each component file declares at package level:
//
//	var TransformComponent = NewComponent[Transform]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
