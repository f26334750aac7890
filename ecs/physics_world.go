package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs/component"
)

const (
	categoryPlayer uint = 1 << iota
	categoryEnemy
)

// combatantGroup keeps combatant shapes from generating contacts with each
// other during Step; queries use NO_GROUP and still see them.
const combatantGroup uint = 1

// PhysicsWorld owns the Chipmunk space holding one kinematic circle per
// combatant. It is only used for spatial queries; movement is integrated by
// systems and pushed in with SetPosition.
type PhysicsWorld struct {
	space  *cp.Space
	bodies map[Entity]*physicsBody
}

type physicsBody struct {
	body    *cp.Body
	shape   *cp.Shape
	faction component.Faction
}

// SegmentHit describes the first shape a query segment touched.
type SegmentHit struct {
	Entity Entity
	Point  cp.Vector
	Alpha  float64
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space:  cp.NewSpace(),
		bodies: make(map[Entity]*physicsBody),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// EnsureBody registers a circle for e if it has none yet.
func (pw *PhysicsWorld) EnsureBody(e Entity, pos cp.Vector, radius float64, faction component.Faction) {
	if pw == nil || pw.space == nil || radius <= 0 {
		return
	}
	if _, ok := pw.bodies[e]; ok {
		return
	}
	body := pw.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(pos)
	body.UserData = e

	shape := pw.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetSensor(true)
	shape.SetFilter(cp.NewShapeFilter(combatantGroup, categoryFor(faction), cp.ALL_CATEGORIES))
	shape.UserData = e

	pw.bodies[e] = &physicsBody{body: body, shape: shape, faction: faction}
}

// SetPosition moves the body of e. The shape's bounding box is refreshed on
// the next Step.
func (pw *PhysicsWorld) SetPosition(e Entity, pos cp.Vector) {
	if pw == nil {
		return
	}
	if pb, ok := pw.bodies[e]; ok {
		pb.body.SetPosition(pos)
	}
}

// Has reports whether e owns a body.
func (pw *PhysicsWorld) Has(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.bodies[e]
	return ok
}

// Remove drops the body of e, if any.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	pb, ok := pw.bodies[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(pb.shape)
	pw.space.RemoveBody(pb.body)
	delete(pw.bodies, e)
}

// Step reindexes every shape at its current position.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}

// SegmentFirst returns the closest shape along start->end accepted by filter.
// skip can exclude individual entities, e.g. the caster of a ray.
func (pw *PhysicsWorld) SegmentFirst(start, end cp.Vector, radius float64, filter cp.ShapeFilter, skip func(Entity) bool) (SegmentHit, bool) {
	best := SegmentHit{Alpha: math.Inf(1)}
	found := false
	if pw == nil || pw.space == nil {
		return best, false
	}
	pw.space.SegmentQuery(start, end, radius, filter, func(shape *cp.Shape, point, _ cp.Vector, alpha float64, _ interface{}) {
		e, ok := shape.UserData.(Entity)
		if !ok {
			return
		}
		if skip != nil && skip(e) {
			return
		}
		if alpha < best.Alpha || (alpha == best.Alpha && e < best.Entity) {
			best = SegmentHit{Entity: e, Point: point, Alpha: alpha}
			found = true
		}
	}, nil)
	return best, found
}

// Overlap returns the shape nearest to point whose surface lies within
// radius of it.
func (pw *PhysicsWorld) Overlap(point cp.Vector, radius float64, filter cp.ShapeFilter, skip func(Entity) bool) (SegmentHit, bool) {
	best := SegmentHit{Alpha: math.Inf(1)}
	found := false
	if pw == nil || pw.space == nil {
		return best, false
	}
	pw.space.BBQuery(cp.NewBBForCircle(point, radius), filter, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(Entity)
		if !ok {
			return
		}
		if skip != nil && skip(e) {
			return
		}
		info := shape.PointQuery(point)
		if info.Distance > radius {
			return
		}
		if info.Distance < best.Alpha || (info.Distance == best.Alpha && e < best.Entity) {
			best = SegmentHit{Entity: e, Point: info.Point, Alpha: info.Distance}
			found = true
		}
	}, nil)
	return best, found
}

// FilterAll is a query filter that sees every combatant.
func FilterAll() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
}

// FilterOpposing is a query filter that only sees combatants opposing f.
func FilterOpposing(f component.Faction) cp.ShapeFilter {
	var mask uint
	switch f {
	case component.FactionPlayer:
		mask = categoryEnemy
	case component.FactionEnemy:
		mask = categoryPlayer
	}
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
}

func categoryFor(f component.Faction) uint {
	switch f {
	case component.FactionPlayer:
		return categoryPlayer
	case component.FactionEnemy:
		return categoryEnemy
	default:
		return 0
	}
}
