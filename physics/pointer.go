package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

type DragKind int

const (
	DragStart DragKind = iota
	DragEnd
)

// DragEvent reports a pointer grabbing or letting go of a body.
type DragEvent struct {
	Kind    DragKind
	Body    *Body
	Pointer Vector
}

// pointer drags grabbable bodies with a pivot joint attached to a kinematic
// body that follows the cursor.
type pointer struct {
	space     *cp.Space
	body      *cp.Body
	joint     *cp.Constraint
	grabbed   *Body
	target    Vector
	maxForce  float64
	errorBias float64
	events    []DragEvent
}

func (p *pointer) init(space *cp.Space, maxForce, errorBias float64) {
	p.space = space
	p.body = cp.NewKinematicBody()
	p.maxForce = maxForce
	if p.maxForce <= 0 {
		p.maxForce = math.Inf(1)
	}
	p.errorBias = errorBias
	if p.errorBias <= 0 {
		p.errorBias = math.Pow(1-0.15, 60)
	}
}

// MovePointer feeds the sampled pointer state into the world. Drag events it
// produces are available from DragEvents until the next call.
func (w *World) MovePointer(pos Vector, pressed bool) {
	p := &w.pointer
	p.events = p.events[:0]
	p.target = pos

	switch {
	case pressed && p.grabbed == nil:
		filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, CategoryGrabbable)
		info := w.space.PointQueryNearest(pos, 0, filter)
		if info.Shape == nil {
			return
		}
		b, ok := info.Shape.UserData.(*Body)
		if !ok || b.Static() {
			return
		}
		p.body.SetPosition(pos)
		p.body.SetVelocity(0, 0)
		p.joint = cp.NewPivotJoint2(p.body, b.body, Vector{}, b.body.WorldToLocal(pos))
		p.joint.SetMaxForce(p.maxForce)
		p.joint.SetErrorBias(p.errorBias)
		w.space.AddConstraint(p.joint)
		b.Wake()
		p.grabbed = b
		p.events = append(p.events, DragEvent{Kind: DragStart, Body: b, Pointer: pos})
	case !pressed && p.grabbed != nil:
		b := p.grabbed
		p.release()
		p.events = append(p.events, DragEvent{Kind: DragEnd, Body: b, Pointer: pos})
	}
}

// DragEvents returns the transitions produced by the last MovePointer.
func (w *World) DragEvents() []DragEvent {
	return w.pointer.events
}

// Dragged returns the body currently held by the pointer, if any.
func (w *World) Dragged() *Body {
	return w.pointer.grabbed
}

func (p *pointer) follow(dt float64) {
	if p.grabbed == nil || dt <= 0 {
		return
	}
	prev := p.body.Position()
	p.body.SetVelocityVector(p.target.Sub(prev).Mult(1 / dt))
	p.body.SetPosition(p.target)
}

func (p *pointer) release() {
	if p.joint != nil && p.space.ContainsConstraint(p.joint) {
		p.space.RemoveConstraint(p.joint)
	}
	p.joint = nil
	p.grabbed = nil
}

func (p *pointer) forget(b *Body) {
	if p.grabbed == b {
		p.release()
	}
}
