package physics

import (
	"github.com/jakecoffman/cp"
)

const collisionTypeBody cp.CollisionType = 1

// Pair is one collision that began during the last step. Speeds are sampled
// before the solver resolves the contact.
type Pair struct {
	A, B           *Body
	SpeedA, SpeedB float64
}

type Options struct {
	Gravity            Vector
	Damping            float64 // Fraction of velocity kept per second, 0 means 1
	Iterations         uint
	SleepTimeThreshold float64
	IdleSpeedThreshold float64
	CollisionSlop      float64

	// Pointer joint strength.
	DragMaxForce  float64
	DragErrorBias float64
}

// World wraps a cp.Space and turns its callbacks into per-step lists that
// callers poll after Step.
type World struct {
	space      *cp.Space
	bodies     []*Body
	collisions []Pair
	pointer    pointer
	lastDelta  float64
}

func NewWorld(opts Options) *World {
	space := cp.NewSpace()
	space.SetGravity(opts.Gravity)
	if opts.Damping > 0 {
		space.SetDamping(opts.Damping)
	}
	if opts.Iterations > 0 {
		space.Iterations = opts.Iterations
	}
	if opts.SleepTimeThreshold > 0 {
		space.SleepTimeThreshold = opts.SleepTimeThreshold
	}
	space.IdleSpeedThreshold = opts.IdleSpeedThreshold
	if opts.CollisionSlop > 0 {
		space.SetCollisionSlop(opts.CollisionSlop)
	}

	w := &World{space: space}
	w.pointer.init(space, opts.DragMaxForce, opts.DragErrorBias)

	handler := space.NewCollisionHandler(collisionTypeBody, collisionTypeBody)
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := arb.Bodies()
		ba, okA := a.UserData.(*Body)
		bb, okB := b.UserData.(*Body)
		if okA && okB {
			w.collisions = append(w.collisions, Pair{
				A: ba, B: bb,
				SpeedA: ba.Speed(), SpeedB: bb.Speed(),
			})
		}
		return true
	}
	return w
}

// CreateBody builds a body from spec and adds it to the world.
func (w *World) CreateBody(spec BodySpec) *Body {
	b := NewBody(spec)
	w.Add(b)
	return b
}

func (w *World) Add(b *Body) {
	if b.world != nil {
		return
	}
	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	b.world = w
	w.bodies = append(w.bodies, b)
}

// Remove takes the body out of the simulation. Removing a body that is not in
// this world is a no-op.
func (w *World) Remove(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.pointer.forget(b)
	var constraints []*cp.Constraint
	b.body.EachConstraint(func(c *cp.Constraint) {
		constraints = append(constraints, c)
	})
	for _, c := range constraints {
		w.space.RemoveConstraint(c)
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.world = nil
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

func (w *World) Contains(b *Body) bool {
	return b != nil && b.world == w
}

// Bodies returns every body in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Clear removes every body and constraint.
func (w *World) Clear() {
	for len(w.bodies) > 0 {
		w.Remove(w.bodies[len(w.bodies)-1])
	}
	w.pointer.release()
}

// Step advances the simulation by dt seconds and records the collisions that
// began during the step.
func (w *World) Step(dt float64) {
	w.collisions = w.collisions[:0]
	w.pointer.follow(dt)
	w.space.Step(dt)
	w.lastDelta = dt
}

// Collisions returns the pairs recorded by the last Step.
func (w *World) Collisions() []Pair {
	return w.collisions
}

// LastDelta is the dt of the most recent Step.
func (w *World) LastDelta() float64 {
	return w.lastDelta
}

func (w *World) Gravity() Vector {
	return w.space.Gravity()
}

func (w *World) Damping() float64 {
	return w.space.Damping()
}

// WakeAll wakes every dynamic body.
func (w *World) WakeAll() {
	for _, b := range w.bodies {
		if !b.Static() {
			b.Wake()
		}
	}
}

// Spring is an elastic link between a fixed world point and a body.
type Spring struct {
	constraint *cp.Constraint
	world      *World
}

// AttachSpring links b to a fixed anchor with a damped spring of rest length 0.
func (w *World) AttachSpring(b *Body, anchor Vector, stiffness, damping float64) *Spring {
	c := cp.NewDampedSpring(w.space.StaticBody, b.body, anchor, Vector{}, 0, stiffness, damping)
	w.space.AddConstraint(c)
	return &Spring{constraint: c, world: w}
}

// Detach removes the spring. Calling it twice is a no-op.
func (s *Spring) Detach() {
	if s == nil || s.world == nil {
		return
	}
	if s.world.space.ContainsConstraint(s.constraint) {
		s.world.space.RemoveConstraint(s.constraint)
	}
	s.world = nil
}

func (s *Spring) Attached() bool {
	return s != nil && s.world != nil
}
