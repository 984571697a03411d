package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type Vector = cp.Vector

// ShapeKind selects which geometry fields of a BodySpec are used.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
)

// Collision categories. Only grabbable shapes answer pointer queries.
const (
	CategoryDefault   uint = 1
	CategoryGrabbable uint = 1 << 1
)

// BodySpec describes a body before it is created. A spec is also what
// CloneBody produces, so it never carries velocity or forces.
type BodySpec struct {
	Shape    ShapeKind
	Radius   float64  // ShapeCircle
	Vertices []Vector // ShapePolygon, local space, counter-clockwise

	Position Vector
	Angle    float64

	// Mass wins over Density when both are set.
	Density float64
	Mass    float64
	Moment  float64

	Friction   float64
	Elasticity float64

	// Bodies sharing a non-zero group never collide with each other.
	Group     uint
	Grabbable bool
	Static    bool
}

// Box returns the local vertices of a w x h rectangle centered on the origin,
// in the same winding cp.NewBox uses.
func Box(w, h float64) []Vector {
	hw, hh := w/2, h/2
	return []Vector{
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: -hh},
	}
}

// Area returns the shape area described by the spec.
func (s BodySpec) Area() float64 {
	if s.Shape == ShapeCircle {
		return cp.AreaForCircle(0, s.Radius)
	}
	return cp.AreaForPoly(len(s.Vertices), s.Vertices, 0)
}

func (s BodySpec) mass() float64 {
	if s.Mass > 0 {
		return s.Mass
	}
	return s.Density * s.Area()
}

func (s BodySpec) moment(mass float64) float64 {
	if s.Moment > 0 {
		return s.Moment
	}
	if s.Shape == ShapeCircle {
		return cp.MomentForCircle(mass, 0, s.Radius, Vector{})
	}
	return cp.MomentForPoly(mass, len(s.Vertices), s.Vertices, Vector{}, 0)
}

// Body is one rigid body plus its single collision shape. Owner points back to
// the entity that owns the body; DamageThreshold is filled in by the owner.
type Body struct {
	Owner           donburi.Entity
	DamageThreshold float64

	kind     ShapeKind
	body     *cp.Body
	shape    *cp.Shape
	group    uint
	world    *World
	vertices []Vector
	radius   float64
}

// NewBody builds a detached body from spec. It is not simulated until added to a World.
func NewBody(spec BodySpec) *Body {
	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		mass := spec.mass()
		body = cp.NewBody(mass, spec.moment(mass))
	}
	body.SetPosition(spec.Position)
	body.SetAngle(spec.Angle)

	b := &Body{kind: spec.Shape, body: body, group: spec.Group}
	body.UserData = b

	switch spec.Shape {
	case ShapeCircle:
		b.radius = spec.Radius
		b.shape = cp.NewCircle(body, spec.Radius, Vector{})
	default:
		b.vertices = append([]Vector(nil), spec.Vertices...)
		b.shape = cp.NewPolyShapeRaw(body, len(b.vertices), b.vertices, 0)
	}
	b.shape.SetFriction(spec.Friction)
	b.shape.SetElasticity(spec.Elasticity)
	b.shape.SetCollisionType(collisionTypeBody)
	b.shape.UserData = b
	body.AddShape(b.shape)
	b.SetGrabbable(spec.Grabbable)
	return b
}

// SetGrabbable controls whether pointer drags can pick the body up.
func (b *Body) SetGrabbable(grabbable bool) {
	categories := CategoryDefault
	if grabbable {
		categories |= CategoryGrabbable
	}
	b.shape.SetFilter(cp.NewShapeFilter(b.group, categories, cp.ALL_CATEGORIES))
}

func (b *Body) Kind() ShapeKind { return b.kind }
func (b *Body) Radius() float64 { return b.radius }
func (b *Body) Position() Vector { return b.body.Position() }
func (b *Body) Velocity() Vector { return b.body.Velocity() }
func (b *Body) Angle() float64 { return b.body.Angle() }
func (b *Body) AngularVelocity() float64 { return b.body.AngularVelocity() }
func (b *Body) Force() Vector { return b.body.Force() }
func (b *Body) Static() bool { return b.body.GetType() == cp.BODY_STATIC }
func (b *Body) IsSleeping() bool { return b.body.IsSleeping() }

// Speed is the magnitude of the linear velocity.
func (b *Body) Speed() float64 { return b.body.Velocity().Length() }

// Mass is +Inf for static bodies.
func (b *Body) Mass() float64 {
	if b.Static() {
		return math.Inf(1)
	}
	return b.body.Mass()
}

func (b *Body) SetPosition(p Vector) { b.body.SetPosition(p) }
func (b *Body) SetVelocity(v Vector) { b.body.SetVelocityVector(v) }
func (b *Body) SetForce(f Vector) { b.body.SetForce(f) }
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
}

// Wake resets the sleep timer of a dynamic body.
func (b *Body) Wake() { b.body.Activate() }

// LocalVertices returns the polygon outline in body space.
func (b *Body) LocalVertices() []Vector { return b.vertices }

// WorldVertices returns the polygon outline at the body's current transform.
func (b *Body) WorldVertices(dst []Vector) []Vector {
	dst = dst[:0]
	for _, v := range b.vertices {
		dst = append(dst, b.body.LocalToWorld(v))
	}
	return dst
}

// Bounds returns the axis-aligned box around the body's shape.
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	if b.kind == ShapeCircle {
		p := b.Position()
		return p.X - b.radius, p.Y - b.radius, p.X + b.radius, p.Y + b.radius
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range b.vertices {
		w := b.body.LocalToWorld(v)
		minX, maxX = math.Min(minX, w.X), math.Max(maxX, w.X)
		minY, maxY = math.Min(minY, w.Y), math.Max(maxY, w.Y)
	}
	return minX, minY, maxX, maxY
}

// Spec copies geometry and material into a detached description. Simulation
// state such as velocity and accumulated force is left out.
func (b *Body) Spec() BodySpec {
	spec := BodySpec{
		Shape:      b.kind,
		Radius:     b.radius,
		Position:   b.Position(),
		Angle:      b.Angle(),
		Friction:   b.shape.Friction(),
		Elasticity: b.shape.Elasticity(),
		Group:      b.group,
		Grabbable:  b.shape.Filter.Categories&CategoryGrabbable != 0,
		Static:     b.Static(),
	}
	if len(b.vertices) > 0 {
		spec.Vertices = append([]Vector(nil), b.vertices...)
	}
	if !spec.Static {
		spec.Mass = b.body.Mass()
		spec.Moment = b.body.Moment()
	}
	return spec
}
