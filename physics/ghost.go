package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Ghost is a detached copy of a body advanced by hand. It never joins a space,
// so stepping it cannot disturb the live simulation.
type Ghost struct {
	body *cp.Body
}

func NewGhost(spec BodySpec) *Ghost {
	mass := spec.mass()
	body := cp.NewBody(mass, spec.moment(mass))
	body.SetPosition(spec.Position)
	body.SetAngle(spec.Angle)
	return &Ghost{body: body}
}

func (g *Ghost) Mass() float64 { return g.body.Mass() }
func (g *Ghost) Position() Vector { return g.body.Position() }
func (g *Ghost) Velocity() Vector { return g.body.Velocity() }

func (g *Ghost) SetVelocity(v Vector) { g.body.SetVelocityVector(v) }

// AddForce accumulates f until the next Step.
func (g *Ghost) AddForce(f Vector) {
	g.body.SetForce(g.body.Force().Add(f))
}

// Step integrates one step of dt with no gravity of its own. damping is the
// fraction of velocity kept per second, as in World. The accumulated force is
// consumed.
func (g *Ghost) Step(dt, damping float64) {
	g.body.UpdateVelocity(Vector{}, math.Pow(damping, dt), dt)
	cp.BodyUpdatePosition(g.body, dt)
}
