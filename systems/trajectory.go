package systems

import (
	"math"

	"github.com/automoto/slingfort/components"
	cfg "github.com/automoto/slingfort/config"
	"github.com/automoto/slingfort/physics"
)

// PredictTrajectory fills s.Trajectory with the path body would take if the
// sling let go now. A ghost copy is stepped; body itself is left untouched.
func PredictTrajectory(world *physics.World, s *components.SlingshotData, body *physics.Body) {
	ghost := physics.NewGhost(CloneBody(body))

	// A spring of rest length 0 releases at roughly pull * natural frequency.
	frequency := math.Sqrt(cfg.Slingshot.Stiffness / ghost.Mass())
	pull := s.Anchor.Sub(body.Position())
	ghost.SetVelocity(pull.Mult(cfg.Trajectory.VelocityScalar * frequency))

	dt := world.LastDelta()
	if dt <= 0 {
		dt = 1 / float64(cfg.Physics.TicksPerSecond)
	}
	gravity := world.Gravity()
	damping := world.Damping()

	for i := range s.Trajectory {
		ghost.AddForce(gravity.Mult(ghost.Mass()))
		ghost.Step(dt, damping)
		s.Trajectory[i] = ghost.Position()
	}
	s.TrajectoryLen = len(s.Trajectory)
}
