package sim

import (
	"time"

	"github.com/Faultbox/stunts/internal/vehicle"
	"github.com/Faultbox/stunts/pkg/math"
)

// Step parameters.
const (
	MaxTickDelta = 30 * time.Millisecond
	Substeps     = 5
	TimeScale    = 750 // Wall-clock milliseconds per engine time unit

	Gravity            = 9.81
	BelowGroundGravity = -0.2 // Gravity factor once the car drops below y=0

	SteerFadeSpeed = 10  // Speed above which steering slows down
	SteerFadeRate  = 0.5 // Per unit of speed above SteerFadeSpeed
)

// TickResult reports what one tick did.
type TickResult struct {
	Stepped   bool
	Delta     time.Duration // Clamped wall-clock time consumed
	Step      float32       // Engine time per substep
	Gravity   math.Vec3
	SteerRate float32
}

// Tick advances the simulation to now. The first tick only starts the
// clock, and a tick without a car only moves the clock.
func (s *Session) Tick(now time.Time) TickResult {
	if s.lastTick.IsZero() || s.vehicle == nil {
		s.lastTick = now
		return TickResult{}
	}

	delta := min(max(now.Sub(s.lastTick), 0), MaxTickDelta)
	s.lastTick = now

	ms := float32(delta) / float32(time.Millisecond)
	res := TickResult{
		Stepped: true,
		Delta:   delta,
		Step:    ms / (TimeScale * Substeps),
	}

	chassis := s.vehicle.handle.Chassis()

	factor := float32(1)
	if chassis.Position().Y < 0 {
		factor = BelowGroundGravity
	}
	res.Gravity = math.Vec3{Y: -Gravity * factor}
	s.world.SetGravity(res.Gravity)

	res.SteerRate = SteerRate(chassis.LinearVelocity().Length())
	s.vehicle.handle.SetDrive(vehicle.MaxSteerAngle, res.SteerRate, vehicle.DriveTorque)

	for i := 0; i < Substeps; i++ {
		s.world.Integrate(res.Step)
	}

	return res
}

// SteerRate is how fast the wheels turn at the given speed. It falls off
// above SteerFadeSpeed.
func SteerRate(speed float32) float32 {
	return vehicle.SteerRate / max(1, (speed-SteerFadeSpeed)*SteerFadeRate)
}

// LastTick returns the time of the last tick, zero before the first.
func (s *Session) LastTick() time.Time {
	return s.lastTick
}
