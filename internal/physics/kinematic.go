package physics

import (
	gomath "math"

	"github.com/Faultbox/stunts/internal/engine/collision"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/math"
)

// DefaultGrid is the broad-phase grid covering the track and the space
// above it.
func DefaultGrid() GridConfig {
	return GridConfig{
		Origin:   track.TrackOffset,
		Cells:    [3]int{60, 30, 60},
		CellSize: math.Vec3{X: track.EdgeLength, Y: track.EdgeLength, Z: track.EdgeLength},
	}
}

// Kinematic is a minimal World used when no rigid-body engine is linked
// in: cars follow throttle and steering on a flat ground plane and fall
// under gravity. It does not collide against the track mesh.
type Kinematic struct {
	grid     GridConfig
	gravity  math.Vec3
	statics  []*kinematicBody
	vehicles []*kinematicVehicle
}

// NewKinematic creates an empty world bounded by the grid.
func NewKinematic(grid GridConfig) *Kinematic {
	return &Kinematic{grid: grid}
}

// SetGravity implements World.
func (w *Kinematic) SetGravity(g math.Vec3) {
	w.gravity = g
}

// Gravity returns the current gravity vector.
func (w *Kinematic) Gravity() math.Vec3 {
	return w.gravity
}

// AddStaticMesh implements World.
func (w *Kinematic) AddStaticMesh(c collision.StaticCollider) (Body, error) {
	b := &kinematicBody{position: c.Position}
	w.statics = append(w.statics, b)
	return b, nil
}

// AddVehicle implements World.
func (w *Kinematic) AddVehicle(cfg VehicleConfig) (Vehicle, error) {
	v := &kinematicVehicle{
		chassis: kinematicBody{position: cfg.Position, heading: math.Radians(cfg.HeadingDeg)},
		cfg:     cfg,
		drive:   cfg.Drive,
		axis:    make([]float32, len(cfg.Wheels)),
	}

	// Rest the chassis so the lowest wheel touches the ground.
	for _, wc := range cfg.Wheels {
		v.rideHeight = max(v.rideHeight, wc.Radius-wc.Position.Y)
	}

	w.vehicles = append(w.vehicles, v)
	return v, nil
}

// RemoveBody implements World. Removing a vehicle's chassis removes the
// vehicle.
func (w *Kinematic) RemoveBody(b Body) {
	for i, s := range w.statics {
		if s == b {
			w.statics = append(w.statics[:i], w.statics[i+1:]...)
			return
		}
	}
	for i, v := range w.vehicles {
		if &v.chassis == b {
			w.vehicles = append(w.vehicles[:i], w.vehicles[i+1:]...)
			return
		}
	}
}

// Integrate implements World.
func (w *Kinematic) Integrate(dt float32) {
	lo := w.grid.Origin
	hi := lo.Add(math.Vec3{
		X: float32(w.grid.Cells[0]) * w.grid.CellSize.X,
		Y: float32(w.grid.Cells[1]) * w.grid.CellSize.Y,
		Z: float32(w.grid.Cells[2]) * w.grid.CellSize.Z,
	})

	for _, v := range w.vehicles {
		v.step(dt, w.gravity, len(w.statics) > 0, lo, hi)
	}
}

type kinematicBody struct {
	position math.Vec3
	velocity math.Vec3
	heading  float32 // Radians about Y
}

func (b *kinematicBody) Position() math.Vec3 { return b.position }

func (b *kinematicBody) Orientation() math.Mat4 { return math.RotateY(b.heading) }

func (b *kinematicBody) LinearVelocity() math.Vec3 { return b.velocity }

// Tuning for the stand-in drive model.
const (
	kinematicAccel     = 10 // Per unit of torque per unit of mass
	kinematicDrag      = 0.5
	kinematicHandbrake = 5
)

type kinematicVehicle struct {
	chassis    kinematicBody
	cfg        VehicleConfig
	drive      DriveConfig
	rideHeight float32

	accelerate float32
	steer      float32
	handbrake  float32

	speed float32 // Signed, along the heading
	axis  []float32
}

func (v *kinematicVehicle) Chassis() Body { return &v.chassis }

func (v *kinematicVehicle) SetDrive(maxSteerAngle, steerRate, driveTorque float32) {
	v.drive = DriveConfig{MaxSteerAngle: maxSteerAngle, SteerRate: steerRate, DriveTorque: driveTorque}
}

func (v *kinematicVehicle) SetAccelerate(a float32) { v.accelerate = a }

func (v *kinematicVehicle) SetSteer(s float32) { v.steer = s }

func (v *kinematicVehicle) SetHandbrake(h float32) { v.handbrake = h }

func (v *kinematicVehicle) step(dt float32, gravity math.Vec3, grounded bool, lo, hi math.Vec3) {
	b := &v.chassis

	// Negative accelerate drives forward.
	if v.cfg.Mass > 0 {
		v.speed += -v.accelerate * v.drive.DriveTorque / v.cfg.Mass * kinematicAccel * dt
	}
	v.speed -= v.speed * min(1, kinematicDrag*dt+v.handbrake*kinematicHandbrake*dt)

	b.heading += v.steer * math.Radians(v.drive.SteerRate*v.drive.MaxSteerAngle) * v.speed * dt / track.EdgeLength

	fwd := math.Vec3{X: float32(gomath.Sin(float64(b.heading))), Z: float32(gomath.Cos(float64(b.heading)))}
	b.velocity.X = fwd.X * v.speed
	b.velocity.Z = fwd.Z * v.speed
	b.velocity.Y += gravity.Y * dt

	b.position = b.position.Add(b.velocity.Scale(dt))

	ground := lo.Y + v.rideHeight
	if grounded && b.position.Y < ground && b.velocity.Y <= 0 {
		b.position.Y = ground
		b.velocity.Y = 0
	}
	b.position.X = min(max(b.position.X, lo.X), hi.X)
	b.position.Z = min(max(b.position.Z, lo.Z), hi.Z)

	for i, wc := range v.cfg.Wheels {
		if wc.Radius > 0 {
			v.axis[i] += v.speed * dt / wc.Radius * 180 / gomath.Pi
		}
	}
}

func (v *kinematicVehicle) Wheels() []WheelState {
	rot := v.chassis.Orientation()
	states := make([]WheelState, len(v.cfg.Wheels))
	for i, wc := range v.cfg.Wheels {
		states[i] = WheelState{
			Position:  v.chassis.position.Add(rot.TransformVec3(wc.Position)),
			AxisAngle: v.axis[i],
		}
		// The first two wheels steer.
		if i < 2 {
			states[i].SteerAngle = v.steer * v.drive.MaxSteerAngle
		}
	}
	return states
}
