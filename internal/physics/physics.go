// Package physics defines the boundary to the rigid-body engine that
// drives the car and collides it with the track.
package physics

import (
	"github.com/Faultbox/stunts/internal/engine/collision"
	"github.com/Faultbox/stunts/pkg/math"
)

// Body is a rigid body owned by the engine.
type Body interface {
	Position() math.Vec3
	Orientation() math.Mat4 // Rotation only
	LinearVelocity() math.Vec3
}

// WheelState is the per-tick pose of one wheel.
type WheelState struct {
	Position   math.Vec3 // World space
	SteerAngle float32   // Degrees
	AxisAngle  float32   // Degrees of roll about the axle
}

// Vehicle is a chassis body with raycast wheels.
type Vehicle interface {
	Chassis() Body
	SetDrive(maxSteerAngle, steerRate, driveTorque float32)
	SetAccelerate(v float32)
	SetSteer(v float32)
	SetHandbrake(v float32)
	Wheels() []WheelState
}

// World is the engine itself. Only the simulation loop integrates it.
type World interface {
	SetGravity(g math.Vec3)
	Integrate(dt float32)
	AddStaticMesh(c collision.StaticCollider) (Body, error)
	AddVehicle(cfg VehicleConfig) (Vehicle, error)
	RemoveBody(b Body)
}

// DriveConfig holds the drivetrain parameters.
type DriveConfig struct {
	MaxSteerAngle float32 // Degrees
	SteerRate     float32
	DriveTorque   float32
}

// WheelConfig describes one wheel relative to the chassis origin.
type WheelConfig struct {
	Position        math.Vec3
	Radius          float32
	Travel          float32
	SideFriction    float32
	ForwardFriction float32
	RestingFrac     float32
	DampingFrac     float32
	Rays            int
}

// VehicleConfig is everything needed to add a car to the world.
type VehicleConfig struct {
	Position    math.Vec3
	HeadingDeg  float32 // Rotation about Y
	HalfExtents math.Vec3 // Chassis box, half the edge lengths
	Mass        float32
	Drive       DriveConfig
	Wheels      []WheelConfig
}

// GridConfig sets up the engine's broad-phase grid.
type GridConfig struct {
	Origin   math.Vec3
	Cells    [3]int
	CellSize math.Vec3
}
