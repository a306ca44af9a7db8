// Package vehicle derives a car's physical rig from its visual model.
package vehicle

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/physics"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/math"
)

// Rig dimensions.
const (
	CarScaleFactor = track.ScaleFactor / 20 // Car model units to world units
	CarScaleY      = 0.75                   // Chassis box height relative to the model
	WheelScale     = 1
	StartClearance = 0.1

	CameraNearFactor = 1.2
	CameraFarFactor  = 1.5
)

// Chassis and wheel parameters handed to the physics engine.
const (
	ChassisMass   = 1000
	MaxSteerAngle = 50
	SteerRate     = 3
	DriveTorque   = 2500

	WheelTravel          = 0.2
	WheelSideFriction    = 1.2
	WheelForwardFriction = 2.6
	WheelRestingFrac     = 0.2
	WheelDampingFrac     = 0.8
	WheelRays            = 10
)

// ErrNoWheels is returned for a car without wheel data.
var ErrNoWheels = errors.New("car has no wheels")

// Initial camera offsets from the start position, per start orientation.
var cameraOffsets = [4]math.Vec3{
	{X: 0, Y: 0, Z: 100},
	{X: 100, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: -100},
	{X: -100, Y: 0, Z: 0},
}

// WheelSpec is one wheel as authored for a car.
type WheelSpec struct {
	Radius   float32
	Width    float32
	Position math.Vec3 // Relative to the model origin, world units
}

// CameraFollow holds the chase camera distance band.
type CameraFollow struct {
	Near float32
	Far  float32
}

// Rig is the physical configuration of one car on one track.
type Rig struct {
	Car           string
	Bounds        mesh.Bounds // Scaled, unsquashed
	SideLengths   math.Vec3   // Chassis box edge lengths
	HalfExtents   math.Vec3   // Box shape handed to the engine
	Recenter      math.Vec3 // Applied to wheel anchors and the visual model
	WheelAnchors  []math.Vec3
	Wheels        []WheelSpec // Scaled
	StartPosition math.Vec3
	StartHeading  float32 // Degrees about Y
	Camera        CameraFollow
	CameraEye     math.Vec3
}

// Build computes the rig for a car model placed at the track start.
func Build(car string, model *mesh.Model, wheels []WheelSpec, start track.StartInfo) (*Rig, error) {
	if model == nil || len(model.Vertices) == 0 {
		return nil, fmt.Errorf("car %s: %w", car, mesh.ErrEmptyModel)
	}
	if len(wheels) == 0 {
		return nil, fmt.Errorf("car %s: %w", car, ErrNoWheels)
	}

	raw, err := mesh.ComputeBounds(model.Vertices)
	if err != nil {
		return nil, fmt.Errorf("car %s: %w", car, err)
	}

	b := mesh.Bounds{
		Min: raw.Min.Scale(CarScaleFactor),
		Max: raw.Max.Scale(CarScaleFactor),
	}
	size := b.Size()
	shrink := size.Y * (1 - CarScaleY)

	r := &Rig{
		Car:          car,
		Bounds:       b,
		SideLengths:  math.Vec3{X: size.X, Y: size.Y * CarScaleY, Z: size.Z},
		StartHeading: float32(start.Orientation) * 90,
	}
	r.HalfExtents = r.SideLengths.Scale(0.5)

	// The collision box must sit at the body origin; shift everything else
	// so the wheels stay where the unsquashed model has them.
	r.Recenter = b.Min.Add(b.Max).Add(math.Vec3{Y: shrink}).Scale(-0.5)

	var maxRadius float32
	for _, w := range wheels {
		scaled := WheelSpec{
			Radius:   w.Radius * WheelScale,
			Width:    w.Width * WheelScale,
			Position: w.Position.Scale(WheelScale),
		}
		r.Wheels = append(r.Wheels, scaled)
		r.WheelAnchors = append(r.WheelAnchors, scaled.Position.Add(r.Recenter))
		maxRadius = max(maxRadius, scaled.Radius)
	}

	r.StartPosition = track.TileWorldPosition(start.X, start.Y)
	r.StartPosition.Y = shrink/2 + maxRadius + StartClearance
	if start.Elevated {
		r.StartPosition.Y += track.ElevationOffset()
	}

	near := size.Length() * CameraNearFactor
	r.Camera = CameraFollow{Near: near, Far: near * CameraFarFactor}
	r.CameraEye = r.StartPosition.Add(cameraOffsets[start.Orientation&3])

	return r, nil
}

// VehicleConfig returns the engine configuration for the rig.
func (r *Rig) VehicleConfig() physics.VehicleConfig {
	cfg := physics.VehicleConfig{
		Position:    r.StartPosition,
		HeadingDeg:  r.StartHeading,
		HalfExtents: r.HalfExtents,
		Mass:        ChassisMass,
		Drive: physics.DriveConfig{
			MaxSteerAngle: MaxSteerAngle,
			SteerRate:     SteerRate,
			DriveTorque:   DriveTorque,
		},
	}
	for i, anchor := range r.WheelAnchors {
		cfg.Wheels = append(cfg.Wheels, physics.WheelConfig{
			Position:        anchor,
			Radius:          r.Wheels[i].Radius,
			Travel:          WheelTravel,
			SideFriction:    WheelSideFriction,
			ForwardFriction: WheelForwardFriction,
			RestingFrac:     WheelRestingFrac,
			DampingFrac:     WheelDampingFrac,
			Rays:            WheelRays,
		})
	}
	return cfg
}

// ModelTransform scales the car's visual model to world units.
func ModelTransform() math.Mat4 {
	return math.Scale(CarScaleFactor, CarScaleFactor, CarScaleFactor)
}
