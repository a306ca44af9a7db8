package physics

import (
	"testing"

	"github.com/Faultbox/stunts/internal/engine/collision"
	"github.com/Faultbox/stunts/pkg/math"
)

func testVehicleConfig() VehicleConfig {
	return VehicleConfig{
		Position: math.Vec3{X: 100, Y: 5, Z: 100},
		Mass:     1000,
		Drive:    DriveConfig{MaxSteerAngle: 50, SteerRate: 3, DriveTorque: 2500},
		Wheels: []WheelConfig{
			{Position: math.Vec3{X: -1, Y: -0.5, Z: 1}, Radius: 0.4},
			{Position: math.Vec3{X: 1, Y: -0.5, Z: 1}, Radius: 0.4},
			{Position: math.Vec3{X: -1, Y: -0.5, Z: -1}, Radius: 0.4},
			{Position: math.Vec3{X: 1, Y: -0.5, Z: -1}, Radius: 0.4},
		},
	}
}

func TestKinematic_FallsAndRests(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	w.SetGravity(math.Vec3{Y: -9.81})
	if _, err := w.AddStaticMesh(collision.StaticCollider{}); err != nil {
		t.Fatalf("AddStaticMesh: %v", err)
	}
	v, err := w.AddVehicle(testVehicleConfig())
	if err != nil {
		t.Fatalf("AddVehicle: %v", err)
	}

	for i := 0; i < 2000; i++ {
		w.Integrate(0.01)
	}

	// Ride height is radius minus the anchor's Y.
	if y := v.Chassis().Position().Y; y < 0.899 || y > 0.901 {
		t.Errorf("rest height = %v, want 0.9", y)
	}
}

func TestKinematic_FallsThroughWithoutTrack(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	w.SetGravity(math.Vec3{Y: -9.81})
	v, _ := w.AddVehicle(testVehicleConfig())

	for i := 0; i < 200; i++ {
		w.Integrate(0.01)
	}
	if y := v.Chassis().Position().Y; y >= 0 {
		t.Errorf("y = %v, want below ground", y)
	}
}

func TestKinematic_Throttle(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	v, _ := w.AddVehicle(testVehicleConfig())
	start := v.Chassis().Position()

	v.SetAccelerate(-1)
	for i := 0; i < 50; i++ {
		w.Integrate(0.01)
	}

	// Heading 0 faces +Z.
	if p := v.Chassis().Position(); p.Z <= start.Z {
		t.Errorf("forward throttle moved z %v -> %v", start.Z, p.Z)
	}
	if vel := v.Chassis().LinearVelocity(); vel.Z <= 0 {
		t.Errorf("velocity z = %v, want > 0", vel.Z)
	}
}

func TestKinematic_Steering(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	v, _ := w.AddVehicle(testVehicleConfig())

	v.SetSteer(1)
	wheels := v.Wheels()
	if len(wheels) != 4 {
		t.Fatalf("got %d wheels", len(wheels))
	}
	if wheels[0].SteerAngle != 50 || wheels[1].SteerAngle != 50 {
		t.Errorf("front steer = %v, %v, want 50", wheels[0].SteerAngle, wheels[1].SteerAngle)
	}
	if wheels[2].SteerAngle != 0 {
		t.Errorf("rear steer = %v, want 0", wheels[2].SteerAngle)
	}
}

func TestKinematic_ClampedToGrid(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	cfg := testVehicleConfig()
	cfg.Position.X = -1000
	v, _ := w.AddVehicle(cfg)

	w.Integrate(0.01)
	if x := v.Chassis().Position().X; x != DefaultGrid().Origin.X {
		t.Errorf("x = %v, want clamped to %v", x, DefaultGrid().Origin.X)
	}
}

func TestKinematic_RemoveBody(t *testing.T) {
	w := NewKinematic(DefaultGrid())
	track, _ := w.AddStaticMesh(collision.StaticCollider{})
	v, _ := w.AddVehicle(testVehicleConfig())

	w.RemoveBody(v.Chassis())
	if len(w.vehicles) != 0 {
		t.Errorf("vehicles = %d after removal", len(w.vehicles))
	}
	w.RemoveBody(track)
	if len(w.statics) != 0 {
		t.Errorf("statics = %d after removal", len(w.statics))
	}
}
