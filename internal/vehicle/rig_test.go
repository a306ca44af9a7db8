package vehicle

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// boxModel spans [min, max] in raw model units.
func boxModel(min, max math.Vec3) *mesh.Model {
	return &mesh.Model{
		Vertices: []math.Vec3{min, max, {X: min.X, Y: max.Y, Z: min.Z}},
	}
}

var testWheels = []WheelSpec{
	{Radius: 0.3, Width: 0.2, Position: math.Vec3{X: -0.8, Y: 0, Z: 1.2}},
	{Radius: 0.35, Width: 0.2, Position: math.Vec3{X: 0.8, Y: 0, Z: -1.2}},
}

func TestBuild_EmptyModel(t *testing.T) {
	for _, m := range []*mesh.Model{nil, {}} {
		rig, err := Build("ansx", m, testWheels, track.StartInfo{})
		if !errors.Is(err, mesh.ErrEmptyModel) {
			t.Errorf("expected ErrEmptyModel, got %v", err)
		}
		if rig != nil {
			t.Error("expected no rig on error")
		}
	}
}

func TestBuild_NoWheels(t *testing.T) {
	_, err := Build("ansx", boxModel(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}), nil, track.StartInfo{})
	if !errors.Is(err, ErrNoWheels) {
		t.Errorf("expected ErrNoWheels, got %v", err)
	}
}

func TestBuild_Dimensions(t *testing.T) {
	min := math.Vec3{X: -1000, Y: 0, Z: -2000}
	max := math.Vec3{X: 1000, Y: 800, Z: 2000}

	rig, err := Build("ansx", boxModel(min, max), testWheels, track.StartInfo{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	s := float32(CarScaleFactor)
	wantSides := math.Vec3{X: 2000 * s, Y: 800 * s * CarScaleY, Z: 4000 * s}
	if !nearVec(rig.SideLengths, wantSides) {
		t.Errorf("side lengths: got %v, want %v", rig.SideLengths, wantSides)
	}
	if !nearVec(rig.HalfExtents, wantSides.Scale(0.5)) {
		t.Errorf("half extents: got %v", rig.HalfExtents)
	}

	shrink := 800 * s * (1 - CarScaleY)
	wantCentre := math.Vec3{X: 0, Y: -(800*s + shrink) / 2, Z: 0}
	if !nearVec(rig.Recenter, wantCentre) {
		t.Errorf("recenter: got %v, want %v", rig.Recenter, wantCentre)
	}

	for i, w := range testWheels {
		if !nearVec(rig.WheelAnchors[i], w.Position.Add(wantCentre)) {
			t.Errorf("wheel %d anchor: got %v, want %v", i, rig.WheelAnchors[i], w.Position.Add(wantCentre))
		}
	}

	wantStart := math.Vec3{
		X: 4 * track.EdgeLength,
		Y: shrink/2 + 0.35 + StartClearance,
		Z: 5 * track.EdgeLength,
	}
	if !nearVec(rig.StartPosition, wantStart) {
		t.Errorf("start position: got %v, want %v", rig.StartPosition, wantStart)
	}

	diag := float32(gomath.Sqrt(float64(2000*2000+800*800+4000*4000))) * s
	if !near(rig.Camera.Near, diag*1.2) || !near(rig.Camera.Far, diag*1.2*1.5) {
		t.Errorf("camera: got %+v, want near %v", rig.Camera, diag*1.2)
	}
}

func TestBuild_ElevatedStart(t *testing.T) {
	model := boxModel(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	flat, err := Build("ansx", model, testWheels, track.StartInfo{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	hill, err := Build("ansx", model, testWheels, track.StartInfo{X: 1, Y: 1, Elevated: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !near(hill.StartPosition.Y-flat.StartPosition.Y, track.ElevationOffset()) {
		t.Errorf("elevated start should be raised by %v, got %v",
			track.ElevationOffset(), hill.StartPosition.Y-flat.StartPosition.Y)
	}
}

func TestBuild_OrientationAndCamera(t *testing.T) {
	model := boxModel(math.Vec3{}, math.Vec3{X: 10, Y: 10, Z: 10})
	offsets := []math.Vec3{{Z: 100}, {X: 100}, {Z: -100}, {X: -100}}

	for o, off := range offsets {
		rig, err := Build("ansx", model, testWheels, track.StartInfo{Orientation: o})
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if rig.StartHeading != float32(o*90) {
			t.Errorf("orientation %d: heading %v", o, rig.StartHeading)
		}
		if !nearVec(rig.CameraEye, rig.StartPosition.Add(off)) {
			t.Errorf("orientation %d: camera eye %v", o, rig.CameraEye)
		}
	}
}

func TestVehicleConfig(t *testing.T) {
	rig, err := Build("audi", boxModel(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}), testWheels, track.StartInfo{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cfg := rig.VehicleConfig()
	if cfg.Mass != 1000 {
		t.Errorf("mass: got %v", cfg.Mass)
	}
	if cfg.Drive.MaxSteerAngle != 50 || cfg.Drive.SteerRate != 3 || cfg.Drive.DriveTorque != 2500 {
		t.Errorf("drive: got %+v", cfg.Drive)
	}
	if !nearVec(cfg.HalfExtents, rig.SideLengths.Scale(0.5)) {
		t.Errorf("half extents: got %v, want half of %v", cfg.HalfExtents, rig.SideLengths)
	}
	if cfg.Position != rig.StartPosition || cfg.HeadingDeg != rig.StartHeading {
		t.Errorf("pose: got %v at %v", cfg.Position, cfg.HeadingDeg)
	}
	if len(cfg.Wheels) != len(testWheels) {
		t.Fatalf("expected %d wheels, got %d", len(testWheels), len(cfg.Wheels))
	}
	w := cfg.Wheels[1]
	if w.Position != rig.WheelAnchors[1] || w.Radius != 0.35 || w.Rays != 10 || w.Travel != 0.2 {
		t.Errorf("wheel config: got %+v", w)
	}
}

func TestCarName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "ansx"},
		{4, "jagu"},
		{10, "pmin"},
		{11, "ansx"},
		{15, "jagu"},
		{-1, "pmin"},
	}
	for _, tc := range tests {
		if got := CarName(tc.index); got != tc.want {
			t.Errorf("CarName(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}
