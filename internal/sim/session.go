// Package sim owns the active track and car and steps the physics world.
package sim

import (
	"errors"
	"fmt"
	gomath "math"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stunts/internal/assets"
	"github.com/Faultbox/stunts/internal/engine/camera"
	"github.com/Faultbox/stunts/internal/engine/collision"
	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/engine/scene"
	"github.com/Faultbox/stunts/internal/logger"
	"github.com/Faultbox/stunts/internal/physics"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/internal/vehicle"
	"github.com/Faultbox/stunts/pkg/formats"
	"github.com/Faultbox/stunts/pkg/math"
)

// Session errors.
var (
	ErrNoTrack    = errors.New("no track loaded")
	ErrUnknownCar = errors.New("unknown car")
)

// Library is the asset lookup a session builds from.
type Library interface {
	mesh.ModelSource
	scene.MaterialSource
	Car(name string) (*assets.Car, bool)
}

// Track is the active track. It is immutable once built.
type Track struct {
	TRK        *formats.TRK
	Resolution *track.Resolution
	Visual     *mesh.Geometry
	VisualMesh *scene.FlatMesh
	Physical   *mesh.Geometry
	Collision  *collision.Mesh

	body physics.Body
}

// Start returns where the car is placed.
func (t *Track) Start() track.StartInfo {
	return t.Resolution.Start
}

// Vehicle is the active car.
type Vehicle struct {
	Rig         *vehicle.Rig
	ChassisMesh *scene.FlatMesh
	WheelMesh   *scene.FlatMesh
	Camera      *camera.Chase

	handle physics.Vehicle
}

// Chassis returns the car's rigid body.
func (v *Vehicle) Chassis() physics.Body {
	return v.handle.Chassis()
}

// ChassisTransform places the chassis mesh: body pose, then the recentre
// offset that lines the model up with the collision box.
func (v *Vehicle) ChassisTransform() math.Mat4 {
	body := v.handle.Chassis()
	p := body.Position()
	r := v.Rig.Recenter
	return math.Translate(p.X, p.Y, p.Z).
		Mul(body.Orientation()).
		Mul(math.Translate(r.X, r.Y, r.Z))
}

// WheelTransforms places the wheel mesh once per wheel.
func (v *Vehicle) WheelTransforms() []math.Mat4 {
	states := v.handle.Wheels()
	out := make([]math.Mat4, 0, len(states))
	for i, w := range states {
		if i >= len(v.Rig.Wheels) {
			break
		}
		wheel := v.Rig.Wheels[i]
		out = append(out, math.Translate(w.Position.X, w.Position.Y, w.Position.Z).
			Mul(math.RotateY(math.Radians(w.SteerAngle))).
			Mul(math.RotateX(math.Radians(w.AxisAngle))).
			Mul(math.Scale(wheel.Width, wheel.Radius, wheel.Radius)))
	}
	return out
}

// Session is the simulation state: the physics world, what is loaded into
// it, and the tick clock. It is driven from a single goroutine.
type Session struct {
	world physics.World
	lib   Library
	cat   *track.Catalog

	car      int
	controls Controls
	lastTick time.Time

	track   *Track
	vehicle *Vehicle
}

// New creates a session with nothing loaded.
func New(world physics.World, lib Library, cat *track.Catalog, car int) *Session {
	world.SetGravity(math.Vec3{Y: -Gravity})
	return &Session{
		world: world,
		lib:   lib,
		cat:   cat,
		car:   car,
	}
}

// Track returns the active track, or nil.
func (s *Session) Track() *Track { return s.track }

// Vehicle returns the active car, or nil.
func (s *Session) Vehicle() *Vehicle { return s.vehicle }

// Car returns the selected car index.
func (s *Session) Car() int { return s.car }

// CarName returns the selected car's name.
func (s *Session) CarName() string { return vehicle.CarName(s.car) }

// LoadTrackFile reads and loads a TRK file.
func (s *Session) LoadTrackFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading track: %w", err)
	}
	if err := s.LoadTrack(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadTrack replaces the active track and car. Everything is built before
// the world is touched; on error the previous track and car stay active.
func (s *Session) LoadTrack(data []byte) error {
	trk, err := formats.ParseTRK(data)
	if err != nil {
		simLog().Warn("track rejected", zap.Error(err))
		return err
	}

	t, err := s.buildTrack(trk)
	if err != nil {
		simLog().Warn("track rejected", zap.Error(err))
		return err
	}

	v, err := s.buildVehicle(t.Start(), s.car)
	if err != nil {
		simLog().Warn("track rejected", zap.Error(err))
		return err
	}

	t.body, err = s.world.AddStaticMesh(collision.NewTrackCollider(t.Collision))
	if err != nil {
		return fmt.Errorf("adding track body: %w", err)
	}

	if err := s.swapVehicle(v); err != nil {
		s.world.RemoveBody(t.body)
		return err
	}

	if s.track != nil {
		s.world.RemoveBody(s.track.body)
	}
	s.track = t

	start := t.Start()
	simLog().Info("track loaded",
		zap.Int("start_x", start.X),
		zap.Int("start_y", start.Y),
		zap.Int("orientation", start.Orientation),
		zap.Bool("elevated", start.Elevated),
		zap.Int("track_items", len(t.Resolution.TrackItems)),
		zap.Int("terrain_items", len(t.Resolution.TerrainItems)),
		zap.Int("triangles", len(t.Collision.Triangles)))
	return nil
}

// SelectCar switches to car index (wrapped into the car list) and places
// it at the start.
func (s *Session) SelectCar(index int) error {
	if s.track == nil {
		s.car = index
		return nil
	}

	v, err := s.buildVehicle(s.track.Start(), index)
	if err != nil {
		simLog().Warn("car rejected", zap.Int("car", index), zap.Error(err))
		return err
	}
	if err := s.swapVehicle(v); err != nil {
		return err
	}
	s.car = index

	simLog().Info("car selected", zap.Int("car", index), zap.String("name", v.Rig.Car))
	return nil
}

// NextCar switches to the next car in the list.
func (s *Session) NextCar() error {
	return s.SelectCar(s.car + 1)
}

// ResetCar puts the current car back at the start.
func (s *Session) ResetCar() error {
	if s.track == nil {
		return ErrNoTrack
	}
	return s.SelectCar(s.car)
}

func (s *Session) buildTrack(trk *formats.TRK) (*Track, error) {
	res, err := track.Resolve(trk, s.cat)
	if err != nil {
		return nil, err
	}

	visual, physical, err := track.Layout(res, s.cat)
	if err != nil {
		return nil, err
	}

	t := &Track{TRK: trk, Resolution: res}
	if t.Visual, err = mesh.Merge(s.lib, visual); err != nil {
		return nil, fmt.Errorf("visual geometry: %w", err)
	}
	if t.Physical, err = mesh.Merge(s.lib, physical); err != nil {
		return nil, fmt.Errorf("physical geometry: %w", err)
	}
	if t.VisualMesh, err = scene.Flatten(t.Visual, s.lib); err != nil {
		return nil, fmt.Errorf("visual mesh: %w", err)
	}
	t.Collision = collision.Build(t.Physical)

	return t, nil
}

func (s *Session) buildVehicle(start track.StartInfo, index int) (*Vehicle, error) {
	name := vehicle.CarName(index)
	car, ok := s.lib.Car(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCar, name)
	}

	rig, err := vehicle.Build(name, car.Model, car.Wheels, start)
	if err != nil {
		return nil, err
	}

	chassis, err := mesh.Merge(mesh.Map{name: car.Model}, []mesh.Placement{{Transform: vehicle.ModelTransform(), Model: name}})
	if err != nil {
		return nil, err
	}

	v := &Vehicle{
		Rig:    rig,
		Camera: camera.NewChase(rig.CameraEye, rig.Camera.Near, rig.Camera.Far),
	}
	if v.ChassisMesh, err = scene.Flatten(chassis, s.lib); err != nil {
		return nil, fmt.Errorf("car %s: %w", name, err)
	}

	wheel, ok := s.lib.Model(assets.WheelModel)
	if !ok {
		return nil, fmt.Errorf("%w: %s", mesh.ErrUnknownModel, assets.WheelModel)
	}
	if v.WheelMesh, err = scene.Flatten(wheel, s.lib); err != nil {
		return nil, fmt.Errorf("wheel: %w", err)
	}

	return v, nil
}

// swapVehicle removes the active car from the world and adds v. If the
// world refuses v, the previous car goes back at the pose it was removed
// from, at rest.
func (s *Session) swapVehicle(v *Vehicle) error {
	prev := s.vehicle
	var prevCfg physics.VehicleConfig
	if prev != nil {
		prevCfg = currentConfig(prev)
		s.world.RemoveBody(prev.handle.Chassis())
	}

	h, err := s.world.AddVehicle(v.Rig.VehicleConfig())
	if err != nil {
		s.vehicle = nil
		if prev != nil {
			if ph, rerr := s.world.AddVehicle(prevCfg); rerr == nil {
				prev.handle = ph
				s.vehicle = prev
				s.applyControls()
			} else {
				simLog().Error("restoring car failed", zap.Error(rerr))
			}
		}
		return fmt.Errorf("adding car: %w", err)
	}

	v.handle = h
	s.vehicle = v
	s.applyControls()
	return nil
}

// currentConfig is the engine config for v placed at its chassis' current
// position and heading.
func currentConfig(v *Vehicle) physics.VehicleConfig {
	cfg := v.Rig.VehicleConfig()
	body := v.handle.Chassis()
	cfg.Position = body.Position()
	cfg.HeadingDeg = headingDeg(body.Orientation())
	return cfg
}

// headingDeg recovers the rotation about Y from an orientation matrix.
func headingDeg(m math.Mat4) float32 {
	return float32(gomath.Atan2(float64(m[8]), float64(m[0])) * 180 / gomath.Pi)
}

func simLog() *zap.Logger {
	return logger.Named("sim")
}
