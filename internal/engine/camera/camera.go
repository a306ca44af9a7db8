// Package camera provides the chase camera that follows the car.
package camera

import (
	"github.com/Faultbox/stunts/pkg/math"
)

// Projection defaults.
const (
	FieldOfView = 45 // Degrees
	ZNear       = 0.1
	ZFar        = 50000
)

// Chase keeps the eye within a distance band around a moving target.
type Chase struct {
	Eye math.Vec3

	// Distance band between eye and target
	Near, Far float32

	Height float32 // Eye is pulled towards a point this far above the target
	MinY   float32 // Floor for the eye
}

// NewChase creates a chase camera at eye with the given distance band.
func NewChase(eye math.Vec3, near, far float32) *Chase {
	return &Chase{
		Eye:    eye,
		Near:   near,
		Far:    far,
		Height: 2,
		MinY:   0.2,
	}
}

// Follow moves the eye after the target. The eye keeps its bearing and is
// pulled in or pushed out to stay within [Near, Far].
func (c *Chase) Follow(target math.Vec3) {
	lift := math.Vec3{Y: c.Height}

	off := c.Eye.Sub(lift).Sub(target)
	dist := off.Length()
	if dist == 0 {
		off = math.Vec3{Z: 1}
	}
	dist = min(max(dist, c.Near), c.Far)

	c.Eye = target.Add(off.Normalize().Scale(dist)).Add(lift)
	c.Eye.Y = max(c.MinY, c.Eye.Y)
}

// ViewProjection returns projection × view looking from the eye at target.
func (c *Chase) ViewProjection(target math.Vec3, aspect float32) math.Mat4 {
	proj := math.Perspective(math.Radians(FieldOfView), aspect, ZNear, ZFar)
	view := math.LookAt(c.Eye, target, math.Vec3{Y: 1})
	return proj.Mul(view)
}

// World returns vp × model, the matrix handed to the shader for one mesh.
func World(vp, model math.Mat4) math.Mat4 {
	return vp.Mul(model)
}
