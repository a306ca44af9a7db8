// Package mesh merges placed models into a single indexed geometry.
package mesh

import (
	"errors"

	"github.com/Faultbox/stunts/pkg/math"
)

// Mesh errors.
var (
	ErrUnknownModel = errors.New("unknown model")
	ErrEmptyModel   = errors.New("model has no vertices")
	ErrBadIndex     = errors.New("face index out of range")
)

// Face is a polygon referencing vertices of the same model by index.
type Face struct {
	Material int
	Bias     int // Depth bias class: 0, 1 or 2
	Indices  []uint32
}

// Model is an indexed polygon mesh. A merged track or car is a Model too.
type Model struct {
	Vertices []math.Vec3
	Faces    []Face
}

// Geometry is the result of merging placed models.
type Geometry = Model

// Placement positions one named model in the merged output.
type Placement struct {
	Transform math.Mat4
	Model     string
}

// ModelSource looks models up by name.
type ModelSource interface {
	Model(name string) (*Model, bool)
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
