// Package collision derives the static physics mesh from merged track
// geometry.
package collision

import (
	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/math"
)

// Static collider parameters for the track body.
const (
	TrackDensity = 200
	TrackMargin  = 5
)

// Road markings and corner kerbs have no physical presence.
var decorativeMaterials = map[int]bool{
	18: true, 20: true, 21: true, 27: true, 30: true, 127: true, 128: true,
}

// IsDecorative reports whether faces of the material are left out of the
// collision mesh.
func IsDecorative(material int) bool {
	return decorativeMaterials[material]
}

// Mesh is a triangle soup for a static collider.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles [][3]uint32
}

// Build triangulates every non-decorative face as a fan from its first
// vertex. Vertices are shared with the input order so indices stay valid.
func Build(g *mesh.Geometry) *Mesh {
	m := &Mesh{
		Vertices: make([]math.Vec3, len(g.Vertices)),
	}
	copy(m.Vertices, g.Vertices)

	for _, f := range g.Faces {
		if IsDecorative(f.Material) {
			continue
		}
		for j := 1; j < len(f.Indices)-1; j++ {
			m.Triangles = append(m.Triangles, [3]uint32{f.Indices[0], f.Indices[j+1], f.Indices[j]})
		}
	}

	return m
}

// StaticCollider is a mesh with its placement in the physics world.
type StaticCollider struct {
	Mesh        *Mesh
	Position    math.Vec3
	Orientation math.Mat4
	Density     float32
	Margin      float32
}

// NewTrackCollider places a collision mesh at the track offset.
func NewTrackCollider(m *Mesh) StaticCollider {
	return StaticCollider{
		Mesh:        m,
		Position:    track.TrackOffset,
		Orientation: math.Identity(),
		Density:     TrackDensity,
		Margin:      TrackMargin,
	}
}
