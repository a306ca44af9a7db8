package mesh

import (
	"fmt"

	"github.com/Faultbox/stunts/pkg/math"
)

// Merge transforms every placed model and concatenates them in order.
// Face indices are shifted by the number of vertices already emitted, so
// each face keeps pointing into its own model's segment.
func Merge(src ModelSource, placements []Placement) (*Geometry, error) {
	// Size the output up front; placements repeat the same few models.
	nv, nf := 0, 0
	models := make([]*Model, len(placements))
	for i, p := range placements {
		m, ok := src.Model(p.Model)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModel, p.Model)
		}
		models[i] = m
		nv += len(m.Vertices)
		nf += len(m.Faces)
	}

	out := &Geometry{
		Vertices: make([]math.Vec3, 0, nv),
		Faces:    make([]Face, 0, nf),
	}

	for i, p := range placements {
		m := models[i]
		base := uint32(len(out.Vertices))

		for _, v := range m.Vertices {
			out.Vertices = append(out.Vertices, p.Transform.TransformVec3(v))
		}

		for _, f := range m.Faces {
			idx := make([]uint32, len(f.Indices))
			for j, k := range f.Indices {
				idx[j] = k + base
			}
			out.Faces = append(out.Faces, Face{Material: f.Material, Bias: f.Bias, Indices: idx})
		}
	}

	return out, nil
}

// Validate checks that every face index refers to an existing vertex.
func (m *Model) Validate() error {
	n := uint32(len(m.Vertices))
	for i, f := range m.Faces {
		for _, k := range f.Indices {
			if k >= n {
				return fmt.Errorf("%w: face %d index %d (have %d vertices)", ErrBadIndex, i, k, n)
			}
		}
	}
	return nil
}

// ComputeBounds returns the bounding box of the vertices.
func ComputeBounds(vertices []math.Vec3) (Bounds, error) {
	if len(vertices) == 0 {
		return Bounds{}, ErrEmptyModel
	}

	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b, nil
}

// Map is a ModelSource backed by a plain map.
type Map map[string]*Model

// Model implements ModelSource.
func (m Map) Model(name string) (*Model, bool) {
	model, ok := m[name]
	return model, ok
}
