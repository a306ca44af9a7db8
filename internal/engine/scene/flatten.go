// Package scene flattens merged geometry into per-vertex arrays ready for
// upload to the GPU.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stunts/internal/engine/mesh"
)

// ErrUnknownMaterial is returned when a face references a material the
// source does not define.
var ErrUnknownMaterial = errors.New("unknown material")

// MaterialType controls how the fragment shader treats a surface.
type MaterialType int

const (
	Opaque MaterialType = iota
	Transparent
	Grate
)

// Shade returns the value packed into the third material-info channel.
func (t MaterialType) Shade() float32 {
	switch t {
	case Transparent:
		return 0
	case Grate:
		return 0.5
	default:
		return 1
	}
}

// Material is one entry of the material table.
type Material struct {
	RGB       uint32 // 0xRRGGBB
	Shininess float32
	Type      MaterialType
}

// Colour returns the RGB components scaled to [0, 1].
func (m Material) Colour() [3]float32 {
	return [3]float32{
		float32(m.RGB>>16&0xff) / 255,
		float32(m.RGB>>8&0xff) / 255,
		float32(m.RGB&0xff) / 255,
	}
}

// MaterialSource looks materials up by id.
type MaterialSource interface {
	Material(id int) (Material, bool)
}

// grassMaterials always take bias class 2 and lose depth ties.
var grassMaterials = map[int]bool{16: true, 101: true, 102: true, 103: true, 104: true, 105: true}

// IsGrass reports whether a material is one of the grass surfaces.
func IsGrass(material int) bool {
	return grassMaterials[material]
}

// DepthBias maps a face's bias class to the depth offset applied in the
// vertex shader. Unknown classes pass through unchanged.
func DepthBias(material, class int) float32 {
	if IsGrass(material) {
		class = 2
	}
	switch class {
	case 0:
		return 0
	case 1:
		return -0.000005
	case 2:
		return 0.00002
	default:
		return float32(class)
	}
}

// FlatMesh holds non-indexed triangle data, three floats per vertex in
// every array.
type FlatMesh struct {
	Positions    []float32
	Normals      []float32
	Colours      []float32
	MaterialInfo []float32 // bias, shininess, type
}

// VertexCount returns the number of vertices, three per triangle.
func (m *FlatMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Flatten expands every face into a triangle fan. All vertices of a face
// share its unnormalised face normal and material.
func Flatten(g *mesh.Geometry, mats MaterialSource) (*FlatMesh, error) {
	tris := 0
	for _, f := range g.Faces {
		if len(f.Indices) >= 3 {
			tris += len(f.Indices) - 2
		}
	}

	n := tris * 9
	out := &FlatMesh{
		Positions:    make([]float32, 0, n),
		Normals:      make([]float32, 0, n),
		Colours:      make([]float32, 0, n),
		MaterialInfo: make([]float32, 0, n),
	}

	nv := uint32(len(g.Vertices))
	for fi, f := range g.Faces {
		if len(f.Indices) < 3 {
			continue
		}
		for _, ix := range f.Indices {
			if ix >= nv {
				return nil, fmt.Errorf("face %d: %w: %d >= %d", fi, mesh.ErrBadIndex, ix, nv)
			}
		}

		mat, ok := mats.Material(f.Material)
		if !ok {
			return nil, fmt.Errorf("face %d: %w: %d", fi, ErrUnknownMaterial, f.Material)
		}

		u := g.Vertices[f.Indices[0]]
		v := g.Vertices[f.Indices[1]]
		w := g.Vertices[f.Indices[2]]
		normal := w.Sub(v).Cross(v.Sub(u)).Array()
		colour := mat.Colour()
		info := [3]float32{DepthBias(f.Material, f.Bias), mat.Shininess, mat.Type.Shade()}

		for i := 1; i < len(f.Indices)-1; i++ {
			for _, ix := range [3]uint32{f.Indices[0], f.Indices[i], f.Indices[i+1]} {
				p := g.Vertices[ix].Array()
				out.Positions = append(out.Positions, p[:]...)
				out.Normals = append(out.Normals, normal[:]...)
				out.Colours = append(out.Colours, colour[:]...)
				out.MaterialInfo = append(out.MaterialInfo, info[:]...)
			}
		}
	}

	return out, nil
}
