package track

import (
	gomath "math"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/pkg/formats"
	"github.com/Faultbox/stunts/pkg/math"
)

// Special-cased model names.
const (
	FenceModel      = "fenc"
	LakeModel       = "lake"
	LakeCornerModel = "lakc"
)

// TileTransform places a model at tile (x, y): scale to world units, move
// to the tile, then turn by quarter turns. The order matters for both the
// visual and the physical alignment.
func TileTransform(x, y float32, elevated bool, orientation int) math.Mat4 {
	var h float32
	if elevated {
		h = HillHeight
	}

	s := float32(ScaleFactor)
	return math.Scale(s, s, s).
		Mul(math.Translate(EdgeSize*x, h, EdgeSize*y)).
		Mul(math.RotateY(float32(orientation) * gomath.Pi * 0.5))
}

// Layout builds the visual and the physics-only placement lists.
//
// Order is terrain, perimeter fence, then track pieces. The physics list
// drops the lake surface and replaces a lake corner with its bare corner
// model turned half around.
func Layout(res *Resolution, cat *Catalog) (visual, physical []mesh.Placement, err error) {
	for _, item := range res.TerrainItems {
		entry, err := cat.TerrainEntry(item.ID)
		if err != nil {
			return nil, nil, err
		}

		trans := TileTransform(float32(item.X), float32(item.Y), item.Elevated, entry.Orientation)
		for _, name := range entry.Models {
			visual = append(visual, mesh.Placement{Transform: trans, Model: name})
		}

		switch entry.Models[0] {
		case LakeCornerModel:
			physical = append(physical, mesh.Placement{
				Transform: TileTransform(float32(item.X), float32(item.Y), item.Elevated, entry.Orientation+2),
				Model:     LakeCornerModel,
			})
		case LakeModel:
			// Surface only, nothing to collide with.
		default:
			physical = append(physical, visual[len(visual)-len(entry.Models):]...)
		}
	}

	for _, p := range Fence() {
		visual = append(visual, p)
		physical = append(physical, p)
	}

	for _, item := range res.TrackItems {
		entry, err := cat.TrackEntry(item.ID)
		if err != nil {
			return nil, nil, err
		}

		// Centre multi-tile pieces on their footprint.
		x := float32(item.X) + 0.5*float32(entry.Width-1)
		y := float32(item.Y) + 0.5*float32(entry.Height-1)
		trans := TileTransform(x, y, item.Elevated, entry.Orientation)

		for _, name := range entry.Models {
			p := mesh.Placement{Transform: trans, Model: name}
			visual = append(visual, p)
			physical = append(physical, p)
		}
	}

	return visual, physical, nil
}

// Fence returns one fence segment per border tile on all four sides.
func Fence() []mesh.Placement {
	const last = formats.TRKGridSize - 1

	fence := make([]mesh.Placement, 0, 4*formats.TRKGridSize)
	for i := 0; i < formats.TRKGridSize; i++ {
		f := float32(i)
		fence = append(fence,
			mesh.Placement{Transform: TileTransform(f, 0, false, 0), Model: FenceModel},
			mesh.Placement{Transform: TileTransform(f, last, false, 2), Model: FenceModel},
			mesh.Placement{Transform: TileTransform(0, f, false, 1), Model: FenceModel},
			mesh.Placement{Transform: TileTransform(last, f, false, 3), Model: FenceModel},
		)
	}
	return fence
}
