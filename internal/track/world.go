package track

import "github.com/Faultbox/stunts/pkg/math"

// World scale. A tile is a 205-foot square; models are authored with
// 1024 units per tile edge.
const (
	EdgeLength  = 0.3048 * 205 // Tile edge in world units
	EdgeSize    = 1024         // Tile edge in model units
	HillHeight  = 450          // Hill top height in model units
	ScaleFactor = EdgeLength / EdgeSize
)

// TrackOffset is where the merged track sits in the world: one tile in
// along x and z, keeping collision geometry at non-negative coordinates.
var TrackOffset = math.Vec3{X: EdgeLength, Y: 0, Z: EdgeLength}

// TileWorldPosition returns the world position of a tile centre on the
// ground plane, track offset included.
func TileWorldPosition(x, y int) math.Vec3 {
	return math.Vec3{
		X: float32(x+1) * EdgeLength,
		Y: 0,
		Z: float32(y+1) * EdgeLength,
	}
}

// ElevationOffset is the world height of a hill top.
func ElevationOffset() float32 {
	return HillHeight * ScaleFactor
}
