package track

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stunts/pkg/formats"
)

// ElevatedMarker is the terrain code of a hill top.
const ElevatedMarker TileCode = 0x06

// ErrMissingStartTile is returned when a track has no start/finish tile.
var ErrMissingStartTile = errors.New("track has no start tile")

// PlacedItem is one resolved tile to be turned into model placements.
type PlacedItem struct {
	X, Y     int
	Elevated bool
	ID       TileCode
}

// StartInfo locates the start/finish tile of a track.
type StartInfo struct {
	X, Y        int
	Orientation int
	Elevated    bool
}

// Resolution is the output of Resolve.
type Resolution struct {
	TrackItems   []PlacedItem
	TerrainItems []PlacedItem
	Start        StartInfo
}

// Fillers pad multi-tile pieces and carry no mesh.
var fillerCodes = [...]TileCode{0x00, 0xFD, 0xFE, 0xFF}

// Composite pieces are split into two items for modelling.
var compositeCodes = map[TileCode][2]TileCode{
	0x65: {0x67, 0x05},
	0x66: {0x68, 0x04},
}

// Start/finish tiles: three surfaces in four orientations.
var startCodes = [...]TileCode{
	0x01, 0x86, 0x93, 0xB3,
	0x87, 0x94, 0xB4,
	0x88, 0x95, 0xB5,
	0x89, 0x96,
}

// Replacements for roads on slopes, keyed by terrain code.
var slopeRemaps = map[TileCode]map[TileCode]TileCode{
	0x07: {0x27: 0x67, 0x3B: 0x67, 0x62: 0x67, 0x04: 0xD0, 0x0E: 0xD4, 0x18: 0xD8},
	0x08: {0x24: 0x68, 0x38: 0x68, 0x5F: 0x68, 0x05: 0xD1, 0x0F: 0xD5, 0x19: 0xD9},
	0x09: {0x26: 0x67, 0x3A: 0x67, 0x61: 0x67, 0x04: 0xD2, 0x0E: 0xD6, 0x18: 0xDA},
	0x0A: {0x25: 0x68, 0x39: 0x68, 0x60: 0x68, 0x05: 0xD3, 0x0F: 0xD7, 0x19: 0xDB},
}

func isFiller(code TileCode) bool {
	for _, f := range fillerCodes {
		if code == f {
			return true
		}
	}
	return false
}

// IsStartCode reports whether code is a start/finish tile.
func IsStartCode(code TileCode) bool {
	for _, s := range startCodes {
		if code == s {
			return true
		}
	}
	return false
}

// roadOnSlope reports whether the track piece's own mesh already contains
// the slope terrain underneath it.
func roadOnSlope(terrain, track TileCode) bool {
	switch terrain {
	case 0x07, 0x09:
		return track == 0x04 || track == 0x0E || track == 0x18
	case 0x08, 0x0A:
		return track == 0x05 || track == 0x0F || track == 0x19
	}
	return false
}

// Resolve converts the decoded grids into placed items.
// Every returned item has a catalog entry.
func Resolve(trk *formats.TRK, cat *Catalog) (*Resolution, error) {
	res := &Resolution{}
	haveStart := false

	for y := 0; y < formats.TRKGridSize; y++ {
		for x := 0; x < formats.TRKGridSize; x++ {
			code := TileCode(trk.Track[y][x])
			terrain := TileCode(trk.Terrain[y][x])
			elevated := terrain == ElevatedMarker

			if isFiller(code) {
				continue
			}

			if parts, ok := compositeCodes[code]; ok {
				for _, id := range parts {
					res.TrackItems = append(res.TrackItems, PlacedItem{X: x, Y: y, Elevated: elevated, ID: id})
				}
				continue
			}

			if remap, ok := slopeRemaps[terrain]; ok {
				if to, ok := remap[code]; ok {
					code = to
				}
			}

			entry, err := cat.TrackEntry(code)
			if err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", x, y, err)
			}
			res.TrackItems = append(res.TrackItems, PlacedItem{X: x, Y: y, Elevated: elevated, ID: code})

			if !haveStart && IsStartCode(code) {
				res.Start = StartInfo{X: x, Y: y, Orientation: entry.Orientation, Elevated: elevated}
				haveStart = true
			}
		}
	}

	if !haveStart {
		return nil, ErrMissingStartTile
	}

	for y := 0; y < formats.TRKGridSize; y++ {
		for x := 0; x < formats.TRKGridSize; x++ {
			terrain := TileCode(trk.Terrain[y][x])
			if roadOnSlope(terrain, TileCode(trk.Track[y][x])) {
				continue
			}
			if _, err := cat.TerrainEntry(terrain); err != nil {
				return nil, fmt.Errorf("tile (%d,%d): %w", x, y, err)
			}
			res.TerrainItems = append(res.TerrainItems, PlacedItem{X: x, Y: y, Elevated: terrain == ElevatedMarker, ID: terrain})
		}
	}

	return res, nil
}
