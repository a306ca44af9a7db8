package formats

import (
	"errors"
	"fmt"
	"os"
)

// TRK layout constants.
const (
	TRKSize          = 1802 // Total file size in bytes
	TRKGridSize      = 30   // Tiles per side
	TRKTerrainOffset = 901  // Start of the terrain layer
)

// TRK format errors.
var (
	ErrInvalidTRKSize = errors.New("invalid TRK size")
)

// TRK represents a decoded Stunts track file.
//
// Both layers are indexed [y][x]. The track layer is stored vertically
// mirrored in the file; Track holds it in world row order.
type TRK struct {
	Track   [TRKGridSize][TRKGridSize]uint8
	Terrain [TRKGridSize][TRKGridSize]uint8
}

// ParseTRK parses a track file from raw bytes.
// Any length other than TRKSize is rejected without a partial parse.
func ParseTRK(data []byte) (*TRK, error) {
	if len(data) != TRKSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidTRKSize, len(data), TRKSize)
	}

	trk := &TRK{}
	for y := 0; y < TRKGridSize; y++ {
		for x := 0; x < TRKGridSize; x++ {
			trk.Track[y][x] = data[(TRKGridSize-1-y)*TRKGridSize+x]
			trk.Terrain[y][x] = data[TRKTerrainOffset+y*TRKGridSize+x]
		}
	}

	return trk, nil
}

// ParseTRKFile parses a track file from disk.
func ParseTRKFile(path string) (*TRK, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TRK file: %w", err)
	}
	return ParseTRK(data)
}

// Encode returns the on-disk representation of the track.
// Byte 900 and the trailing byte are written as zero.
func (t *TRK) Encode() []byte {
	data := make([]byte, TRKSize)
	for y := 0; y < TRKGridSize; y++ {
		for x := 0; x < TRKGridSize; x++ {
			data[(TRKGridSize-1-y)*TRKGridSize+x] = t.Track[y][x]
			data[TRKTerrainOffset+y*TRKGridSize+x] = t.Terrain[y][x]
		}
	}
	return data
}

// CountCodes returns how often each code occurs in the track layer.
func (t *TRK) CountCodes() map[uint8]int {
	counts := make(map[uint8]int)
	for y := range t.Track {
		for _, c := range t.Track[y] {
			counts[c]++
		}
	}
	return counts
}
