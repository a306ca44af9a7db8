// Package track turns a decoded track file into placed tile items and
// model placements.
package track

import (
	"errors"
	"fmt"
	"sort"
)

// TileCode is a raw tile value from either layer of a track file.
type TileCode uint8

// Catalog errors.
var (
	ErrInvalidCatalog = errors.New("invalid tile catalog")
	ErrUnknownTile    = errors.New("unknown tile code")
)

// Declared code space. Every track code in TrackCodeMin..TrackCodeMax is
// either a catalog piece or a composite split into two pieces, and every
// terrain code up to TerrainCodeMax is a catalog piece.
const (
	TrackCodeMin   TileCode = 0x01
	TrackCodeMax   TileCode = 0xB5
	TerrainCodeMax TileCode = 0x12
)

// CatalogEntry describes the sub-models placed for a resolved tile code.
type CatalogEntry struct {
	Models      []string
	Orientation int // Quarter turns about the vertical axis
	Width       int // Footprint in tiles
	Height      int
}

// Catalog maps tile codes to their entries. Track and terrain codes live
// in separate tables because the two layers reuse the same values.
type Catalog struct {
	Track   map[TileCode]CatalogEntry
	Terrain map[TileCode]CatalogEntry
}

// TrackEntry returns the track catalog entry for a code.
func (c *Catalog) TrackEntry(code TileCode) (CatalogEntry, error) {
	e, ok := c.Track[code]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: track 0x%02X", ErrUnknownTile, uint8(code))
	}
	return e, nil
}

// TerrainEntry returns the terrain catalog entry for a code.
func (c *Catalog) TerrainEntry(code TileCode) (CatalogEntry, error) {
	e, ok := c.Terrain[code]
	if !ok {
		return CatalogEntry{}, fmt.Errorf("%w: terrain 0x%02X", ErrUnknownTile, uint8(code))
	}
	return e, nil
}

// Validate checks that every code in the declared range and every code
// the resolver can produce has a well-formed entry. It is meant to run
// once at startup.
func (c *Catalog) Validate() error {
	for code, e := range c.Track {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: track 0x%02X: %v", ErrInvalidCatalog, uint8(code), err)
		}
	}
	for code, e := range c.Terrain {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: terrain 0x%02X: %v", ErrInvalidCatalog, uint8(code), err)
		}
		if e.Width != 1 || e.Height != 1 {
			return fmt.Errorf("%w: terrain 0x%02X: footprint %dx%d", ErrInvalidCatalog, uint8(code), e.Width, e.Height)
		}
	}

	for code := TrackCodeMin; code <= TrackCodeMax; code++ {
		if _, ok := compositeCodes[code]; ok {
			continue
		}
		if _, ok := c.Track[code]; !ok {
			return fmt.Errorf("%w: missing track entry 0x%02X", ErrInvalidCatalog, uint8(code))
		}
	}
	for code := TileCode(0); code <= TerrainCodeMax; code++ {
		if _, ok := c.Terrain[code]; !ok {
			return fmt.Errorf("%w: missing terrain entry 0x%02X", ErrInvalidCatalog, uint8(code))
		}
	}

	for _, code := range resolvableTrackCodes() {
		if _, ok := c.Track[code]; !ok {
			return fmt.Errorf("%w: missing track entry 0x%02X", ErrInvalidCatalog, uint8(code))
		}
	}
	for _, code := range resolvableTerrainCodes() {
		if _, ok := c.Terrain[code]; !ok {
			return fmt.Errorf("%w: missing terrain entry 0x%02X", ErrInvalidCatalog, uint8(code))
		}
	}
	for code := range c.Track {
		if isFiller(code) {
			return fmt.Errorf("%w: filler 0x%02X has an entry", ErrInvalidCatalog, uint8(code))
		}
	}

	return nil
}

func (e CatalogEntry) validate() error {
	if len(e.Models) == 0 {
		return errors.New("no models")
	}
	if e.Orientation < 0 || e.Orientation > 3 {
		return fmt.Errorf("orientation %d out of range", e.Orientation)
	}
	if e.Width < 1 || e.Height < 1 {
		return fmt.Errorf("footprint %dx%d", e.Width, e.Height)
	}
	return nil
}

// ModelNames returns every sub-model name referenced by the catalog,
// sorted and without duplicates.
func (c *Catalog) ModelNames() []string {
	seen := make(map[string]bool)
	for _, table := range []map[TileCode]CatalogEntry{c.Track, c.Terrain} {
		for _, e := range table {
			for _, name := range e.Models {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolvableTrackCodes lists the codes the resolver emits on its own,
// independent of what a track file contains.
func resolvableTrackCodes() []TileCode {
	var codes []TileCode
	codes = append(codes, startCodes[:]...)
	for _, parts := range compositeCodes {
		codes = append(codes, parts[:]...)
	}
	for _, table := range slopeRemaps {
		for from, to := range table {
			codes = append(codes, from, to)
		}
	}
	return codes
}

func resolvableTerrainCodes() []TileCode {
	codes := []TileCode{ElevatedMarker}
	for t := range slopeRemaps {
		codes = append(codes, t)
	}
	return codes
}
