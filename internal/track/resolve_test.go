package track

import (
	"errors"
	"testing"

	"github.com/Faultbox/stunts/pkg/formats"
)

// newTRK returns a track with grass terrain, no pieces and a start tile
// at (0,0) unless the caller overwrites it.
func newTRK() *formats.TRK {
	trk := &formats.TRK{}
	trk.Track[0][0] = 0x01
	return trk
}

func itemsAt(items []PlacedItem, x, y int) []PlacedItem {
	var out []PlacedItem
	for _, it := range items {
		if it.X == x && it.Y == y {
			out = append(out, it)
		}
	}
	return out
}

func TestResolve_FillersNeverPlaced(t *testing.T) {
	cat := DefaultCatalog()
	terrains := []uint8{0x00, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x01}

	for _, filler := range fillerCodes {
		for _, terrain := range terrains {
			trk := newTRK()
			trk.Track[5][5] = uint8(filler)
			trk.Terrain[5][5] = terrain

			res, err := Resolve(trk, cat)
			if err != nil {
				t.Fatalf("filler 0x%02X on terrain 0x%02X: %v", filler, terrain, err)
			}
			if got := itemsAt(res.TrackItems, 5, 5); len(got) != 0 {
				t.Errorf("filler 0x%02X on terrain 0x%02X produced %v", filler, terrain, got)
			}
		}
	}
}

func TestResolve_Composite(t *testing.T) {
	tests := []struct {
		code uint8
		want [2]TileCode
	}{
		{0x65, [2]TileCode{0x67, 0x05}},
		{0x66, [2]TileCode{0x68, 0x04}},
	}

	for _, tc := range tests {
		for _, terrain := range []uint8{0x00, 0x06, 0x07, 0x08, 0x09, 0x0A} {
			trk := newTRK()
			trk.Track[3][4] = tc.code
			trk.Terrain[3][4] = terrain

			res, err := Resolve(trk, DefaultCatalog())
			if err != nil {
				t.Fatalf("0x%02X on 0x%02X: %v", tc.code, terrain, err)
			}

			got := itemsAt(res.TrackItems, 4, 3)
			if len(got) != 2 {
				t.Fatalf("0x%02X on 0x%02X: expected 2 items, got %v", tc.code, terrain, got)
			}
			if got[0].ID != tc.want[0] || got[1].ID != tc.want[1] {
				t.Errorf("0x%02X on 0x%02X: got ids 0x%02X,0x%02X, want 0x%02X,0x%02X",
					tc.code, terrain, got[0].ID, got[1].ID, tc.want[0], tc.want[1])
			}
			wantElevated := terrain == uint8(ElevatedMarker)
			if got[0].Elevated != wantElevated || got[1].Elevated != wantElevated {
				t.Errorf("0x%02X on 0x%02X: elevated flag wrong: %v", tc.code, terrain, got)
			}
		}
	}
}

func TestResolve_SlopeRemap(t *testing.T) {
	tests := []struct {
		name    string
		track   uint8
		terrain uint8
		want    TileCode
	}{
		{"ramp on slope 07", 0x27, 0x07, 0x67},
		{"ramp on slope 08 unmapped", 0x27, 0x08, 0x27},
		{"paved road on 07", 0x04, 0x07, 0xD0},
		{"paved road on 09", 0x04, 0x09, 0xD2},
		{"dirt road on 08", 0x0F, 0x08, 0xD5},
		{"icy road on 0A", 0x19, 0x0A, 0xDB},
		{"dirt ramp on 09", 0x3A, 0x09, 0x67},
		{"icy ramp on 0A", 0x60, 0x0A, 0x68},
		{"flat ground", 0x04, 0x00, 0x04},
		{"hill top", 0x05, 0x06, 0x05},
	}

	for _, tc := range tests {
		trk := newTRK()
		trk.Track[10][10] = tc.track
		trk.Terrain[10][10] = tc.terrain

		res, err := Resolve(trk, DefaultCatalog())
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		got := itemsAt(res.TrackItems, 10, 10)
		if len(got) != 1 || got[0].ID != tc.want {
			t.Errorf("%s: got %v, want id 0x%02X", tc.name, got, tc.want)
		}
	}
}

func TestResolve_StartInfo(t *testing.T) {
	trk := &formats.TRK{}
	trk.Track[7][12] = 0x88
	trk.Terrain[7][12] = uint8(ElevatedMarker)

	res, err := Resolve(trk, DefaultCatalog())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := StartInfo{X: 12, Y: 7, Orientation: 3, Elevated: true}
	if res.Start != want {
		t.Errorf("start: got %+v, want %+v", res.Start, want)
	}
}

func TestResolve_FirstStartWins(t *testing.T) {
	trk := &formats.TRK{}
	trk.Track[2][9] = 0x94
	trk.Track[20][1] = 0x01

	res, err := Resolve(trk, DefaultCatalog())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Start.X != 9 || res.Start.Y != 2 || res.Start.Orientation != 1 {
		t.Errorf("expected first start at (9,2) o1, got %+v", res.Start)
	}
}

func TestResolve_EveryStartCode(t *testing.T) {
	cat := DefaultCatalog()
	for _, code := range startCodes {
		trk := &formats.TRK{}
		trk.Track[4][6] = uint8(code)

		res, err := Resolve(trk, cat)
		if err != nil {
			t.Fatalf("start 0x%02X: %v", code, err)
		}
		if res.Start.X != 6 || res.Start.Y != 4 {
			t.Errorf("start 0x%02X: got %+v", code, res.Start)
		}
		if res.Start.Orientation != cat.Track[code].Orientation {
			t.Errorf("start 0x%02X: orientation %d, want %d", code, res.Start.Orientation, cat.Track[code].Orientation)
		}
	}
}

func TestResolve_MissingStartTile(t *testing.T) {
	trk := &formats.TRK{}
	trk.Track[1][1] = 0x04

	res, err := Resolve(trk, DefaultCatalog())
	if !errors.Is(err, ErrMissingStartTile) {
		t.Errorf("expected ErrMissingStartTile, got %v", err)
	}
	if res != nil {
		t.Error("expected no resolution on error")
	}
}

func TestResolve_EveryPieceCode(t *testing.T) {
	cat := DefaultCatalog()

	for code := TrackCodeMin; code <= TrackCodeMax; code++ {
		trk := newTRK()
		trk.Track[4][4] = uint8(code)

		res, err := Resolve(trk, cat)
		if err != nil {
			t.Errorf("code 0x%02X: %v", uint8(code), err)
			continue
		}
		if len(itemsAt(res.TrackItems, 4, 4)) == 0 {
			t.Errorf("code 0x%02X placed nothing", uint8(code))
		}
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	trk := newTRK()
	trk.Track[8][8] = 0xC7

	if _, err := Resolve(trk, DefaultCatalog()); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("expected ErrUnknownTile for track code, got %v", err)
	}

	trk = newTRK()
	trk.Terrain[8][8] = 0x40
	if _, err := Resolve(trk, DefaultCatalog()); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("expected ErrUnknownTile for terrain code, got %v", err)
	}
}

func TestResolve_TerrainSuppressedUnderSlopeRoad(t *testing.T) {
	tests := []struct {
		track, terrain uint8
		suppressed     bool
	}{
		{0x04, 0x07, true},
		{0x0E, 0x09, true},
		{0x18, 0x07, true},
		{0x05, 0x08, true},
		{0x0F, 0x0A, true},
		{0x19, 0x08, true},
		{0x05, 0x07, false}, // wrong direction
		{0x04, 0x08, false},
		{0x27, 0x07, false}, // ramp keeps the terrain
		{0x04, 0x06, false},
	}

	for _, tc := range tests {
		trk := newTRK()
		trk.Track[15][15] = tc.track
		trk.Terrain[15][15] = tc.terrain

		res, err := Resolve(trk, DefaultCatalog())
		if err != nil {
			t.Fatalf("0x%02X on 0x%02X: %v", tc.track, tc.terrain, err)
		}

		got := itemsAt(res.TerrainItems, 15, 15)
		if tc.suppressed && len(got) != 0 {
			t.Errorf("0x%02X on 0x%02X: terrain should be suppressed, got %v", tc.track, tc.terrain, got)
		}
		if !tc.suppressed && (len(got) != 1 || got[0].ID != TileCode(tc.terrain)) {
			t.Errorf("0x%02X on 0x%02X: expected one terrain item, got %v", tc.track, tc.terrain, got)
		}
	}
}

func TestResolve_TerrainCoversGrid(t *testing.T) {
	trk := newTRK()
	trk.Terrain[0][1] = uint8(ElevatedMarker)

	res, err := Resolve(trk, DefaultCatalog())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(res.TerrainItems) != formats.TRKGridSize*formats.TRKGridSize {
		t.Errorf("expected %d terrain items, got %d", formats.TRKGridSize*formats.TRKGridSize, len(res.TerrainItems))
	}
	for _, it := range res.TerrainItems {
		if it.Elevated != (it.X == 1 && it.Y == 0) {
			t.Errorf("terrain item %+v has wrong elevated flag", it)
		}
	}
	if len(res.TrackItems) != 1 {
		t.Errorf("expected only the start tile, got %v", res.TrackItems)
	}
}
