package track

// DefaultCatalog returns the built-in tile tables.
//
// The tables are literal data covering every piece code in
// TrackCodeMin..TrackCodeMax and every terrain code up to TerrainCodeMax.
// Road pieces come in three surfaces spaced ten codes apart (paved 0x04,
// dirt 0x0E, icy 0x18), and the 0xD0..0xDB range holds the road-on-slope
// meshes that the slope remap produces. Codes 0x02 and 0x03 are legacy
// straights and draw as plain paved road.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Track:   defaultTrackEntries(),
		Terrain: defaultTerrainEntries(),
	}
}

func tile(orientation int, models ...string) CatalogEntry {
	return CatalogEntry{Models: models, Orientation: orientation, Width: 1, Height: 1}
}

func wide(orientation, width, height int, models ...string) CatalogEntry {
	return CatalogEntry{Models: models, Orientation: orientation, Width: width, Height: height}
}

func defaultTrackEntries() map[TileCode]CatalogEntry {
	return map[TileCode]CatalogEntry{
		// Start/finish lines
		0x01: tile(0, "strt", "road"),
		0x02: tile(0, "road"),
		0x03: tile(1, "road"),
		0x86: tile(1, "strt", "road"),
		0x87: tile(2, "strt", "road"),
		0x88: tile(3, "strt", "road"),
		0x89: tile(0, "fin2", "road"),
		0x93: tile(0, "sdrt", "rdrt"),
		0x94: tile(1, "sdrt", "rdrt"),
		0x95: tile(2, "sdrt", "rdrt"),
		0x96: tile(3, "sdrt", "rdrt"),
		0xB3: tile(1, "sice", "rice"),
		0xB4: tile(2, "sice", "rice"),
		0xB5: tile(3, "sice", "rice"),

		// Paved road
		0x04: tile(0, "road"),
		0x05: tile(1, "road"),
		0x06: tile(0, "crnr"),
		0x07: tile(1, "crnr"),
		0x08: tile(2, "crnr"),
		0x09: tile(3, "crnr"),
		0x0A: wide(0, 2, 2, "lcrn"),
		0x0B: wide(1, 2, 2, "lcrn"),
		0x0C: wide(2, 2, 2, "lcrn"),
		0x0D: wide(3, 2, 2, "lcrn"),

		// Dirt road
		0x0E: tile(0, "rdrt"),
		0x0F: tile(1, "rdrt"),
		0x10: tile(0, "cdrt"),
		0x11: tile(1, "cdrt"),
		0x12: tile(2, "cdrt"),
		0x13: tile(3, "cdrt"),
		0x14: wide(0, 2, 2, "ldrt"),
		0x15: wide(1, 2, 2, "ldrt"),
		0x16: wide(2, 2, 2, "ldrt"),
		0x17: wide(3, 2, 2, "ldrt"),

		// Icy road
		0x18: tile(0, "rice"),
		0x19: tile(1, "rice"),
		0x1A: tile(0, "cice"),
		0x1B: tile(1, "cice"),
		0x1C: tile(2, "cice"),
		0x1D: tile(3, "cice"),
		0x1E: wide(0, 2, 2, "lice"),
		0x1F: wide(1, 2, 2, "lice"),
		0x20: wide(2, 2, 2, "lice"),
		0x21: wide(3, 2, 2, "lice"),

		// Scenery
		0x22: tile(0, "tree"),
		0x23: tile(0, "palm"),
		0x28: tile(0, "cact"),
		0x29: tile(0, "barn"),
		0x2A: tile(1, "hous"),
		0x2B: tile(0, "offi"),
		0x2C: tile(0, "wind"),
		0x2D: tile(2, "gass"),
		0x5E: tile(0, "tenn"),
		0x85: wide(0, 2, 2, "park"),
		0x92: wide(0, 2, 2, "ctrl"),

		// Ramps, one per slope direction and surface
		0x24: tile(1, "ramp"),
		0x25: tile(3, "ramp"),
		0x26: tile(2, "ramp"),
		0x27: tile(0, "ramp"),
		0x38: tile(1, "rmpd"),
		0x39: tile(3, "rmpd"),
		0x3A: tile(2, "rmpd"),
		0x3B: tile(0, "rmpd"),
		0x5F: tile(1, "rmpi"),
		0x60: tile(3, "rmpi"),
		0x61: tile(2, "rmpi"),
		0x62: tile(0, "rmpi"),

		// Multi-tile stunts
		0x3C: wide(0, 1, 2, "loop"),
		0x3D: wide(1, 2, 1, "loop"),
		0x3E: wide(0, 1, 2, "tunl", "road"),
		0x3F: wide(1, 2, 1, "tunl", "road"),
		0x40: wide(0, 1, 2, "brdg"),
		0x41: wide(1, 2, 1, "brdg"),

		// Elevated road on pillars
		0x2E: tile(0, "elrd"),
		0x2F: tile(1, "elrd"),
		0x30: tile(0, "elcr"),
		0x31: tile(1, "elcr"),
		0x32: tile(2, "elcr"),
		0x33: tile(3, "elcr"),
		0x34: tile(0, "elsp"),
		0x35: tile(1, "elsp"),
		0x36: tile(2, "elsp"),
		0x37: tile(3, "elsp"),
		0x9B: tile(0, "eldr"),
		0x9C: tile(1, "eldr"),
		0x9D: tile(2, "eldr"),
		0x9E: tile(3, "eldr"),
		0x9F: tile(0, "elic"),
		0xA0: tile(1, "elic"),
		0xA1: tile(2, "elic"),
		0xA2: tile(3, "elic"),

		// Pipes and corkscrews
		0x42: wide(0, 1, 2, "pipe"),
		0x43: wide(1, 2, 1, "pipe"),
		0x44: tile(0, "spip"),
		0x45: tile(1, "spip"),
		0x46: tile(2, "spip"),
		0x47: tile(3, "spip"),
		0x4C: wide(0, 1, 2, "cork"),
		0x4D: wide(1, 2, 1, "cork"),

		// Banked corners
		0x48: wide(0, 2, 2, "bank"),
		0x49: wide(1, 2, 2, "bank"),
		0x4A: wide(2, 2, 2, "bank"),
		0x4B: wide(3, 2, 2, "bank"),
		0x79: tile(0, "btra"),
		0x7A: tile(1, "btra"),
		0x7B: tile(2, "btra"),
		0x7C: tile(3, "btra"),

		// Chicanes, one family per surface
		0x4E: tile(0, "chi1"),
		0x4F: tile(1, "chi1"),
		0x50: tile(2, "chi1"),
		0x51: tile(3, "chi1"),
		0x52: tile(0, "chi2"),
		0x53: tile(1, "chi2"),
		0x54: tile(2, "chi2"),
		0x55: tile(3, "chi2"),
		0x8E: tile(0, "dchi"),
		0x8F: tile(1, "dchi"),
		0x90: tile(2, "dchi"),
		0x91: tile(3, "dchi"),
		0x97: tile(0, "ichi"),
		0x98: tile(1, "ichi"),
		0x99: tile(2, "ichi"),
		0x9A: tile(3, "ichi"),

		// Split road, fork then join
		0x56: tile(0, "sofs"),
		0x57: tile(1, "sofs"),
		0x58: tile(2, "sofs"),
		0x59: tile(3, "sofs"),
		0x5A: tile(0, "ssof"),
		0x5B: tile(1, "ssof"),
		0x5C: tile(2, "ssof"),
		0x5D: tile(3, "ssof"),

		// Highway
		0x63: tile(0, "hig1"),
		0x64: tile(1, "hig1"),
		0x69: tile(0, "hig2"),
		0x6A: tile(1, "hig2"),
		0x6B: tile(2, "hig2"),
		0x6C: tile(3, "hig2"),
		0x6D: tile(0, "hig3"),
		0x6E: tile(1, "hig3"),
		0x6F: tile(2, "hig3"),
		0x70: tile(3, "hig3"),
		0xA7: wide(0, 2, 2, "hcrn"),
		0xA8: wide(1, 2, 2, "hcrn"),
		0xA9: wide(2, 2, 2, "hcrn"),
		0xAA: wide(3, 2, 2, "hcrn"),

		// Bridge ramps and corners
		0x71: tile(0, "bram"),
		0x72: tile(1, "bram"),
		0x73: tile(2, "bram"),
		0x74: tile(3, "bram"),
		0x75: tile(0, "bcrn"),
		0x76: tile(1, "bcrn"),
		0x77: tile(2, "bcrn"),
		0x78: tile(3, "bcrn"),

		// Tunnel corners
		0xAB: tile(0, "tcrn", "crnr"),
		0xAC: tile(1, "tcrn", "crnr"),
		0xAD: tile(2, "tcrn", "crnr"),
		0xAE: tile(3, "tcrn", "crnr"),

		// Surface changes
		0x7D: tile(0, "pave"),
		0x7E: tile(1, "pave"),
		0x7F: tile(2, "pave"),
		0x80: tile(3, "pave"),
		0x81: tile(0, "pice"),
		0x82: tile(1, "pice"),
		0x83: tile(2, "pice"),
		0x84: tile(3, "pice"),
		0xA3: tile(0, "dice"),
		0xA4: tile(1, "dice"),
		0xA5: tile(2, "dice"),
		0xA6: tile(3, "dice"),

		// Jumps
		0x8A: tile(0, "jump"),
		0x8B: tile(1, "jump"),
		0x8C: tile(2, "jump"),
		0x8D: tile(3, "jump"),
		0xAF: tile(0, "drmp"),
		0xB0: tile(1, "drmp"),
		0xB1: tile(2, "drmp"),
		0xB2: tile(3, "drmp"),

		// Slope embankments, also the first half of the split composite pieces
		0x67: tile(0, "embk"),
		0x68: tile(1, "embk"),

		// Road on slope, indexed by slope direction
		0xD0: tile(0, "rslp"),
		0xD1: tile(1, "rslp"),
		0xD2: tile(2, "rslp"),
		0xD3: tile(3, "rslp"),
		0xD4: tile(0, "dslp"),
		0xD5: tile(1, "dslp"),
		0xD6: tile(2, "dslp"),
		0xD7: tile(3, "dslp"),
		0xD8: tile(0, "islp"),
		0xD9: tile(1, "islp"),
		0xDA: tile(2, "islp"),
		0xDB: tile(3, "islp"),
	}
}

func defaultTerrainEntries() map[TileCode]CatalogEntry {
	return map[TileCode]CatalogEntry{
		0x00: tile(0, "gras"),
		0x01: tile(0, LakeModel),
		0x02: tile(0, LakeCornerModel, "shor"),
		0x03: tile(1, LakeCornerModel, "shor"),
		0x04: tile(2, LakeCornerModel, "shor"),
		0x05: tile(3, LakeCornerModel, "shor"),
		0x06: tile(0, "high"),
		0x07: tile(0, "goup"),
		0x08: tile(1, "goup"),
		0x09: tile(2, "goup"),
		0x0A: tile(3, "goup"),
		0x0B: tile(0, "gouo"),
		0x0C: tile(1, "gouo"),
		0x0D: tile(2, "gouo"),
		0x0E: tile(3, "gouo"),
		0x0F: tile(0, "goui"),
		0x10: tile(1, "goui"),
		0x11: tile(2, "goui"),
		0x12: tile(3, "goui"),
	}
}
