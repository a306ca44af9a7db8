package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/pkg/formats"
)

// cell is one tile as drawn in the terminal, two columns wide.
type cell struct {
	glyph [2]rune
	style tcell.Style
}

var (
	styleGrass = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleWater = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleHill  = tcell.StyleDefault.Background(tcell.ColorOlive).Foreground(tcell.ColorWhite)
	styleSlope = tcell.StyleDefault.Background(tcell.ColorDarkGoldenrod).Foreground(tcell.ColorWhite)
	styleStart = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
)

// pieceGlyphs maps a piece's first model to what is drawn for it.
var pieceGlyphs = map[string][2]rune{
	"strt": {'S', 'S'}, "fin2": {'S', 'S'}, "sdrt": {'S', 'S'}, "sice": {'S', 'S'},
	"road": {'=', '='}, "rdrt": {':', ':'}, "rice": {'~', '~'},
	"crnr": {'+', '+'}, "cdrt": {'+', '+'}, "cice": {'+', '+'},
	"lcrn": {'(', ')'}, "ldrt": {'(', ')'}, "lice": {'(', ')'},
	"ramp": {'/', '\\'}, "rmpd": {'/', '\\'}, "rmpi": {'/', '\\'},
	"loop": {'O', 'O'}, "tunl": {'[', ']'}, "brdg": {'H', 'H'},
	"embk": {'^', '^'}, "rslp": {'^', '^'}, "dslp": {'^', '^'}, "islp": {'^', '^'},
	"tree": {'T', ' '}, "palm": {'Y', ' '}, "cact": {'!', ' '},
	"barn": {'B', ' '}, "hous": {'h', ' '}, "offi": {'O', 'f'},
	"wind": {'W', ' '}, "gass": {'G', ' '}, "tenn": {'#', ' '},
	"park": {'P', ' '}, "ctrl": {'C', ' '},
	"elrd": {'=', '|'}, "elcr": {'+', '|'}, "elsp": {'/', '|'}, "eldr": {':', '|'}, "elic": {'~', '|'},
	"pipe": {'(', ')'}, "spip": {'(', ' '}, "cork": {'@', '@'},
	"bank": {'<', '>'}, "btra": {'<', ' '},
	"chi1": {'s', 's'}, "chi2": {'z', 'z'}, "dchi": {'s', ':'}, "ichi": {'s', '~'},
	"sofs": {'Y', 'Y'}, "ssof": {'Y', 'Y'},
	"hig1": {'=', '='}, "hig2": {'=', '|'}, "hig3": {'=', '/'}, "hcrn": {'(', ')'},
	"bram": {'/', 'H'}, "bcrn": {'+', 'H'}, "tcrn": {'[', '+'},
	"pave": {'=', ':'}, "pice": {'=', '~'}, "dice": {':', '~'},
	"jump": {'/', ' '}, "drmp": {'/', ':'},
}

// terrainStyle picks the background for a terrain tile.
func terrainStyle(entry track.CatalogEntry) tcell.Style {
	switch entry.Models[0] {
	case "lake", "lakc":
		return styleWater
	case "high":
		return styleHill
	case "gras":
		return styleGrass
	default:
		return styleSlope
	}
}

// tileCells lays the resolved track out on the grid. Multi-tile pieces
// repeat their glyph over the footprint.
func tileCells(res *track.Resolution, cat *track.Catalog) [formats.TRKGridSize][formats.TRKGridSize]cell {
	var grid [formats.TRKGridSize][formats.TRKGridSize]cell
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = cell{glyph: [2]rune{' ', ' '}, style: styleGrass}
		}
	}

	for _, it := range res.TerrainItems {
		if e, ok := cat.Terrain[it.ID]; ok {
			grid[it.Y][it.X].style = terrainStyle(e)
		}
	}

	for _, it := range res.TrackItems {
		e, ok := cat.Track[it.ID]
		if !ok {
			continue
		}
		glyph, ok := pieceGlyphs[e.Models[0]]
		if !ok {
			glyph = [2]rune{'*', '*'}
		}
		for dy := 0; dy < e.Height; dy++ {
			for dx := 0; dx < e.Width; dx++ {
				x, y := it.X+dx, it.Y+dy
				if x < formats.TRKGridSize && y < formats.TRKGridSize {
					grid[y][x].glyph = glyph
				}
			}
		}
	}

	s := res.Start
	grid[s.Y][s.X].style = styleStart
	return grid
}

func cmdView(args []string) error {
	_, res, err := loadTrack(args, "view <file.trk>")
	if err != nil {
		return err
	}
	cat := track.DefaultCatalog()
	grid := tileCells(res, cat)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	title := filepath.Base(args[0])
	showPieces := true

	draw := func() {
		screen.Clear()
		for y, row := range grid {
			for x, c := range row {
				glyph := c.glyph
				if !showPieces {
					glyph = [2]rune{' ', ' '}
				}
				screen.SetContent(2*x, y, glyph[0], nil, c.style)
				screen.SetContent(2*x+1, y, glyph[1], nil, c.style)
			}
		}

		status := fmt.Sprintf(" %s  start (%d,%d)  %d pieces  [t] terrain only  [q] quit",
			title, res.Start.X, res.Start.Y, len(res.TrackItems))
		drawText(screen, 0, formats.TRKGridSize+1, status, tcell.StyleDefault.Reverse(true))
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if ev.Key() == tcell.KeyRune {
				switch strings.ToLower(string(ev.Rune())) {
				case "q":
					return nil
				case "t":
					showPieces = !showPieces
				}
			}
			draw()
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case nil:
			return nil
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
