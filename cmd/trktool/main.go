// trktool is a CLI utility for inspecting Stunts track files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/Faultbox/stunts/internal/assets"
	"github.com/Faultbox/stunts/internal/logger"
	"github.com/Faultbox/stunts/internal/physics"
	"github.com/Faultbox/stunts/internal/sim"
	"github.com/Faultbox/stunts/internal/track"
	"github.com/Faultbox/stunts/internal/vehicle"
	"github.com/Faultbox/stunts/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "grid", "dump":
		err = cmdGrid(args)
	case "build":
		err = cmdBuild(args)
	case "view":
		err = cmdView(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`trktool - Stunts track file utility

Usage:
  trktool <command> [options]

Commands:
  info <file.trk>                       Show start tile and piece counts
  grid <file.trk>                       Hex dump of the track and terrain layers
  build [-assets path] [-car n] [-ticks n] <file.trk>
                                        Build geometry and collision, optionally drive
  view <file.trk>                       Browse the track in the terminal

Examples:
  trktool info default.trk
  trktool build -assets ./assets -ticks 200 default.trk
  trktool view zct114.trk`)
}

func loadTrack(args []string, usage string) (*formats.TRK, *track.Resolution, error) {
	if len(args) < 1 {
		return nil, nil, fmt.Errorf("usage: trktool %s", usage)
	}
	trk, err := formats.ParseTRKFile(args[0])
	if err != nil {
		return nil, nil, err
	}
	res, err := track.Resolve(trk, track.DefaultCatalog())
	if err != nil {
		return nil, nil, err
	}
	return trk, res, nil
}

func cmdInfo(args []string) error {
	trk, res, err := loadTrack(args, "info <file.trk>")
	if err != nil {
		return err
	}
	printInfo(os.Stdout, args[0], trk, res, track.DefaultCatalog())
	return nil
}

// printInfo writes the track summary.
func printInfo(w io.Writer, name string, trk *formats.TRK, res *track.Resolution, cat *track.Catalog) {
	s := res.Start
	fmt.Fprintf(w, "Track:    %s\n", name)
	fmt.Fprintf(w, "Start:    (%d, %d) facing %d", s.X, s.Y, s.Orientation*90)
	if s.Elevated {
		fmt.Fprint(w, " elevated")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Pieces:   %d\n", len(res.TrackItems))
	fmt.Fprintf(w, "Terrain:  %d\n", len(res.TerrainItems))

	minX, minY, maxX, maxY := footprint(res, cat)
	if maxX >= minX {
		fmt.Fprintf(w, "Extent:   (%d, %d) - (%d, %d)\n", minX, minY, maxX, maxY)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pieces by model:")
	for _, c := range countModels(res.TrackItems, cat.Track) {
		fmt.Fprintf(w, "  %-6s %d\n", c.name, c.count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Terrain by model:")
	for _, c := range countModels(res.TerrainItems, cat.Terrain) {
		fmt.Fprintf(w, "  %-6s %d\n", c.name, c.count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Track codes:")
	for _, c := range rawCodes(trk) {
		fmt.Fprintf(w, "  0x%02X   %d\n", c.code, c.count)
	}
}

type codeCount struct {
	code  uint8
	count int
}

// rawCodes lists the non-empty track layer codes in code order, fillers
// included.
func rawCodes(trk *formats.TRK) []codeCount {
	var out []codeCount
	for code, n := range trk.CountCodes() {
		if code != 0x00 {
			out = append(out, codeCount{code, n})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out
}

type modelCount struct {
	name  string
	count int
}

// countModels groups items by their first model, most frequent first.
func countModels(items []track.PlacedItem, table map[track.TileCode]track.CatalogEntry) []modelCount {
	counts := make(map[string]int)
	for _, it := range items {
		if e, ok := table[it.ID]; ok {
			counts[e.Models[0]]++
		}
	}

	out := make([]modelCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, modelCount{name, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

// footprint returns the tile bounds covered by track pieces. maxX < minX
// when there are none.
func footprint(res *track.Resolution, cat *track.Catalog) (minX, minY, maxX, maxY int) {
	minX, minY = formats.TRKGridSize, formats.TRKGridSize
	maxX, maxY = -1, -1
	for _, it := range res.TrackItems {
		e, ok := cat.Track[it.ID]
		if !ok {
			continue
		}
		minX = min(minX, it.X)
		minY = min(minY, it.Y)
		maxX = max(maxX, it.X+e.Width-1)
		maxY = max(maxY, it.Y+e.Height-1)
	}
	return minX, minY, maxX, maxY
}

func cmdGrid(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: trktool grid <file.trk>")
	}
	trk, err := formats.ParseTRKFile(args[0])
	if err != nil {
		return err
	}
	printGrid(os.Stdout, trk)
	return nil
}

// printGrid dumps both layers in world row order, one row per line.
func printGrid(w io.Writer, trk *formats.TRK) {
	for _, layer := range []struct {
		name  string
		cells *[formats.TRKGridSize][formats.TRKGridSize]uint8
	}{
		{"Track", &trk.Track},
		{"Terrain", &trk.Terrain},
	} {
		fmt.Fprintf(w, "%s:\n", layer.name)
		for y, row := range layer.cells {
			fmt.Fprintf(w, "%2d ", y)
			for _, c := range row {
				fmt.Fprintf(w, " %02X", c)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

func cmdBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	assetsPath := fs.String("assets", "assets", "Asset file or directory")
	car := fs.Int("car", vehicle.DefaultCar, "Car index")
	ticks := fs.Int("ticks", 0, "Drive forward for N ticks of 15ms")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: trktool build [-assets path] [-car n] [-ticks n] <file.trk>")
	}

	level := "warn"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	lib, err := assets.Open(*assetsPath)
	if err != nil {
		return err
	}
	cat := track.DefaultCatalog()
	if err := lib.Check(cat.ModelNames()...); err != nil {
		return err
	}

	start := time.Now()
	s := sim.New(physics.NewKinematic(physics.DefaultGrid()), lib, cat, *car)
	if err := s.LoadTrackFile(fs.Arg(0)); err != nil {
		return err
	}
	elapsed := time.Since(start)

	t, v := s.Track(), s.Vehicle()
	fmt.Printf("Built in:         %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("Visual vertices:  %d\n", len(t.Visual.Vertices))
	fmt.Printf("Visual faces:     %d\n", len(t.Visual.Faces))
	fmt.Printf("Render vertices:  %d\n", t.VisualMesh.VertexCount())
	fmt.Printf("Physics faces:    %d\n", len(t.Physical.Faces))
	fmt.Printf("Collision tris:   %d\n", len(t.Collision.Triangles))
	fmt.Println()
	fmt.Printf("Car:              %s\n", v.Rig.Car)
	fmt.Printf("Chassis:          %.3f x %.3f x %.3f\n", v.Rig.SideLengths.X, v.Rig.SideLengths.Y, v.Rig.SideLengths.Z)
	fmt.Printf("Start position:   %.3f %.3f %.3f heading %.0f\n",
		v.Rig.StartPosition.X, v.Rig.StartPosition.Y, v.Rig.StartPosition.Z, v.Rig.StartHeading)
	fmt.Printf("Camera band:      %.3f - %.3f\n", v.Rig.Camera.Near, v.Rig.Camera.Far)

	if *ticks > 0 {
		s.SetControls(sim.Controls{Accelerate: -1})
		now := time.Now()
		for i := 0; i <= *ticks; i++ {
			s.Tick(now)
			now = now.Add(15 * time.Millisecond)
		}
		p := v.Chassis().Position()
		fmt.Printf("After %d ticks:   %.3f %.3f %.3f at %.3f\n",
			*ticks, p.X, p.Y, p.Z, v.Chassis().LinearVelocity().Length())
	}

	return nil
}
