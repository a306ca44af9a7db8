package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/engine/scene"
	"github.com/Faultbox/stunts/internal/vehicle"
	"github.com/Faultbox/stunts/pkg/math"
)

const baseYAML = `
materials:
  0: {rgb: 0xff8000, shininess: 4}
  1: {rgb: 0x202020, shininess: 0, type: transparent}
  2: {rgb: 0xffffff, shininess: 1, type: Grate}
models:
  road:
    vertices: [[0, 0, 0], [1, 0, 0], [1, 0, 1], [0, 0, 1]]
    faces:
      - {material: 0, bias: 1, indices: [0, 1, 2, 3]}
cars:
  audi:
    model:
      vertices: [[-1, 0, -2], [1, 0, -2], [0, 1, 2]]
      faces:
        - {material: 2, indices: [0, 1, 2]}
    wheels:
      - {radius: 0.4, width: 0.2, position: [-1, 0, 1.5]}
      - {radius: 0.4, width: 0.2, position: [1, 0, 1.5]}
`

func TestLoad(t *testing.T) {
	lib := New()
	if err := lib.Load(strings.NewReader(baseYAML)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	mat, ok := lib.Material(0)
	if !ok || mat.RGB != 0xff8000 || mat.Shininess != 4 || mat.Type != scene.Opaque {
		t.Errorf("material 0 = %+v, %v", mat, ok)
	}
	if m, _ := lib.Material(1); m.Type != scene.Transparent {
		t.Errorf("material 1 type = %v, want Transparent", m.Type)
	}
	if m, _ := lib.Material(2); m.Type != scene.Grate {
		t.Errorf("material 2 type = %v, want Grate", m.Type)
	}

	road, ok := lib.Model("road")
	if !ok {
		t.Fatal("road model missing")
	}
	if len(road.Vertices) != 4 || len(road.Faces) != 1 || road.Faces[0].Bias != 1 {
		t.Errorf("road = %+v", road)
	}

	car, ok := lib.Car("audi")
	if !ok {
		t.Fatal("audi missing")
	}
	if len(car.Wheels) != 2 || car.Wheels[1].Position.X != 1 || car.Wheels[0].Radius != 0.4 {
		t.Errorf("wheels = %+v", car.Wheels)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "sounds: {}"},
		{"bad type", "materials: {0: {rgb: 1, type: shiny}}"},
		{"rgb overflow", "materials: {0: {rgb: 0x1000000}}"},
		{"short face", "models: {m: {vertices: [[0,0,0],[1,0,0]], faces: [{indices: [0, 1]}]}}"},
		{"malformed vertex", "models: {m: {vertices: [[0,0]]}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := New().Load(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}

	err := New().Load(strings.NewReader("models: {m: {vertices: [[0,0,0]], faces: [{indices: [0, 1, 2]}]}}"))
	if !errors.Is(err, mesh.ErrBadIndex) {
		t.Errorf("bad index err = %v, want ErrBadIndex", err)
	}
}

func TestOpen_DirectoryOrder(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("10-base.yaml", baseYAML)
	write("20-override.yml", "materials: {0: {rgb: 0x0000ff}}")
	write("notes.txt", "ignored")

	lib, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if m, _ := lib.Material(0); m.RGB != 0x0000ff {
		t.Errorf("material 0 rgb = %#x, want override", m.RGB)
	}
	if _, ok := lib.Model("road"); !ok {
		t.Error("road lost after override")
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error")
	}
}

// fullLibrary builds a library that passes Check for the given models.
func fullLibrary(models ...string) *Library {
	lib := New()
	lib.Materials[0] = scene.Material{RGB: 0x808080}
	for _, name := range append([]string{WheelModel, "fenc"}, models...) {
		lib.Models[name] = triangle()
	}
	for _, name := range vehicle.Cars {
		lib.Cars[name] = &Car{Model: triangle(), Wheels: []vehicle.WheelSpec{{Radius: 1, Width: 1}}}
	}
	return lib
}

func triangle() *mesh.Model {
	return &mesh.Model{
		Vertices: []math.Vec3{{}, {X: 1}, {Z: 1}},
		Faces:    []mesh.Face{{Material: 0, Indices: []uint32{0, 1, 2}}},
	}
}

func TestCheck(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		if err := fullLibrary("road", "tree").Check("road", "tree"); err != nil {
			t.Errorf("Check: %v", err)
		}
	})

	t.Run("missing model", func(t *testing.T) {
		err := fullLibrary("road").Check("road", "tree")
		if !errors.Is(err, ErrMissingAsset) || !strings.Contains(err.Error(), "tree") {
			t.Errorf("err = %v, want missing tree", err)
		}
	})

	t.Run("missing wheel model", func(t *testing.T) {
		lib := fullLibrary()
		delete(lib.Models, WheelModel)
		if err := lib.Check(); !errors.Is(err, ErrMissingAsset) {
			t.Errorf("err = %v, want ErrMissingAsset", err)
		}
	})

	t.Run("missing car", func(t *testing.T) {
		lib := fullLibrary()
		delete(lib.Cars, "lanc")
		err := lib.Check()
		if err == nil || !strings.Contains(err.Error(), "lanc") {
			t.Errorf("err = %v, want missing lanc", err)
		}
	})

	t.Run("car without wheels", func(t *testing.T) {
		lib := fullLibrary()
		lib.Cars["audi"].Wheels = nil
		if err := lib.Check(); !errors.Is(err, vehicle.ErrNoWheels) {
			t.Errorf("err = %v, want ErrNoWheels", err)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		lib := fullLibrary("road")
		lib.Models["road"].Faces[0].Material = 42
		err := lib.Check("road")
		if !errors.Is(err, ErrMissingAsset) || !strings.Contains(err.Error(), "material 42") {
			t.Errorf("err = %v, want missing material 42", err)
		}
	})
}
