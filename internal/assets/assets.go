// Package assets loads the model, material and car tables from YAML.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/engine/scene"
	"github.com/Faultbox/stunts/internal/logger"
	"github.com/Faultbox/stunts/internal/vehicle"
	"github.com/Faultbox/stunts/pkg/math"
)

// Asset errors.
var (
	ErrMissingAsset = errors.New("missing asset")
	ErrInvalidAsset = errors.New("invalid asset")
)

// Car is a car's chassis model together with its wheels.
type Car struct {
	Model  *mesh.Model
	Wheels []vehicle.WheelSpec
}

// Library holds every loaded table. Files loaded later override entries
// of the same key from earlier ones.
type Library struct {
	Materials map[int]scene.Material
	Models    map[string]*mesh.Model
	Cars      map[string]*Car
}

// New creates an empty library.
func New() *Library {
	return &Library{
		Materials: make(map[int]scene.Material),
		Models:    make(map[string]*mesh.Model),
		Cars:      make(map[string]*Car),
	}
}

// Open loads every path in order. A directory contributes its *.yaml and
// *.yml files in name order.
func Open(paths ...string) (*Library, error) {
	lib := New()
	for _, p := range paths {
		files, err := expand(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if err := lib.LoadFile(f); err != nil {
				return nil, err
			}
		}
	}
	return lib, nil
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening assets %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading assets dir %s: %w", path, err)
	}

	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile loads one YAML file into the library.
func (l *Library) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening assets %s: %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load decodes one YAML document into the library.
func (l *Library) Load(r io.Reader) error {
	var doc libraryDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}

	for id, m := range doc.Materials {
		mat, err := m.material()
		if err != nil {
			return fmt.Errorf("material %d: %w", id, err)
		}
		l.Materials[id] = mat
	}
	for name, m := range doc.Models {
		model, err := m.model()
		if err != nil {
			return fmt.Errorf("model %s: %w", name, err)
		}
		l.Models[name] = model
	}
	for name, c := range doc.Cars {
		model, err := c.Model.model()
		if err != nil {
			return fmt.Errorf("car %s: %w", name, err)
		}
		car := &Car{Model: model}
		for _, w := range c.Wheels {
			car.Wheels = append(car.Wheels, vehicle.WheelSpec{Radius: w.Radius, Width: w.Width, Position: vec(w.Position)})
		}
		l.Cars[name] = car
	}

	logger.Debug("assets loaded",
		zap.Int("materials", len(doc.Materials)),
		zap.Int("models", len(doc.Models)),
		zap.Int("cars", len(doc.Cars)))
	return nil
}

// Model implements mesh.ModelSource.
func (l *Library) Model(name string) (*mesh.Model, bool) {
	m, ok := l.Models[name]
	return m, ok
}

// Material implements scene.MaterialSource.
func (l *Library) Material(id int) (scene.Material, bool) {
	m, ok := l.Materials[id]
	return m, ok
}

// Car returns a car by name.
func (l *Library) Car(name string) (*Car, bool) {
	c, ok := l.Cars[name]
	return c, ok
}

type libraryDoc struct {
	Materials map[int]materialDoc `yaml:"materials"`
	Models    map[string]modelDoc `yaml:"models"`
	Cars      map[string]carDoc   `yaml:"cars"`
}

type materialDoc struct {
	RGB       uint32  `yaml:"rgb"`
	Shininess float32 `yaml:"shininess"`
	Type      string  `yaml:"type"`
}

func (d materialDoc) material() (scene.Material, error) {
	m := scene.Material{RGB: d.RGB, Shininess: d.Shininess}
	switch strings.ToLower(d.Type) {
	case "", "opaque":
		m.Type = scene.Opaque
	case "transparent":
		m.Type = scene.Transparent
	case "grate":
		m.Type = scene.Grate
	default:
		return m, fmt.Errorf("%w: type %q", ErrInvalidAsset, d.Type)
	}
	if d.RGB > 0xffffff {
		return m, fmt.Errorf("%w: rgb %#x", ErrInvalidAsset, d.RGB)
	}
	return m, nil
}

type modelDoc struct {
	Vertices [][3]float32 `yaml:"vertices"`
	Faces    []faceDoc    `yaml:"faces"`
}

type faceDoc struct {
	Material int      `yaml:"material"`
	Bias     int      `yaml:"bias"`
	Indices  []uint32 `yaml:"indices"`
}

func (d modelDoc) model() (*mesh.Model, error) {
	m := &mesh.Model{
		Vertices: make([]math.Vec3, len(d.Vertices)),
		Faces:    make([]mesh.Face, len(d.Faces)),
	}
	for i, v := range d.Vertices {
		m.Vertices[i] = vec(v)
	}
	for i, f := range d.Faces {
		if len(f.Indices) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d indices", ErrInvalidAsset, i, len(f.Indices))
		}
		m.Faces[i] = mesh.Face{Material: f.Material, Bias: f.Bias, Indices: f.Indices}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type carDoc struct {
	Model  modelDoc   `yaml:"model"`
	Wheels []wheelDoc `yaml:"wheels"`
}

type wheelDoc struct {
	Radius   float32    `yaml:"radius"`
	Width    float32    `yaml:"width"`
	Position [3]float32 `yaml:"position"`
}

func vec(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
