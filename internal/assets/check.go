package assets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/stunts/internal/engine/mesh"
	"github.com/Faultbox/stunts/internal/vehicle"
)

// WheelModel is the model drawn for every wheel.
const WheelModel = "wheel"

// Check verifies that the library can serve a session: every named model,
// the wheel and fence models, every car with at least one wheel, and a
// material for every face. All problems are reported together.
func (l *Library) Check(models ...string) error {
	var errs []error

	required := append([]string{WheelModel, "fenc"}, models...)
	for _, name := range required {
		if _, ok := l.Models[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: model %s", ErrMissingAsset, name))
		}
	}

	for _, name := range vehicle.Cars {
		car, ok := l.Cars[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: car %s", ErrMissingAsset, name))
			continue
		}
		if len(car.Wheels) == 0 {
			errs = append(errs, fmt.Errorf("car %s: %w", name, vehicle.ErrNoWheels))
		}
		if len(car.Model.Vertices) == 0 {
			errs = append(errs, fmt.Errorf("car %s: %w", name, mesh.ErrEmptyModel))
		}
		errs = append(errs, l.checkMaterials("car "+name, car.Model)...)
	}

	names := make([]string, 0, len(l.Models))
	for name := range l.Models {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		errs = append(errs, l.checkMaterials("model "+name, l.Models[name])...)
	}

	return errors.Join(errs...)
}

func (l *Library) checkMaterials(what string, m *mesh.Model) []error {
	var errs []error
	for i, f := range m.Faces {
		if _, ok := l.Materials[f.Material]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s face %d material %d", ErrMissingAsset, what, i, f.Material))
		}
	}
	return errs
}
