// Package material looks up a material's optical property by name and
// returns it in the caller's unit and representation, either on the
// dataset's own frequency points ([Library.Read]) or interpolated onto an
// arbitrary grid ([Library.Load]).
//
// A Library is immutable after [New]; its methods may be called
// concurrently.
package material

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-emm/optics/dataset"
	"github.com/cwbudde/algo-emm/optics/interp"
	"github.com/cwbudde/algo-emm/optics/repr"
	"github.com/cwbudde/algo-emm/optics/unit"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Query selects the output unit, representation, and interpolation method.
// The zero value asks for meters, refractive index, and linear
// interpolation.
type Query struct {
	Unit           unit.Unit
	Representation repr.Representation
	Method         interp.Method
}

// Library reads datasets from one data directory.
type Library struct {
	cfg Config
}

// New returns a Library configured by opts.
func New(opts ...Option) *Library {
	return &Library{cfg: ApplyOptions(opts...)}
}

var defaultLibrary = New()

// DataDir returns the directory the library resolves names against.
func (l *Library) DataDir() string { return l.cfg.DataDir }

// Avail lists the collections of the data directory when name is empty, and
// the dataset files of collection name otherwise.
func (l *Library) Avail(name string) ([]string, error) {
	return dataset.List(l.cfg.DataDir, name)
}

// Read loads the dataset called name and converts it to q.Unit and
// q.Representation. The unit conversion is applied first. q.Method is
// ignored.
func (l *Library) Read(name string, q Query) (*dataset.Dataset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("material: name must be provided: %w", optics.ErrInvalidArgument)
	}
	if !q.Unit.Valid() {
		return nil, fmt.Errorf("material: unit %v: %w", q.Unit, optics.ErrInvalidArgument)
	}
	if !q.Representation.Valid() {
		return nil, fmt.Errorf("material: representation %v: %w", q.Representation, optics.ErrInvalidArgument)
	}

	path, err := dataset.Resolve(l.cfg.DataDir, name)
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	raw, err := dataset.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	if err := raw.Validate(); err != nil {
		return nil, fmt.Errorf("material: %s: %w", path, err)
	}

	uc := unit.Conversion{From: raw.Unit, To: q.Unit}
	rc := repr.Conversion{From: raw.Representation, To: q.Representation}

	f, err := uc.Apply(raw.Frequency)
	if err != nil {
		return nil, fmt.Errorf("material: %s: %w", path, err)
	}
	re, im, err := rc.Apply(raw.Real, raw.Imag)
	if err != nil {
		return nil, fmt.Errorf("material: %s: %w", path, err)
	}

	if l.cfg.Verbose {
		l.cfg.Logger.Info("read dataset",
			zap.String("material", name),
			zap.String("path", path),
			zap.Int("points", raw.Len()),
			zap.Stringer("unit", uc),
			zap.Stringer("representation", rc),
		)
	}

	return &dataset.Dataset{
		Name:           raw.Name,
		References:     raw.References,
		Source:         path,
		Frequency:      f,
		Real:           re,
		Imag:           im,
		Unit:           q.Unit,
		Representation: q.Representation,
	}, nil
}

// Load reads the dataset called name in q.Unit and q.Representation and
// interpolates its real and imaginary parts onto target with q.Method.
//
// Interpolation runs on the requested representation, so asking for
// permittivity interpolates e' and e'' rather than n and k. Targets outside
// the dataset's range are extrapolated and logged as warnings; they never
// fail the call. The result has the length and order of target.
func (l *Library) Load(name string, target []float64, q Query) ([]complex128, error) {
	if q.Method != interp.Linear && q.Method != interp.Cubic {
		return nil, fmt.Errorf("material: interpolation %v: %w", q.Method, optics.ErrNotImplemented)
	}
	d, err := l.Read(name, q)
	if err != nil {
		return nil, err
	}
	d, err = d.Sorted()
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}

	if len(target) == 0 {
		return []complex128{}, nil
	}
	l.checkRange(name, d.Frequency, target)

	re, err := interp.Resample(d.Frequency, d.Real, target, q.Method)
	if err != nil {
		return nil, fmt.Errorf("material: %q: %w", name, err)
	}
	im, err := interp.Resample(d.Frequency, d.Imag, target, q.Method)
	if err != nil {
		return nil, fmt.Errorf("material: %q: %w", name, err)
	}

	out := make([]complex128, len(target))
	for i := range out {
		out[i] = complex(re[i], im[i])
	}

	if l.cfg.Verbose {
		l.cfg.Logger.Info("interpolated dataset",
			zap.String("material", name),
			zap.Stringer("method", q.Method),
			zap.Int("targets", len(target)),
		)
	}
	return out, nil
}

// checkRange warns when target reaches beyond the dataset's frequency span.
func (l *Library) checkRange(name string, raw, target []float64) {
	rawMin, rawMax := floats.Min(raw), floats.Max(raw)
	tMin, tMax := floats.Min(target), floats.Max(target)

	if rawMin > tMin {
		l.cfg.Logger.Warn("minimum out of range",
			zap.String("material", name),
			zap.Float64("data_min", rawMin),
			zap.Float64("target_min", tMin),
		)
	}
	if rawMax < tMax {
		l.cfg.Logger.Warn("maximum out of range",
			zap.String("material", name),
			zap.Float64("data_max", rawMax),
			zap.Float64("target_max", tMax),
		)
	}
}

// Read calls [Library.Read] on a library using [DefaultDataDir].
func Read(name string, q Query) (*dataset.Dataset, error) {
	return defaultLibrary.Read(name, q)
}

// Load calls [Library.Load] on a library using [DefaultDataDir].
func Load(name string, target []float64, q Query) ([]complex128, error) {
	return defaultLibrary.Load(name, target, q)
}

// Avail calls [Library.Avail] on a library using [DefaultDataDir].
func Avail(name string) ([]string, error) {
	return defaultLibrary.Avail(name)
}
