package interp

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-emm/optics"
	gonuminterp "gonum.org/v1/gonum/interp"
)

// Method selects an interpolation algorithm.
type Method int

const (
	Linear Method = iota
	Cubic
)

// String returns the method tag, "linear" or "cubic".
func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod resolves a method tag. Unknown tags fail with
// optics.ErrNotImplemented.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "cubic":
		return Cubic, nil
	default:
		return 0, fmt.Errorf("interp: method %q: %w", s, optics.ErrNotImplemented)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m != Linear && m != Cubic {
		return nil, fmt.Errorf("interp: %v: %w", m, optics.ErrNotImplemented)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Predictor evaluates a fitted interpolant.
type Predictor interface {
	Predict(x float64) float64
}

// constant is the interpolant of a single-point table.
type constant float64

func (c constant) Predict(float64) float64 { return float64(c) }

// linear wraps gonum's piecewise-linear predictor, which already holds the
// boundary values outside the fitted range.
type linear struct {
	pl gonuminterp.PiecewiseLinear
}

func (l *linear) Predict(x float64) float64 { return l.pl.Predict(x) }

// New fits a predictor for method m to the table (x, y).
//
// x must be strictly increasing and have the same length as y. A table with
// a single point yields a constant predictor for every method.
func New(m Method, x, y []float64) (Predictor, error) {
	if m != Linear && m != Cubic {
		return nil, fmt.Errorf("interp: %v: %w", m, optics.ErrNotImplemented)
	}
	if err := validateTable(x, y); err != nil {
		return nil, err
	}
	if len(x) == 1 {
		return constant(y[0]), nil
	}

	switch m {
	case Cubic:
		return NewSpline(x, y)
	default:
		l := &linear{}
		xs := append([]float64(nil), x...)
		ys := append([]float64(nil), y...)
		if err := l.pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("interp: linear fit: %w", err)
		}
		return l, nil
	}
}

// Resample evaluates the method-m interpolant of (x, y) at every query
// point. The output has the length and order of query.
func Resample(x, y, query []float64, m Method) ([]float64, error) {
	p, err := New(m, x, y)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(query))
	for i, q := range query {
		out[i] = p.Predict(q)
	}
	return out, nil
}

func validateTable(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("interp: requires non-empty x and y: %w", optics.ErrInvalidArgument)
	}
	if len(x) != len(y) {
		return fmt.Errorf("interp: x/y length mismatch: %d != %d: %w", len(x), len(y), optics.ErrInvalidArgument)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("interp: x must be strictly increasing at index %d: %w", i, optics.ErrInvalidArgument)
		}
	}
	return nil
}
