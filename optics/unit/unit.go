// Package unit converts frequency-like quantities (wavelength, frequency,
// photon energy, wavenumber) between units.
//
// Every conversion is routed through meters, so adding a unit only needs the
// pair of formulas to and from meters. Reciprocal units (Hz, GHz, THz, eV,
// cm-1) divide a constant by the value; zero and negative inputs are not
// trapped and yield ±Inf or NaN per IEEE-754.
//
// Wavenumbers convert as m = 100/cm-1, so 1000 cm-1 is 0.1 m. This is the
// factor existing material tables were written against, not 0.01/cm-1.
package unit

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-emm/optics/physconst"
	"gonum.org/v1/gonum/floats"
)

// Unit identifies a frequency-like unit.
type Unit int

const (
	Meter Unit = iota
	Nanometer
	Micrometer
	Hertz
	Gigahertz
	Terahertz
	Electronvolt
	Wavenumber // inverse centimeter
)

// photonEnergyMeters is h*c in eV*m; dividing it by a wavelength in meters
// gives the photon energy in eV, and vice versa.
const photonEnergyMeters = 2 * math.Pi * physconst.SpeedOfLight * physconst.HbarEV

var names = [...]string{
	Meter:        "m",
	Nanometer:    "nm",
	Micrometer:   "um",
	Hertz:        "Hz",
	Gigahertz:    "GHz",
	Terahertz:    "THz",
	Electronvolt: "eV",
	Wavenumber:   "cm-1",
}

var aliases = map[string]Unit{
	"µm":   Micrometer,
	"μm":   Micrometer,
	"1/cm": Wavenumber,
}

// Units returns every supported unit in declaration order.
func Units() []Unit {
	out := make([]Unit, len(names))
	for i := range out {
		out[i] = Unit(i)
	}
	return out
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	return u >= 0 && int(u) < len(names)
}

// String returns the canonical spelling of u, e.g. "cm-1".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return names[u]
}

// Parse resolves a unit spelling. Canonical spellings match exactly, then the
// aliases "µm", "μm" and "1/cm". Anything else is matched against the
// canonical spellings case-insensitively, so "ev", "THZ", "NM" and "M" are
// accepted too.
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if s == n {
			return Unit(i), nil
		}
	}
	if u, ok := aliases[s]; ok {
		return u, nil
	}
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unit: unknown unit %q: %w", s, optics.ErrInvalidArgument)
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("unit: %v: %w", u, optics.ErrInvalidArgument)
	}
	return []byte(names[u]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ToMeters converts values given in u to meters, in place.
func ToMeters(values []float64, u Unit) error {
	switch u {
	case Meter:
	case Nanometer:
		floats.Scale(1e-9, values)
	case Micrometer:
		floats.Scale(1e-6, values)
	case Hertz:
		reciprocal(values, physconst.SpeedOfLight)
	case Gigahertz:
		reciprocal(values, 1e-9*physconst.SpeedOfLight)
	case Terahertz:
		reciprocal(values, 1e-12*physconst.SpeedOfLight)
	case Wavenumber:
		reciprocal(values, 100)
	case Electronvolt:
		reciprocal(values, photonEnergyMeters)
	default:
		return fmt.Errorf("unit: %v: %w", u, optics.ErrInvalidArgument)
	}
	return nil
}

// FromMeters converts values given in meters to u, in place.
func FromMeters(values []float64, u Unit) error {
	switch u {
	case Meter:
	case Nanometer:
		floats.Scale(1e9, values)
	case Micrometer:
		floats.Scale(1e6, values)
	case Hertz, Gigahertz, Terahertz, Wavenumber, Electronvolt:
		// The reciprocal formulas are involutions.
		return ToMeters(values, u)
	default:
		return fmt.Errorf("unit: %v: %w", u, optics.ErrInvalidArgument)
	}
	return nil
}

func reciprocal(values []float64, num float64) {
	for i, v := range values {
		values[i] = num / v
	}
}

// Conversion is a validated (From, To) unit pair.
type Conversion struct {
	From Unit
	To   Unit
}

// NewConversion validates both units.
func NewConversion(from, to Unit) (Conversion, error) {
	if !from.Valid() {
		return Conversion{}, fmt.Errorf("unit: source %v: %w", from, optics.ErrInvalidArgument)
	}
	if !to.Valid() {
		return Conversion{}, fmt.Errorf("unit: target %v: %w", to, optics.ErrInvalidArgument)
	}
	return Conversion{From: from, To: to}, nil
}

// Identity reports whether the conversion leaves values unchanged.
func (c Conversion) Identity() bool { return c.From == c.To }

// String renders the pair as "from->to".
func (c Conversion) String() string { return c.From.String() + "->" + c.To.String() }

// Apply returns the converted values in a new slice; values is not modified.
func (c Conversion) Apply(values []float64) ([]float64, error) {
	if _, err := NewConversion(c.From, c.To); err != nil {
		return nil, err
	}
	out := append([]float64(nil), values...)
	if c.Identity() {
		return out, nil
	}
	if err := ToMeters(out, c.From); err != nil {
		return nil, err
	}
	if err := FromMeters(out, c.To); err != nil {
		return nil, err
	}
	return out, nil
}

// Convert converts values from one unit to another. The result is always a
// new slice, also when from == to.
func Convert(values []float64, from, to Unit) ([]float64, error) {
	return Conversion{From: from, To: to}.Apply(values)
}
