// Package repr converts a material's optical property between the complex
// refractive index n + ik and the complex relative permittivity e' + ie''.
//
// The two are related by (n + ik)^2 = e' + ie''. Going from permittivity
// to index takes the principal square root, which always yields n >= 0, so a
// dataset with negative n does not survive an index->permittivity->index
// round trip with its sign intact.
package repr

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-vecmath"
)

// Representation identifies how a real/imaginary property pair is expressed.
type Representation int

const (
	Index        Representation = iota // refractive index (n, k)
	Permittivity                       // relative permittivity (e', e'')
)

var spellings = map[string]Representation{
	"n":   Index,
	"nk":  Index,
	"e":   Permittivity,
	"eps": Permittivity,
}

// Valid reports whether r is a supported representation.
func (r Representation) Valid() bool {
	return r == Index || r == Permittivity
}

// String returns the canonical tag, "n" or "e".
func (r Representation) String() string {
	switch r {
	case Index:
		return "n"
	case Permittivity:
		return "e"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Parse resolves a representation tag. The aliases "nk" and "eps" normalize
// to Index and Permittivity. Matching is case-insensitive.
func Parse(s string) (Representation, error) {
	r, ok := spellings[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("repr: unknown representation %q: %w", s, optics.ErrInvalidArgument)
	}
	return r, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Representation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("repr: %v: %w", r, optics.ErrInvalidArgument)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Representation) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Conversion is a validated (From, To) representation pair.
type Conversion struct {
	From Representation
	To   Representation
}

// NewConversion validates both representations.
func NewConversion(from, to Representation) (Conversion, error) {
	if !from.Valid() {
		return Conversion{}, fmt.Errorf("repr: source %v: %w", from, optics.ErrInvalidArgument)
	}
	if !to.Valid() {
		return Conversion{}, fmt.Errorf("repr: target %v: %w", to, optics.ErrInvalidArgument)
	}
	return Conversion{From: from, To: to}, nil
}

// Identity reports whether the conversion leaves values unchanged.
func (c Conversion) Identity() bool { return c.From == c.To }

// String renders the pair as "from->to".
func (c Conversion) String() string { return c.From.String() + "->" + c.To.String() }

// Apply returns the converted pair in new slices; the inputs are not
// modified. An identity conversion returns bit-exact copies.
func (c Conversion) Apply(re, im []float64) ([]float64, []float64, error) {
	if _, err := NewConversion(c.From, c.To); err != nil {
		return nil, nil, err
	}
	if len(re) != len(im) {
		return nil, nil, fmt.Errorf("repr: real/imaginary length mismatch: %d != %d: %w",
			len(re), len(im), optics.ErrInvalidArgument)
	}
	switch {
	case c.Identity():
		return append([]float64(nil), re...), append([]float64(nil), im...), nil
	case c.From == Index:
		e1, e2 := IndexToPermittivity(re, im)
		return e1, e2, nil
	default:
		n, k := PermittivityToIndex(re, im)
		return n, k, nil
	}
}

// Convert converts a real/imaginary pair between representations.
func Convert(re, im []float64, from, to Representation) ([]float64, []float64, error) {
	return Conversion{From: from, To: to}.Apply(re, im)
}

// IndexToPermittivity computes e' = n^2 - k^2 and e'' = 2nk elementwise.
// n and k must have the same length.
func IndexToPermittivity(n, k []float64) (e1, e2 []float64) {
	size := len(n)
	e1 = make([]float64, size)
	e2 = make([]float64, size)
	if size == 0 {
		return e1, e2
	}
	kk := make([]float64, size)

	vecmath.MulBlock(e1, n, n)
	vecmath.MulBlock(kk, k, k)
	vecmath.MulBlock(e2, n, k)
	for i := range e1 {
		e1[i] -= kk[i]
		e2[i] *= 2
	}
	return e1, e2
}

// PermittivityToIndex computes n + ik = sqrt(e' + ie'') elementwise using
// the principal branch (n >= 0). e1 and e2 must have the same length.
func PermittivityToIndex(e1, e2 []float64) (n, k []float64) {
	n = make([]float64, len(e1))
	k = make([]float64, len(e1))
	for i := range e1 {
		z := cmplx.Sqrt(complex(e1[i], e2[i]))
		n[i] = real(z)
		k[i] = imag(z)
	}
	return n, k
}
