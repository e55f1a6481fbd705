package repr

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-emm/internal/testutil"
	"github.com/cwbudde/algo-emm/optics"
)

func TestParseAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Representation
	}{
		{in: "n", want: Index},
		{in: "nk", want: Index},
		{in: "N", want: Index},
		{in: "e", want: Permittivity},
		{in: "eps", want: Permittivity},
		{in: " EPS ", want: Permittivity},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("mu"); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("Parse(mu) error = %v, want ErrInvalidArgument", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, r := range []Representation{Index, Permittivity} {
		b, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText error: %v", err)
		}
		var got Representation
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText error: %v", err)
		}
		if got != r {
			t.Fatalf("round trip %v -> %q -> %v", r, b, got)
		}
	}
	if _, err := Representation(5).MarshalText(); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("MarshalText(invalid) error = %v", err)
	}
}

func TestIndexToPermittivity(t *testing.T) {
	e1, e2, err := Convert([]float64{1.0, 1.5, 2.0}, []float64{0.0, 0.1, 0.2}, Index, Permittivity)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, e1, []float64{1.0, 2.24, 3.96}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, e2, []float64{0.0, 0.3, 0.8}, 1e-12)
}

func TestPermittivityToIndexPrincipalBranch(t *testing.T) {
	// Metal-like e' < 0 still maps to n >= 0.
	n, k, err := Convert([]float64{-16, 4, -4}, []float64{0.5, 0, math.Copysign(0, -1)}, Permittivity, Index)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	for i := range n {
		if n[i] < 0 {
			t.Fatalf("n[%d] = %v, principal branch requires n >= 0", i, n[i])
		}
	}
	if math.Abs(n[1]-2) > 1e-15 || k[1] != 0 {
		t.Fatalf("sqrt(4) = %v+%vi, want 2", n[1], k[1])
	}
	if math.Abs(k[2]+2) > 1e-15 {
		t.Fatalf("sqrt(-4-0i) imaginary part = %v, want -2", k[2])
	}
}

func TestRoundTrip(t *testing.T) {
	const size = 512
	n := testutil.DeterministicUniform(1, 0, 10, size)
	k := testutil.DeterministicUniform(2, -10, 10, size)
	n[0], k[0] = 0, 3
	n[1], k[1] = 0, -3
	n[2], k[2] = 2.5, 0

	e1, e2, err := Convert(n, k, Index, Permittivity)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	gotN, gotK, err := Convert(e1, e2, Permittivity, Index)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, gotN, n, 1e-9)
	testutil.RequireSliceNearlyEqual(t, gotK, k, 1e-9)
}

func TestRoundTripNegativeIndexFlipsSign(t *testing.T) {
	e1, e2 := IndexToPermittivity([]float64{-1.5}, []float64{0.2})
	n, k := PermittivityToIndex(e1, e2)
	if math.Abs(n[0]-1.5) > 1e-12 || math.Abs(k[0]+0.2) > 1e-12 {
		t.Fatalf("round trip of -1.5+0.2i = %v%+vi, want 1.5-0.2i", n[0], k[0])
	}
}

func TestFixedPointIsBitExactCopy(t *testing.T) {
	re := []float64{1.1, math.Copysign(0, -1), math.NaN(), 3}
	im := []float64{0.1, 2, 0, math.Inf(-1)}
	for _, r := range []Representation{Index, Permittivity} {
		gotRe, gotIm, err := Convert(re, im, r, r)
		if err != nil {
			t.Fatalf("Convert error: %v", err)
		}
		for i := range re {
			if math.Float64bits(gotRe[i]) != math.Float64bits(re[i]) ||
				math.Float64bits(gotIm[i]) != math.Float64bits(im[i]) {
				t.Fatalf("%v identity changed element %d", r, i)
			}
		}
		gotRe[0] = 42
		if re[0] != 1.1 {
			t.Fatal("identity result aliases the input")
		}
	}
}

func TestConvertErrors(t *testing.T) {
	if _, _, err := Convert([]float64{1, 2}, []float64{1}, Index, Permittivity); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("length mismatch error = %v", err)
	}
	if _, _, err := Convert(nil, nil, Representation(9), Index); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("invalid source error = %v", err)
	}
	if _, err := NewConversion(Index, Representation(-1)); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("invalid target error = %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	e1, e2, err := Convert([]float64{}, []float64{}, Index, Permittivity)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if len(e1) != 0 || len(e2) != 0 {
		t.Fatalf("expected empty output, got %v %v", e1, e2)
	}
}

func TestConversionString(t *testing.T) {
	c, err := NewConversion(Permittivity, Index)
	if err != nil {
		t.Fatalf("NewConversion error: %v", err)
	}
	if c.String() != "e->n" {
		t.Fatalf("String() = %q", c.String())
	}
}
