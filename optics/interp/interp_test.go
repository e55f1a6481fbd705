package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-emm/internal/testutil"
	"github.com/cwbudde/algo-emm/optics"
)

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{"linear": Linear, "Cubic": Cubic, " linear ": Linear} {
		got, err := ParseMethod(in)
		if err != nil {
			t.Fatalf("ParseMethod(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMethod(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "nearest", "quadratic"} {
		_, err := ParseMethod(in)
		if !errors.Is(err, optics.ErrNotImplemented) {
			t.Fatalf("ParseMethod(%q) error = %v, want ErrNotImplemented", in, err)
		}
	}
}

func TestMethodText(t *testing.T) {
	var m Method
	if err := m.UnmarshalText([]byte("cubic")); err != nil || m != Cubic {
		t.Fatalf("UnmarshalText(cubic) = %v, %v", m, err)
	}
	if b, err := Linear.MarshalText(); err != nil || string(b) != "linear" {
		t.Fatalf("MarshalText(Linear) = %q, %v", b, err)
	}
	if _, err := Method(7).MarshalText(); !errors.Is(err, optics.ErrNotImplemented) {
		t.Fatalf("MarshalText(invalid) error = %v", err)
	}
}

func TestLinearExactAtKnots(t *testing.T) {
	x := []float64{1, 2, 4, 8}
	y := []float64{3, -1, 0.5, 10}

	got, err := Resample(x, y, x, Linear)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, y, 1e-15)
}

func TestLinearBetweenKnots(t *testing.T) {
	x := []float64{0, 1, 3}
	y := []float64{0, 2, 0}

	got, err := Resample(x, y, []float64{0.5, 2, 2.5}, Linear)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 0.5}, 1e-15)
}

func TestLinearHoldsBoundary(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20, 40}

	got, err := Resample(x, y, []float64{-100, 0.999, 3.001, 1e9}, Linear)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{10, 10, 40, 40}, 0)
}

func TestCubicExactAtKnots(t *testing.T) {
	x := []float64{0.1, 0.4, 0.5, 1.7, 2.0}
	y := []float64{1, -2, 0.3, 4, 4.5}

	got, err := Resample(x, y, x, Cubic)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, y, 0)
}

func TestCubicKnownValues(t *testing.T) {
	// Natural spline through (0,0), (1,1), (2,0) has y'' = -3 at x = 1.
	sp, err := NewSpline([]float64{0, 1, 2}, []float64{0, 1, 0})
	if err != nil {
		t.Fatalf("NewSpline error: %v", err)
	}
	for _, tc := range []struct{ x, want float64 }{
		{x: 0.5, want: 0.6875},
		{x: 1.5, want: 0.6875},
		{x: -1, want: -1},
		{x: 3, want: -1},
	} {
		if got := sp.Predict(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Predict(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestCubicExtrapolatesLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	query := []float64{-5, -0.5, 1.5, 4.5, 10}
	got, err := Resample(x, y, query, Cubic)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	want := []float64{-9, 0, 4, 10, 21}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestCubicExtrapolationIsNotFlat(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{1, 4, 9, 16}

	sp, err := NewSpline(x, y)
	if err != nil {
		t.Fatalf("NewSpline error: %v", err)
	}
	if got := sp.Predict(5); got <= 16 {
		t.Fatalf("Predict(5) = %v, want continuation above 16", got)
	}
	if got := sp.Predict(0); got >= 1 {
		t.Fatalf("Predict(0) = %v, want continuation below 1", got)
	}
	// Continuity at the boundary.
	if d := math.Abs(sp.Predict(4+1e-9) - 16); d > 1e-6 {
		t.Fatalf("discontinuity at right boundary: %v", d)
	}
}

func TestTwoPointCubicIsLine(t *testing.T) {
	got, err := Resample([]float64{1, 3}, []float64{2, 6}, []float64{0, 2, 5}, Cubic)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 4, 10}, 1e-12)
}

func TestSinglePointIsConstant(t *testing.T) {
	for _, m := range []Method{Linear, Cubic} {
		got, err := Resample([]float64{2}, []float64{7}, []float64{-1, 2, 100}, m)
		if err != nil {
			t.Fatalf("%v: Resample error: %v", m, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, []float64{7, 7, 7}, 0)
	}
}

func TestQueryOrderPreserved(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 20}
	query := []float64{2, 0.5, 0, 1.5, 0.25}

	for _, m := range []Method{Linear, Cubic} {
		got, err := Resample(x, y, query, m)
		if err != nil {
			t.Fatalf("%v: Resample error: %v", m, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, []float64{20, 5, 0, 15, 2.5}, 1e-12)
	}
}

func TestEmptyQuery(t *testing.T) {
	got, err := Resample([]float64{0, 1}, []float64{0, 1}, nil, Cubic)
	if err != nil {
		t.Fatalf("Resample error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{name: "empty", x: nil, y: nil},
		{name: "length mismatch", x: []float64{0, 1}, y: []float64{0}},
		{name: "duplicate", x: []float64{0, 1, 1}, y: []float64{0, 1, 2}},
		{name: "decreasing", x: []float64{2, 1, 0}, y: []float64{0, 1, 2}},
		{name: "nan", x: []float64{0, math.NaN(), 2}, y: []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range []Method{Linear, Cubic} {
				_, err := Resample(tt.x, tt.y, []float64{0.5}, m)
				if !errors.Is(err, optics.ErrInvalidArgument) {
					t.Fatalf("%v: error = %v, want ErrInvalidArgument", m, err)
				}
			}
		})
	}
}

func TestUnknownMethod(t *testing.T) {
	_, err := Resample([]float64{0, 1}, []float64{0, 1}, []float64{0.5}, Method(3))
	if !errors.Is(err, optics.ErrNotImplemented) {
		t.Fatalf("error = %v, want ErrNotImplemented", err)
	}
}

func TestSplineRejectsSinglePoint(t *testing.T) {
	if _, err := NewSpline([]float64{1}, []float64{1}); !errors.Is(err, optics.ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestSolveTridiagonal(t *testing.T) {
	// [2 1 0; 1 2 1; 0 1 2] x = [3 4 3] has x = [1 1 1].
	out := make([]float64, 3)
	solveTridiagonal([]float64{0, 1, 1}, []float64{2, 2, 2}, []float64{1, 1, 0}, []float64{3, 4, 3}, out)
	testutil.RequireSliceNearlyEqual(t, out, []float64{1, 1, 1}, 1e-15)
}
