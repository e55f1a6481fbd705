package interp

import "sort"

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a natural cubic spline (zero curvature at both ends).
//
// Outside [x[0], x[n-1]] the spline continues the polynomial of the nearest
// segment instead of clamping.
type Spline struct {
	xs, ys []float64
	coeffs []splineCoeff
}

// NewSpline fits a natural cubic spline through (x, y). x must be strictly
// increasing with at least two points; the slices are copied.
func NewSpline(x, y []float64) (*Spline, error) {
	if err := validateTable(x, y); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, errTooFewPoints
	}

	sp := &Spline{
		xs:     append([]float64(nil), x...),
		ys:     append([]float64(nil), y...),
		coeffs: make([]splineCoeff, len(x)-1),
	}
	sp.calcCoeffs(sp.secondDerivatives())
	return sp, nil
}

// Predict evaluates the spline at x.
func (sp *Spline) Predict(x float64) float64 {
	i := sort.SearchFloat64s(sp.xs, x)
	if i < len(sp.xs) && sp.xs[i] == x {
		return sp.ys[i]
	}

	seg := i - 1
	if seg < 0 {
		seg = 0
	}
	if last := len(sp.coeffs) - 1; seg > last {
		seg = last
	}

	dx := x - sp.xs[seg]
	c := sp.coeffs[seg]
	return ((c.a*dx+c.b)*dx+c.c)*dx + c.d
}

// secondDerivatives solves for the spline's second derivative at every knot.
// The boundary values are zero.
func (sp *Spline) secondDerivatives() []float64 {
	n := len(sp.xs)
	y2s := make([]float64, n)
	if n < 3 {
		return y2s
	}

	xs, ys := sp.xs, sp.ys
	m := n - 2
	as, bs := make([]float64, m), make([]float64, m)
	cs, rs := make([]float64, m), make([]float64, m)
	for i := range rs {
		j := i + 1
		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = (ys[j+1]-ys[j])/(xs[j+1]-xs[j]) - (ys[j]-ys[j-1])/(xs[j]-xs[j-1])
	}

	solveTridiagonal(as, bs, cs, rs, y2s[1:n-1])
	return y2s
}

func (sp *Spline) calcCoeffs(y2s []float64) {
	xs, ys := sp.xs, sp.ys
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		sp.coeffs[i] = splineCoeff{
			a: (y2s[i+1] - y2s[i]) / (6 * h),
			b: y2s[i] / 2,
			c: (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6,
			d: ys[i],
		}
	}
}

// solveTridiagonal solves the system with sub-diagonal as, diagonal bs,
// super-diagonal cs and right-hand side rs into out (Thomas algorithm).
// as[0] and cs[len-1] are ignored. bs and rs are overwritten.
func solveTridiagonal(as, bs, cs, rs, out []float64) {
	n := len(bs)
	for i := 1; i < n; i++ {
		w := as[i] / bs[i-1]
		bs[i] -= w * cs[i-1]
		rs[i] -= w * rs[i-1]
	}
	out[n-1] = rs[n-1] / bs[n-1]
	for i := n - 2; i >= 0; i-- {
		out[i] = (rs[i] - cs[i]*out[i+1]) / bs[i]
	}
}
