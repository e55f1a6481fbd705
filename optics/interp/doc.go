// Package interp maps tabulated (x, y) data onto arbitrary query points.
//
// Available methods:
//
//   - [Linear]: piecewise-linear; queries outside the table hold the
//     boundary value
//   - [Cubic]:  natural cubic spline; queries outside the table continue the
//     first/last spline segment
//
// The two extrapolation policies differ on purpose. Use [Resample] for the
// one-shot case and [New] to reuse a fitted [Predictor].
package interp
