// Package optics is the root of the material optical-property toolkit.
//
// The subpackages are layered leaf-first:
//
//   - [physconst]: physical constants (CODATA-18)
//   - [unit]:      frequency-like unit conversion routed through meters
//   - [repr]:      refractive index (n,k) <-> permittivity (e',e'') conversion
//   - [dataset]:   tabulated dataset files, path resolution, and listing
//   - [interp]:    linear and cubic-spline interpolation kernels
//   - [material]:  Read/Load orchestration on top of the packages above
//
// This package only holds the error kinds shared by all of them. Callers
// classify failures with [errors.Is]:
//
//	d, err := material.Read("Ag/Johnson", material.Query{})
//	if errors.Is(err, optics.ErrNotFound) {
//		// unknown material
//	}
//
// [physconst]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/physconst
// [unit]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/unit
// [repr]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/repr
// [dataset]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/dataset
// [interp]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/interp
// [material]: https://pkg.go.dev/github.com/cwbudde/algo-emm/optics/material
package optics
