// Package dataset reads tabulated material datasets.
//
// A dataset file is a YAML document with a top-level NAME and a DATA list.
// The first DATA entry names the frequency unit ("unit"), the property
// representation ("parm") and carries the table itself ("data") as a flat
// list of numbers grouped in (frequency, real, imaginary) triples:
//
//	NAME: Ag (Johnson and Christy 1972)
//	DATA:
//	  - type: tabulated nk
//	    unit: eV
//	    parm: n
//	    data: |
//	      0.64 0.24 14.08
//	      0.77 0.15 11.85
//
// Datasets live under a data directory, grouped in one sub-directory per
// material ("collection"), and are addressed by a relative name such as
// "Ag/Johnson".
package dataset

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-emm/optics/repr"
	"github.com/cwbudde/algo-emm/optics/unit"
)

// Dataset is one material's tabulated optical property.
//
// Frequency, Real and Imag have identical length >= 1. Frequency is in Unit
// and (Real, Imag) are in Representation.
type Dataset struct {
	Name           string
	References     string
	Source         string // resolved file path, empty when parsed from memory
	Frequency      []float64
	Real           []float64
	Imag           []float64
	Unit           unit.Unit
	Representation repr.Representation
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Frequency) }

// Validate checks the length invariant and the unit/representation tags.
func (d *Dataset) Validate() error {
	if len(d.Frequency) == 0 {
		return fmt.Errorf("dataset %q: no rows: %w", d.Name, optics.ErrMalformedData)
	}
	if len(d.Real) != len(d.Frequency) || len(d.Imag) != len(d.Frequency) {
		return fmt.Errorf("dataset %q: column length mismatch: %d/%d/%d: %w",
			d.Name, len(d.Frequency), len(d.Real), len(d.Imag), optics.ErrMalformedData)
	}
	if !d.Unit.Valid() {
		return fmt.Errorf("dataset %q: unit %v: %w", d.Name, d.Unit, optics.ErrInvalidArgument)
	}
	if !d.Representation.Valid() {
		return fmt.Errorf("dataset %q: representation %v: %w", d.Name, d.Representation, optics.ErrInvalidArgument)
	}
	return nil
}

// Complex returns Real + i*Imag.
func (d *Dataset) Complex() []complex128 {
	out := make([]complex128, len(d.Real))
	for i := range out {
		out[i] = complex(d.Real[i], d.Imag[i])
	}
	return out
}

// Clone returns a deep copy.
func (d *Dataset) Clone() *Dataset {
	c := *d
	c.Frequency = append([]float64(nil), d.Frequency...)
	c.Real = append([]float64(nil), d.Real...)
	c.Imag = append([]float64(nil), d.Imag...)
	return &c
}

// Sorted returns a copy with rows ordered by ascending frequency.
//
// Converting to or from a reciprocal unit reverses the row order, so the
// common descending case is handled by a reversal. Repeated frequencies fail
// with optics.ErrMalformedData.
func (d *Dataset) Sorted() (*Dataset, error) {
	c := d.Clone()
	f := c.Frequency

	switch {
	case sort.Float64sAreSorted(f):
	case isDescending(f):
		reverse(c.Frequency)
		reverse(c.Real)
		reverse(c.Imag)
	default:
		sort.Stable(byFrequency{c})
	}

	for i := 1; i < len(f); i++ {
		if !(f[i] > f[i-1]) {
			return nil, fmt.Errorf("dataset %q: frequency not strictly monotonic at row %d (%g): %w",
				d.Name, i, f[i], optics.ErrMalformedData)
		}
	}
	return c, nil
}

func isDescending(f []float64) bool {
	for i := 1; i < len(f); i++ {
		if f[i] > f[i-1] {
			return false
		}
	}
	return true
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

type byFrequency struct{ d *Dataset }

func (b byFrequency) Len() int           { return len(b.d.Frequency) }
func (b byFrequency) Less(i, j int) bool { return b.d.Frequency[i] < b.d.Frequency[j] }
func (b byFrequency) Swap(i, j int) {
	d := b.d
	d.Frequency[i], d.Frequency[j] = d.Frequency[j], d.Frequency[i]
	d.Real[i], d.Real[j] = d.Real[j], d.Real[i]
	d.Imag[i], d.Imag[j] = d.Imag[j], d.Imag[i]
}
