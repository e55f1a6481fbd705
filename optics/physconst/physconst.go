// Package physconst provides the physical constants used by the unit and
// representation converters. Values follow CODATA-18.
package physconst

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-emm/optics"
)

const (
	SpeedOfLight     = 299792458        // [m/s]
	Eps0             = 8.8541878128e-12 // [F/m]
	Mu0              = 1.25663706212e-6 // [H/m]
	Eta0             = 376.730313668    // [V/A]
	Planck           = 6.62607015e-34   // [J/Hz]
	Hbar             = 1.054571817e-34  // [J*s]
	HbarEV           = 6.582119569e-16  // [eV*s]
	ElementaryCharge = 1.602176634e-19  // [C]
	ElectronMass     = 9.1093837015e-31 // [kg]
	ProtonMass       = 1.67262192369e-27
	Avogadro         = 6.02214076e+23 // [1/mol]
	ElectronVolt     = 1.602176634e-19
	FineStructure    = 7.2973525693e-3
	Boltzmann        = 1.380649e-23 // [J/K]
	AtomicMassUnit   = 1.6605390666e-27
	BohrRadius       = 5.291772109e-11
	Hartree          = 4.3597447222071e-18
)

// Constant is one row of the constants table.
type Constant struct {
	Name      string
	Value     float64
	Unit      string
	Reference string
}

var table = []Constant{
	{"c", SpeedOfLight, "m/s", "CODATA-18"},
	{"eps0", Eps0, "F/m", "CODATA-18"},
	{"mu0", Mu0, "H/m", "CODATA-18"},
	{"eta0", Eta0, "V/A", "CODATA-18"},
	{"h", Planck, "J/Hz", "CODATA-18"},
	{"hbar", Hbar, "J*s", "CODATA-18"},
	{"hbar_eV", HbarEV, "eV*s", ""},
	{"e", ElementaryCharge, "C", "CODATA-18"},
	{"m_e", ElectronMass, "kg", "CODATA-18"},
	{"m_p", ProtonMass, "kg", "CODATA-18"},
	{"N_A", Avogadro, "1/mol", "CODATA-18"},
	{"eV", ElectronVolt, "J", "CODATA-18"},
	{"a", FineStructure, "", "CODATA-18"},
	{"k", Boltzmann, "J/K", "CODATA-18"},
	{"amu", AtomicMassUnit, "kg", "CODATA-18"},
	{"a0", BohrRadius, "m", "CODATA-18"},
	{"Eh", Hartree, "J", "CODATA-18"},
}

var byName = func() map[string]float64 {
	m := make(map[string]float64, len(table))
	for _, c := range table {
		m[c.Name] = c.Value
	}
	return m
}()

// Lookup returns the value of the constant with the given short name
// (for example "c" or "hbar_eV"). Names are case-sensitive: "e" is the
// elementary charge, "eV" the electronvolt.
func Lookup(name string) (float64, error) {
	v, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("physconst: unknown constant %q: %w", name, optics.ErrInvalidArgument)
	}
	return v, nil
}

// All returns a copy of the constants table in display order.
func All() []Constant {
	return append([]Constant(nil), table...)
}

// WriteTable renders the constants table as aligned text.
func WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "constant\tvalue\tunit\tref\n"); err != nil {
		return err
	}
	for _, c := range table {
		if _, err := fmt.Fprintf(tw, "%s\t%.12g\t%s\t%s\n", c.Name, c.Value, c.Unit, c.Reference); err != nil {
			return err
		}
	}
	return tw.Flush()
}
