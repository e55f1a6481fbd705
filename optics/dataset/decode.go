package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cwbudde/algo-emm/optics"
	"github.com/cwbudde/algo-emm/optics/repr"
	"github.com/cwbudde/algo-emm/optics/unit"
	"gopkg.in/yaml.v3"
)

type document struct {
	Name       string  `yaml:"NAME"`
	References string  `yaml:"REFERENCES"`
	Data       []entry `yaml:"DATA"`
}

type entry struct {
	Type string `yaml:"type"`
	Unit string `yaml:"unit"`
	Parm string `yaml:"parm"`
	Data string `yaml:"data"`
}

// Decode reads one dataset document from r.
func Decode(r io.Reader) (*Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset: empty document: %w", optics.ErrMalformedData)
		}
		return nil, fmt.Errorf("dataset: decode: %w: %w", optics.ErrMalformedData, err)
	}
	return doc.dataset()
}

// Parse decodes a dataset document held in memory.
func Parse(b []byte) (*Dataset, error) {
	return Decode(bytes.NewReader(b))
}

// ReadFile decodes the dataset stored at path. A missing file fails with
// optics.ErrNotFound.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("dataset: %s: %w", path, optics.ErrNotFound)
		}
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

func (doc *document) dataset() (*Dataset, error) {
	if len(doc.Data) == 0 {
		return nil, fmt.Errorf("dataset %q: missing DATA entry: %w", doc.Name, optics.ErrMalformedData)
	}
	e := doc.Data[0]
	if strings.TrimSpace(e.Unit) == "" {
		return nil, fmt.Errorf("dataset %q: missing unit: %w", doc.Name, optics.ErrMalformedData)
	}
	if strings.TrimSpace(e.Parm) == "" {
		return nil, fmt.Errorf("dataset %q: missing parm: %w", doc.Name, optics.ErrMalformedData)
	}

	u, err := unit.Parse(e.Unit)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", doc.Name, err)
	}
	p, err := repr.Parse(e.Parm)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", doc.Name, err)
	}

	values, err := parseTable(e.Data)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", doc.Name, err)
	}

	rows := len(values) / 3
	d := &Dataset{
		Name:           doc.Name,
		References:     strings.TrimSpace(doc.References),
		Frequency:      make([]float64, rows),
		Real:           make([]float64, rows),
		Imag:           make([]float64, rows),
		Unit:           u,
		Representation: p,
	}
	for i := 0; i < rows; i++ {
		d.Frequency[i] = values[3*i]
		d.Real[i] = values[3*i+1]
		d.Imag[i] = values[3*i+2]
	}
	return d, nil
}

// parseTable splits a whitespace- or comma-separated list of numbers and
// checks that it groups into triples.
func parseTable(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty data table: %w", optics.ErrMalformedData)
	}
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("data table has %d values, not a multiple of 3: %w", len(fields), optics.ErrMalformedData)
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("data table value %d (%q) is not a number: %w", i, field, optics.ErrMalformedData)
		}
		values[i] = v
	}
	return values, nil
}
