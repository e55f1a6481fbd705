package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// DatasetYAML renders a dataset document with one DATA entry whose rows are
// (frequency, real, imaginary) triples.
func DatasetYAML(name, unit, parm string, rows [][3]float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NAME: %s\n", name)
	b.WriteString("DATA:\n")
	b.WriteString("  - type: tabulated\n")
	fmt.Fprintf(&b, "    unit: %s\n", unit)
	fmt.Fprintf(&b, "    parm: %s\n", parm)
	b.WriteString("    data: |\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "      %.17g %.17g %.17g\n", r[0], r[1], r[2])
	}
	return b.String()
}

// WriteFile writes content to dir/rel, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteDataset writes a DatasetYAML document to dir/rel.
func WriteDataset(t *testing.T, dir, rel, unit, parm string, rows [][3]float64) string {
	t.Helper()
	name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	return WriteFile(t, dir, rel, DatasetYAML(name, unit, parm, rows))
}
