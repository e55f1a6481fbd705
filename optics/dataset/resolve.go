package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-emm/optics"
)

var extensions = [...]string{".yaml", ".yml"}

// Extensions returns the suffixes appended, in order, to dataset names given
// without one. The result is a copy.
func Extensions() []string {
	return append([]string(nil), extensions[:]...)
}

// Resolve maps a dataset name such as "Ag/Johnson" to a file under dataDir.
//
// Both "/" and "\" separate path elements in name. The exact path is tried
// first; if name has no extension, each of [Extensions] is tried next.
func Resolve(dataDir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("dataset: name must not be empty: %w", optics.ErrInvalidArgument)
	}
	if err := requireDir(dataDir); err != nil {
		return "", err
	}

	rel := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	base := filepath.Join(dataDir, rel)
	candidates := []string{base}
	if filepath.Ext(rel) == "" {
		for _, ext := range extensions {
			candidates = append(candidates, base+ext)
		}
	}

	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && fi.Mode().IsRegular() {
			return c, nil
		}
	}
	return "", fmt.Errorf("dataset: %q in %s: %w", name, dataDir, optics.ErrNotFound)
}

// List returns the sorted collection names (sub-directories) of dataDir when
// collection is empty, and the sorted dataset file names inside
// dataDir/collection otherwise.
func List(dataDir, collection string) ([]string, error) {
	dir := dataDir
	wantDirs := strings.TrimSpace(collection) == ""
	if !wantDirs {
		dir = filepath.Join(dataDir, filepath.FromSlash(strings.ReplaceAll(collection, `\`, "/")))
	}
	if err := requireDir(dir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() == wantDirs {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func requireDir(dir string) error {
	fi, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("dataset: directory %s: %w", dir, optics.ErrNotFound)
	case err != nil:
		return fmt.Errorf("dataset: directory %s: %w", dir, err)
	case !fi.IsDir():
		return fmt.Errorf("dataset: %s is not a directory: %w", dir, optics.ErrNotFound)
	}
	return nil
}
