package document

import (
	"fmt"
	"os"

	"github.com/moby/sys/atomicwriter"
)

// Result describes what UpdateFile did.
type Result struct {
	Path    string
	Changed bool
}

// UpdateFile replaces the marked region of the file at path with table.
// The file is left untouched when a marker is missing or the content would
// not change. Writes go through a temporary file and rename.
func UpdateFile(path, table string) (Result, error) {
	res := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return res, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := Replace(string(data), table)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	if updated == string(data) {
		return res, nil
	}

	if err := atomicwriter.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}

	res.Changed = true
	return res, nil
}

// ReadTable returns the table embedded in the file at path.
func ReadTable(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	table, err := Extract(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
