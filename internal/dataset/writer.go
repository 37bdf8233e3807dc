package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FileName returns the artifact basename for a collection.
func FileName(collection string) string {
	return collection + ".json"
}

// Write serializes every collection to <dir>/<name>.json. Files carry no
// ordering dependency, so they are written concurrently; the first failure
// is returned after all writes settle.
func Write(dir string, ds *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}

	var group errgroup.Group
	for _, col := range ds.Collections() {
		group.Go(func() error {
			return writeCollection(dir, col)
		})
	}

	return group.Wait()
}

// WriteCollection serializes a single collection by name.
func WriteCollection(dir string, ds *Dataset, name string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}

	for _, col := range ds.Collections() {
		if col.Name == name {
			return writeCollection(dir, col)
		}
	}

	return errors.Errorf("unknown collection %q", name)
}

func writeCollection(dir string, col Collection) error {
	data, err := json.MarshalIndent(col.Docs, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "marshal %s", col.Name)
	}

	path := filepath.Join(dir, FileName(col.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	return nil
}
