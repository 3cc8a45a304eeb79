package bumpver

import (
	"errors"
	"fmt"
	"os"
)

// DefaultStore is the conventional location of the version store, relative
// to the repository root.
const DefaultStore = "VERSION"

// ErrStoreNotFound reports a missing version store.
var ErrStoreNotFound = errors.New("version store not found")

// ReadStore reads and parses the version store at path.
func ReadStore(path string) (Version, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Version{}, fmt.Errorf("%w at %s", ErrStoreNotFound, path)
		}
		return Version{}, fmt.Errorf("failed to read version store: %w", err)
	}
	return ParseVersion(string(data))
}

// WriteStore overwrites the version store at path with the canonical form of
// v plus a trailing newline.
func WriteStore(path string, v Version) error {
	if err := os.WriteFile(path, []byte(v.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write version store: %w", err)
	}
	return nil
}
