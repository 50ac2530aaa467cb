package fileio

import (
	"errors"
	"fmt"
	"os"
)

var ErrNotRegular = errors.New("not a regular file")

// Reader reads a whole file by its path. Its only contract is "exists and readable" or not.
type Reader func(path string) ([]byte, error)

// Read is the default Reader backed by the local filesystem. Directories and other
// non-regular files are refused.
func Read(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return os.ReadFile(path)
}
