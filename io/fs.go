package io

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS is a file system that supports creating files, for saving
// program images.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS is a CreateFS rooted at a host directory.
type DirFS string

var _ CreateFS = DirFS("")

// Create creates or truncates the named file below the directory.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(filepath.Join(string(dir), filepath.FromSlash(name)))
}
