package scanner

import (
	"io/fs"
	"os"
)

// FileAccessor abstracts the directory and stat calls the scanner makes.
type FileAccessor interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

type hostFileAccessor struct{}

// NewHostFileAccessor returns an accessor backed by the live filesystem
func NewHostFileAccessor() FileAccessor {
	return &hostFileAccessor{}
}

func (h *hostFileAccessor) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (h *hostFileAccessor) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
