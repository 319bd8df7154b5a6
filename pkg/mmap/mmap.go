// Package mmap provides read-only memory mapping of input files.
//
// The whole input is mapped once and shared by every worker; nothing in the
// run mutates or copies it, so the mapping needs no synchronization. The
// mapping must outlive every view into it: callers close the File only
// after all derived slices are dead.
package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped file.
type File struct {
	path string
	data []byte
	size int64
}

// Open opens the file at path and maps it into memory.
// An empty file maps to nil data and is not an error.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	size := info.Size()
	if size == 0 {
		return &File{path: path}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &File{path: path, data: data, size: size}, nil
}

// Close unmaps the file. No slice returned by Data may be used afterwards.
// Close is idempotent.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	data := f.data
	f.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap %s: %w", f.path, err)
	}
	return nil
}

// Data returns the mapped bytes. The slice is valid until Close.
func (f *File) Data() []byte { return f.data }

// Size returns the mapped file's size in bytes.
func (f *File) Size() int64 { return f.size }

// Path returns the mapped file's path.
func (f *File) Path() string { return f.path }
