package fst

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a read-only memory-mapped dictionary file. Transducers built over
// Bytes stay valid until Close, which unmaps the file.
type File struct {
	f *os.File
	m mmap.MMap
}

// OpenFile maps path read-only.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("fst: mmap %s: %w", path, err)
	}
	return &File{f: f, m: m}, nil
}

// Bytes returns the mapped contents.
func (f *File) Bytes() []byte {
	return f.m
}

// Close unmaps the file. Any transducer built over it must not be used
// afterwards.
func (f *File) Close() error {
	err := f.m.Unmap()
	if cerr := f.f.Close(); err == nil {
		err = cerr
	}
	return err
}
