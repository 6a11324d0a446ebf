// Package source provides read-only views of a whole input file.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Source is a fixed-length, read-only view of a file's bytes.
// The slice returned by Bytes stays valid until Close is called
// and must never be written to.
type Source interface {
	Bytes() []byte
	Close() error
}

type Kind string

const (
	KindMmap   Kind = "mmap"
	KindReadAt Kind = "readat"
	KindRead   Kind = "read"
)

var ErrUnknownKind = errors.New("unknown source kind")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindMmap, KindReadAt, KindRead:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Open returns a view of the file at path obtained the way kind says.
func Open(path string, kind Kind) (Source, error) {
	switch kind {
	case KindMmap, "":
		return OpenMmap(path)
	case KindReadAt:
		return OpenReadAt(path)
	case KindRead:
		return OpenRead(path)
	}
	return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// Bytes wraps an in-memory buffer. Close is a no-op.
type Bytes []byte

func (b Bytes) Bytes() []byte { return b }
func (b Bytes) Close() error  { return nil }

// OpenRead reads the whole file into the heap.
func OpenRead(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Bytes(b), nil
}

// OpenReadAt maps the file through golang.org/x/exp/mmap and copies it
// out with ReadAt. It works on every platform that package supports.
func OpenReadAt(path string) (Source, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to map file: %w", err)
	}
	defer r.Close()

	buf := make([]byte, r.Len())
	n, err := r.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read mapped file: %w", err)
	}
	if n != len(buf) {
		return nil, fmt.Errorf("failed to read mapped file: short read %d of %d", n, len(buf))
	}
	return Bytes(buf), nil
}
