//go:build linux || darwin || freebsd

package source

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type mapped struct {
	data []byte
}

func (m *mapped) Bytes() []byte { return m.data }

func (m *mapped) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("failed to unmap file: %w", err)
	}
	return nil
}

// OpenMmap maps the file read-only into memory. The file descriptor is
// released right away; the mapping lives until Close.
func OpenMmap(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	size := fi.Size()
	if size == 0 {
		// mmap rejects zero-length mappings
		return &mapped{}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("file too large to map: %d bytes", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to mmap file: %w", err)
	}
	// read-ahead hint only; the mapping works without it
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return &mapped{data: data}, nil
}
