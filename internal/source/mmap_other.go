//go:build !(linux || darwin || freebsd)

package source

// OpenMmap falls back to the portable mapping on platforms without a direct mmap path.
func OpenMmap(path string) (Source, error) {
	return OpenReadAt(path)
}
