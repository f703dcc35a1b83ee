//go:build unix

package mmap

import "golang.org/x/sys/unix"

// Alloc returns n bytes of fresh, zero-filled, read-write memory backed by
// an anonymous private mapping. The mapping is never unmapped: the heap
// keeps every block it ever creates.
func Alloc(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}
