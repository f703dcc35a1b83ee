package heap

import "unsafe"

// std is the process-wide default heap behind the package-level surface.
var std = New()

// Malloc allocates size bytes from the default heap.
func Malloc(size int) unsafe.Pointer {
	return std.Malloc(size)
}

// Free releases an allocation made from the default heap.
func Free(p unsafe.Pointer) {
	std.Free(p)
}

// Calloc allocates a zeroed array from the default heap.
func Calloc(n, elemSize int) unsafe.Pointer {
	return std.Calloc(n, elemSize)
}

// Realloc resizes an allocation from the default heap.
func Realloc(p unsafe.Pointer, size int) unsafe.Pointer {
	return std.Realloc(p, size)
}

// SetPolicy switches the default heap's placement policy. Out-of-range
// values are silently ignored.
func SetPolicy(p Policy) {
	std.SetPolicy(p)
}

// UsageStats reports live usage of the default heap.
func UsageStats() Stats {
	return std.UsageStats()
}

// FragmentationRate reports the default heap's external fragmentation.
func FragmentationRate() float64 {
	return std.FragmentationRate()
}

// CheckConsistency runs structural diagnostics on the default heap.
func CheckConsistency() {
	std.CheckConsistency()
}

// IsValidAddress reports whether p is a live payload pointer of the
// default heap.
func IsValidAddress(p unsafe.Pointer) bool {
	return std.IsValidAddress(p)
}

// ResetForTesting abandons the default heap's block list, leaking its
// mappings. Test isolation only.
func ResetForTesting() {
	std.ResetForTesting()
}
