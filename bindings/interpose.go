// Package main builds a c-shared library whose malloc, free, calloc and
// realloc symbols resolve to the heapkit allocator:
//
//	go build -buildmode=c-shared -o libheapkit.so .
//	LD_PRELOAD=./libheapkit.so some-program
//
// The exported heapkit_* functions carry the Go side; shim.c maps the
// standard names onto them at link level. The allocator's recursion guard
// absorbs the re-entrant allocation calls the host C runtime makes while
// this library is still initializing.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/joshuapare/heapkit/heap"
)

//export heapkit_malloc
func heapkit_malloc(size C.size_t) unsafe.Pointer {
	return heap.Malloc(int(size))
}

//export heapkit_free
func heapkit_free(p unsafe.Pointer) {
	heap.Free(p)
}

//export heapkit_calloc
func heapkit_calloc(n, elemSize C.size_t) unsafe.Pointer {
	return heap.Calloc(int(n), int(elemSize))
}

//export heapkit_realloc
func heapkit_realloc(p unsafe.Pointer, size C.size_t) unsafe.Pointer {
	return heap.Realloc(p, int(size))
}

func main() {}
