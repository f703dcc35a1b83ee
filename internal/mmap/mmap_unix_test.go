//go:build unix

package mmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocReturnsZeroedMemory(t *testing.T) {
	b, err := Alloc(4096)
	require.NoError(t, err)
	require.Len(t, b, 4096)

	for i, v := range b {
		require.Zerof(t, v, "byte %d not zero", i)
	}
}

func TestAllocIsWritable(t *testing.T) {
	b, err := Alloc(4096)
	require.NoError(t, err)

	b[0] = 0xAA
	b[4095] = 0x55
	require.Equal(t, byte(0xAA), b[0])
	require.Equal(t, byte(0x55), b[4095])
}
