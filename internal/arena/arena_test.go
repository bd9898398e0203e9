package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_AllocWrite(t *testing.T) {
	a := New(0)

	off1 := a.Write([]byte{1, 2, 3})
	require.Equal(t, 0, off1)
	require.Equal(t, 3, a.Len())

	off2 := a.Alloc(4)
	require.Equal(t, 3, off2)
	require.Equal(t, 7, a.Len())
	require.Equal(t, []byte{0, 0, 0, 0}, a.Bytes(off2, 4))

	require.Equal(t, []byte{1, 2, 3}, a.Bytes(off1, 3))
}

func TestArena_GrowthPreservesOffsets(t *testing.T) {
	a := New(1)
	offsets := make([]int, 0, 64)
	for i := range 64 {
		off := a.Write([]byte{byte(i)})
		offsets = append(offsets, off)
	}

	for i, off := range offsets {
		require.Equal(t, []byte{byte(i)}, a.Bytes(off, 1))
	}
}
