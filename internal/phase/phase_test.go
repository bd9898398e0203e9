package phase

import (
	"testing"

	"github.com/dercert/derx509/errs"
	"github.com/stretchr/testify/require"
)

func TestRun_PhaseAReportsSizeWithoutWriting(t *testing.T) {
	called := false
	n, err := Run(nil, 5, func(buf []byte) { called = true })
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.False(t, called)
}

func TestRun_PhaseBWritesOnSufficientCapacity(t *testing.T) {
	buf := make([]byte, 5)
	n, err := Run(buf, 3, func(b []byte) {
		copy(b, []byte{1, 2, 3})
	})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{1, 2, 3, 0, 0}, buf)
}

func TestRun_PhaseBFailsOnInsufficientCapacity(t *testing.T) {
	buf := make([]byte, 2)
	_, err := Run(buf, 3, func(b []byte) {})
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)

	var codecErr *errs.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, 3, codecErr.Required)
}

// TestRun_CapacityCheckUsesBufferLength pins spec.md §9 design note 2:
// the capacity check compares len(out) — the size cell — against the
// bytes needed, not the leading content byte of a possibly-stale buffer.
func TestRun_CapacityCheckUsesBufferLength(t *testing.T) {
	buf := make([]byte, 2)
	buf[0] = 0xFF // stale byte a content-byte check would mistake for size

	_, err := Run(buf, 3, func(b []byte) {})
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)
}
