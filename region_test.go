package mcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ceilSlot(t *testing.T) {
	for _, tc := range []struct{ in, out Addr }{
		{0, 0},
		{1, SlotSize},
		{SlotSize - 1, SlotSize},
		{SlotSize, SlotSize},
		{SlotSize + 1, 2 * SlotSize},
	} {
		require.Equal(t, tc.out, ceilSlot(tc.in), "ceilSlot(%d)", tc.in)
	}
}

func Test_Region_spaceAndHeight(t *testing.T) {
	ctx := newTestContext(t, 32)

	totalSlots := uint64(32)
	frameSlots := uint64(4) // two frames, two slots each

	require.Equal(t, frameSlots, ctx.StackHeight())
	require.Equal(t, totalSlots-frameSlots, ctx.StackSpace())
	require.Equal(t, uint64(ctx.stackPtr-ctx.heapPtr), ctx.HeapSpace(), "heap space is the gap to the stack")

	ctx.Push(0)
	require.Equal(t, frameSlots+1, ctx.StackHeight())
	require.Equal(t, totalSlots-frameSlots-1, ctx.StackSpace())
}

func Test_Region_containment(t *testing.T) {
	ctx := newTestContext(t, 32)
	s := ctx.NewString("ab")

	require.True(t, ctx.HeapContains(s))
	require.False(t, ctx.HeapContains(ctx.heapPtr))
	require.False(t, ctx.StackContains(s))

	require.True(t, ctx.StackContains(ctx.stackPtr))
	require.False(t, ctx.StackContains(ctx.stackEnd))
}
