package mcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Stack_pushPop(t *testing.T) {
	ctx := newTestContext(t, 32)
	base := ctx.StackHeight()

	ctx.Push(11)
	ctx.Push(22)
	ctx.Push(33)
	require.Equal(t, base+3, ctx.StackHeight())

	require.Equal(t, Addr(33), ctx.Pop())
	require.Equal(t, Addr(22), ctx.Pop())
	require.Equal(t, Addr(11), ctx.Pop())
	require.Equal(t, base, ctx.StackHeight())
}

func Test_Stack_PopN(t *testing.T) {
	ctx := newTestContext(t, 32)
	base := ctx.StackHeight()

	ctx.Push(1)
	ctx.Push(2)
	ctx.Push(3)
	ctx.PopN(2)
	require.Equal(t, base+1, ctx.StackHeight())
	require.Equal(t, Addr(1), ctx.Pop())
	require.Equal(t, base, ctx.StackHeight())
}

func Test_Stack_Swap(t *testing.T) {
	ctx := newTestContext(t, 32)
	ctx.Push(1)
	ctx.Push(2)

	top := ctx.stackPtr
	second := ctx.stackPtr + SlotSize
	ctx.Swap(top, second)

	require.Equal(t, Addr(1), ctx.Pop())
	require.Equal(t, Addr(2), ctx.Pop())
}

func Test_Stack_pushFaultsWhenFull(t *testing.T) {
	ctx := newTestContext(t, MinEntries)
	for ctx.StackSpace() > 0 {
		ctx.Push(0)
	}

	require.PanicsWithValue(t, Fault("mcl: push with no stack space"), func() {
		ctx.Push(0)
	})
}

func Test_Stack_popFaultsWhenEmpty(t *testing.T) {
	ctx := newTestContext(t, MinEntries)
	for ctx.StackHeight() > 0 {
		ctx.Pop()
	}

	require.PanicsWithValue(t, Fault("mcl: pop of an empty stack"), func() {
		ctx.Pop()
	})
}
