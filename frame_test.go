package mcl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Frame_pushPopIsSymmetric(t *testing.T) {
	ctx := newTestContext(t, 64)
	baseHeight := ctx.StackHeight()
	baseFrame := ctx.framePtr

	ctx.FramePush()
	require.Equal(t, baseHeight+2, ctx.StackHeight())
	require.NotEqual(t, baseFrame, ctx.framePtr)

	ctx.FramePop()
	require.Equal(t, baseHeight, ctx.StackHeight())
	require.Equal(t, baseFrame, ctx.framePtr)
}

func Test_Frame_popReleasesLocals(t *testing.T) {
	ctx := newTestContext(t, 64)

	ctx.FramePush()
	s := ctx.NewString("scope-local")
	ctx.Push(s)
	before := ctx.heapPtr

	ctx.FramePop()
	require.Less(t, ctx.heapPtr, before, "a local string must be released when its frame closes")
}

func Test_Frame_popPreservesValuesBelowTheFrame(t *testing.T) {
	ctx := newTestContext(t, 64)

	ctx.Push(42)
	ctx.FramePush()
	ctx.Push(7)

	ctx.FramePop()
	require.Equal(t, Addr(42), ctx.Pop())
}

func Test_FrameSeek_zeroIsCurrentFrame(t *testing.T) {
	ctx := newTestContext(t, 64)
	got, ok := ctx.FrameSeek(0)
	require.True(t, ok)
	require.Equal(t, ctx.framePtr, got)
}

// newTestContext leaves two frames already open (the outermost procedure
// table frame Init pushes, and the global table frame nested inside it), so
// every FrameSeek test below accounts for those two before any frame it
// pushes itself.
func Test_FrameSeek_positiveWalksOutward(t *testing.T) {
	ctx := newTestContext(t, 64)
	globalTable := ctx.framePtr

	ctx.FramePush()
	middle := ctx.framePtr
	ctx.FramePush()

	got, ok := ctx.FrameSeek(1)
	require.True(t, ok)
	require.Equal(t, middle, got)

	got, ok = ctx.FrameSeek(2)
	require.True(t, ok)
	require.Equal(t, globalTable, got)

	_, ok = ctx.FrameSeek(4)
	require.False(t, ok, "there is no frame beyond the outermost")
}

func Test_FrameSeek_negativeCountsFromTheBottom(t *testing.T) {
	ctx := newTestContext(t, 64)
	globalTable := ctx.framePtr

	ctx.FramePush()
	third := ctx.framePtr
	ctx.FramePush()
	top := ctx.framePtr

	savedHeight := ctx.StackHeight()

	procedureTable, ok := ctx.FrameSeek(3)
	require.True(t, ok, "the outermost frame must still be reachable by walking outward")

	got, ok := ctx.FrameSeek(-1)
	require.True(t, ok)
	require.Equal(t, procedureTable, got)

	got, ok = ctx.FrameSeek(-2)
	require.True(t, ok)
	require.Equal(t, globalTable, got)

	got, ok = ctx.FrameSeek(-3)
	require.True(t, ok)
	require.Equal(t, third, got)

	got, ok = ctx.FrameSeek(-4)
	require.True(t, ok)
	require.Equal(t, top, got)

	_, ok = ctx.FrameSeek(-5)
	require.False(t, ok, "there is no fifth frame from the bottom")

	require.Equal(t, savedHeight, ctx.StackHeight(), "FrameSeek must not leave the stack taller than it found it")
}

func Test_Frame_popFaultsWithoutAnOpenFrame(t *testing.T) {
	ctx := newTestContext(t, MinEntries)
	ctx.PopN(ctx.StackHeight())

	require.PanicsWithValue(t, Fault("mcl: frame_pop with no open frame"), func() {
		ctx.FramePop()
	})
}
