package mcl

// framePrevOffset is the slot offset, from a frame's address, of the link
// to the frame outside it. The self-sentinel lives at offset 0 (the
// frame's own address, by construction); the previous-frame link lives one
// slot above that.
const framePrevOffset = SlotSize

// FramePush opens a new frame on top of the pointer stack: a previous-
// frame link followed by a self-sentinel slot whose value is its own
// address, so that an unwind walk can recognize a frame header without a
// separate tag. Raises OutOfMemory if fewer than two slots remain.
func (ctx *Context) FramePush() {
	ctx.assertValid()
	if ctx.StackSpace() < 2 {
		ctx.Raise(OutOfMemory)
	}

	ctx.Push(ctx.framePtr)
	ctx.framePtr = ctx.stackPtr - SlotSize
	ctx.Push(ctx.framePtr)
}

// FramePop closes the current frame, releasing every scope-local entry
// above it (including the self-sentinel) and restoring framePtr from the
// previous-frame link that follows.
func (ctx *Context) FramePop() {
	ctx.assertValid()
	ctx.assert(ctx.StackHeight() >= 2, "mcl: frame_pop with no open frame")

	for ctx.stackPtr <= ctx.framePtr {
		v := ctx.Pop()
		if ctx.HeapContains(v) {
			ctx.StringRelease(v)
		}
	}
	ctx.framePtr = ctx.Pop()
}

// FrameSeek finds the address of a frame relative to the current one.
// level == 0 is the current frame; level > 0 walks outward (towards the
// bottom of the stack) that many links. level < 0 counts from the bottom:
// -1 is the outermost (procedure table) frame, -2 the one inside it, and
// so on. The second return is false if level names a frame that does not
// exist.
func (ctx *Context) FrameSeek(level int) (Addr, bool) {
	ctx.assertValid()

	switch {
	case level == 0:
		return ctx.framePtr, true

	case level > 0:
		frame := ctx.framePtr
		for ; level > 0; level-- {
			frame = ctx.loadAddr(frame + framePrevOffset)
			if frame == ctx.stackEnd {
				return 0, false
			}
		}
		return frame, true

	default:
		savedStackPtr := ctx.stackPtr
		frame := ctx.framePtr
		for frame < ctx.stackEnd {
			if ctx.StackSpace() < 1 {
				ctx.Raise(OutOfMemory)
			}
			ctx.Push(frame)
			frame = ctx.loadAddr(frame + framePrevOffset)
		}

		idx := Addr(-1 - level)
		count := (savedStackPtr - ctx.stackPtr) / SlotSize

		var result Addr
		var ok bool
		if idx < count {
			result = ctx.loadAddr(ctx.stackPtr + idx*SlotSize)
			ok = true
		}

		ctx.stackPtr = savedStackPtr
		return result, ok
	}
}
