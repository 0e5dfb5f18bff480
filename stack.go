package mcl

// Push places v on top of the pointer stack. The caller must have already
// checked StackSpace() >= 1; Push itself only asserts it, as a programming
// fault, rather than raising OutOfMemory on the caller's behalf.
func (ctx *Context) Push(v Addr) {
	ctx.assertValid()
	ctx.assert(ctx.StackSpace() >= 1, "mcl: push with no stack space")
	ctx.stackPtr -= SlotSize
	ctx.storeAddr(ctx.stackPtr, v)
}

// Pop removes and returns the top of the pointer stack.
func (ctx *Context) Pop() Addr {
	ctx.assertValid()
	ctx.assert(ctx.StackHeight() >= 1, "mcl: pop of an empty stack")
	v := ctx.loadAddr(ctx.stackPtr)
	ctx.stackPtr += SlotSize
	return v
}

// PopN discards the top n entries without inspecting them. It does not
// release any heap references they may hold -- the caller must have
// released any owned references first, unless it intends those references
// to survive via other slots.
func (ctx *Context) PopN(n uint64) {
	ctx.assertValid()
	ctx.assert(ctx.StackHeight() >= n, "mcl: pop_n past the bottom of the stack")
	ctx.stackPtr += Addr(n) * SlotSize
}

// Swap exchanges the values held at two stack slot addresses.
func (ctx *Context) Swap(a, b Addr) {
	ctx.assertValid()
	va, vb := ctx.loadAddr(a), ctx.loadAddr(b)
	ctx.storeAddr(a, vb)
	ctx.storeAddr(b, va)
}
