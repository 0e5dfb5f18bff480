package mcl

// Alloc bump-allocates size bytes at the top of the heap and returns their
// address. The caller must have already checked HeapSpace() >= size; no
// relocation occurs, since nothing above the new allocation exists yet.
func (ctx *Context) Alloc(size uint64) Addr {
	ctx.assertValid()
	ctx.assert(size > 0, "mcl: alloc of zero bytes")
	ctx.assert(ctx.HeapSpace() >= size, "mcl: alloc past the top of the heap")

	p := ctx.heapPtr
	ctx.heapPtr += Addr(size)
	return p
}

// Grow expands an existing heap allocation in place, relocating (and
// rewriting every stack slot pointing into) whatever followed it if it was
// not already the top-most allocation.
func (ctx *Context) Grow(p Addr, oldSize, newSize uint64) {
	ctx.assertValid()
	ctx.assert(ctx.HeapContains(p), "mcl: grow of a non-heap pointer")
	ctx.assert(newSize > oldSize, "mcl: grow to a non-larger size")

	delta := Addr(newSize - oldSize)
	ctx.assert(ctx.HeapSpace() >= uint64(delta), "mcl: grow past the top of the heap")

	if p+Addr(oldSize) != ctx.heapPtr {
		ctx.relocate(p, Addr(oldSize), delta, true)
	}
	ctx.heapPtr += delta
}

// Shrink reduces an existing heap allocation in place, relocating whatever
// followed it if it was not already the top-most allocation.
func (ctx *Context) Shrink(p Addr, oldSize, newSize uint64) {
	ctx.assertValid()
	ctx.assert(ctx.HeapContains(p), "mcl: shrink of a non-heap pointer")
	ctx.assert(newSize < oldSize, "mcl: shrink to a non-smaller size")

	delta := Addr(oldSize - newSize)

	if p+Addr(oldSize) != ctx.heapPtr {
		ctx.relocate(p, Addr(oldSize), delta, false)
	}
	ctx.heapPtr -= delta
}

// Free releases an existing heap allocation. Equivalent to shrinking it to
// zero. The address is invalid for any further use once Free returns;
// later allocations may reoccupy it.
func (ctx *Context) Free(p Addr, size uint64) {
	ctx.Shrink(p, size, 0)
}

// relocate memmoves the bytes following p's old allocation by delta (up for
// a grow, down for a shrink) and rewrites every stack slot whose value fell
// strictly above p and below the heap's current tip. The strict
// greater-than test is essential: the slot that holds the pointer to p
// itself must never be shifted.
func (ctx *Context) relocate(p, oldSize, delta Addr, grow bool) {
	oldEnd := p + oldSize
	var newEnd Addr
	if grow {
		newEnd = oldEnd + delta
	} else {
		newEnd = oldEnd - delta
	}

	destEnd := newEnd + (ctx.heapPtr - oldEnd)
	ctx.logTrace("relocate: [%v,%v) -> [%v,%v)", oldEnd, ctx.heapPtr, newEnd, destEnd)
	copy(ctx.region[newEnd:destEnd], ctx.region[oldEnd:ctx.heapPtr])

	for at := ctx.stackPtr; at < ctx.stackEnd; at += SlotSize {
		if v := ctx.loadAddr(at); v > p && v < ctx.heapPtr {
			if grow {
				ctx.storeAddr(at, v+delta)
			} else {
				ctx.storeAddr(at, v-delta)
			}
		}
	}
}
