package mcl

const (
	stringFieldRefCount = 0
	stringFieldLength   = 1
	stringFieldChars    = 3
)

func stringSize(l uint16) uint64 { return 4 + uint64(l) }

// StringRefCount returns a string object's reference count.
func (ctx *Context) StringRefCount(s Addr) uint8 {
	ctx.assertValid()
	return ctx.region[s+stringFieldRefCount]
}

// StringLen returns a string object's content length.
func (ctx *Context) StringLen(s Addr) uint16 {
	ctx.assertValid()
	return UnpackUint16(ctx.region[s+stringFieldLength:])
}

// StringChars returns the string object's content bytes, not including the
// trailing NUL. The returned slice aliases the region and is only valid
// until the next heap mutation.
func (ctx *Context) StringChars(s Addr) []byte {
	ctx.assertValid()
	l := ctx.StringLen(s)
	start := s + stringFieldChars
	return ctx.region[start : start+Addr(l)]
}

func (ctx *Context) stringEmplace(s Addr, l uint16) {
	ctx.region[s+stringFieldRefCount] = 1
	PackUint16(ctx.region[s+stringFieldLength:], l)
	ctx.region[s+stringFieldChars+Addr(l)] = 0
}

// stringAlloc allocates a new string object of content length l, raising
// OutOfMemory if the heap cannot accommodate it. Content bytes are left
// uninitialized.
func (ctx *Context) stringAlloc(l uint16) Addr {
	size := stringSize(l)
	if size > ctx.HeapSpace() {
		ctx.Raise(OutOfMemory)
	}
	s := ctx.Alloc(size)
	ctx.stringEmplace(s, l)
	return s
}

// NewStringWithLen creates a new string object with a count of 1, copying
// l bytes from b as its content.
func (ctx *Context) NewStringWithLen(b []byte, l uint16) Addr {
	ctx.assertValid()
	s := ctx.stringAlloc(l)
	copy(ctx.StringChars(s), b[:l])
	return s
}

// NewString creates a new string object from a Go string, raising
// OutOfMemory if it exceeds MaxStringLen.
func (ctx *Context) NewString(s string) Addr {
	ctx.assertValid()
	if len(s) > MaxStringLen {
		ctx.Raise(OutOfMemory)
	}
	return ctx.NewStringWithLen([]byte(s), uint16(len(s)))
}

// StringAcquire increments a string object's reference count and returns
// it, for chaining. Overflowing past 255 is a programming fault.
func (ctx *Context) StringAcquire(s Addr) Addr {
	ctx.assertValid()
	ctx.assert(ctx.region[s+stringFieldRefCount] < 255, faultRefCountOverflow)
	ctx.region[s+stringFieldRefCount]++
	return s
}

// StringRelease decrements a string object's reference count, freeing it
// once the count would reach zero.
func (ctx *Context) StringRelease(s Addr) {
	ctx.assertValid()
	ctx.assert(ctx.HeapContains(s), faultNotHeapPointer)
	if ctx.region[s+stringFieldRefCount] == 1 {
		ctx.Free(s, stringSize(ctx.StringLen(s)))
	} else {
		ctx.region[s+stringFieldRefCount]--
	}
}

// StringGrow expands a string object's content to newLen, raising
// OutOfMemory if there is no room. New bytes are uninitialized.
func (ctx *Context) StringGrow(s Addr, newLen uint16) {
	ctx.assertValid()
	curLen := ctx.StringLen(s)
	ctx.assert(newLen > curLen, "mcl: string_grow to a non-larger length")

	delta := uint64(newLen - curLen)
	if delta > ctx.HeapSpace() {
		ctx.Raise(OutOfMemory)
	}

	ctx.Grow(s, stringSize(curLen), stringSize(newLen))
	PackUint16(ctx.region[s+stringFieldLength:], newLen)
	ctx.region[s+stringFieldChars+Addr(newLen)] = 0
}

// StringShrink reduces a string object's content to newLen, truncating it.
func (ctx *Context) StringShrink(s Addr, newLen uint16) {
	ctx.assertValid()
	curLen := ctx.StringLen(s)
	ctx.assert(newLen < curLen, "mcl: string_shrink to a non-smaller length")

	ctx.Shrink(s, stringSize(curLen), stringSize(newLen))
	PackUint16(ctx.region[s+stringFieldLength:], newLen)
	ctx.region[s+stringFieldChars+Addr(newLen)] = 0
}

// StringCompare performs a lexicographic byte comparison of two string
// objects, returning -1, 0, or 1. Equal-length equal-content strings
// compare 0; otherwise the shorter of two equal prefixes compares less.
func (ctx *Context) StringCompare(a, b Addr) int {
	ctx.assertValid()
	ca, cb := ctx.StringChars(a), ctx.StringChars(b)
	n := len(ca)
	if len(cb) < n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		switch {
		case ca[i] < cb[i]:
			return -1
		case ca[i] > cb[i]:
			return 1
		}
	}
	switch {
	case len(ca) < len(cb):
		return -1
	case len(ca) > len(cb):
		return 1
	default:
		return 0
	}
}
