package mcl

// raisedResult is the panic payload Raise produces. TryRun's recover only
// ever expects to see this; any other panic value is a foreign panic and is
// re-raised rather than swallowed.
type raisedResult struct{ kind Result }

// TryRun runs fn as a protected region (a "try-run"): a nestable dynamic
// extent that catches any Raise from within fn that no TryRun nested inside
// it has already caught (including raises from frame/string operations),
// and unwinds the pointer stack back to its pre-call height before
// returning.
//
// On an OutOfMemory unwind, every popped slot that references a heap
// object is released via StringRelease, the only heap object type this
// package knows about. On a RuntimeError or SyntaxError unwind, the single
// string object the raising collaborator is required to have pushed
// immediately before calling Raise is preserved at the restored top of
// stack instead of being released along with everything else.
func TryRun(ctx *Context, fn func(ctx *Context)) (result Result) {
	ctx.assertValid()

	savedStackPtr := ctx.stackPtr
	savedFramePtr := ctx.framePtr

	ctx.tryDepth++
	defer func() {
		ctx.tryDepth--
		if ctx.debugOut != nil {
			ctx.debugOut.Flush()
		}
		r := recover()
		if r == nil {
			return
		}
		raised, ok := r.(raisedResult)
		if !ok {
			panic(r)
		}
		result = raised.kind
		ctx.logTrace("unwind: %v", result)
		ctx.unwind(savedStackPtr, result)
		ctx.framePtr = savedFramePtr
	}()

	fn(ctx)
	return OK
}

// Raise transfers control to the innermost active TryRun, delivering kind.
// kind must not be OK. For RuntimeError or SyntaxError, the caller must
// have already pushed a string object describing the error onto the stack.
func (ctx *Context) Raise(kind Result) {
	ctx.assertValid()
	ctx.assert(kind != OK, faultRaiseOK)
	ctx.assert(ctx.tryDepth > 0, faultNoLandingSite)
	panic(raisedResult{kind})
}

// unwind truncates the stack back to savedStackPtr, releasing every
// heap-contained slot it pops along the way, except that for a message-
// bearing result it first swaps the current top-of-stack entry (the error
// message the raiser is contractually required to have pushed) into the
// slot that becomes the new top, and releases everything above it. The
// message stays on the stack throughout, so the relocation sweep of each
// release keeps its address current.
func (ctx *Context) unwind(savedStackPtr Addr, kind Result) {
	hasMessage := kind != OK && kind != OutOfMemory

	end := savedStackPtr
	if hasMessage && ctx.stackPtr < savedStackPtr {
		end -= SlotSize
		ctx.Swap(ctx.stackPtr, end)
	}

	for ctx.stackPtr < end {
		v := ctx.Pop()
		if ctx.HeapContains(v) {
			ctx.StringRelease(v)
		}
	}
}
