package mcl

import "fmt"

// Result is the outcome of a protected region (see TryRun) or of Init.
type Result int

const (
	// OK indicates no error.
	OK Result = iota

	// OutOfMemory indicates a request exceeded the free heap bytes or free
	// stack slots available in the region. No error message string
	// accompanies this result -- there may be no room left to build one.
	OutOfMemory

	// RuntimeError indicates an evaluator-level semantic failure. The
	// collaborator that raised it is expected to have pushed a message
	// string onto the stack first; TryRun preserves it.
	RuntimeError

	// SyntaxError indicates a parser-level failure, reported the same way
	// as RuntimeError.
	SyntaxError
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case RuntimeError:
		return "RUNTIME_ERROR"
	case SyntaxError:
		return "SYNTAX_ERROR"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Fault indicates a bug in the host or a collaborator -- not an error in
// user input -- such as a reference count overflow, releasing a non-heap
// pointer, or operating on an uninitialized Context. Faults panic rather
// than returning a Result; recovering from one is not supported.
type Fault string

func (f Fault) Error() string { return string(f) }

const (
	faultUntaggedContext  Fault = "mcl: operation on an uninitialized context"
	faultRefCountOverflow Fault = "mcl: string reference count overflow"
	faultNotHeapPointer   Fault = "mcl: release of a non-heap pointer"
	faultNoLandingSite    Fault = "mcl: raise with no active TryRun"
	faultRaiseOK          Fault = "mcl: raise called with OK"
)

func (ctx *Context) assert(cond bool, f Fault) {
	if !cond {
		panic(f)
	}
}

func (ctx *Context) assertValid() {
	ctx.assert(ctx.tag, faultUntaggedContext)
}
