package mcl

import "sort"

// @generated by scripts/genoptable -- do not edit by hand

// opTable maps each exported operation to its one-line doc summary. It
// backs Operations and OperationSummary, which let a collaborator enumerate
// or describe this package's surface without reflecting over it directly.
var opTable = map[string]string{
	"Context.Alloc":            "Alloc bump-allocates size bytes at the top of the heap and returns their",
	"Context.Dump":             "Dump writes a diagnostic snapshot of the context to w: the frame",
	"Context.Free":             "Free releases an existing heap allocation. Equivalent to shrinking it to",
	"Context.FramePop":         "FramePop closes the current frame, releasing every scope-local entry",
	"Context.FramePush":        "FramePush opens a new frame on top of the pointer stack: a previous-",
	"Context.FrameSeek":        "FrameSeek finds the address of a frame relative to the current one.",
	"Context.Grow":             "Grow expands an existing heap allocation in place, relocating (and",
	"Context.HeapContains":     "HeapContains reports whether p addresses a byte currently inside the",
	"Context.HeapSpace":        "HeapSpace returns the number of bytes available for heap growth.",
	"Context.NewString":        "NewString creates a new string object from a Go string, raising",
	"Context.NewStringWithLen": "NewStringWithLen creates a new string object with a count of 1, copying",
	"Context.Pop":              "Pop removes and returns the top of the pointer stack.",
	"Context.PopN":             "PopN discards the top n entries without inspecting them. It does not",
	"Context.Push":             "Push places v on top of the pointer stack. The caller must have already",
	"Context.Raise":            "Raise transfers control to the innermost active TryRun, delivering kind.",
	"Context.Shrink":           "Shrink reduces an existing heap allocation in place, relocating whatever",
	"Context.StackContains":    "StackContains reports whether p addresses a live stack slot.",
	"Context.StackHeight":      "StackHeight returns the current number of entries on the stack.",
	"Context.StackSpace":       "StackSpace returns the number of slots available for stack growth.",
	"Context.StringAcquire":    "StringAcquire increments a string object's reference count and returns",
	"Context.StringChars":      "StringChars returns the string object's content bytes, not including the",
	"Context.StringCompare":    "StringCompare performs a lexicographic byte comparison of two string",
	"Context.StringGrow":       "StringGrow expands a string object's content to newLen, raising",
	"Context.StringLen":        "StringLen returns a string object's content length.",
	"Context.StringRefCount":   "StringRefCount returns a string object's reference count.",
	"Context.StringRelease":    "StringRelease decrements a string object's reference count, freeing it",
	"Context.StringShrink":     "StringShrink reduces a string object's content to newLen, truncating it.",
	"Context.Swap":             "Swap exchanges the values held at two stack slot addresses.",
	"Context.UserData":         "UserData returns the pointer (or value) originally supplied to Init.",
	"Init":                     "Init constructs a Context over region, a caller-supplied contiguous byte",
	"PackUint16":               "PackUint16 writes v into dest[0:2] little-endian, byte-wise, so that it",
	"TryRun":                   `TryRun runs fn as a protected region (a "try-run"): a nestable dynamic`,
	"UnpackUint16":              "UnpackUint16 is the inverse of PackUint16.",
	"WithDebugWriter":          "WithDebugWriter installs a debug writer, kept wrapped as a WriteFlusher,",
	"WithLogf":                 "WithLogf installs a printf-style hook the Context uses for its internal",
}

// Operations returns the exported operation names this package defines,
// sorted lexically.
func Operations() []string {
	names := make([]string, 0, len(opTable))
	for name := range opTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OperationSummary returns the one-line doc summary for name (for example
// "Context.Push"), and false if name is not one of this package's exported
// operations.
func OperationSummary(name string) (string, bool) {
	summary, ok := opTable[name]
	return summary, ok
}
