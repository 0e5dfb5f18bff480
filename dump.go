package mcl

import (
	"fmt"
	"io"
)

// Dump writes a diagnostic snapshot of the context to w: the frame
// pointer, the pointer stack from top to bottom annotated by what each
// slot addresses, and a canonical hex dump of the live heap. Intended for
// interactive debugging, not for machine parsing.
func (ctx *Context) Dump(w io.Writer) {
	ctx.assertValid()

	fmt.Fprintf(w, "frame_ptr: @%d => stack[%d]\n",
		ctx.framePtr, (ctx.framePtr-ctx.stackPtr)/SlotSize)

	fmt.Fprintf(w, "stack (top first):\n")
	for at := ctx.stackPtr; at < ctx.stackEnd; at += SlotSize {
		v := ctx.loadAddr(at)
		fmt.Fprintf(w, "  [%d] @%d: %d", (at-ctx.stackPtr)/SlotSize, at, v)

		switch {
		case ctx.HeapContains(v):
			fmt.Fprintf(w, " => heap string (len=%d, refs=%d)", ctx.StringLen(v), ctx.StringRefCount(v))
		case ctx.StackContains(v):
			fmt.Fprintf(w, " => stack[%d]", (v-ctx.stackPtr)/SlotSize)
		case v == ctx.stackEnd:
			fmt.Fprint(w, " => stack end")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nheap (%d/%d bytes used):\n", ctx.heapPtr, ctx.stackPtr)
	hexDump(w, ctx.region[:ctx.heapPtr])
}

// hexDump writes a canonical 16-byte-per-row hex dump of data to w,
// grounded directly on the original implementation's debug hex_dump.
func hexDump(w io.Writer, data []byte) {
	for off := 0; off < len(data); off += 16 {
		row := data[off:]
		if len(row) > 16 {
			row = row[:16]
		}

		fmt.Fprintf(w, "%08x  ", off)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(w, "%02x ", row[i])
			} else {
				fmt.Fprint(w, "   ")
			}
		}

		fmt.Fprint(w, " |")
		for _, b := range row {
			if b >= ' ' && b <= '~' {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, "|")
	}
}
