package mcl

import (
	"encoding/binary"
	"io"

	"github.com/mattbucknall/mcl/internal/flushio"
)

// Addr is an opaque pointer-sized value: a byte offset into a Context's
// region. It addresses either a heap object, another stack slot (a
// back-reference, as used by frame links), or the stackEnd sentinel
// meaning "no further frame". Its meaning at any given slot is determined
// entirely by containment tests (HeapContains, StackContains), never by a
// tag bit.
type Addr uint64

// SlotSize is the width, in bytes, of one pointer stack slot.
const SlotSize = 8

// MinEntries is the minimum region slot count accepted by Init.
const MinEntries = 16

// MaxStringLen is the maximum content length of a single string object.
const MaxStringLen = 32767

// nInitialFrames is the number of frames Init pushes before returning: the
// outermost procedure table frame, and the global table frame inside it.
const nInitialFrames = 2

// Context is the opaque handle for one memory substrate instance. All of
// its state lives either in this struct or in the region it was given at
// Init; no other memory is used once construction succeeds.
type Context struct {
	region []byte

	userData interface{}

	heapPtr  Addr
	stackPtr Addr
	framePtr Addr
	stackEnd Addr

	tryDepth int
	tag      bool

	logf     func(mess string, args ...interface{})
	debugOut flushio.WriteFlusher
}

// Option configures a Context at construction time.
type Option interface{ apply(ctx *Context) }

type optionFunc func(ctx *Context)

func (f optionFunc) apply(ctx *Context) { f(ctx) }

// WithLogf installs a printf-style hook the Context uses for its internal
// trace logging. The default is no logging at all.
func WithLogf(logf func(mess string, args ...interface{})) Option {
	return optionFunc(func(ctx *Context) { ctx.logf = logf })
}

// WithDebugWriter installs a debug writer, kept wrapped as a WriteFlusher,
// which is flushed at the close of every TryRun boundary, mirroring the
// teacher's halt-then-flush discipline. Dump does not use it implicitly: a
// caller passes it to Dump explicitly.
func WithDebugWriter(w io.Writer) Option {
	return optionFunc(func(ctx *Context) { ctx.debugOut = flushio.NewWriteFlusher(w) })
}

func (ctx *Context) logTrace(mess string, args ...interface{}) {
	if ctx.logf != nil {
		ctx.logf(mess, args...)
	}
}

// Init constructs a Context over region, a caller-supplied contiguous byte
// buffer whose length must be at least MinEntries*SlotSize. The region is
// the sole memory substrate for the returned Context's lifetime: Init
// retains it directly rather than copying it.
//
// Init pushes the two initial frames (the outermost procedure table frame,
// and the global table frame inside it) as a protected construction step;
// on failure the returned Context is left untagged (invalid) and must not
// be used.
func Init(region []byte, userData interface{}, opts ...Option) (*Context, Result) {
	n := Addr(len(region) / SlotSize)
	if region == nil || n < MinEntries {
		return nil, OutOfMemory
	}

	ctx := &Context{region: region[:n*SlotSize]}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ctx)
		}
	}

	ctx.userData = userData
	ctx.heapPtr = 0
	ctx.stackEnd = n * SlotSize
	ctx.stackPtr = ctx.stackEnd
	ctx.framePtr = ctx.stackEnd
	ctx.tag = true

	result := TryRun(ctx, func(ctx *Context) {
		ctx.FramePush() // procedure table frame
		ctx.FramePush() // global table frame
	})
	if result != OK {
		ctx.tag = false
		return ctx, result
	}
	return ctx, OK
}

// UserData returns the pointer (or value) originally supplied to Init.
func (ctx *Context) UserData() interface{} {
	ctx.assertValid()
	return ctx.userData
}

func (ctx *Context) loadAddr(at Addr) Addr {
	return Addr(binary.LittleEndian.Uint64(ctx.region[at : at+SlotSize]))
}

func (ctx *Context) storeAddr(at Addr, v Addr) {
	binary.LittleEndian.PutUint64(ctx.region[at:at+SlotSize], uint64(v))
}
