/*
Package mcl implements the memory substrate of a minimal command-language
interpreter for resource-constrained hosts: a single caller-supplied
contiguous region hosting a bump-allocated, compactable object heap growing
up from the low end, and a pointer stack / call-frame chain growing down
from the high end.

Once Init returns, the package never calls a general-purpose allocator; all
growth is bounded by the size of the region the caller supplied. Relocation
of heap objects rewrites every pointer-stack slot that referenced the moved
range, so the pointer stack is the one and only root set -- there is no
handle table and no indirection.

This package is the substrate only. The lexer, parser, command dispatch,
variable binding formats, and I/O of an actual command language are left to
higher-level collaborators built on top of Context.
*/
package mcl

//go:generate go run ./scripts/genoptable
