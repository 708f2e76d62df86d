// Package bounded provides fixed-capacity containers that never reallocate:
// a ring-buffer Queue, a Stack, a sequential list (SeqList) and a
// doubly-linked StaticList threaded through a fixed node array with an index
// free list.
//
// Capacity is chosen at construction; zero or negative means MaxLen. The
// New*From constructors copy at most Cap() elements and drop the rest.
//
// Failures:
//
//	push/insert into a full container       -> ErrFull
//	insert/swap at a bad position           -> ErrIndexOutOfRange
//	pop/peek/get on a missing element       -> comma-ok false
//	At with a bad index                     -> panic wrapping ErrIndexOutOfRange
package bounded
