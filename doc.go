// Package lvds is a small toolbox of generic containers and in-place sorts,
// each written from first principles so the layout and cost of every
// operation stays visible.
//
// 🚀 What is inside?
//
//	A set of focused, dependency-light packages:
//		• linkedlist/ – doubly-linked List[T] over a node arena, Cursor and
//		  CursorMut for O(1) edits in place, double-ended iterators,
//		  Queue and Stack adapters
//		• vector/     – growable Vector[T] on a doubling RawBuffer[T], plus a
//		  consuming IntoIter that takes the buffer over
//		• hashmap/    – separate-chaining Map[K, V] with load-factor and
//		  chain-length growth, shrinking after deletes, opt-in zap tracing
//		• bounded/    – fixed-capacity Queue (ring), Stack, SeqList and
//		  StaticList (index free list) that report ErrFull instead of growing
//		• sorts/      – bubble, cocktail, insertion, binary insertion, shell,
//		  selection, merge, quick and heap sorts, each with a Func variant
//
// ✨ Conventions shared by every package
//
//   - Absence is reported with comma-ok results, never with panics.
//   - Contract violations (subscript out of range, capacity overflow,
//     stale cursor) panic with an error wrapping the package sentinel,
//     so a recovering caller can still use errors.Is.
//   - Zero values are usable where it makes sense (List, Map).
//   - Logging is opt-in through WithLogger options and goes to zap at
//     Debug level only.
//
// Quick ASCII example:
//
//	head ─► [a] ◄─► [b] ◄─► [c] ◄─ tail        (linkedlist)
//	          ▲
//	        cursor            ghost sits between tail and head
//
// Runnable walkthroughs live under examples/:
//
//	go run ./examples/listcursor
//	go run ./examples/hashmapresize
//	go run ./examples/sorttrace
package lvds
