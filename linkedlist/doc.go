// Package linkedlist provides a doubly-linked List with bidirectional
// cursors, double-ended iterators, and thin Queue/Stack adapters on top.
//
// 🚀 What is inside?
//
//	List[T]       - O(1) push/pop at both ends, positional Insert/Remove that
//	                walk from the nearer end (at most Len/2 steps).
//	Cursor[T]     - read-only handle that moves over the list and through a
//	                "ghost" position sitting between the tail and the head.
//	CursorMut[T]  - the same handle with splice-style mutation
//	                (InsertBefore, InsertAfter, RemoveCurrent, Splice*).
//	Iter / IterMut / IntoIter - lazy, finite, double-ended iteration.
//	Queue[T], Stack[T]        - adapters backed by List.
//
// ⚙️ Representation:
//
// Nodes live in an arena: a slice of slots addressed by stable integer
// handles. A node's prev/next links are handles, not pointers, and a removed
// node's slot is chained on a free list and reused by the next allocation.
//
//	head ─► [0] ◄──► [1] ◄──► [2] ◄─ tail
//	                  ▲
//	                cursor            (ghost sits "after" tail / "before" head)
//
// Mutation discipline:
//
// Every structural change (push, pop, insert, remove, clear) bumps the list's
// generation. A Cursor or Iter created before a change it did not perform
// panics with ErrStaleCursor on its next use, so at most one writer is ever
// live. A CursorMut stays valid across its own mutations.
//
// Failure semantics:
//
//   - Absence (empty list, index past Len for Get/Insert/Remove) is reported
//     with a comma-ok result or a false return, never a panic.
//   - Subscript access (At, Set) outside [0, Len) panics with an error wrapping
//     ErrIndexOutOfRange.
//
// Complexity:
//
//   - PushFront/PushBack/PopFront/PopBack/Front/Back: O(1).
//   - Insert/Remove/At/Get: O(min(i, Len-i)).
//   - Contains/Find/FindAll: O(n).
//
// Not safe for concurrent use.
package linkedlist
