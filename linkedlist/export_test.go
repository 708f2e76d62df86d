package linkedlist

import "fmt"

// CheckInvariants walks l in both directions and reports the first broken
// structural invariant, or "" when the list is consistent.
func CheckInvariants[T any](l *List[T]) string {
	if (l.head == none) != (l.tail == none) || (l.head == none) != (l.len == 0) {
		return fmt.Sprintf("emptiness disagrees: head=%d tail=%d len=%d", l.head, l.tail, l.len)
	}
	if l.head == none {
		return ""
	}
	if p := l.slot(l.head).prev; p != none {
		return fmt.Sprintf("head.prev = %d, want none", p)
	}
	if n := l.slot(l.tail).next; n != none {
		return fmt.Sprintf("tail.next = %d, want none", n)
	}

	var fwd []link
	for x := l.head; x != none; x = l.slot(x).next {
		fwd = append(fwd, x)
		if len(fwd) > len(l.nodes) {
			return "forward chain has a cycle"
		}
	}
	var bwd []link
	for x := l.tail; x != none; x = l.slot(x).prev {
		bwd = append(bwd, x)
		if len(bwd) > len(l.nodes) {
			return "backward chain has a cycle"
		}
	}
	if len(fwd) != l.len || len(bwd) != l.len {
		return fmt.Sprintf("len=%d but forward=%d backward=%d", l.len, len(fwd), len(bwd))
	}
	for i := range fwd {
		if fwd[i] != bwd[len(bwd)-1-i] {
			return fmt.Sprintf("chains diverge at position %d", i)
		}
	}

	free := 0
	for x := l.free; x != none; x = l.slot(x).next {
		free++
		if free > len(l.nodes) {
			return "free chain has a cycle"
		}
	}
	if free+l.len != len(l.nodes) {
		return fmt.Sprintf("arena leak: %d live + %d free != %d slots", l.len, free, len(l.nodes))
	}

	return ""
}

// ArenaSize reports how many slots the arena has allocated.
func ArenaSize[T any](l *List[T]) int { return len(l.nodes) }
