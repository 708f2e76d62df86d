package linkedlist

import (
	"fmt"
	"strings"
)

// String renders the list as "[a <-> b <-> c]" ("[]" when empty).
func (l *List[T]) String() string {
	return render(l)
}

func render[T any](l *List[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for x := l.head; x != none; x = l.slot(x).next {
		if x != l.head {
			sb.WriteString(" <-> ")
		}
		fmt.Fprint(&sb, l.slot(x).val)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.len != b.len {
		return false
	}
	for x, y := a.head, b.head; x != none; x, y = a.slot(x).next, b.slot(y).next {
		if a.slot(x).val != b.slot(y).val {
			return false
		}
	}

	return true
}

// EqualSlice reports whether l holds exactly the elements of s, in order.
func EqualSlice[T comparable](l *List[T], s []T) bool {
	if l.len != len(s) {
		return false
	}
	i := 0
	for x := l.head; x != none; x = l.slot(x).next {
		if l.slot(x).val != s[i] {
			return false
		}
		i++
	}

	return true
}
