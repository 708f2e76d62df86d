// SPDX-License-Identifier: MIT
//
// File: bounded.go
// Role: sentinel errors, default capacity and the Sequence helpers shared by
//       every container in the package.

package bounded

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// MaxLen is the capacity used when a constructor is given capacity <= 0.
const MaxLen = 100

var (
	// ErrFull is returned when an element is added to a full container.
	ErrFull = errors.New("bounded: container is full")

	// ErrIndexOutOfRange is returned (or wrapped by a panic, for At) when a
	// position is outside the container.
	ErrIndexOutOfRange = errors.New("bounded: index out of range")
)

// Sequence is the read-only view every container in this package offers.
type Sequence[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

func capOrDefault(capacity int) int {
	if capacity <= 0 {
		return MaxLen
	}

	return capacity
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, i, n)
}

// Contains reports whether v occurs in s.
func Contains[T comparable](s Sequence[T], v T) bool {
	return Find(s, v) >= 0
}

// Find returns the position of the first v in s, or -1.
func Find[T comparable](s Sequence[T], v T) int {
	i := 0
	for x := range s.Values() {
		if x == v {
			return i
		}
		i++
	}

	return -1
}

// FindAll returns every position of v in s; empty (not nil) when absent.
func FindAll[T comparable](s Sequence[T], v T) []int {
	out := []int{}
	i := 0
	for x := range s.Values() {
		if x == v {
			out = append(out, i)
		}
		i++
	}

	return out
}

// EqualSlice reports whether s yields exactly want, in order.
func EqualSlice[T comparable](s Sequence[T], want []T) bool {
	if s.Len() != len(want) {
		return false
	}
	i := 0
	for x := range s.Values() {
		if x != want[i] {
			return false
		}
		i++
	}

	return true
}

// collect copies a sequence into a slice of exactly s.Len() elements.
func collect[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())
	for x := range s.Values() {
		out = append(out, x)
	}

	return out
}

// render writes the elements of s between brackets, joined by sep.
func render[T any](s Sequence[T], sep string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for x := range s.Values() {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')

	return sb.String()
}
