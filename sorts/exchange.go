// SPDX-License-Identifier: MIT
//
// File: exchange.go
// Role: adjacent-swap sorts (Bubble, Cocktail) and the ordered-type entry
//       points shared by every file in the package.

package sorts

import "golang.org/x/exp/constraints"

func ascending[T constraints.Ordered](a, b T) bool { return a < b }

// Bubble sorts s ascending.
func Bubble[T constraints.Ordered](s []T, opts ...Option) { BubbleFunc(s, ascending[T], opts...) }

// BubbleFunc sorts s by less, stopping after the first pass with no swap.
func BubbleFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	n := len(s)
	if n < 2 {
		return
	}
	tr := newTracer[T]("bubble", opts)
	tr.begin(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		tr.step(s)
		if !swapped {
			return
		}
	}
}

// Cocktail sorts s ascending.
func Cocktail[T constraints.Ordered](s []T, opts ...Option) {
	CocktailFunc(s, ascending[T], opts...)
}

// CocktailFunc is a bubble sort that alternates direction each half-pass,
// so small elements near the end move left quickly.
func CocktailFunc[T any](s []T, less func(a, b T) bool, opts ...Option) {
	if len(s) < 2 {
		return
	}
	tr := newTracer[T]("cocktail", opts)
	tr.begin(s)
	start, end := 0, len(s)-1
	for start < end {
		swapped := false
		for i := start; i < end; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		end--
		for i := end; i > start; i-- {
			if less(s[i], s[i-1]) {
				s[i], s[i-1] = s[i-1], s[i]
				swapped = true
			}
		}
		start++
		tr.step(s)
		if !swapped {
			return
		}
	}
}
