// Package sorts implements classic in-place comparison sorts over slices.
//
// Every algorithm comes in two forms:
//
//	sorts.Quick(s)                       // T constraints.Ordered, ascending
//	sorts.QuickFunc(s, func(a, b T) bool) // strict-weak "less" for any T
//
// ✨ Algorithms
//
//	Algorithm        Stable  Extra space   Worst
//	Bubble           yes     O(1)          O(n²)   early exit on a clean pass
//	Cocktail         yes     O(1)          O(n²)   bidirectional bubble
//	Insertion        yes     O(1)          O(n²)
//	BinaryInsertion  yes     O(1)          O(n²)   O(n log n) comparisons
//	Shell            no      O(1)          O(n^1.5) Knuth gaps 1, 4, 13, 40, ...
//	Selection        no      O(1)          O(n²)
//	Merge            yes     O(n)          O(n log n) one scratch buffer
//	Quick            no      O(log n)      O(n²)   median-of-three, smaller side first
//	Heap             no      O(1)          O(n log n)
//
// Slices shorter than two elements are returned untouched.
//
// ⚙️ Tracing
//
// WithLogger attaches a *zap.Logger; each algorithm then emits a Debug
// record "sort begin" and one "sort pass" per outer pass with the fields
// algorithm, pass and state (the slice rendered with fmt). Nothing is
// formatted unless Debug is enabled on the logger.
package sorts
