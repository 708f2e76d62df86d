package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvds/vector"
)

// BenchmarkPush measures amortized append from an empty vector.
func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.New[int]()
		for j := 0; j < 1024; j++ {
			v.Push(j)
		}
	}
}

// BenchmarkPush_Reserved is BenchmarkPush with the capacity reserved up front.
func BenchmarkPush_Reserved(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vector.WithCapacity[int](1024)
		for j := 0; j < 1024; j++ {
			v.Push(j)
		}
	}
}

// BenchmarkInsertFront measures the O(n) shift of a front insert.
func BenchmarkInsertFront(b *testing.B) {
	v := vector.From(make([]int, 1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Insert(0, i)
		_ = v.Remove(0)
	}
}
