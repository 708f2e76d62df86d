package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvds/vector"
)

// recoverErr runs fn and returns the error it panicked with, or nil.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}

func TestVector_PushThenInsertFront(t *testing.T) {
	v := vector.New[int]()
	v.Push(0)
	v.Push(1)
	assert.Equal(t, []int{0, 1}, v.ToSlice())

	v.Insert(0, 10)
	assert.Equal(t, []int{10, 0, 1}, v.ToSlice())
	assert.Equal(t, 3, v.Len())
}

func TestVector_GrowthDoubles(t *testing.T) {
	v := vector.New[int]()
	assert.Equal(t, 0, v.Cap())

	var caps []int
	for i := 0; i < 9; i++ {
		v.Push(i)
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
}

func TestVector_PopAndEmpty(t *testing.T) {
	v := vector.From([]string{"a", "b"})
	x, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", x)
	x, ok = v.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", x)
	_, ok = v.Pop()
	assert.False(t, ok)
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 2, v.Cap(), "pop keeps capacity")
}

func TestVector_InsertRemoveEveryPosition(t *testing.T) {
	base := []int{1, 2, 3, 4}
	for at := 0; at <= len(base); at++ {
		v := vector.From(base)
		v.Insert(at, 99)
		assert.Equal(t, 99, v.At(at))
		assert.Equal(t, 99, v.Remove(at))
		assert.True(t, vector.EqualSlice(v, base), "at=%d: %s", at, v)
	}
}

func TestVector_VacatedSlotsAreZeroed(t *testing.T) {
	p := func(n int) *int { return &n }
	v := vector.From([]*int{p(1), p(2), p(3), p(4), p(5)})

	_ = v.Remove(0)
	_, _ = v.Pop()
	v.Truncate(2)
	for i, x := range vector.Spare(v) {
		assert.Nil(t, x, "spare slot %d", i)
	}

	v.Clear()
	require.Len(t, vector.Spare(v), 5)
	for i, x := range vector.Spare(v) {
		assert.Nil(t, x, "spare slot %d after Clear", i)
	}
}

func TestVector_PanicsOnContractViolations(t *testing.T) {
	v := vector.From([]int{1, 2, 3})

	cases := map[string]func(){
		"insert past len": func() { v.Insert(4, 0) },
		"remove at len":   func() { v.Remove(3) },
		"at negative":     func() { v.At(-1) },
		"set past len":    func() { v.Set(3, 0) },
		"swap":            func() { v.Swap(0, 5) },
		"truncate":        func() { v.Truncate(-1) },
	}
	for name, fn := range cases {
		err := recoverErr(fn)
		require.Error(t, err, name)
		assert.ErrorIs(t, err, vector.ErrIndexOutOfRange, name)
	}
	assert.Equal(t, []int{1, 2, 3}, v.ToSlice(), "failed calls leave the vector untouched")

	assert.PanicsWithError(t, "vector: index out of range [7] with length 3", func() { v.At(7) })
}

func TestVector_Accessors(t *testing.T) {
	v := vector.From([]int{1, 2, 3})
	v.Set(0, 10)
	v.Swap(1, 2)
	assert.Equal(t, []int{10, 3, 2}, v.ToSlice())

	x, ok := v.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 2, x)
	_, ok = v.Get(3)
	assert.False(t, ok)

	v.Slice()[0] = 11
	assert.Equal(t, 11, v.At(0), "Slice aliases storage")
	cp := v.ToSlice()
	cp[0] = 0
	assert.Equal(t, 11, v.At(0), "ToSlice copies")
}

func TestVector_ClearTruncateExtend(t *testing.T) {
	v := vector.WithCapacity[int](4)
	v.Extend(1, 2, 3, 4, 5)
	assert.Equal(t, 5, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 5)

	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.ToSlice())
	v.Truncate(10)
	assert.Equal(t, 2, v.Len())

	c := v.Cap()
	v.Clear()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, c, v.Cap())

	v.Reserve(100)
	assert.GreaterOrEqual(t, v.Cap(), 100)
}

func TestVector_StringEqualIterate(t *testing.T) {
	v := vector.From([]int{1, 2, 3})
	assert.Equal(t, "[1, 2, 3]", v.String())
	assert.Equal(t, "[]", vector.New[int]().String())

	assert.True(t, vector.Equal(v, vector.From([]int{1, 2, 3})))
	assert.False(t, vector.Equal(v, vector.From([]int{1, 2})))
	assert.True(t, vector.Equal(vector.New[int](), vector.WithCapacity[int](8)))

	sum := 0
	for i, x := range v.All() {
		sum += i * x
	}
	assert.Equal(t, 0*1+1*2+2*3, sum)

	var got []int
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestVector_ZeroSizedElements(t *testing.T) {
	v := vector.New[struct{}]()
	for i := 0; i < 5; i++ {
		v.Push(struct{}{})
	}
	assert.Equal(t, 5, v.Len())
	_, ok := v.Pop()
	assert.True(t, ok)
}

func TestRawBuffer(t *testing.T) {
	var b vector.RawBuffer[int64]
	assert.Equal(t, 0, b.Cap())
	b.Grow()
	assert.Equal(t, 1, b.Cap())
	b.Grow()
	assert.Equal(t, 2, b.Cap())
	b.GrowTo(1)
	assert.Equal(t, 2, b.Cap(), "GrowTo never shrinks")
	b.Release()
	assert.Equal(t, 0, b.Cap())

	sized := vector.NewRawBuffer[int64](3)
	assert.Equal(t, 3, sized.Cap())

	err := recoverErr(func() { vector.NewRawBuffer[int64](math.MaxInt / 4) })
	assert.ErrorIs(t, err, vector.ErrCapacityOverflow)
	err = recoverErr(func() { vector.NewRawBuffer[int64](-1) })
	assert.ErrorIs(t, err, vector.ErrCapacityOverflow)
}
