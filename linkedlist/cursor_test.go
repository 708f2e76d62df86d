package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvds/linkedlist"
)

type CursorSuite struct {
	suite.Suite
	l *linkedlist.List[int]
}

func (s *CursorSuite) SetupTest() {
	s.l = linkedlist.From([]int{0, 1, 2, 3, 4, 5})
}

func (s *CursorSuite) TestMoveNextWrapsThroughGhost() {
	require := require.New(s.T())
	c := s.l.CursorFront()
	for i := 0; i < 6; i++ {
		idx, ok := c.Index()
		require.True(ok)
		require.Equal(i, idx)
		v, _ := c.Current()
		require.Equal(i, v)
		c.MoveNext()
	}
	require.True(c.IsGhost(), "six steps from the head must land on the ghost")
	_, ok := c.Current()
	require.False(ok)
	_, ok = c.Index()
	require.False(ok)

	c.MoveNext()
	idx, ok := c.Index()
	require.True(ok)
	require.Equal(0, idx)
}

func (s *CursorSuite) TestMovePrevMirrors() {
	require := require.New(s.T())
	c := s.l.CursorBack()
	idx, _ := c.Index()
	require.Equal(5, idx)

	for i := 0; i < 6; i++ {
		c.MovePrev()
	}
	require.True(c.IsGhost())

	c.MovePrev()
	v, ok := c.Current()
	require.True(ok)
	require.Equal(5, v)
	idx, _ = c.Index()
	require.Equal(5, idx)
}

func (s *CursorSuite) TestPeek() {
	require := require.New(s.T())
	c := s.l.CursorFront()

	_, ok := c.PeekPrev()
	require.False(ok, "nothing before the head")
	v, ok := c.PeekNext()
	require.True(ok)
	require.Equal(1, v)

	c.MovePrev()
	require.True(c.IsGhost())
	v, _ = c.PeekNext()
	require.Equal(0, v, "ghost peeks next at the head")
	v, _ = c.PeekPrev()
	require.Equal(5, v, "ghost peeks prev at the tail")

	f, _ := c.Front()
	b, _ := c.Back()
	require.Equal(0, f)
	require.Equal(5, b)
}

func (s *CursorSuite) TestInsertAroundEveryPosition() {
	require := require.New(s.T())
	base := s.l.ToSlice()

	for pos := 0; pos < len(base); pos++ {
		l := linkedlist.From(base)
		c := l.CursorFrontMut()
		for i := 0; i < pos; i++ {
			c.MoveNext()
		}
		c.InsertBefore(-1)
		c.InsertAfter(-2)

		want := append([]int{}, base[:pos]...)
		want = append(want, -1, base[pos], -2)
		want = append(want, base[pos+1:]...)
		require.Equal(want, l.ToSlice(), "pos=%d", pos)
		require.Empty(linkedlist.CheckInvariants(l))

		idx, ok := c.Index()
		require.True(ok)
		require.Equal(pos+1, idx, "cursor stays on its node, shifted by the insert before it")
		v, _ := c.Current()
		require.Equal(base[pos], v)
	}
}

func (s *CursorSuite) TestInsertOnGhostPushesToEnds() {
	require := require.New(s.T())
	c := s.l.CursorBackMut()
	c.MoveNext()
	require.True(c.IsGhost())

	c.InsertBefore(6)
	c.InsertAfter(-1)
	require.Equal([]int{-1, 0, 1, 2, 3, 4, 5, 6}, s.l.ToSlice())
	require.True(c.IsGhost())
	require.Empty(linkedlist.CheckInvariants(s.l))

	c.MoveNext()
	v, _ := c.Current()
	require.Equal(-1, v)
}

func (s *CursorSuite) TestInsertIntoEmptyList() {
	require := require.New(s.T())
	l := linkedlist.New[string]()
	c := l.CursorFrontMut()
	require.True(c.IsGhost())

	c.InsertAfter("b")
	c.InsertBefore("c")
	c.InsertAfter("a")
	require.Equal([]string{"a", "b", "c"}, l.ToSlice())
	require.Empty(linkedlist.CheckInvariants(l))
}

func (s *CursorSuite) TestRemoveCurrentAtEveryPosition() {
	require := require.New(s.T())
	base := s.l.ToSlice()

	for pos := 0; pos < len(base); pos++ {
		l := linkedlist.From(base)
		c := l.CursorFrontMut()
		for i := 0; i < pos; i++ {
			c.MoveNext()
		}
		v, ok := c.RemoveCurrent()
		require.True(ok)
		require.Equal(base[pos], v)
		require.Equal(len(base)-1, l.Len())
		require.Empty(linkedlist.CheckInvariants(l), "pos=%d", pos)

		if pos == len(base)-1 {
			require.True(c.IsGhost(), "removing the tail moves to the ghost")
			continue
		}
		next, _ := c.Current()
		require.Equal(base[pos+1], next)
		idx, _ := c.Index()
		require.Equal(pos, idx)
	}
}

func (s *CursorSuite) TestRemoveOnGhostIsNoop() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	c.MovePrev()

	_, ok := c.RemoveCurrent()
	require.False(ok)
	require.Equal(6, s.l.Len())
}

func (s *CursorSuite) TestRemoveUntilEmpty() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	for range 6 {
		_, ok := c.RemoveCurrent()
		require.True(ok)
	}
	require.True(s.l.IsEmpty())
	require.True(c.IsGhost())
	require.Empty(linkedlist.CheckInvariants(s.l))
}

func (s *CursorSuite) TestCurrentMut() {
	c := s.l.CursorFrontMut()
	c.MoveNext()
	*c.CurrentMut() = 100
	s.Equal([]int{0, 100, 2, 3, 4, 5}, s.l.ToSlice())

	c.MovePrev()
	c.MovePrev()
	s.Nil(c.CurrentMut())
}

func (s *CursorSuite) TestEndOperationsKeepPosition() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	c.MoveNext()
	c.MoveNext() // on 2

	c.PushFront(-1)
	c.PushBack(6)
	idx, _ := c.Index()
	require.Equal(3, idx)

	v, ok := c.PopFront()
	require.True(ok)
	require.Equal(-1, v)
	idx, _ = c.Index()
	require.Equal(2, idx)

	v, ok = c.PopBack()
	require.True(ok)
	require.Equal(6, v)
	cur, _ := c.Current()
	require.Equal(2, cur)
	require.Empty(linkedlist.CheckInvariants(s.l))
}

func (s *CursorSuite) TestPopUnderCursor() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	v, _ := c.PopFront()
	require.Equal(0, v)
	cur, _ := c.Current()
	require.Equal(1, cur, "popping the head under the cursor moves to the new head")
	idx, _ := c.Index()
	require.Equal(0, idx)

	b := s.l.CursorBackMut()
	v, _ = b.PopBack()
	require.Equal(5, v)
	require.True(b.IsGhost(), "popping the tail under the cursor moves to the ghost")
	require.Panics(func() { c.MoveNext() }, "b's edit leaves c stale")
}

func (s *CursorSuite) TestSplice() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	c.MoveNext() // on 1

	other := linkedlist.From([]int{10, 11})
	c.SpliceAfter(other)
	require.True(other.IsEmpty())
	require.Equal([]int{0, 1, 10, 11, 2, 3, 4, 5}, s.l.ToSlice())

	other = linkedlist.From([]int{20, 21})
	c.SpliceBefore(other)
	require.Equal([]int{0, 20, 21, 1, 10, 11, 2, 3, 4, 5}, s.l.ToSlice())
	idx, _ := c.Index()
	require.Equal(3, idx)

	c.MoveNext()
	v, _ := c.Current()
	require.Equal(10, v)
	require.Empty(linkedlist.CheckInvariants(s.l))
}

func (s *CursorSuite) TestSpliceOnGhost() {
	require := require.New(s.T())
	c := s.l.CursorFrontMut()
	c.MovePrev()

	c.SpliceBefore(linkedlist.From([]int{6, 7}))
	c.SpliceAfter(linkedlist.From([]int{-2, -1}))
	require.Equal([]int{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7}, s.l.ToSlice())
	c.SpliceAfter(linkedlist.New[int]())
	c.SpliceBefore(nil)
	require.Equal(10, s.l.Len())

	require.PanicsWithValue(linkedlist.ErrSelfSplice, func() { c.SpliceAfter(s.l) })
}

func (s *CursorSuite) TestStaleCursorPanics() {
	require := require.New(s.T())
	c := s.l.CursorFront()
	s.l.PushBack(6)
	require.Panics(func() { c.MoveNext() })

	m := s.l.CursorFrontMut()
	other := s.l.CursorFrontMut()
	other.RemoveCurrent()
	require.Panics(func() { m.InsertAfter(1) }, "a sibling cursor's edit invalidates m")

	defer func() {
		err, ok := recover().(error)
		require.True(ok)
		require.ErrorIs(err, linkedlist.ErrStaleCursor)
	}()
	m.Current()
}

func TestCursorSuite(t *testing.T) {
	suite.Run(t, new(CursorSuite))
}
