package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvds/linkedlist"
)

// ExampleList shows positional removal and insertion.
func ExampleList() {
	l := linkedlist.From([]int{0, 1, 2, 3, 4, 5})

	v, _ := l.Remove(0)
	fmt.Println("removed", v, "->", l)
	v, _ = l.Remove(4)
	fmt.Println("removed", v, "->", l)
	_, ok := l.Remove(99)
	fmt.Println("remove(99) ok:", ok)
	l.Insert(0, 0)
	fmt.Println(l, "len", l.Len())
	// Output:
	// removed 0 -> [1 <-> 2 <-> 3 <-> 4 <-> 5]
	// removed 5 -> [1 <-> 2 <-> 3 <-> 4]
	// remove(99) ok: false
	// [0 <-> 1 <-> 2 <-> 3 <-> 4] len 5
}

// ExampleCursorMut walks the list, dropping odd values and tagging even
// ones, then wraps through the ghost position back to the head.
func ExampleCursorMut() {
	l := linkedlist.From([]int{1, 2, 3, 4, 5, 6})
	c := l.CursorFrontMut()
	for !c.IsGhost() {
		v, _ := c.Current()
		if v%2 == 1 {
			c.RemoveCurrent()
			continue
		}
		c.InsertAfter(v * 10)
		c.MoveNext()
		c.MoveNext()
	}
	fmt.Println(l)

	c.MoveNext()
	idx, _ := c.Index()
	fmt.Println("wrapped to index", idx)
	// Output:
	// [2 <-> 20 <-> 4 <-> 40 <-> 6 <-> 60]
	// wrapped to index 0
}

// ExampleList_Values ranges over a list with the iter package protocol.
func ExampleList_Values() {
	l := linkedlist.From([]string{"x", "y", "z"})
	var fwd []string
	for v := range l.Values() {
		fwd = append(fwd, v)
	}
	fmt.Println(fwd)
	for i, v := range l.Backward() {
		fmt.Printf("%d:%s\n", i, v)
	}
	// Output:
	// [x y z]
	// 2:z
	// 1:y
	// 0:x
}
