package sorts_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvds/sorts"
)

func ExampleQuick() {
	s := []int{3, 1, 2, 4, 0, 5, 9, 7, 6, 8}
	sorts.Quick(s)
	fmt.Println(s)
	// Output: [0 1 2 3 4 5 6 7 8 9]
}

func ExampleMergeFunc() {
	words := []string{"Banana", "apple", "cherry", "Apple"}
	sorts.MergeFunc(words, func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	fmt.Println(words)
	// Output: [apple Apple Banana cherry]
}
