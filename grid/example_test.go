package grid_test

import (
	"fmt"

	"github.com/relaxfield/laplace/grid"
)

// ExampleNewFilled builds a small seeded field, pokes one cell, and reads
// it back through the bounds-checked accessors.
func ExampleNewFilled() {
	g, err := grid.NewFilled(3, 3, 1.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = g.Set(1, 1, 4)
	center, _ := g.At(1, 1)
	corner, _ := g.At(0, 0)
	fmt.Printf("center=%.1f corner=%.1f dims=%dx%d\n", center, corner, g.Rows(), g.Cols())
	// Output:
	// center=4.0 corner=1.5 dims=3x3
}
