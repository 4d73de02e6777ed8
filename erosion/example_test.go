// File: erosion/example_test.go
package erosion_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rollgrid/erosion"
	"github.com/katalvlaran/rollgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CountAccessible and Erode
////////////////////////////////////////////////////////////////////////////////

// ExampleErode contrasts the one-shot accessible count with the cascading
// removal on the documented warehouse layout. Erode runs on a clone so the
// first answer is computed on the untouched grid.
func ExampleErode() {
	g, err := grid.Parse([]string{
		"..@@.@@@@.",
		"@@@.@.@.@@",
		"@@@@@.@.@@",
		"@.@@@@..@.",
		"@@.@@@@.@@",
		".@@@@@@@.@",
		".@.@.@.@@@",
		"@.@@@.@@@@",
		".@@@@@@@@.",
		"@.@.@@@.@.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("accessible:", erosion.CountAccessible(g))
	work := g.Clone()
	fmt.Println("removed:", erosion.Erode(work))
	fmt.Println(work)

	// Output:
	// accessible: 13
	// removed: 43
	// ..........
	// ..........
	// ..........
	// ....@@....
	// ...@@@@...
	// ...@@@@@..
	// ...@.@.@@.
	// ...@@.@@@.
	// ...@@@@@..
	// ....@@@...
}

////////////////////////////////////////////////////////////////////////////////
// Example: Run with hooks
////////////////////////////////////////////////////////////////////////////////

// ExampleRun traces removals on a full 3×3 block in LIFO order.
// The removal count is order-independent; the trace is not.
func ExampleRun() {
	g, _ := grid.Parse([]string{"@@@", "@@@", "@@@"})

	var trace []string
	res, err := erosion.Run(g,
		erosion.WithOrder(erosion.LIFO),
		erosion.WithOnRemove(func(p grid.Position, step int) error {
			trace = append(trace, fmt.Sprintf("%d:%v", step, p))
			return nil
		}),
	)
	fmt.Println(strings.Join(trace, " "))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("removed:", res.Removed)

	// Output:
	// 1:(2,2) 2:(2,0) 3:(2,1) 4:(1,2) 5:(0,2) 6:(1,1) 7:(1,0) 8:(0,1) 9:(0,0)
	// removed: 9
}
