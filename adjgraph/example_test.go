package adjgraph_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/adjgraph"
)

// ExampleNewFinder searches a tiny flight network with fractional prices.
func ExampleNewFinder() {
	g := adjgraph.New[float64]()
	_ = g.AddEdge("LIS", "MAD", 40.5)
	_ = g.AddEdge("LIS", "PAR", 90)
	_ = g.AddEdge("MAD", "PAR", 35.25)
	_ = g.AddEdge("PAR", "BER", 50)

	f, err := adjgraph.NewFinder(g, "LIS", "BER")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st, _, err := f.Finish(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(st.Result.Path, st.Result.TotalCost)
	// Output:
	// [LIS MAD PAR BER] 125.75
}
