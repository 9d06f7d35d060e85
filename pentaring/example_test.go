package pentaring_test

import (
	"fmt"

	"github.com/morcb13-bit/Artemis-B13-Archive/pentaring"
)

// ExampleBuildRing demonstrates the canonical closing case: ten unit
// pentagons, rotated 36° per step, return to the origin within machine
// precision.
func ExampleBuildRing() {
	ring, err := pentaring.BuildRing(10, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	closed, residual, _ := ring.VerifyClosure(1e-9)
	stats, _ := ring.EdgeStatistics()

	fmt.Printf("tiles=%d\n", ring.Size())
	fmt.Printf("closed=%v residual<1e-12=%v\n", closed, residual < 1e-12)
	fmt.Printf("edges=%d mean≈1=%v stddev<1e-12=%v\n",
		stats.Count, stats.Mean > 0.999999999 && stats.Mean < 1.000000001, stats.StdDev < 1e-12)
	// Output:
	// tiles=10
	// closed=true residual<1e-12=true
	// edges=50 mean≈1=true stddev<1e-12=true
}

// ExampleBuildPolygon builds one unit pentagon and shows that the
// wraparound edge has the same length as the others.
func ExampleBuildPolygon() {
	poly, err := pentaring.BuildPolygon(pentaring.Point{}, 0, 1.0, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lengths := poly.EdgeLengths()
	fmt.Printf("vertices=%d edges=%d\n", len(poly), len(lengths))
	fmt.Printf("wraparound≈1=%v\n", lengths[4] > 0.999999999 && lengths[4] < 1.000000001)
	// Output:
	// vertices=5 edges=5
	// wraparound≈1=true
}
