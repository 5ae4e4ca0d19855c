package interp_test

import (
	"fmt"

	"github.com/cwbudde/algo-specsens/spectral/interp"
)

func ExampleNewQuadraticSpline() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}

	sp, err := interp.NewQuadraticSpline(xs, ys)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", sp.Eval(2.5))

	// Output:
	// 6.2500
}

func ExampleNewLinear() {
	l, err := interp.NewLinear([]float64{400, 500}, []float64{0.2, 0.6})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", l.Eval(450))

	// Output:
	// 0.40
}
