package savgol_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-savgol/dsp/savgol"
)

func ExampleFilter() {
	data := []float64{0, 0, 0, 0, 0, 0, 0, 10, 10, 10, 10, 10, 10, 10, 0, 0, 0, 0, 0, 0, 0}

	k, err := savgol.NewKernel(savgol.FamilySmoothAverage, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(savgol.Filter(data, k))
	// Output:
	// [0 0 0 0 0 2 4 6 8 10 10 10 8 6 4 2 0 0 0 0 0]
}

func ExampleNewKernel() {
	k, err := savgol.NewKernel(savgol.FamilySmoothQuadCubic, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(k, k.Normalizer(), k.Weights())

	_, err = savgol.NewKernel(savgol.FamilySmoothQuarticQuintic, 5)
	fmt.Println(errors.Is(err, savgol.ErrUnsupportedWindowSize))
	// Output:
	// quad-cubic/7 21 [-2 3 6 7 6 3 -2]
	// true
}

func ExampleApply() {
	// y = i^2 sampled at unit spacing; the first derivative is 2i.
	data := []float64{0, 1, 4, 9, 16, 25, 36, 49}

	d, err := savgol.Apply(data, savgol.FamilyDeriveQuadFirst, 5)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output:
	// [0 1 4 6 8 10 36 49]
}
