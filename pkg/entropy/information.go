package entropy

import "github.com/seanpue/shannon/pkg/core"

// MutualInformation computes I(X;Y) = H(X) + H(Y) - H(X,Y) in bits, with
// all three entropies estimated under the same method. The joint term runs
// on the column-wise concatenation of x and y. binsX, binsY and binsXY
// apply to the respective terms and only matter for the Bin method; use
// CombineSymbols first when y is itself assembled from several sources.
//
// Failures from the underlying entropy calls propagate unchanged.
func MutualInformation(x, y *core.Matrix, method Method, binsX, binsY, binsXY Bins) (float64, error) {
	hx, err := Entropy(Input{Samples: x}, method, binsX)
	if err != nil {
		return 0, err
	}
	hy, err := Entropy(Input{Samples: y}, method, binsY)
	if err != nil {
		return 0, err
	}

	xy, err := CombineSymbols(x, y)
	if err != nil {
		return 0, err
	}
	hxy, err := Entropy(Input{Samples: xy}, method, binsXY)
	if err != nil {
		return 0, err
	}

	return hx + hy - hxy, nil
}

// ConditionalEntropy computes H(X|Y) = H(X,Y) - H(Y) in bits under one
// method. For the Bin method both binsY and binsXY must be provided.
func ConditionalEntropy(x, y *core.Matrix, method Method, binsY, binsXY Bins) (float64, error) {
	xy, err := CombineSymbols(x, y)
	if err != nil {
		return 0, err
	}
	hxy, err := Entropy(Input{Samples: xy}, method, binsXY)
	if err != nil {
		return 0, err
	}

	hy, err := Entropy(Input{Samples: y}, method, binsY)
	if err != nil {
		return 0, err
	}

	return hxy - hy, nil
}
