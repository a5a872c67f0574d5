package entropy

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/seanpue/shannon/pkg/core"
)

// gaussianEntropy estimates differential entropy (nats scaled to the
// closed form below) assuming the samples are jointly normal.
//
// The covariance term is the Gram matrix data*data^T, deliberately without
// mean-centering or N-normalization: downstream results depend on this
// exact historical convention, so it is preserved rather than corrected to
// the textbook sample covariance. The Gram matrix is positive
// semidefinite, so a non-positive determinant only arises from singularity
// (fewer independent samples than the matrix rank allows, duplicated rows)
// or from rounding on an already-degenerate matrix; both map to -Inf, the
// entropy of a distribution with no continuous support.
func gaussianEntropy(data *core.Matrix) float64 {
	x := mat.NewDense(data.R, data.C, data.Data)

	var gram mat.Dense
	gram.Mul(x, x.T())

	det := mat.Det(&gram)
	if det <= 0 {
		return math.Inf(-1)
	}

	normalization := math.Pow(2*math.Pi*math.E, float64(data.C))
	return 0.5 * math.Log(normalization*det)
}
