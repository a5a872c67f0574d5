// Package entropy estimates differential entropy, mutual information and
// conditional entropy from continuous-valued samples or from explicit
// probability distributions.
//
// Three estimation methods are supported: the binless nearest-neighbor
// (Kozachenko-Leonenko) estimator, a Gaussian-assumption estimator, and
// discrete entropy over a binned histogram. Every operation is a pure
// function of its inputs; nothing is cached or mutated, so concurrent
// calls from independent call sites are safe.
package entropy

import (
	"fmt"
	"math"

	"github.com/seanpue/shannon/pkg/core"
)

// defaultProbTol is how far a supplied distribution may sum from 1.
const defaultProbTol = 1e-5

// Input selects the source of an entropy estimate. Exactly one of Samples
// or Prob must be set: Samples is an N x D matrix of observations, Prob an
// already-estimated probability distribution (only meaningful for the Bin
// method). Tol overrides the tolerance of the distribution sum check; zero
// means the default of 1e-5.
type Input struct {
	Samples *core.Matrix
	Prob    []float64
	Tol     float64
}

// EntropyFromSamples estimates the entropy of raw observations in bits.
// bins is only consulted by the Bin method and may be the zero Bins
// otherwise.
func EntropyFromSamples(data *core.Matrix, method Method, bins Bins) (float64, error) {
	return Entropy(Input{Samples: data}, method, bins)
}

// EntropyFromProb computes the discrete entropy of a probability
// distribution in bits.
func EntropyFromProb(prob []float64) (float64, error) {
	return Entropy(Input{Prob: prob}, Bin, Bins{})
}

// Entropy estimates entropy in bits from the given input under the chosen
// method.
//
// With in.Prob set, the distribution is validated (finite non-negative
// entries summing to 1 within in.Tol) and only the Bin method applies; the
// binless methods fail with ErrMissingData. With in.Samples set, the
// samples are handed to the method's estimator; the Bin method then needs
// a bin specification to discretize them.
func Entropy(in Input, method Method, bins Bins) (float64, error) {
	if in.Samples == nil && in.Prob == nil {
		return 0, fmt.Errorf("%w: either samples or a distribution is required", ErrInvalidInput)
	}
	if in.Samples != nil && in.Prob != nil {
		return 0, fmt.Errorf("%w: samples and a distribution are mutually exclusive", ErrInvalidInput)
	}

	if in.Prob != nil {
		if err := checkDistribution(in.Prob, in.Tol); err != nil {
			return 0, err
		}
	} else if in.Samples.R < 1 || in.Samples.C < 1 {
		return 0, fmt.Errorf("%w: samples must be a non-empty matrix", ErrInvalidInput)
	}

	switch method {
	case NearestNeighbors:
		if in.Samples == nil {
			return 0, fmt.Errorf("%w: nearest-neighbors entropy", ErrMissingData)
		}
		return nearestNeighborEntropy(in.Samples), nil

	case Gaussian:
		if in.Samples == nil {
			return 0, fmt.Errorf("%w: gaussian entropy", ErrMissingData)
		}
		return gaussianEntropy(in.Samples), nil

	case Bin:
		prob := in.Prob
		if prob == nil {
			if bins.Len() == 0 {
				return 0, fmt.Errorf("%w: the bin method needs either a distribution or bins", ErrInvalidInput)
			}
			var err error
			prob, err = SymbolsToProb(in.Samples, bins, 0)
			if err != nil {
				return 0, err
			}
		}
		return discreteEntropy(prob), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
}

// checkDistribution validates a supplied probability distribution.
func checkDistribution(prob []float64, tol float64) error {
	if tol <= 0 {
		tol = defaultProbTol
	}
	sum := 0.0
	for _, p := range prob {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: got %v", ErrTypeMismatch, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > tol {
		return fmt.Errorf("%w: the supplied distribution sums to %v", ErrProbNotNormalized, sum)
	}
	return nil
}

// discreteEntropy returns -sum(p * log2 p) over the distribution, counting
// p = 0 terms as 0 (the standard 0*log(0) = 0 convention).
func discreteEntropy(prob []float64) float64 {
	h := 0.0
	for _, p := range prob {
		if p == 0 {
			continue
		}
		h += p * math.Log2(p)
	}
	return -h
}
