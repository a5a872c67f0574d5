package entropy

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/seanpue/shannon/pkg/core"
	"github.com/seanpue/shannon/pkg/stats"
)

// defaultHistTol is how far a computed histogram mass may sum from 1.
const defaultHistTol = 1e-4

// Bins describes how each dimension of a sample matrix is discretized:
// either a number of equal-width bins per dimension, or an explicit
// ordered list of bin edges per dimension. The zero Bins means no
// specification was supplied.
type Bins struct {
	counts []int
	edges  [][]float64
}

// BinCounts specifies one equal-width bin count per dimension. Each count
// must be positive; the bins span the observed [min, max] of that
// dimension.
func BinCounts(counts ...int) Bins {
	return Bins{counts: counts}
}

// BinEdges specifies one strictly increasing edge sequence per dimension.
// A sequence of length E defines E-1 bins; samples outside the outermost
// edges are dropped.
func BinEdges(edges ...[]float64) Bins {
	return Bins{edges: edges}
}

// Len returns the number of dimensions the specification covers, 0 for
// the zero Bins.
func (b Bins) Len() int {
	if b.counts != nil {
		return len(b.counts)
	}
	return len(b.edges)
}

// edgesFor resolves the bin edges of dimension d given that dimension's
// column of data.
func (b Bins) edgesFor(d int, col []float64) ([]float64, error) {
	if b.edges != nil {
		e := b.edges[d]
		if len(e) < 2 {
			return nil, fmt.Errorf("%w: dimension %d needs at least 2 bin edges, got %d", ErrInvalidInput, d, len(e))
		}
		for i := 1; i < len(e); i++ {
			if e[i] <= e[i-1] {
				return nil, fmt.Errorf("%w: bin edges for dimension %d must be strictly increasing", ErrInvalidInput, d)
			}
		}
		return e, nil
	}

	n := b.counts[d]
	if n < 1 {
		return nil, fmt.Errorf("%w: dimension %d needs a positive bin count, got %d", ErrInvalidInput, d, n)
	}
	min, max := floats.Min(col), floats.Max(col)
	if min == max {
		// A constant column still gets a bin of nonzero width.
		min, max = min-0.5, max+0.5
	}
	edges := make([]float64, n+1)
	width := (max - min) / float64(n)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[n] = max
	return edges, nil
}

// binIndex locates v among the edges. Bins are half-open [e[i], e[i+1])
// with the rightmost bin closed; values outside the outermost edges map
// to -1.
func binIndex(edges []float64, v float64) int {
	last := len(edges) - 1
	if v < edges[0] || v > edges[last] {
		return -1
	}
	if v == edges[last] {
		return last - 1
	}
	// First edge strictly greater than v bounds the bin on the right.
	i := sort.SearchFloat64s(edges, v)
	if i < last && edges[i] == v {
		return i
	}
	return i - 1
}

// SymbolsToProb discretizes the samples into a multi-dimensional histogram
// and normalizes it into a probability distribution. The returned
// probabilities are flattened in row-major bin order; only the masses are
// meaningful, not which symbol each belongs to, which is all entropy
// needs.
//
// tol bounds how far the normalized mass may be from 1 (0 means the
// default of 1e-4); with mass taken over the counted samples the check can
// only fail when no sample fell inside the specified bins.
func SymbolsToProb(data *core.Matrix, bins Bins, tol float64) ([]float64, error) {
	if data == nil || data.R < 1 || data.C < 1 {
		return nil, fmt.Errorf("%w: samples must be a non-empty matrix", ErrInvalidInput)
	}
	if bins.Len() != data.C {
		return nil, fmt.Errorf("%w: data dimensionality is %d but bins were specified for %d dimensions",
			ErrDimensionMismatch, data.C, bins.Len())
	}
	if tol <= 0 {
		tol = defaultHistTol
	}

	edges := make([][]float64, data.C)
	total := 1
	for d := 0; d < data.C; d++ {
		e, err := bins.edgesFor(d, data.Col(d))
		if err != nil {
			return nil, err
		}
		edges[d] = e
		total *= len(e) - 1
	}

	counts := make([]float64, total)
	counted := 0
	for i := 0; i < data.R; i++ {
		row := data.Row(i)
		flat := 0
		inRange := true
		for d := 0; d < data.C; d++ {
			k := binIndex(edges[d], row[d])
			if k < 0 {
				inRange = false
				break
			}
			flat = flat*(len(edges[d])-1) + k
		}
		if inRange {
			counts[flat]++
			counted++
		}
	}

	prob := counts
	if counted > 0 {
		for i := range prob {
			prob[i] /= float64(counted)
		}
	}
	if sum := stats.Sum(prob); math.Abs(sum-1) > tol {
		return nil, fmt.Errorf("%w: histogram mass sums to %v", ErrProbNotNormalized, sum)
	}
	return prob, nil
}

// CombineSymbols pairs per-sample symbols from several sources into a
// single joint-symbol sequence: the columns of all sources, joined
// side by side, ready for SymbolsToProb. Every source must contribute the
// same number of samples.
func CombineSymbols(sources ...*core.Matrix) (*core.Matrix, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: at least one symbol source is required", ErrInvalidInput)
	}
	joint := sources[0].Clone()
	for _, src := range sources[1:] {
		if src.R != joint.R {
			return nil, fmt.Errorf("%w: symbol sources have %d and %d samples",
				ErrDimensionMismatch, joint.R, src.R)
		}
		var err error
		joint, err = core.ConcatColumns(joint, src)
		if err != nil {
			return nil, err
		}
	}
	return joint, nil
}
