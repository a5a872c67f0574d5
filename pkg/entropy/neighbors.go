package entropy

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/seanpue/shannon/pkg/core"
	"github.com/seanpue/shannon/pkg/stats"
)

// eulerGamma is the Euler-Mascheroni constant.
const eulerGamma = 0.57721566490153286060651209008240243104215933593992

// nearestNeighborEntropy computes the binless Kozachenko-Leonenko entropy
// estimate (bits) of the samples from the distribution of distances
// between each sample and its nearest distinct neighbor.
//
// The full pairwise-distance matrix is materialized, so time and memory
// grow as O(N^2) in the number of samples. That quadratic cost is the
// scaling limit of this method; each call recomputes from scratch.
func nearestNeighborEntropy(data *core.Matrix) float64 {
	n := data.R
	k := data.C

	rho := nearestDistances(data)
	logRho := make([]float64, n)
	for i, r := range rho {
		logRho[i] = math.Log2(r)
	}

	// Ak is the volume constant of the k-dimensional unit ball scaled by k.
	ak := float64(k) * math.Pow(math.Pi, float64(k)/2) / math.Gamma(float64(k)/2+1)

	return float64(k)*stats.Mean(logRho) +
		math.Log2(float64(n)*ak/float64(k)) +
		math.Log2(math.E)*eulerGamma
}

// nearestDistances returns, for each sample, the Euclidean distance to its
// nearest distinct neighbor. Self-distances are excluded by inflating the
// diagonal above the largest observed distance before taking row minima.
// Duplicate samples legitimately produce a zero distance.
func nearestDistances(data *core.Matrix) []float64 {
	n := data.R
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		ri := data.Row(i)
		for j := i + 1; j < n; j++ {
			d := math.Sqrt(euclidSquared(ri, data.Row(j)))
			dist[i*n+j] = d
			dist[j*n+i] = d
		}
	}

	// Raising the diagonal to the largest observed distance keeps a
	// sample from being its own nearest neighbor without disturbing any
	// row minimum.
	max := floats.Max(dist)
	for i := 0; i < n; i++ {
		dist[i*n+i] = max
	}

	rho := make([]float64, n)
	for i := 0; i < n; i++ {
		rho[i] = floats.Min(dist[i*n : (i+1)*n])
	}
	return rho
}

// euclidSquared computes the squared Euclidean distance between two
// vectors. The square root is deferred until a distance is actually
// stored.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
