package entropy

import "fmt"

// Method selects the estimation algorithm.
type Method int

const (
	// NearestNeighbors is the binless Kozachenko-Leonenko estimator based
	// on average nearest-neighbor distances.
	NearestNeighbors Method = iota
	// Gaussian assumes jointly normal data and estimates entropy from the
	// covariance determinant.
	Gaussian
	// Bin discretizes the data and computes discrete Shannon entropy.
	Bin
)

var methodNames = map[Method]string{
	NearestNeighbors: "nearest-neighbors",
	Gaussian:         "gaussian",
	Bin:              "bin",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a method tag ("nearest-neighbors", "gaussian", "bin")
// to its Method. Unknown tags fail with ErrUnsupportedMethod.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}
