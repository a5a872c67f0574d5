package entropy

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/seanpue/shannon/pkg/core"
)

// discreteSignal draws n samples from a small set of levels, the shape of
// data the bin method is meant for.
func discreteSignal(rng *rand.Rand, n, levels int) *core.Matrix {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(rng.Intn(levels))
	}
	return core.FromVector(x)
}

func TestMutualInformationSymmetryBin(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := discreteSignal(rng, 200, 4)
	y := discreteSignal(rng, 200, 4)
	single := BinCounts(4)
	joint := BinCounts(4, 4)

	mxy, err := MutualInformation(x, y, Bin, single, single, joint)
	if err != nil {
		t.Fatal(err)
	}
	myx, err := MutualInformation(y, x, Bin, single, single, joint)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(mxy, myx, 1e-9) {
		t.Errorf("mi(x,y) = %v, mi(y,x) = %v, want equal", mxy, myx)
	}
}

func TestMutualInformationSymmetryNearestNeighbors(t *testing.T) {
	// Integer-valued fixtures keep the arithmetic exact across the two
	// argument orders.
	x := core.FromVector([]float64{1, 2, 4, 8, 16})
	y := core.FromVector([]float64{3, 5, 7, 11, 13})

	mxy, err := MutualInformation(x, y, NearestNeighbors, Bins{}, Bins{}, Bins{})
	if err != nil {
		t.Fatal(err)
	}
	myx, err := MutualInformation(y, x, NearestNeighbors, Bins{}, Bins{}, Bins{})
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(mxy, myx, 1e-9) {
		t.Errorf("mi(x,y) = %v, mi(y,x) = %v, want equal", mxy, myx)
	}
}

func TestMutualInformationSymmetryGaussian(t *testing.T) {
	// Two 2-D samples per variable keep every Gram matrix nonsingular, so
	// all three entropy terms stay finite.
	x, err := core.FromSlice([][]float64{{1, 0}, {0, 2}})
	if err != nil {
		t.Fatal(err)
	}
	y, err := core.FromSlice([][]float64{{3, 1}, {1, 4}})
	if err != nil {
		t.Fatal(err)
	}

	mxy, err := MutualInformation(x, y, Gaussian, Bins{}, Bins{}, Bins{})
	if err != nil {
		t.Fatal(err)
	}
	myx, err := MutualInformation(y, x, Gaussian, Bins{}, Bins{}, Bins{})
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(mxy, myx, 1e-9) {
		t.Errorf("mi(x,y) = %v, mi(y,x) = %v, want equal", mxy, myx)
	}
}

func TestMutualInformationSelf(t *testing.T) {
	// I(X;X) = H(X) under the bin method.
	rng := rand.New(rand.NewSource(9))
	x := discreteSignal(rng, 100, 4)
	single := BinCounts(4)

	mi, err := MutualInformation(x, x, Bin, single, single, BinCounts(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	h, err := EntropyFromSamples(x, Bin, single)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(mi, h, 1e-9) {
		t.Errorf("mi(x,x) = %v, entropy(x) = %v, want equal", mi, h)
	}
}

func TestMutualInformationIndependentNearZero(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	x := uniform(rng, 2000)
	y := uniform(rng, 2000)

	mi, err := MutualInformation(x, y, Bin, BinCounts(4), BinCounts(4), BinCounts(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	// Plug-in MI over product bins is non-negative; for independent
	// signals only the small-sample bias remains.
	if mi < -1e-9 || mi > 0.05 {
		t.Errorf("mi of independent signals = %v, want in [0, 0.05)", mi)
	}
}

func TestConditionalEntropyNeverExceedsEntropy(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	single := BinCounts(4)
	joint := BinCounts(4, 4)

	for trial := 0; trial < 10; trial++ {
		x := discreteSignal(rng, 300, 4)
		y := discreteSignal(rng, 300, 4)

		ce, err := ConditionalEntropy(x, y, Bin, single, joint)
		if err != nil {
			t.Fatal(err)
		}
		h, err := EntropyFromSamples(x, Bin, single)
		if err != nil {
			t.Fatal(err)
		}
		if ce > h+1e-9 {
			t.Fatalf("H(X|Y) = %v > H(X) = %v; conditioning must not add entropy", ce, h)
		}
	}
}

func TestConditionalEntropySelf(t *testing.T) {
	// Knowing X leaves no uncertainty about X.
	rng := rand.New(rand.NewSource(21))
	x := discreteSignal(rng, 100, 4)

	ce, err := ConditionalEntropy(x, x, Bin, BinCounts(4), BinCounts(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(ce, 0, 1e-9) {
		t.Errorf("H(X|X) = %v, want 0", ce)
	}
}

func TestMutualInformationErrorPropagation(t *testing.T) {
	x := core.FromVector([]float64{1, 2, 3})
	y := core.FromVector([]float64{4, 5, 6})

	// The bin method with no bin specification fails inside the first
	// entropy call and the sentinel surfaces unchanged.
	if _, err := MutualInformation(x, y, Bin, Bins{}, Bins{}, Bins{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing bins: err = %v, want ErrInvalidInput", err)
	}

	short := core.FromVector([]float64{1})
	if _, err := MutualInformation(x, short, NearestNeighbors, Bins{}, Bins{}, Bins{}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("mismatched samples: err = %v, want ErrDimensionMismatch", err)
	}
}
