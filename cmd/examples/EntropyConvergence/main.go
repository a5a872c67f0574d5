package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/seanpue/shannon/pkg/core"
	"github.com/seanpue/shannon/pkg/entropy"
)

// Nearest-neighbor entropy of Uniform(0,1) samples. The closed-form
// differential entropy of Uniform(0,1) is 0 bits, so the estimates should
// settle toward 0 as the sample count grows.

const trials = 20

// uniformSamples draws n samples from Uniform(0, 1).
func uniformSamples(rng *rand.Rand, n int) *core.Matrix {
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()
	}
	return core.FromVector(x)
}

func main() {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{10, 50, 100, 500, 1000, 5000, 10000}

	pts := make(plotter.XYs, 0, len(sizes))
	fmt.Println("N       mean(H)    sd(H)")
	for _, n := range sizes {
		estimates := make([]float64, trials)
		for t := range estimates {
			h, err := entropy.EntropyFromSamples(uniformSamples(rng, n), entropy.NearestNeighbors, entropy.Bins{})
			if err != nil {
				log.Fatal(err)
			}
			estimates[t] = h
		}

		mean, err := mstats.Mean(estimates)
		if err != nil {
			log.Fatal(err)
		}
		sd, err := mstats.StandardDeviation(estimates)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-7d %+.4f    %.4f\n", n, mean, sd)
		pts = append(pts, plotter.XY{X: math.Log10(float64(n)), Y: mean})
	}

	plotConvergence(pts, "entropy_convergence.png")
}

// plotConvergence saves the mean estimate against log10(N), with the
// true entropy of Uniform(0,1) as a reference line.
func plotConvergence(pts plotter.XYs, filename string) {
	p := plot.New()
	p.Title.Text = "Nearest-Neighbor Entropy of Uniform(0,1)"
	p.X.Label.Text = "log10(N)"
	p.Y.Label.Text = "Estimated entropy (bits)"

	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		log.Fatal(err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line, scatter)

	ref := plotter.XYs{
		{X: pts[0].X, Y: 0},
		{X: pts[len(pts)-1].X, Y: 0},
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		log.Fatal(err)
	}
	refLine.Color = color.RGBA{R: 255, A: 255}
	refLine.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(refLine)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved convergence plot to %s\n", filename)
}
