package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/seanpue/shannon/pkg/core"
	"github.com/seanpue/shannon/pkg/data"
	"github.com/seanpue/shannon/pkg/entropy"
	"github.com/seanpue/shannon/pkg/stats"
)

// Reads a CSV of recorded signals (one column per channel) and reports
// per-channel statistics plus the binned mutual information and
// conditional entropy between every channel pair.

func main() {
	nbins := flag.Int("bins", 8, "equal-width bins per channel")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: SignalInformation [-bins n] observations.csv")
	}

	samples, header, err := data.LoadCSV(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	names := channelNames(header, samples.C)
	fmt.Printf("%d samples, %d channels\n\n", samples.R, samples.C)

	fmt.Println("channel   mean      std       min       max")
	for j := 0; j < samples.C; j++ {
		col := samples.Col(j)
		min, max := stats.MinMax(col)
		fmt.Printf("%-9s %-9.4f %-9.4f %-9.4f %-9.4f\n", names[j], stats.Mean(col), stats.Std(col), min, max)
	}

	single := entropy.BinCounts(*nbins)
	joint := entropy.BinCounts(*nbins, *nbins)

	fmt.Println("\npair        I(X;Y)    H(X|Y)")
	for i := 0; i < samples.C; i++ {
		for j := i + 1; j < samples.C; j++ {
			x := core.FromVector(samples.Col(i))
			y := core.FromVector(samples.Col(j))

			mi, err := entropy.MutualInformation(x, y, entropy.Bin, single, single, joint)
			if err != nil {
				log.Fatal(err)
			}
			ce, err := entropy.ConditionalEntropy(x, y, entropy.Bin, single, joint)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s/%-9s %-9.4f %-9.4f\n", names[i], names[j], mi, ce)
		}
	}
}

// channelNames falls back to positional names when the CSV had no header.
func channelNames(header []string, c int) []string {
	if len(header) == c {
		return header
	}
	names := make([]string, c)
	for j := range names {
		names[j] = fmt.Sprintf("ch%d", j)
	}
	return names
}
