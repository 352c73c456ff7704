package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/partition-engine/internal/bins"
	"github.com/eugenenazirov/partition-engine/internal/packing"
	"github.com/eugenenazirov/partition-engine/internal/partition"
)

func main() {
	app := kingpin.New("partition", "Run a packing or partitioning algorithm on a list of items and print the resulting bins")
	algorithm := app.Flag("algorithm", "Algorithm to run: online, decreasing, or greedy").Default("online").String()
	binSize := app.Flag("bin-size", "Bin capacity for online/decreasing").Default("0").Float64()
	numBins := app.Flag("num-bins", "Number of bins for greedy").Default("2").Int()
	itemsFlag := app.Flag("items", "Comma-separated item values").String()
	randomCount := app.Flag("random", "Generate this many random items instead of --items").Default("0").Int()
	randomBits := app.Flag("bits", "Bit width of generated random items").Default("16").Int()
	randomSeed := app.Flag("seed", "Seed for random item generation").Default("1").Int64()
	sumsOnly := app.Flag("sums-only", "Track only bin sums, not contents").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	values, err := resolveItems(*itemsFlag, *randomCount, *randomBits, *randomSeed)
	if err != nil {
		app.Fatalf("%v", err)
	}

	items := make([]bins.Item, len(values))
	for i, v := range values {
		items[i] = v
	}

	fidelity := bins.KeepContents
	if *sumsOnly {
		fidelity = bins.KeepSums
	}
	binner := bins.NewBinner(fidelity)

	state, err := runAlgorithm(*algorithm, binner, *binSize, *numBins, items)
	if err != nil {
		app.Fatalf("%v", err)
	}

	if err := bins.Fprint(os.Stdout, state); err != nil {
		app.Fatalf("%v", err)
	}
}

func runAlgorithm(name string, binner bins.Binner, binsize float64, numbins int, items []bins.Item) (bins.Bins, error) {
	if packer, err := packing.ByName(name); err == nil {
		return packer(binner, binsize, items, nil)
	}

	alg, err := partition.AlgorithmByName(name)
	if err != nil {
		return nil, err
	}
	return alg(binner, numbins, items, nil)
}

func resolveItems(raw string, randomCount, randomBits int, randomSeed int64) (partition.Values, error) {
	if randomCount > 0 {
		return partition.RandomItems(rand.New(rand.NewSource(randomSeed)), randomCount, randomBits)
	}
	return parseItems(raw)
}

// parseItems parses a comma-separated list of non-negative item values.
func parseItems(raw string) (partition.Values, error) {
	parts := strings.Split(raw, ",")
	values := make(partition.Values, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item value %q", part)
		}
		if value < 0 {
			return nil, fmt.Errorf("item value %g is negative", value)
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no items provided; use --items or --random")
	}
	return values, nil
}
