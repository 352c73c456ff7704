package partition

import (
	"sort"
	"strings"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

// Greedy partitions items into exactly numbins bins with the largest-first
// greedy heuristic: items are sorted by value in non-increasing order and
// each goes into the bin with the currently smallest sum, keeping the
// earliest bin on ties. The sort is stable so equal-valued items keep their
// input order. Bin count never changes during the run.
func Greedy(binner bins.Binner, numbins int, items []bins.Item, valueof bins.ValueFunc) (bins.Bins, error) {
	if numbins <= 0 {
		return nil, invalidBinCountError(numbins)
	}
	if valueof == nil {
		valueof = bins.Identity
	}

	sorted := make([]bins.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return valueof(sorted[i]) > valueof(sorted[j])
	})

	state := binner.NewBins(numbins)
	for _, item := range sorted {
		sums := state.Sums()
		smallest := 0
		for i, sum := range sums[1:] {
			if sum < sums[smallest] {
				smallest = i + 1
			}
		}
		if err := state.Add(item, valueof(item), smallest); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// AlgorithmByName resolves a fixed-bin-count algorithm from its wire/CLI name.
func AlgorithmByName(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "greedy":
		return Greedy, nil
	}
	return nil, unknownAlgorithmError(name)
}
