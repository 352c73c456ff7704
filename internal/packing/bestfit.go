// Package packing implements bin-packing heuristics: items are assigned to
// bins of a fixed capacity, opening new bins as needed.
package packing

import (
	"sort"
	"strings"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

// Packer is the signature shared by the capacity-constrained packing
// algorithms in this package.
type Packer func(binner bins.Binner, binsize float64, items []bins.Item, valueof bins.ValueFunc) (bins.Bins, error)

// ByName resolves a packing algorithm from its wire/CLI name.
func ByName(name string) (Packer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "online":
		return Online, nil
	case "decreasing":
		return Decreasing, nil
	}
	return nil, unknownPackerError(name)
}

// Online packs the items into bins of capacity binsize using the online
// best-fit heuristic, handling items in the order they are given. Each item
// goes into the existing bin whose sum it fills the most without exceeding
// binsize; ties keep the earliest-created bin. A new bin is opened only when
// no existing bin fits. A nil valueof defaults to bins.Identity.
//
// Online fails with ErrItemTooLarge as soon as it meets an item whose value
// exceeds binsize; no bin-state is returned in that case.
func Online(binner bins.Binner, binsize float64, items []bins.Item, valueof bins.ValueFunc) (bins.Bins, error) {
	if binsize <= 0 {
		return nil, invalidBinSizeError(binsize)
	}
	if valueof == nil {
		valueof = bins.Identity
	}

	state := binner.NewBins(1)
	for _, item := range items {
		value := valueof(item)
		if value > binsize {
			return nil, oversizedItemError(item, value, binsize)
		}

		// Scan in creation order keeping only strictly greater candidates,
		// so the first bin reaching the best sum wins ties.
		sums := state.Sums()
		best := -1
		bestSum := -1.0
		for i, sum := range sums {
			if newSum := sum + value; newSum <= binsize && newSum > bestSum {
				best = i
				bestSum = newSum
			}
		}

		if best < 0 {
			best = state.Len()
			state.Grow(1)
		}
		if err := state.Add(item, value, best); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Decreasing packs the items using the best-fit-decreasing heuristic: items
// are first sorted by value in non-increasing order, then packed as Online
// would. The sort is stable so runs over equal-valued items are reproducible.
func Decreasing(binner bins.Binner, binsize float64, items []bins.Item, valueof bins.ValueFunc) (bins.Bins, error) {
	if valueof == nil {
		valueof = bins.Identity
	}

	sorted := make([]bins.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return valueof(sorted[i]) > valueof(sorted[j])
	})

	return Online(binner, binsize, sorted, valueof)
}
