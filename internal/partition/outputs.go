package partition

import (
	"strings"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

// Result is the caller-facing view of a finished bin-state. Which fields are
// populated depends on the output type; a Result is never mutated after
// extraction.
type Result struct {
	// Groups holds each bin's item identities in assignment order.
	Groups [][]bins.Item `json:"groups,omitempty"`
	// Sums holds each bin's accumulated sum in creation order.
	Sums []float64 `json:"sums,omitempty"`
	// Value holds a single aggregate statistic across all bins.
	Value *float64 `json:"value,omitempty"`
}

// OutputType decides the fidelity of the bin-state built for an algorithm run
// and extracts the caller-facing result from the finished state. Extraction
// never mutates the state, so it is idempotent.
type OutputType interface {
	Fidelity() bins.Fidelity
	Extract(state bins.Bins) (Result, error)
}

// Partition returns each bin's items, in assignment order.
type Partition struct{}

func (Partition) Fidelity() bins.Fidelity { return bins.KeepContents }

func (Partition) Extract(state bins.Bins) (Result, error) {
	groups, err := extractGroups(state)
	if err != nil {
		return Result{}, err
	}
	return Result{Groups: groups}, nil
}

// Sums returns each bin's sum, in bin-creation order.
type Sums struct{}

func (Sums) Fidelity() bins.Fidelity { return bins.KeepSums }

func (Sums) Extract(state bins.Bins) (Result, error) {
	return Result{Sums: state.Sums()}, nil
}

// PartitionAndSums returns both the per-bin items and the per-bin sums.
type PartitionAndSums struct{}

func (PartitionAndSums) Fidelity() bins.Fidelity { return bins.KeepContents }

func (PartitionAndSums) Extract(state bins.Bins) (Result, error) {
	groups, err := extractGroups(state)
	if err != nil {
		return Result{}, err
	}
	return Result{Groups: groups, Sums: state.Sums()}, nil
}

// LargestSum returns the largest bin sum as a single value.
type LargestSum struct{}

func (LargestSum) Fidelity() bins.Fidelity { return bins.KeepSums }

func (LargestSum) Extract(state bins.Bins) (Result, error) {
	return extremumResult(state, func(candidate, current float64) bool {
		return candidate > current
	})
}

// SmallestSum returns the smallest bin sum as a single value.
type SmallestSum struct{}

func (SmallestSum) Fidelity() bins.Fidelity { return bins.KeepSums }

func (SmallestSum) Extract(state bins.Bins) (Result, error) {
	return extremumResult(state, func(candidate, current float64) bool {
		return candidate < current
	})
}

func extractGroups(state bins.Bins) ([][]bins.Item, error) {
	contented, ok := state.(bins.Contented)
	if !ok {
		return nil, ErrNoContents
	}
	return contented.Contents(), nil
}

func extremumResult(state bins.Bins, better func(candidate, current float64) bool) (Result, error) {
	sums := state.Sums()
	if len(sums) == 0 {
		return Result{}, emptyStateError()
	}
	value := sums[0]
	for _, sum := range sums[1:] {
		if better(sum, value) {
			value = sum
		}
	}
	return Result{Value: &value}, nil
}

// OutputByName resolves an output type from its wire/CLI name.
func OutputByName(name string) (OutputType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "partition":
		return Partition{}, nil
	case "sums":
		return Sums{}, nil
	case "partition-and-sums":
		return PartitionAndSums{}, nil
	case "largest-sum":
		return LargestSum{}, nil
	case "smallest-sum":
		return SmallestSum{}, nil
	}
	return nil, unknownOutputError(name)
}
