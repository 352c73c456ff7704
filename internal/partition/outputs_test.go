package partition

import (
	"errors"
	"slices"
	"testing"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

func finishedState(t *testing.T, fidelity bins.Fidelity) bins.Bins {
	t.Helper()

	state, err := Greedy(bins.NewBinner(fidelity), 3, []bins.Item{1.0, 2.0, 3.0, 3.0, 5.0, 9.0, 9.0}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return state
}

func TestLargestAndSmallestSum(t *testing.T) {
	t.Parallel()

	state := finishedState(t, bins.KeepSums)

	largest, err := LargestSum{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if largest.Value == nil || *largest.Value != 11 {
		t.Fatalf("expected largest sum 11, got %+v", largest)
	}

	smallest, err := SmallestSum{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if smallest.Value == nil || *smallest.Value != 10 {
		t.Fatalf("expected smallest sum 10, got %+v", smallest)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	t.Parallel()

	state := finishedState(t, bins.KeepContents)

	first, err := PartitionAndSums{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := PartitionAndSums{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slices.Equal(first.Sums, second.Sums) {
		t.Fatalf("sums differ between extractions: %v vs %v", first.Sums, second.Sums)
	}
	for i := range first.Groups {
		if !slices.Equal(first.Groups[i], second.Groups[i]) {
			t.Fatalf("group %d differs between extractions", i)
		}
	}
}

func TestExtractResultIsDetached(t *testing.T) {
	t.Parallel()

	state := finishedState(t, bins.KeepContents)

	result, err := PartitionAndSums{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result.Sums[0] = 999
	result.Groups[0] = nil

	again, err := PartitionAndSums{}.Extract(state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Sums[0] == 999 || again.Groups[0] == nil {
		t.Fatal("mutating a result leaked into the bin-state")
	}
}

func TestContentsOutputNeedsContentsFidelity(t *testing.T) {
	t.Parallel()

	state := finishedState(t, bins.KeepSums)

	for _, output := range []OutputType{Partition{}, PartitionAndSums{}} {
		if _, err := output.Extract(state); !errors.Is(err, ErrNoContents) {
			t.Fatalf("expected ErrNoContents, got %v", err)
		}
	}
}

func TestOutputByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		fidelity bins.Fidelity
	}{
		{name: "DefaultIsPartition", input: "", fidelity: bins.KeepContents},
		{name: "Partition", input: "partition", fidelity: bins.KeepContents},
		{name: "Sums", input: "sums", fidelity: bins.KeepSums},
		{name: "PartitionAndSums", input: "partition-and-sums", fidelity: bins.KeepContents},
		{name: "LargestSum", input: "Largest-Sum", fidelity: bins.KeepSums},
		{name: "SmallestSum", input: " smallest-sum ", fidelity: bins.KeepSums},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			output, err := OutputByName(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Fidelity() != tc.fidelity {
				t.Fatalf("expected fidelity %v, got %v", tc.fidelity, output.Fidelity())
			}
		})
	}

	if _, err := OutputByName("histogram"); !errors.Is(err, ErrUnknownOutput) {
		t.Fatalf("expected ErrUnknownOutput, got %v", err)
	}
}
