package main

import (
	"slices"
	"testing"

	"github.com/eugenenazirov/partition-engine/internal/bins"
	"github.com/eugenenazirov/partition-engine/internal/partition"
)

func TestParseItems(t *testing.T) {
	got, err := parseItems("4, 7 ,2,1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (partition.Values{4, 7, 2, 1}); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := parseItems(" , "); err == nil {
		t.Fatalf("expected error for empty input")
	}
	if _, err := parseItems("1,a"); err == nil {
		t.Fatalf("expected error for invalid value")
	}
	if _, err := parseItems("1,-2"); err == nil {
		t.Fatalf("expected error for negative value")
	}
}

func TestRunAlgorithm(t *testing.T) {
	binner := bins.NewBinner(bins.KeepContents)
	items := []bins.Item{4.0, 7.0, 2.0, 1.0, 5.0, 8.0, 4.0}

	state, err := runAlgorithm("online", binner, 9, 0, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Len() != 4 {
		t.Fatalf("expected 4 bins from online, got %d", state.Len())
	}

	state, err = runAlgorithm("greedy", binner, 0, 2, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Len() != 2 {
		t.Fatalf("expected 2 bins from greedy, got %d", state.Len())
	}

	if _, err := runAlgorithm("branch-and-bound", binner, 9, 2, items); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}
