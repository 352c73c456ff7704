// Package partition assigns items to a fixed number of bins and adapts
// heterogeneous caller input into the uniform shape every partitioning
// algorithm consumes: an ordered item slice plus a valuation function. The
// result is routed through an OutputType that decides both the bin-state
// fidelity and the shape handed back to the caller.
package partition

import (
	"sort"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

// Algorithm partitions items into the fixed number of bins produced by the
// binner. Implementations must assign every item to exactly one bin and may
// assume a positive numbins and a non-nil valueof.
type Algorithm func(binner bins.Binner, numbins int, items []bins.Item, valueof bins.ValueFunc) (bins.Bins, error)

// Items is one of the input shapes the adaptor accepts. The shape fixes the
// default valuation: Values are their own weights, Mapping entries are
// weighed by key lookup, and Labeled input carries its valuation explicitly.
type Items interface {
	normalize() ([]bins.Item, bins.ValueFunc, error)
}

// Values is a plain list of weights; each item is equal to its value.
type Values []float64

func (v Values) normalize() ([]bins.Item, bins.ValueFunc, error) {
	items := make([]bins.Item, len(v))
	for i, value := range v {
		if value < 0 {
			return nil, nil, negativeValueError(value)
		}
		items[i] = value
	}
	return items, bins.Identity, nil
}

// Mapping maps item labels to their values. Keys are processed in sorted
// order so runs are reproducible despite Go's randomized map iteration.
type Mapping map[string]float64

func (m Mapping) normalize() ([]bins.Item, bins.ValueFunc, error) {
	labels := make([]string, 0, len(m))
	for label, value := range m {
		if value < 0 {
			return nil, nil, negativeValueError(value)
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	items := make([]bins.Item, len(labels))
	for i, label := range labels {
		items[i] = label
	}
	valueof := func(item bins.Item) float64 {
		label, ok := item.(string)
		if !ok {
			return 0
		}
		return m[label]
	}
	return items, valueof, nil
}

// Labeled is a list of item labels with an explicit valuation function.
type Labeled struct {
	Labels  []string
	ValueOf bins.ValueFunc
}

func (l Labeled) normalize() ([]bins.Item, bins.ValueFunc, error) {
	if l.ValueOf == nil {
		return nil, nil, missingValuationError()
	}
	items := make([]bins.Item, len(l.Labels))
	for i, label := range l.Labels {
		if value := l.ValueOf(label); value < 0 {
			return nil, nil, negativeValueError(value)
		}
		items[i] = label
	}
	return items, l.ValueOf, nil
}

// Run partitions items into numbins bins using the given algorithm and shapes
// the outcome per the output type. A nil output defaults to Partition. Input
// is validated and normalized before the algorithm sees it; Run has no side
// effects beyond the returned result.
func Run(alg Algorithm, numbins int, items Items, output OutputType) (Result, error) {
	if alg == nil {
		return Result{}, ErrNoAlgorithm
	}
	if numbins <= 0 {
		return Result{}, invalidBinCountError(numbins)
	}
	if items == nil {
		return Result{}, missingItemsError()
	}
	if output == nil {
		output = Partition{}
	}

	normalized, valueof, err := items.normalize()
	if err != nil {
		return Result{}, err
	}

	state, err := alg(bins.NewBinner(output.Fidelity()), numbins, normalized, valueof)
	if err != nil {
		return Result{}, err
	}
	return output.Extract(state)
}
