// Package bins defines the bin-state used by every packing and partitioning
// algorithm in this module: an ordered collection of bins that is created
// empty, grown one append at a time, and mutated item by item. A Binner picks
// between the two fidelity levels, so algorithms stay agnostic about whether
// callers need the assigned items back or only the per-bin sums.
package bins

// Item is any value assigned to a bin. Algorithms never inspect an item
// directly; its weight always comes from a ValueFunc, so duplicates with the
// same weight remain distinct occurrences in the output.
type Item = any

// ValueFunc maps an item to its non-negative weight.
type ValueFunc func(Item) float64

// Identity values numeric items as themselves. Items of non-numeric types are
// valued as zero; supply an explicit ValueFunc for anything else.
func Identity(item Item) float64 {
	switch v := item.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// Fidelity selects how much per-bin detail a bin-state retains.
type Fidelity int

const (
	// KeepSums tracks only the accumulated sum of each bin.
	KeepSums Fidelity = iota
	// KeepContents additionally tracks the items assigned to each bin, in
	// assignment order.
	KeepContents
)

// String returns the fidelity name used in logs and CLI flags.
func (f Fidelity) String() string {
	if f == KeepContents {
		return "contents"
	}
	return "sums"
}

// Bins is a mutable bin-state. Bins are indexed in creation order and are
// never removed; the state only grows. Implementations are not safe for
// concurrent use, matching the one-owner-per-run lifecycle.
type Bins interface {
	// Len reports the current number of bins.
	Len() int
	// Sums returns a copy of every bin's accumulated sum, in creation order.
	Sums() []float64
	// Grow appends n empty bins after all existing bins.
	Grow(n int)
	// Add assigns item with the given weight to the bin at index. It returns
	// ErrBinIndex when index does not name an existing bin.
	Add(item Item, value float64, index int) error
}

// Contented is implemented by bin-states that record assigned items.
type Contented interface {
	// Contents returns a copy of each bin's items in assignment order,
	// indexed like Sums.
	Contents() [][]Item
}

// Binner creates bin-states at a fixed fidelity. The zero value produces
// sums-only states.
type Binner struct {
	fidelity Fidelity
}

// NewBinner returns a Binner producing bin-states of the given fidelity.
func NewBinner(f Fidelity) Binner {
	return Binner{fidelity: f}
}

// Fidelity reports the fidelity of states produced by the binner.
func (b Binner) Fidelity() Fidelity {
	return b.fidelity
}

// NewBins returns a fresh bin-state with exactly n empty bins.
func (b Binner) NewBins(n int) Bins {
	if n < 0 {
		n = 0
	}
	if b.fidelity == KeepContents {
		return &contentBins{sums: make([]float64, n), items: make([][]Item, n)}
	}
	return &sumBins{sums: make([]float64, n)}
}

type sumBins struct {
	sums []float64
}

func (s *sumBins) Len() int {
	return len(s.sums)
}

func (s *sumBins) Sums() []float64 {
	out := make([]float64, len(s.sums))
	copy(out, s.sums)
	return out
}

func (s *sumBins) Grow(n int) {
	for i := 0; i < n; i++ {
		s.sums = append(s.sums, 0)
	}
}

func (s *sumBins) Add(item Item, value float64, index int) error {
	_ = item
	if index < 0 || index >= len(s.sums) {
		return indexError(index, len(s.sums))
	}
	s.sums[index] += value
	return nil
}

type contentBins struct {
	sums  []float64
	items [][]Item
}

func (c *contentBins) Len() int {
	return len(c.sums)
}

func (c *contentBins) Sums() []float64 {
	out := make([]float64, len(c.sums))
	copy(out, c.sums)
	return out
}

func (c *contentBins) Grow(n int) {
	for i := 0; i < n; i++ {
		c.sums = append(c.sums, 0)
		c.items = append(c.items, nil)
	}
}

func (c *contentBins) Add(item Item, value float64, index int) error {
	if index < 0 || index >= len(c.sums) {
		return indexError(index, len(c.sums))
	}
	c.sums[index] += value
	c.items[index] = append(c.items[index], item)
	return nil
}

func (c *contentBins) Contents() [][]Item {
	out := make([][]Item, len(c.items))
	for i, binItems := range c.items {
		out[i] = make([]Item, len(binItems))
		copy(out[i], binItems)
	}
	return out
}
