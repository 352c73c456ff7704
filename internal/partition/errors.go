package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidItems is returned when the item collection is missing,
	// carries a negative value, or lacks a required valuation function.
	ErrInvalidItems = errors.New("invalid item collection")
	// ErrInvalidBinCount is returned when the requested number of bins is
	// not positive.
	ErrInvalidBinCount = errors.New("number of bins must be positive")
	// ErrNoAlgorithm is returned when Run is called without an algorithm.
	ErrNoAlgorithm = errors.New("no partitioning algorithm provided")
	// ErrUnknownAlgorithm is returned for unrecognized algorithm names.
	ErrUnknownAlgorithm = errors.New("unknown partitioning algorithm")
	// ErrUnknownOutput is returned for unrecognized output type names.
	ErrUnknownOutput = errors.New("unknown output type")
	// ErrNoContents is returned when a contents-based output type is asked
	// to extract from a sums-only bin-state.
	ErrNoContents = errors.New("bin-state does not track contents")
)

func negativeValueError(value float64) error {
	return fmt.Errorf("%w: item value %g is negative", ErrInvalidItems, value)
}

func missingValuationError() error {
	return fmt.Errorf("%w: labeled items require a valuation function", ErrInvalidItems)
}

func missingItemsError() error {
	return fmt.Errorf("%w: no items provided", ErrInvalidItems)
}

func emptyStateError() error {
	return fmt.Errorf("%w: bin-state has no bins to aggregate", ErrInvalidBinCount)
}

func invalidBinCountError(numbins int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidBinCount, numbins)
}

func unknownAlgorithmError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func unknownOutputError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOutput, name)
}
