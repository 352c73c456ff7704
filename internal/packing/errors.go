package packing

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eugenenazirov/partition-engine/internal/bins"
)

var (
	// ErrItemTooLarge is returned when an item's value exceeds the bin
	// capacity, so no bin could ever hold it.
	ErrItemTooLarge = errors.New("item does not fit in any bin")
	// ErrInvalidBinSize is returned when the bin capacity is not positive.
	ErrInvalidBinSize = errors.New("bin size must be positive")
	// ErrUnknownPacker is returned for unrecognized packing algorithm names.
	ErrUnknownPacker = errors.New("unknown packing algorithm")
)

func unknownPackerError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPacker, name)
}

func oversizedItemError(item bins.Item, value, binsize float64) error {
	return fmt.Errorf("%w: item %v has size %s larger than the bin size %s",
		ErrItemTooLarge, item, formatValue(value), formatValue(binsize))
}

func invalidBinSizeError(binsize float64) error {
	return fmt.Errorf("%w: got %s", ErrInvalidBinSize, formatValue(binsize))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
