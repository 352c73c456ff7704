package partition

import (
	"fmt"
	"math/rand"
)

const (
	minBitsPerItem = 2
	maxBitsPerItem = 62
)

// RandomItems generates numitems uniformly random positive integer values of
// at most bitsperitem bits, for ad-hoc experimentation with the adaptor.
// Reproducibility is the caller's concern: seed the provided rand.Rand.
func RandomItems(rng *rand.Rand, numitems, bitsperitem int) (Values, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidItems)
	}
	if numitems < 0 {
		return nil, fmt.Errorf("%w: negative item count %d", ErrInvalidItems, numitems)
	}
	if bitsperitem < minBitsPerItem || bitsperitem > maxBitsPerItem {
		return nil, fmt.Errorf("%w: bits per item must be between %d and %d, got %d",
			ErrInvalidItems, minBitsPerItem, maxBitsPerItem, bitsperitem)
	}

	limit := int64(1)<<uint(bitsperitem) - 1
	values := make(Values, numitems)
	for i := range values {
		values[i] = float64(rng.Int63n(limit-1) + 1)
	}
	return values, nil
}
