package bins

import (
	"errors"
	"fmt"
)

// ErrBinIndex is returned when an algorithm addresses a bin the state does not
// have. It signals a bug in the calling algorithm rather than bad user input.
var ErrBinIndex = errors.New("bin index out of range")

func indexError(index, numbins int) error {
	return fmt.Errorf("%w: bin %d of %d", ErrBinIndex, index, numbins)
}
