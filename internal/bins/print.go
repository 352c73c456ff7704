package bins

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a human-readable rendering of the bin-state to w, one line per
// bin. Contents are shown when the state tracks them. This is a diagnostic
// format, not part of the algorithmic contract.
func Fprint(w io.Writer, b Bins) error {
	sums := b.Sums()
	contents, hasContents := binContents(b)

	for i, sum := range sums {
		var err error
		if hasContents {
			_, err = fmt.Fprintf(w, "Bin #%d: [%s], sum=%s\n", i, joinItems(contents[i]), formatSum(sum))
		} else {
			_, err = fmt.Fprintf(w, "Bin #%d: sum=%s\n", i, formatSum(sum))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Sprint renders the bin-state as Fprint would, returned as a string.
func Sprint(b Bins) string {
	var sb strings.Builder
	_ = Fprint(&sb, b)
	return sb.String()
}

func binContents(b Bins) ([][]Item, bool) {
	c, ok := b.(Contented)
	if !ok {
		return nil, false
	}
	return c.Contents(), true
}

func joinItems(items []Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case float64:
			parts[i] = formatSum(v)
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return strings.Join(parts, ", ")
}

func formatSum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
