package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is wrapped by all slide-range parse failures so callers can
// classify them as input errors.
var ErrInvalidRange = fmt.Errorf("invalid slide range")

// ParseRange resolves a slide-selection expression like "1-5,10" into the set
// of selected 1-based slide numbers. The grammar is RANGE (',' RANGE)* with
// RANGE := INT | INT '-' INT; ranges are inclusive and the result is the
// union of all parts. Reversed or open ranges are rejected.
func ParseRange(expr string) (map[int]bool, error) {
	selected := make(map[int]bool)
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidRange, expr)
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := parseSlideNumber(lo)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidRange, part)
			}
			end, err := parseSlideNumber(hi)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidRange, part)
			}
			if end < start {
				return nil, fmt.Errorf("%w: reversed range %q", ErrInvalidRange, part)
			}
			for n := start; n <= end; n++ {
				selected[n] = true
			}
			continue
		}
		n, err := parseSlideNumber(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRange, part)
		}
		selected[n] = true
	}
	return selected, nil
}

func parseSlideNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("slide numbers are 1-based, got %d", n)
	}
	return n, nil
}
