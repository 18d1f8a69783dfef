package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive, 1-based page range.
type Range struct {
	Start int
	End   int
}

// ParseRange parses a "start-end" range string. Malformed input is an
// input error: the caller aborts the run before any network activity.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range format: %s (use start-end, e.g. 1-10)", s)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}

	if start < 1 {
		return Range{}, fmt.Errorf("range start must be at least 1, got %d", start)
	}
	if end < start {
		return Range{}, fmt.Errorf("range end %d is before start %d", end, start)
	}

	return Range{Start: start, End: end}, nil
}

// Count returns the number of pages in the range.
func (r Range) Count() int {
	return r.End - r.Start + 1
}
