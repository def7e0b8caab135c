package pathkit

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseByteSize converts a human size string into a byte count. Plain
// digit strings are taken as bytes; a digit string followed by a single
// unit letter (K, M or G, case-insensitive) is multiplied by the
// corresponding power of 1024. Anything else fails with ErrInvalidSize.
func ParseByteSize(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidSize)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}

	digits, unit := s[:len(s)-1], s[len(s)-1:]
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	switch strings.ToUpper(unit) {
	case "K":
		return n * 1024, nil
	case "M":
		return n * 1024 * 1024, nil
	case "G":
		return n * 1024 * 1024 * 1024, nil
	default:
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidSize, unit, s)
	}
}
