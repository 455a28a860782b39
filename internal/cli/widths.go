package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadArgument indicates a malformed command-line value. Argument
// validation runs before any file I/O.
var ErrBadArgument = errors.New("invalid argument")

// ParseWidths parses a comma-separated width list like "600,1000,1400".
//
// Every token must be a positive integer. Whitespace around tokens is
// tolerated. Order is preserved.
func ParseWidths(s string) ([]int, error) {
	tokens := strings.Split(s, ",")

	widths := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		w, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: width %q is not an integer", ErrBadArgument, tok)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: width %d is not positive", ErrBadArgument, w)
		}
		widths = append(widths, w)
	}

	return widths, nil
}
