// Package seqcode generates the human-readable sequential codes shown to
// back-office staff (PKG-001, DIS-014, ...). Callers must read the current
// maximum under a row lock so concurrent creates cannot mint the same code.
package seqcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCode = errors.New("malformed sequence code")

// Next returns the code following last for the given prefix. An empty last
// yields the first code of the sequence (<PREFIX>-001).
func Next(prefix, last string) (string, error) {
	if last == "" {
		return fmt.Sprintf("%s-001", prefix), nil
	}

	rest, ok := strings.CutPrefix(last, prefix+"-")
	if !ok {
		return "", ErrMalformedCode
	}

	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return "", ErrMalformedCode
	}

	return fmt.Sprintf("%s-%03d", prefix, n+1), nil
}
