package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Return numbers are the human-facing codes shown on return documents,
// distinct from the internal ULID identifiers. They are sequential per
// collection: the next number is one past the highest suffix currently
// in the store.
const (
	RETURN_NUMBER_PREFIX_CUSTOMER = "RET"
	RETURN_NUMBER_PREFIX_VENDOR   = "VRT"

	returnNumberPadding = 5
)

// FormatReturnNumber renders a sequence value as a display code,
// e.g. FormatReturnNumber("RET", 12) -> "RET-00012".
func FormatReturnNumber(prefix string, n int) string {
	return fmt.Sprintf("%s-%0*d", prefix, returnNumberPadding, n)
}

// ParseReturnNumberSuffix extracts the numeric suffix from a return number.
// Codes without a parseable suffix yield 0 so they never win a max scan.
func ParseReturnNumberSuffix(number string) int {
	_, suffix, found := strings.Cut(number, "-")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
