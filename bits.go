package flagsgo

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// The unsigned integer types that can back a flags type. Every flag pattern
// and flags value of one type shares the same fixed width.
type Bits interface {
	constraints.Unsigned
}

// Returns the width in bits of the type B.
func Width[B Bits]() int {
	return bits.OnesCount64(uint64(^B(0)))
}

// Formats bits as a lowercase hex literal with a 0x prefix and no padding.
func formatBits[B Bits](value B) string {
	return "0x" + strconv.FormatUint(uint64(value), 16)
}

// Parses the digits of a hex literal (without the 0x prefix) into B, failing
// when the digits are invalid or the number does not fit the width of B.
func parseBits[B Bits](digits string) (B, error) {
	parsed, err := strconv.ParseUint(digits, 16, Width[B]())
	if err != nil {
		return 0, err
	}
	return B(parsed), nil
}
