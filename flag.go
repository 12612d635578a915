package flagsgo

// A flags type is an ordered list of named bit patterns (flags) over one
// unsigned width, plus the values built from it. Flags give meaning to a
// subset of the bits; a value is still free to carry bits no flag covers,
// and every set operation masks those unknown bits back out of its result.

// A single named bit pattern within a flags type. Names are case-sensitive
// and unique within their type. Patterns are free to overlap other flags,
// cover multiple bits, or be zero.
type Flag[B Bits] struct {
	// The case-sensitive name of the flag. A component yielded as the
	// leftover of a decomposition has no name.
	Name string
	// The bit pattern of the flag.
	Bits B
}

// Returns whether the flag carries a name.
func (f Flag[B]) Named() bool {
	return f.Name != ""
}
