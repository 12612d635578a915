package flagsgo

// Decomposes the value into named components in declaration order using the
// greedy rule: a flag is consumed when its nonzero pattern is still fully
// unclaimed, and consuming it claims those bits. Earlier flags win bits that
// later overlapping flags also want; the later flags are then skipped
// because part of their pattern is already claimed. Zero-bit flags are never
// yielded. Bits no flag claims are dropped, so the union of the result
// normalizes the value rather than reproducing it.
func (f Flags[B]) NamedComponents() []Flag[B] {
	components, _ := f.decompose()
	return components
}

// Decomposes the value like NamedComponents, then appends any unclaimed bits
// as a final unnamed component. The union of the result reproduces the exact
// source bits, unknown bits included.
func (f Flags[B]) Components() []Flag[B] {
	components, remaining := f.decompose()
	if remaining != 0 {
		components = append(components, Flag[B]{Bits: remaining})
	}
	return components
}

func (f Flags[B]) decompose() ([]Flag[B], B) {
	var components []Flag[B]
	remaining := f.bits
	for _, flag := range f.typ.flags {
		if flag.Bits == 0 {
			continue
		}
		if remaining&flag.Bits == flag.Bits {
			components = append(components, flag)
			remaining &^= flag.Bits
		}
	}
	return components, remaining
}
