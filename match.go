package flagsgo

// A predicate over a flags value.
type Match[B Bits] func(value Flags[B]) bool

// Matches values containing every bit of test.
func MatchAll[B Bits](test Flags[B]) Match[B] {
	return func(value Flags[B]) bool {
		return value.Contains(test)
	}
}

// Matches values sharing at least one bit with test.
func MatchAny[B Bits](test Flags[B]) Match[B] {
	return func(value Flags[B]) bool {
		return value.Intersects(test)
	}
}

// Matches values sharing no bit with test.
func MatchNone[B Bits](test Flags[B]) Match[B] {
	return func(value Flags[B]) bool {
		return !value.Intersects(test)
	}
}

// Matches values holding exactly the bits of test.
func MatchExact[B Bits](test Flags[B]) Match[B] {
	return func(value Flags[B]) bool {
		return value.Equal(test)
	}
}

// Matches values with no bits set.
func MatchEmpty[B Bits]() Match[B] {
	return func(value Flags[B]) bool {
		return value.IsEmpty()
	}
}

// Matches values the given match does not.
func MatchNot[B Bits](not Match[B]) Match[B] {
	return func(value Flags[B]) bool {
		return !not(value)
	}
}

// Matches values every given match does.
func MatchAnd[B Bits](ands ...Match[B]) Match[B] {
	return func(value Flags[B]) bool {
		for _, and := range ands {
			if !and(value) {
				return false
			}
		}
		return true
	}
}

// Matches values any of the given matches does.
func MatchOr[B Bits](ors ...Match[B]) Match[B] {
	return func(value Flags[B]) bool {
		for _, or := range ors {
			if or(value) {
				return true
			}
		}
		return false
	}
}
