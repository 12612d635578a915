package flagsgo

import "math/bits"

// The immutable definition of a flags type: a display name and an ordered
// list of flags over one unsigned width. Declaration order is part of the
// contract - it decides decomposition priority and formatting order, so a
// multi-bit flag declared before its constituent single-bit flags wins the
// shared bits, and declared after them it never gets a turn.
type Type[B Bits] struct {
	name   string
	flags  []Flag[B]
	known  B
	normal bool
}

// Creates a flags type with the given display name and ordered flags.
// Flag names must be unique within the type; that is the caller's invariant
// to hold, it is not checked here.
func NewType[B Bits](name string, flags ...Flag[B]) *Type[B] {
	t := &Type[B]{
		name:  name,
		flags: make([]Flag[B], len(flags)),
	}
	copy(t.flags, flags)

	zeroed := false
	singles := B(0)
	for _, flag := range t.flags {
		t.known |= flag.Bits
		if flag.Bits == 0 {
			zeroed = true
		}
		if bits.OnesCount64(uint64(flag.Bits)) == 1 {
			singles |= flag.Bits
		}
	}
	t.normal = !zeroed && singles == t.known

	return t
}

// The display name of the type.
func (t *Type[B]) Name() string {
	return t.name
}

// The width in bits of the backing type.
func (t *Type[B]) Width() int {
	return Width[B]()
}

// Returns the flags in declaration order. The returned slice must not be
// modified.
func (t *Type[B]) Flags() []Flag[B] {
	return t.flags
}

// The union of every declared flag's bits. Bits outside this mask are
// unknown to the type.
func (t *Type[B]) KnownMask() B {
	return t.known
}

// Returns whether the type is normal: no flag has a zero pattern and every
// known bit belongs to at least one single-bit flag. Truncating any value of
// a normal type always produces a normalized value.
func (t *Type[B]) IsNormal() bool {
	return t.normal
}

// Returns the value with no bits set.
func (t *Type[B]) Empty() Flags[B] {
	return Flags[B]{typ: t}
}

// Returns the value with every known bit set.
func (t *Type[B]) All() Flags[B] {
	return Flags[B]{typ: t, bits: t.known}
}

// Converts raw bits into a value of this type, dropping any unknown bits.
// Reports false when the input is nonzero but holds no known bit at all, so
// a caller can tell "nothing survived truncation" apart from a genuinely
// empty input.
func (t *Type[B]) FromBits(raw B) (Flags[B], bool) {
	if raw != 0 && raw&t.known == 0 {
		return Flags[B]{typ: t}, false
	}
	return t.truncated(raw), true
}

// Converts raw bits into a value of this type keeping every bit, known or
// not. A building block: any set operation on the result truncates again.
func (t *Type[B]) FromBitsRetain(raw B) Flags[B] {
	return Flags[B]{typ: t, bits: raw}
}

// Returns the value of the flag with the exact, case-sensitive name.
func (t *Type[B]) FromName(name string) (Flags[B], bool) {
	for _, flag := range t.flags {
		if flag.Name == name {
			return Flags[B]{typ: t, bits: flag.Bits}, true
		}
	}
	return Flags[B]{typ: t}, false
}

func (t *Type[B]) truncated(raw B) Flags[B] {
	return Flags[B]{typ: t, bits: raw & t.known}
}
