package flagsgo

// A value of a flags type: the backing bits plus the type that gives them
// meaning. Values are plain data - copy, compare, and discard them freely.
// A zero Flags carries no type; obtain values from a Type (Empty, All,
// FromBits, FromName, Parse). The in-place methods need the same external
// synchronization as any other write to shared data.
type Flags[B Bits] struct {
	typ  *Type[B]
	bits B
}

// The raw bits of the value.
func (f Flags[B]) Bits() B {
	return f.bits
}

// The type of the value, or nil for a zero value.
func (f Flags[B]) Type() *Type[B] {
	return f.typ
}

// Returns whether no bits are set.
func (f Flags[B]) IsEmpty() bool {
	return f.bits == 0
}

// Returns whether every known bit is set. Unknown bits play no part.
func (f Flags[B]) IsAll() bool {
	return f.bits&f.typ.known == f.typ.known
}

// Returns whether every bit of other is also set in f. The empty value is
// contained in everything.
func (f Flags[B]) Contains(other Flags[B]) bool {
	return other.bits&^f.bits == 0
}

// Returns whether f and other share at least one set bit. The empty value
// intersects nothing.
func (f Flags[B]) Intersects(other Flags[B]) bool {
	return f.bits&other.bits != 0
}

// Returns whether both values hold exactly the same bits.
func (f Flags[B]) Equal(other Flags[B]) bool {
	return f.bits == other.bits
}

// Returns whether the value has no unknown bits and no partially covered
// flag: every declared flag it intersects must be fully contained. A
// zero-bit flag never intersects anything, so it can never make a nonzero
// value normalized on its own.
func (f Flags[B]) IsNormalized() bool {
	if f.bits&^f.typ.known != 0 {
		return false
	}
	for _, flag := range f.typ.flags {
		if f.bits&flag.Bits != 0 && flag.Bits&^f.bits != 0 {
			return false
		}
	}
	return true
}

// Returns the value masked down to its known bits. For a normal type the
// result is always normalized; for any other type it is only guaranteed to
// hold no unknown bits.
func (f Flags[B]) Truncate() Flags[B] {
	return f.typ.truncated(f.bits)
}

// Returns the bits set in either value. The result is truncated.
func (f Flags[B]) Union(other Flags[B]) Flags[B] {
	return f.typ.truncated(f.bits | other.bits)
}

// Returns the bits set in both values. The result is truncated.
func (f Flags[B]) Intersect(other Flags[B]) Flags[B] {
	return f.typ.truncated(f.bits & other.bits)
}

// Returns the bits of f that are not set in other. The result is truncated.
func (f Flags[B]) Difference(other Flags[B]) Flags[B] {
	return f.typ.truncated(f.bits &^ other.bits)
}

// Returns the bits set in exactly one of the two values. The result is
// truncated.
func (f Flags[B]) SymmetricDifference(other Flags[B]) Flags[B] {
	return f.typ.truncated(f.bits ^ other.bits)
}

// Returns the known bits not set in f.
func (f Flags[B]) Complement() Flags[B] {
	return f.typ.truncated(^f.bits)
}

// Sets the bits of other in place. The result is truncated.
func (f *Flags[B]) Insert(other Flags[B]) {
	*f = f.Union(other)
}

// Clears the bits of other in place. The result is truncated.
func (f *Flags[B]) Remove(other Flags[B]) {
	*f = f.Difference(other)
}

// Flips the bits of other in place. The result is truncated.
func (f *Flags[B]) Toggle(other Flags[B]) {
	*f = f.SymmetricDifference(other)
}

// Inserts other when on is true, otherwise removes it.
func (f *Flags[B]) Set(other Flags[B], on bool) {
	if on {
		f.Insert(other)
	} else {
		f.Remove(other)
	}
}

// Returns whether the value satisfies the given match.
func (f Flags[B]) Is(match Match[B]) bool {
	return match(f)
}
