package flagsgo

import "testing"

// A=0b001 and B=0b010 are single-bit flags; C=0b1100 covers two bits that no
// single-bit flag covers, so the type is not normal.
func testType() *Type[uint8] {
	return NewType("Test",
		Flag[uint8]{Name: "A", Bits: 0b0001},
		Flag[uint8]{Name: "B", Bits: 0b0010},
		Flag[uint8]{Name: "C", Bits: 0b1100},
	)
}

func normalType() *Type[uint8] {
	return NewType("Normal",
		Flag[uint8]{Name: "A", Bits: 0b001},
		Flag[uint8]{Name: "B", Bits: 0b010},
		Flag[uint8]{Name: "C", Bits: 0b100},
		Flag[uint8]{Name: "ABC", Bits: 0b111},
	)
}

func TestUnion(t *testing.T) {
	typ := testType()
	a, _ := typ.FromName("A")
	c, _ := typ.FromName("C")

	union := a.Union(c)
	if union.Bits() != 0b00001101 {
		t.Errorf("Expected bits 0b00001101 but got %#b", union.Bits())
	}
	if union.Format() != "A | C" {
		t.Errorf("Expected \"A | C\" but got %q", union.Format())
	}
}

func TestAlgebra(t *testing.T) {
	typ := testType()
	tests := []struct {
		name     string
		actual   Flags[uint8]
		expected uint8
	}{
		{
			name:     "intersect",
			actual:   typ.FromBitsRetain(0b0111).Intersect(typ.FromBitsRetain(0b0110)),
			expected: 0b0110,
		},
		{
			name:     "difference",
			actual:   typ.FromBitsRetain(0b0111).Difference(typ.FromBitsRetain(0b0010)),
			expected: 0b0101,
		},
		{
			name:     "symmetric difference",
			actual:   typ.FromBitsRetain(0b0111).SymmetricDifference(typ.FromBitsRetain(0b0110)),
			expected: 0b0001,
		},
		{
			name:     "complement of empty is all",
			actual:   typ.Empty().Complement(),
			expected: 0b1111,
		},
		{
			name:     "complement truncates",
			actual:   typ.FromBitsRetain(0b0001).Complement(),
			expected: 0b1110,
		},
		{
			name:     "union removes unknown bits",
			actual:   typ.FromBitsRetain(0b11110000).Union(typ.FromBitsRetain(0b0001)),
			expected: 0b0001,
		},
	}

	for _, test := range tests {
		if test.actual.Bits() != test.expected {
			t.Errorf("%s: Expected %#b but got %#b", test.name, test.expected, test.actual.Bits())
		}
	}
}

func TestAlgebraLaws(t *testing.T) {
	typ := testType()
	values := []uint8{0, 0b0001, 0b0110, 0b1111, 0b1010, 0b11110000, 0xff}

	for _, rawA := range values {
		for _, rawB := range values {
			a := typ.FromBitsRetain(rawA).Truncate()
			b := typ.FromBitsRetain(rawB).Truncate()

			if !a.Union(b).Equal(b.Union(a)) {
				t.Errorf("Union of %#b and %#b is not commutative", rawA, rawB)
			}
			if !a.Intersect(b).Equal(b.Intersect(a)) {
				t.Errorf("Intersect of %#b and %#b is not commutative", rawA, rawB)
			}
			if !a.Difference(b).Equal(a.Intersect(b.Complement())) {
				t.Errorf("Difference of %#b and %#b is not intersection with complement", rawA, rawB)
			}
		}
	}

	for _, raw := range values {
		v := typ.FromBitsRetain(raw)
		if !v.Complement().Complement().Equal(v.Truncate()) {
			t.Errorf("Double complement of %#b is not truncation", raw)
		}
		if !v.Truncate().Truncate().Equal(v.Truncate()) {
			t.Errorf("Truncation of %#b is not idempotent", raw)
		}
	}
}

func TestPredicates(t *testing.T) {
	typ := testType()
	values := []uint8{0, 0b0001, 0b0110, 0b1111, 0b11110000}

	for _, raw := range values {
		v := typ.FromBitsRetain(raw)
		if !v.Contains(typ.Empty()) {
			t.Errorf("Expected %#b to contain the empty value", raw)
		}
		if typ.Empty().Intersects(v) {
			t.Errorf("Expected the empty value to intersect nothing, but it intersects %#b", raw)
		}
	}

	all := typ.All()
	if !all.IsAll() {
		t.Errorf("Expected All to satisfy IsAll")
	}
	if !typ.FromBitsRetain(0xff).IsAll() {
		t.Errorf("Expected IsAll to ignore unknown bits")
	}
	if typ.FromBitsRetain(0b0111).IsAll() {
		t.Errorf("Expected missing known bits to fail IsAll")
	}
	if !typ.Empty().IsEmpty() {
		t.Errorf("Expected Empty to satisfy IsEmpty")
	}
}

func TestTruncateAndClassify(t *testing.T) {
	typ := testType()

	truncated := typ.FromBitsRetain(0b11111111).Truncate()
	if truncated.Bits() != 0b00001111 {
		t.Errorf("Expected bits 0b00001111 but got %#b", truncated.Bits())
	}

	// C covers two bits without single-bit flags, so the type is not normal
	// and truncation only promises the absence of unknown bits.
	if typ.IsNormal() {
		t.Errorf("Expected the type to not be normal")
	}
	if typ.FromBitsRetain(0b1000).IsNormalized() {
		t.Errorf("Expected a partially covered flag to not be normalized")
	}
	if typ.FromBitsRetain(0b10000).IsNormalized() {
		t.Errorf("Expected unknown bits to not be normalized")
	}
	if !typ.Empty().IsNormalized() {
		t.Errorf("Expected the empty value to be normalized")
	}

	normal := normalType()
	for _, raw := range []uint8{0b001, 0b011, 0b111, 0b11111010} {
		if !normal.FromBitsRetain(raw).Truncate().IsNormalized() {
			t.Errorf("Expected truncation of %#b under a normal type to be normalized", raw)
		}
	}
}

func TestFromBits(t *testing.T) {
	typ := testType()
	tests := []struct {
		raw      uint8
		expected uint8
		absent   bool
	}{
		{raw: 0, expected: 0},
		{raw: 0b0001, expected: 0b0001},
		{raw: 0b10000001, expected: 0b0001},
		{raw: 0b11110000, absent: true},
	}

	for _, test := range tests {
		actual, ok := typ.FromBits(test.raw)
		if ok == test.absent {
			t.Errorf("FromBits(%#b): Expected absent %v but got %v", test.raw, test.absent, !ok)
		}
		if ok && actual.Bits() != test.expected {
			t.Errorf("FromBits(%#b): Expected %#b but got %#b", test.raw, test.expected, actual.Bits())
		}
	}
}

func TestFromName(t *testing.T) {
	typ := testType()

	c, ok := typ.FromName("C")
	if !ok || c.Bits() != 0b1100 {
		t.Errorf("Expected C with bits 0b1100 but got %#b (%v)", c.Bits(), ok)
	}
	if _, ok := typ.FromName("c"); ok {
		t.Errorf("Expected names to be case-sensitive")
	}
	if _, ok := typ.FromName("missing"); ok {
		t.Errorf("Expected absence for an undefined name")
	}
}

func TestInPlace(t *testing.T) {
	typ := testType()
	a, _ := typ.FromName("A")
	b, _ := typ.FromName("B")

	v := typ.Empty()
	v.Insert(a)
	v.Insert(b)
	if v.Bits() != 0b0011 {
		t.Errorf("Expected 0b0011 after inserts but got %#b", v.Bits())
	}

	v.Remove(a)
	if v.Bits() != 0b0010 {
		t.Errorf("Expected 0b0010 after remove but got %#b", v.Bits())
	}

	v.Toggle(a)
	v.Toggle(b)
	if v.Bits() != 0b0001 {
		t.Errorf("Expected 0b0001 after toggles but got %#b", v.Bits())
	}

	v.Set(b, true)
	v.Set(a, false)
	if v.Bits() != 0b0010 {
		t.Errorf("Expected 0b0010 after sets but got %#b", v.Bits())
	}
}
