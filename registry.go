package flagsgo

import "strings"

// Runtime information about a flags type with its width erased, so types
// over different bits widths can live in one registry. Bits pass through
// uint64, which holds every supported width.
type TypeInfo interface {
	// The display name of the type.
	Name() string
	// The width in bits of the backing type.
	Width() int
	// The known mask widened to uint64.
	KnownBits() uint64
	// Formats widened bits in the flags text grammar.
	FormatBits(bits uint64) string
	// Parses flags text into widened bits, retaining them exactly.
	ParseBits(text string) (uint64, error)
	// Decomposes widened bits into components, leftover included.
	DecomposeBits(bits uint64) []Flag[uint64]
}

// The known mask widened to uint64.
func (t *Type[B]) KnownBits() uint64 {
	return uint64(t.known)
}

// Formats widened bits in the flags text grammar.
func (t *Type[B]) FormatBits(bits uint64) string {
	return t.FromBitsRetain(B(bits)).Format()
}

// Parses flags text into widened bits, retaining them exactly.
func (t *Type[B]) ParseBits(text string) (uint64, error) {
	parsed, err := t.Parse(text)
	if err != nil {
		return 0, err
	}
	return uint64(parsed.Bits()), nil
}

// Decomposes widened bits into components, leftover included.
func (t *Type[B]) DecomposeBits(bits uint64) []Flag[uint64] {
	components := t.FromBitsRetain(B(bits)).Components()
	widened := make([]Flag[uint64], len(components))
	for i, component := range components {
		widened[i] = Flag[uint64]{Name: component.Name, Bits: uint64(component.Bits)}
	}
	return widened
}

// An ordered collection of flags types by name.
type Registry struct {
	entries  []TypeInfo
	entryMap map[string]TypeInfo
}

// Creates a new empty registry.
func NewRegistry() Registry {
	return Registry{
		entries:  make([]TypeInfo, 0),
		entryMap: make(map[string]TypeInfo),
	}
}

// Returns whether the registry is empty.
func (r Registry) IsEmpty() bool {
	return len(r.entries) == 0
}

// Adds a flags type to the registry.
func (r *Registry) Add(info TypeInfo) {
	r.entries = append(r.entries, info)
	r.entryMap[Normalize(info.Name())] = info
}

// Returns all registered types in registration order.
func (r Registry) Entries() []TypeInfo {
	return r.entries
}

// Returns all types whose normalized name the partial name is a prefix of.
// An exact normalized match wins outright.
func (r Registry) Matches(namePartial string) []TypeInfo {
	name := Normalize(namePartial)

	if info, ok := r.entryMap[name]; ok {
		return []TypeInfo{info}
	}

	if name == "" {
		return []TypeInfo{}
	}

	matchMap := make(map[string]TypeInfo)
	for key, info := range r.entryMap {
		if strings.HasPrefix(key, name) {
			matchMap[info.Name()] = info
		}
	}

	matches := make([]TypeInfo, 0, len(matchMap))
	for _, info := range matchMap {
		matches = append(matches, info)
	}

	return matches
}

// Returns the type which matches the name only if one type does.
func (r Registry) EntryFor(namePartial string) TypeInfo {
	matches := r.Matches(namePartial)
	if len(matches) == 1 {
		return matches[0]
	}
	return nil
}

// Returns whether the registry has a type with the given name.
func (r Registry) Has(namePartial string) bool {
	return r.EntryFor(namePartial) != nil
}
