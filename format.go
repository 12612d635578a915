package flagsgo

import "strings"

// Formats the value in the flags text grammar: the named components of the
// value in declaration order, then any leftover bits as a lowercase hex
// literal, joined with " | ". The empty value formats as "0x0" - a hex
// literal can never collide with a flag name, and it parses back to the
// empty value, so producing some output costs nothing.
func (f Flags[B]) Format() string {
	if f.bits == 0 {
		return "0x0"
	}

	out := strings.Builder{}
	for i, component := range f.Components() {
		if i > 0 {
			out.WriteString(" | ")
		}
		if component.Named() {
			out.WriteString(component.Name)
		} else {
			out.WriteString(formatBits(component.Bits))
		}
	}
	return out.String()
}

// Returns Format.
func (f Flags[B]) String() string {
	return f.Format()
}
