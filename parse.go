package flagsgo

// Parsing for the flags text grammar:
//
//	Flags:     Flag ('|' Flag)*
//	Flag:      Name | HexNumber
//	Name:      a defined flag name, matched case-sensitively
//	HexNumber: '0x' [0-9a-fA-F]+
//
// Whitespace around tokens is ignored, so "A | B | 0xc" and "A|B|0xc" parse
// to the same value. Names are case-sensitive: "a | b" is not "A | B".

import (
	"errors"
	"fmt"
	"strings"
)

// The error wrapped by a ParseError when a token is not a defined flag name.
var ErrUnknownFlag = errors.New("unrecognized named flag")

// The error wrapped by a ParseError when a 0x token has invalid digits or
// does not fit the width of the bits type.
var ErrInvalidHex = errors.New("invalid hex flag")

// The error wrapped by a ParseError when nothing appears between separators.
var ErrEmptyFlag = errors.New("empty flag")

// An error describing the token that failed to parse.
type ParseError struct {
	// The offending token, surrounding whitespace trimmed.
	Token string
	// The 1-based position of the token in the input.
	Position int
	// One of ErrUnknownFlag, ErrInvalidHex, or ErrEmptyFlag.
	Err error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("flag %d: %v", e.Position, e.Err)
	}
	return fmt.Sprintf("flag %d: %v %q", e.Position, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parses text in the flags grammar into a value of this type. Each token is
// a flag name or a hex literal; their bits are combined with OR. The result
// keeps every parsed bit rather than truncating, so formatting a value and
// parsing it back restores the exact bit pattern, unknown bits included.
// Input that is empty after trimming is the empty value.
func (t *Type[B]) Parse(text string) (Flags[B], error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t.Empty(), nil
	}

	parsed := B(0)
	for i, token := range strings.Split(text, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			return t.Empty(), &ParseError{Position: i + 1, Err: ErrEmptyFlag}
		}
		if strings.HasPrefix(token, "0x") {
			value, err := parseBits[B](token[2:])
			if err != nil {
				return t.Empty(), &ParseError{Token: token, Position: i + 1, Err: ErrInvalidHex}
			}
			parsed |= value
			continue
		}
		flag, ok := t.FromName(token)
		if !ok {
			return t.Empty(), &ParseError{Token: token, Position: i + 1, Err: ErrUnknownFlag}
		}
		parsed |= flag.bits
	}

	return t.FromBitsRetain(parsed), nil
}
