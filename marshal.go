package flagsgo

import (
	"encoding/json"
	"errors"
)

// An error returned when unmarshaling into a flags value that has no type.
// Unmarshal into a value obtained from the type, such as Type.Empty().
var InvalidUnmarshalError = errors.New("cannot unmarshal into a flags value with no type")

// Marshals the value into its flags text form.
func (f Flags[B]) MarshalText() ([]byte, error) {
	return []byte(f.Format()), nil
}

// Parses flags text into the value in place. The value must already carry
// its type, so unmarshal into a value obtained from the type, such as
// Type.Empty(). The parsed bits are retained exactly as Parse retains them.
func (f *Flags[B]) UnmarshalText(data []byte) error {
	if f.typ == nil {
		return InvalidUnmarshalError
	}
	parsed, err := f.typ.Parse(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Marshals the value into a JSON string of its flags text form.
func (f Flags[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Format())
}

// Parses a JSON string of flags text into the value in place.
func (f *Flags[B]) UnmarshalJSON(data []byte) error {
	text := ""
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(text))
}

// Marshals the value into a YAML string of its flags text form.
func (f Flags[B]) MarshalYAML() (any, error) {
	return f.Format(), nil
}

// Parses a YAML string of flags text into the value in place.
func (f *Flags[B]) UnmarshalYAML(unmarshal func(any) error) error {
	text := ""
	if err := unmarshal(&text); err != nil {
		return err
	}
	return f.UnmarshalText([]byte(text))
}
