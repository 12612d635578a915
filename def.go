package flagsgo

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v2"
)

// A flags type declaration as plain data, loadable from JSON, YAML, or XML
// documents. The bits width is not part of the document; the caller chooses
// it when the type is built and patterns are checked against it.
type TypeDef struct {
	Name  string    `json:"name" yaml:"name" xml:"name,attr"`
	Flags []FlagDef `json:"flags" yaml:"flags" xml:"flag"`
}

// A single flag declaration. Patterns are carried as uint64 in documents,
// wide enough for any supported width.
type FlagDef struct {
	Name string `json:"name" yaml:"name" xml:"name,attr"`
	Bits uint64 `json:"bits" yaml:"bits" xml:"bits,attr"`
}

// An importer that can decode a type definition document into a target.
type DefImporter func(data []byte, target any) error

// The available definition document importers by format name.
var DefImports = map[string]DefImporter{
	"json": func(data []byte, target any) error {
		return json.Unmarshal(data, target)
	},
	"yaml": func(data []byte, target any) error {
		return yaml.Unmarshal(data, target)
	},
	"xml": func(data []byte, target any) error {
		return xml.Unmarshal(data, target)
	},
}

// Decodes a type definition document with the given importer and builds a
// flags type of width B from it.
func LoadType[B Bits](data []byte, importer DefImporter) (*Type[B], error) {
	def := TypeDef{}
	if err := importer(data, &def); err != nil {
		return nil, err
	}
	return BuildType[B](def)
}

// Builds a flags type of width B from an already decoded definition. Fails
// on unnamed flags, duplicate flag names, and patterns that do not fit in B.
func BuildType[B Bits](def TypeDef) (*Type[B], error) {
	names := map[string]bool{}
	flags := make([]Flag[B], 0, len(def.Flags))
	max := uint64(^B(0))

	for _, flag := range def.Flags {
		if flag.Name == "" {
			return nil, fmt.Errorf("type %s has a flag with no name", def.Name)
		}
		if names[flag.Name] {
			return nil, fmt.Errorf("type %s declares flag %s twice", def.Name, flag.Name)
		}
		names[flag.Name] = true
		if flag.Bits > max {
			return nil, fmt.Errorf("flag %s does not fit in %d bits: %#x", flag.Name, Width[B](), flag.Bits)
		}
		flags = append(flags, Flag[B]{Name: flag.Name, Bits: B(flag.Bits)})
	}

	return NewType(def.Name, flags...), nil
}
