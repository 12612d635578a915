package flagsgo

// The default registry of flags types.
var GlobalRegistry = NewRegistry()

// Adds a flags type to the default registry.
func Register(info TypeInfo) {
	GlobalRegistry.Add(info)
}

// Returns the type in the default registry matching the name, or nil if none
// or more than one does.
func Lookup(namePartial string) TypeInfo {
	return GlobalRegistry.EntryFor(namePartial)
}
