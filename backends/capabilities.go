package backends

import (
	"maps"

	"github.com/gomlx/exceptions"
)

// Capabilities holds a backend's conversion capability flags: which runtime object
// kinds it can construct from native API objects (CanMake) and which native API objects
// it can extract from runtime objects (CanExtract).
//
// Each glue package declares its Capabilities once, as a package variable, and never
// mutates it afterwards. If a kind is not listed, it's assumed to be false, hence not
// supported -- and the corresponding Interop conversion function is nil. Callers must
// consult the flag before reaching for the conversion.
type Capabilities struct {
	CanMake    map[ObjectKind]bool
	CanExtract map[ObjectKind]bool
}

// SupportsMake reports whether the backend can construct a runtime object of the given
// kind from a native input.
func (c Capabilities) SupportsMake(kind ObjectKind) bool {
	return c.CanMake[kind]
}

// SupportsExtract reports whether the backend can extract a native object of the given
// kind from a runtime object.
func (c Capabilities) SupportsExtract(kind ObjectKind) bool {
	return c.CanExtract[kind]
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.CanMake = make(map[ObjectKind]bool, len(c.CanMake))
	maps.Copy(c2.CanMake, c.CanMake)
	c2.CanExtract = make(map[ObjectKind]bool, len(c.CanExtract))
	maps.Copy(c2.CanExtract, c.CanExtract)
	return c2
}

// Validate panics if the capability record is malformed. Called once per backend
// construction by NewWithConfig, so a defective glue package fails at startup rather
// than on the dispatch path.
func (c Capabilities) Validate() {
	if c.CanMake[KindDeviceEvent] {
		exceptions.Panicf("backends: %s is extraction-only, CanMake must not be set for it", KindDeviceEvent)
	}
	for kind := range c.CanMake {
		if kind <= KindInvalid || kind > KindDeviceEvent {
			exceptions.Panicf("backends: invalid ObjectKind %d in CanMake", kind)
		}
	}
	for kind := range c.CanExtract {
		if kind <= KindInvalid || kind > KindDeviceEvent {
			exceptions.Panicf("backends: invalid ObjectKind %d in CanExtract", kind)
		}
	}
}
