package backends

import (
	"reflect"

	"github.com/gomlx/exceptions"
)

// Interop is the native-interop half of a backend's descriptor: the identifiers of its
// native handle types and the conversion functions between native and runtime objects
// it supports.
//
// Like Capabilities, each glue package declares its Interop once as a package variable
// and never mutates it. Conversion results and native inputs are typed `any` here;
// their dynamic types are exactly the ones named by the reflect.Type identifiers, which
// is the only place the rest of the runtime may learn them from. A conversion the
// backend doesn't support is a nil field, and the matching capability flag is false.
type Interop struct {
	// Native handle type identifiers.
	ErrorType  reflect.Type
	MemType    reflect.Type
	DeviceType reflect.Type
	StreamType reflect.Type

	// NativeMem extracts the native memory handle behind a runtime accessor.
	// Requires CanExtract[KindBuffer].
	NativeMem func(a Accessor) any

	// NativeDevice extracts the native device handle behind a runtime device.
	// Requires CanExtract[KindDevice].
	NativeDevice func(d Device) any

	// NativeStream extracts the native stream/queue handle behind a runtime queue.
	// Requires CanExtract[KindStream].
	NativeStream func(q Queue) any

	// MakeDevice constructs a runtime device from a native device ordinal.
	// Requires CanMake[KindDevice].
	MakeDevice func(b Backend, nativeID int) Device
}

// Validate panics if the interop record disagrees with the given capability flags:
// every supported conversion must be present, every unsupported one absent. Called once
// per backend construction by NewWithConfig.
func (i Interop) Validate(c Capabilities) {
	for _, t := range []struct {
		name string
		typ  reflect.Type
	}{
		{"ErrorType", i.ErrorType},
		{"MemType", i.MemType},
		{"DeviceType", i.DeviceType},
		{"StreamType", i.StreamType},
	} {
		if t.typ == nil {
			exceptions.Panicf("backends: Interop.%s type identifier not declared", t.name)
		}
	}
	for _, conv := range []struct {
		name    string
		kind    ObjectKind
		flag    bool
		present bool
	}{
		{"NativeMem", KindBuffer, c.SupportsExtract(KindBuffer), i.NativeMem != nil},
		{"NativeDevice", KindDevice, c.SupportsExtract(KindDevice), i.NativeDevice != nil},
		{"NativeStream", KindStream, c.SupportsExtract(KindStream), i.NativeStream != nil},
		{"MakeDevice", KindDevice, c.SupportsMake(KindDevice), i.MakeDevice != nil},
	} {
		if conv.flag && !conv.present {
			exceptions.Panicf("backends: capability for %s declared but Interop.%s is nil", conv.kind, conv.name)
		}
		if !conv.flag && conv.present {
			exceptions.Panicf("backends: Interop.%s present but capability for %s not declared", conv.name, conv.kind)
		}
	}
}
