package pjrt

import (
	"reflect"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/types/xcast"
	"github.com/gomlx/gopjrt/pjrt"
)

// BufferAccessor is the PJRT backend's concrete backends.Accessor: a view over one
// device-resident PJRT buffer.
type BufferAccessor struct {
	Buffer *pjrt.Buffer
	Size   uint64
}

var _ backends.Accessor = BufferAccessor{}

// SizeBytes returns the size of the underlying buffer.
func (a BufferAccessor) SizeBytes() uint64 { return a.Size }

// Capabilities declares the conversions the PJRT backend supports. PJRT exposes its
// devices and buffers; streams, contexts and compiled modules stay inside the plugin.
var Capabilities = backends.Capabilities{
	CanMake: map[backends.ObjectKind]bool{
		backends.KindDevice: true,
	},
	CanExtract: map[backends.ObjectKind]bool{
		backends.KindPlatform: true,
		backends.KindDevice:   true,
		backends.KindBuffer:   true,
	},
}

// Interop declares the PJRT backend's native types and conversion functions.
var Interop = backends.Interop{
	// PJRT calls report failures as plain Go errors through the bindings.
	ErrorType:  reflect.TypeOf((*error)(nil)).Elem(),
	MemType:    reflect.TypeOf((*pjrt.Buffer)(nil)),
	DeviceType: reflect.TypeOf((*pjrt.Device)(nil)),
	StreamType: reflect.TypeOf((*pjrt.Client)(nil)),

	NativeMem: func(a backends.Accessor) any {
		return xcast.Cast[BufferAccessor](a).Buffer
	},
	NativeDevice: func(d backends.Device) any {
		return xcast.Cast[*Device](d).Native()
	},
	MakeDevice: func(b backends.Backend, nativeID int) backends.Device {
		return xcast.Cast[*Backend](b).Device(backends.DeviceNum(nativeID))
	},
}
