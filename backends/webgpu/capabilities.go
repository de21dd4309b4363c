package webgpu

import (
	"reflect"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/types/xcast"
	"github.com/go-webgpu/webgpu/wgpu"
)

// BufferAccessor is the WebGPU backend's concrete backends.Accessor: a binding of one
// wgpu buffer.
type BufferAccessor struct {
	Buffer *wgpu.Buffer
	Size   uint64
}

var _ backends.Accessor = BufferAccessor{}

// SizeBytes returns the size of the bound buffer region.
func (a BufferAccessor) SizeBytes() uint64 { return a.Size }

// Capabilities declares the conversions the WebGPU backend supports. WebGPU is
// extraction-oriented: native objects can be pulled out of runtime handles, but runtime
// objects cannot be built around externally created native ones (the adapter and
// device are owned by the backend).
var Capabilities = backends.Capabilities{
	CanMake: map[backends.ObjectKind]bool{},
	CanExtract: map[backends.ObjectKind]bool{
		backends.KindDevice: true,
		backends.KindQueue:  true,
		backends.KindStream: true,
		backends.KindBuffer: true,
	},
}

// Interop declares the WebGPU backend's native types and conversion functions.
var Interop = backends.Interop{
	// The wgpu bindings surface native errors as plain Go errors.
	ErrorType:  reflect.TypeOf((*error)(nil)).Elem(),
	MemType:    reflect.TypeOf((*wgpu.Buffer)(nil)),
	DeviceType: reflect.TypeOf((*wgpu.Device)(nil)),
	StreamType: reflect.TypeOf((*wgpu.Queue)(nil)),

	NativeMem: func(a backends.Accessor) any {
		return xcast.Cast[BufferAccessor](a).Buffer
	},
	NativeDevice: func(d backends.Device) any {
		return xcast.Cast[*Device](d).Native()
	},
	NativeStream: func(q backends.Queue) any {
		return xcast.Cast[*Queue](q).Native()
	},
}
