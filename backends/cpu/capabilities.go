package cpu

import (
	"reflect"
	"unsafe"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/types/xcast"
)

// Native handle types of the CPU backend. Host memory is addressed directly, devices
// are plain ordinals, and a stream is the queue's own identity pointer.
type (
	// ErrorCode is the CPU backend's native error type. Host execution has no
	// asynchronous error channel, so it only ever reports OK.
	ErrorCode int

	// MemHandle is a raw pointer into host memory.
	MemHandle = unsafe.Pointer

	// DeviceHandle is the native device ordinal. Always 0 on the host.
	DeviceHandle = int

	// StreamHandle is the native stream handle: the queue itself.
	StreamHandle = *Queue
)

// OK is the only ErrorCode value.
const OK ErrorCode = 0

// HostAccessor is the CPU backend's concrete backends.Accessor: a mapped region of
// host memory.
type HostAccessor struct {
	Ptr  unsafe.Pointer
	Size uint64
}

var _ backends.Accessor = HostAccessor{}

// SizeBytes returns the size of the mapped region.
func (a HostAccessor) SizeBytes() uint64 { return a.Size }

// Capabilities declares the conversions the CPU backend supports: everything that has
// a meaningful host-side representation, which excludes images, kernels and modules
// (host "kernels" are plain Go functions, never native objects).
var Capabilities = backends.Capabilities{
	CanMake: map[backends.ObjectKind]bool{
		backends.KindDevice: true,
		backends.KindQueue:  true,
		backends.KindBuffer: true,
	},
	CanExtract: map[backends.ObjectKind]bool{
		backends.KindDevice: true,
		backends.KindStream: true,
		backends.KindBuffer: true,
	},
}

// Interop declares the CPU backend's native types and conversion functions. The
// conversions narrow the abstract handles with xcast: handing them another backend's
// objects is a contract violation.
var Interop = backends.Interop{
	ErrorType:  reflect.TypeOf(OK),
	MemType:    reflect.TypeOf(MemHandle(nil)),
	DeviceType: reflect.TypeOf(DeviceHandle(0)),
	StreamType: reflect.TypeOf(StreamHandle(nil)),

	NativeMem: func(a backends.Accessor) any {
		return xcast.Cast[HostAccessor](a).Ptr
	},
	NativeDevice: func(d backends.Device) any {
		return xcast.Cast[*Device](d).NativeID()
	},
	NativeStream: func(q backends.Queue) any {
		return xcast.Cast[*Queue](q)
	},
	MakeDevice: func(b backends.Backend, nativeID int) backends.Device {
		return xcast.Cast[*Backend](b).Device(backends.DeviceNum(nativeID))
	},
}
