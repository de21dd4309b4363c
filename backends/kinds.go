package backends

// ObjectKind enumerates the runtime object kinds a backend may be able to convert
// to or from its native API objects.
type ObjectKind int

const (
	KindInvalid ObjectKind = iota
	KindPlatform
	KindDevice
	KindContext
	KindQueue
	KindEvent
	KindBuffer
	KindSampledImage
	KindImageSampler
	KindStream
	KindKernel
	KindModule

	// KindDeviceEvent is an extraction-only kind: a device-side event can be obtained
	// from a native API, but never constructed from one. Capabilities.Validate rejects
	// any descriptor claiming CanMake for it.
	KindDeviceEvent
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindPlatform:     "Platform",
	KindDevice:       "Device",
	KindContext:      "Context",
	KindQueue:        "Queue",
	KindEvent:        "Event",
	KindBuffer:       "Buffer",
	KindSampledImage: "SampledImage",
	KindImageSampler: "ImageSampler",
	KindStream:       "Stream",
	KindKernel:       "Kernel",
	KindModule:       "Module",
	KindDeviceEvent:  "DeviceEvent",
}

// String implements fmt.Stringer.
func (k ObjectKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ObjectKinds lists every valid kind, in declaration order. Handy for iterating
// capability tables.
func ObjectKinds() []ObjectKind {
	kinds := make([]ObjectKind, 0, len(kindNames)-1)
	for k := KindPlatform; k <= KindDeviceEvent; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
