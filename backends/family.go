package backends

import "github.com/google/uuid"

// The polymorphic object family: one abstract interface per runtime object kind, one
// concrete implementation per backend glue package. The dispatcher holds these abstract
// handles and narrows them to a backend's concrete type with package
// github.com/accelrt/accelrt/types/xcast where it must invoke backend-specific behavior.

// Device is the abstract handle to one accelerator device.
type Device interface {
	// DeviceNum is the device's ordinal within its backend.
	DeviceNum() DeviceNum

	// Description returns a human-readable description of the device.
	Description() string
}

// Queue is an abstract in-order execution queue bound to one Device.
//
// Work submitted to a queue runs in submission order. Queue implementations own their
// internal synchronization; sharing one Queue between goroutines is safe, but ordering
// between goroutines is whatever their submissions race to.
type Queue interface {
	// ID is the queue's unique identity, used for tracing.
	ID() uuid.UUID

	// Device returns the device this queue is bound to.
	Device() Device
}

// AsyncOperation is an abstract handle to one unit of work submitted to a Queue.
type AsyncOperation interface {
	// ID is the operation's unique identity.
	ID() uuid.UUID

	// Queue returns the queue the operation was submitted to.
	Queue() Queue
}

// Accessor is the abstract handle to device-mapped memory handed out by the runtime's
// buffer layer (which lives above this package). It is opaque here: glue packages narrow
// it to their own concrete accessor type to extract a native memory handle.
type Accessor interface {
	// SizeBytes returns the size of the mapped region.
	SizeBytes() uint64
}
