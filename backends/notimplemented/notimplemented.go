// Copyright 2026 The AccelRT Authors. SPDX-License-Identifier: Apache-2.0

// Package notimplemented implements a backends.Backend with no devices and empty
// capabilities.
//
// This can help bootstrap any backend implementation, and serves as a mock in tests of
// backend-agnostic code.
package notimplemented

import (
	"reflect"

	"github.com/accelrt/accelrt/backends"
	"github.com/gomlx/exceptions"
)

// BackendName of the mock backend.
const BackendName = "notimplemented"

// Backend is a dummy backend that can be embedded to create mock backends.
type Backend struct{}

var _ backends.Backend = Backend{}

// New returns the mock backend. The config string is ignored.
func New(_ string) backends.Backend { return Backend{} }

// Name returns "notimplemented".
func (Backend) Name() string { return BackendName }

// Description is a longer description of the Backend.
func (Backend) Description() string {
	return "Not Implemented Backend (mock backend for testing)"
}

// NumDevices returns 0: the mock has no devices.
func (Backend) NumDevices() backends.DeviceNum { return 0 }

// Device panics: the mock has no devices.
func (Backend) Device(num backends.DeviceNum) backends.Device {
	exceptions.Panicf("backend %q has no devices", BackendName)
	return nil
}

// NewQueue panics: the mock has no devices.
func (Backend) NewQueue(num backends.DeviceNum) backends.Queue {
	exceptions.Panicf("backend %q has no devices", BackendName)
	return nil
}

// Capabilities returns the empty capability record: nothing supported.
func (Backend) Capabilities() backends.Capabilities {
	return backends.Capabilities{
		CanMake:    map[backends.ObjectKind]bool{},
		CanExtract: map[backends.ObjectKind]bool{},
	}
}

// Interop declares placeholder native types and no conversions.
func (Backend) Interop() backends.Interop {
	nothing := reflect.TypeOf(struct{}{})
	return backends.Interop{
		ErrorType:  nothing,
		MemType:    nothing,
		DeviceType: nothing,
		StreamType: nothing,
	}
}

// Finalize is a no-op.
func (Backend) Finalize() {}
