// Package cpu implements the host-CPU backend for AccelRT: devices are the host itself
// and queues are goroutine-backed in-order work lists.
//
// Simply import it with import _ "github.com/accelrt/accelrt/backends/cpu" to make it
// available in your program. It registers itself during initialization.
package cpu

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/accelrt/accelrt/backends"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// BackendName to be used in ACCELRT_BACKEND to specify this backend.
const BackendName = "cpu"

func init() {
	backends.Register(BackendName, New)
}

// New constructs a new CPU Backend. There are no configurations, the string is simply
// ignored.
func New(_ string) backends.Backend {
	return &Backend{}
}

// Backend implements backends.Backend on the host CPU.
type Backend struct {
	mu        sync.Mutex
	finalized bool
	queues    []*Queue
}

// Compile-time check that cpu.Backend implements backends.Backend.
var _ backends.Backend = &Backend{}

// AssertValid panics if the backend is nil or was already finalized.
func (b *Backend) AssertValid() {
	if b == nil {
		exceptions.Panicf("%q backend is nil", BackendName)
	}
	b.mu.Lock()
	finalized := b.finalized
	b.mu.Unlock()
	if finalized {
		exceptions.Panicf("%q backend already finalized", BackendName)
	}
}

// Name returns "cpu".
func (b *Backend) Name() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	return fmt.Sprintf("Host CPU (%s/%s, %d threads)", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
}

// NumDevices returns 1: the host is the only device.
func (b *Backend) NumDevices() backends.DeviceNum { return 1 }

// Device returns the host device handle.
func (b *Backend) Device(num backends.DeviceNum) backends.Device {
	b.AssertValid()
	if num != 0 {
		exceptions.Panicf("backend %q: device %d out of range, only device 0 exists", BackendName, num)
	}
	return &Device{backend: b}
}

// NewQueue creates a new in-order queue on the host device.
func (b *Backend) NewQueue(num backends.DeviceNum) backends.Queue {
	b.AssertValid()
	device := b.Device(num).(*Device)
	q := newQueue(device)
	b.mu.Lock()
	if b.finalized {
		b.mu.Unlock()
		q.shutdown()
		exceptions.Panicf("%q backend already finalized", BackendName)
	}
	b.queues = append(b.queues, q)
	b.mu.Unlock()
	return q
}

// Capabilities returns the CPU backend's capability flags.
func (b *Backend) Capabilities() backends.Capabilities { return Capabilities }

// Interop returns the CPU backend's native interop descriptor.
func (b *Backend) Interop() backends.Interop { return Interop }

// Finalize drains and stops all queues created by this backend.
func (b *Backend) Finalize() {
	b.mu.Lock()
	queues := b.queues
	b.queues = nil
	b.finalized = true
	b.mu.Unlock()
	for _, q := range queues {
		q.shutdown()
	}
	klog.V(1).Infof("backend %q finalized (%d queues drained)", BackendName, len(queues))
}

// Device is the CPU backend's concrete backends.Device: the host.
type Device struct {
	backend *Backend
}

var _ backends.Device = &Device{}

// DeviceNum always returns 0.
func (d *Device) DeviceNum() backends.DeviceNum { return 0 }

// Description returns a human-readable description of the host.
func (d *Device) Description() string {
	return fmt.Sprintf("cpu:0 (%s/%s)", runtime.GOOS, runtime.GOARCH)
}

// NativeID returns the native device handle: the host is always device 0.
func (d *Device) NativeID() int { return 0 }
