// Package webgpu implements the WebGPU backend glue for AccelRT, on top of the zero-CGO
// bindings in github.com/go-webgpu/webgpu.
//
// Simply import it with import _ "github.com/accelrt/accelrt/backends/webgpu" to make
// it available in your program. It registers itself during initialization; backend
// construction fails (panics) if the native wgpu library or a GPU adapter is not
// available.
package webgpu

import (
	"fmt"

	"github.com/accelrt/accelrt/backends"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gogpu/gputypes"
	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BackendName to be used in ACCELRT_BACKEND to specify this backend.
const BackendName = "webgpu"

func init() {
	backends.Register(BackendName, New)
}

// New constructs a new WebGPU Backend. There are no configurations, the string is
// simply ignored.
func New(_ string) backends.Backend {
	b, err := newBackend()
	if err != nil {
		panic(errors.WithMessagef(err, "backend %q", BackendName))
	}
	return b
}

func newBackend() (b *Backend, err error) {
	// wgpu panics if the native library cannot be loaded; surface it as an error.
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = errors.Errorf("native wgpu library not available: %v", r)
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, errors.WithMessage(err, "creating instance")
	}
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, errors.WithMessage(err, "requesting adapter")
	}
	device, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, errors.WithMessage(err, "requesting device")
	}
	info, _ := adapter.GetInfo()
	return &Backend{
		instance: instance,
		adapter:  adapter,
		device:   device,
		info:     info,
	}, nil
}

// Backend implements backends.Backend over one WebGPU adapter.
type Backend struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	info     *wgpu.AdapterInfoGo
}

var _ backends.Backend = &Backend{}

// AssertValid panics if the backend is nil or was already finalized.
func (b *Backend) AssertValid() {
	if b == nil {
		exceptions.Panicf("%q backend is nil", BackendName)
	}
	if b.device == nil {
		exceptions.Panicf("%q backend already finalized", BackendName)
	}
}

// Name returns "webgpu".
func (b *Backend) Name() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	b.AssertValid()
	if b.info == nil {
		return "WebGPU (unknown adapter)"
	}
	return fmt.Sprintf("WebGPU (%s %s)", b.info.Device, b.info.Vendor)
}

// NumDevices returns 1: a WebGPU instance exposes one logical device.
func (b *Backend) NumDevices() backends.DeviceNum { return 1 }

// Device returns the abstract handle for the adapter's device.
func (b *Backend) Device(num backends.DeviceNum) backends.Device {
	b.AssertValid()
	if num != 0 {
		exceptions.Panicf("backend %q: device %d out of range, only device 0 exists", BackendName, num)
	}
	return &Device{backend: b}
}

// NewQueue returns a queue wrapping the device's default wgpu queue.
func (b *Backend) NewQueue(num backends.DeviceNum) backends.Queue {
	device := b.Device(num).(*Device)
	return &Queue{
		id:     uuid.New(),
		device: device,
		native: b.device.GetQueue(),
	}
}

// Capabilities returns the WebGPU backend's capability flags.
func (b *Backend) Capabilities() backends.Capabilities { return Capabilities }

// Interop returns the WebGPU backend's native interop descriptor.
func (b *Backend) Interop() backends.Interop { return Interop }

// Finalize releases the native adapter and device, and makes the backend invalid.
func (b *Backend) Finalize() {
	if b.device == nil {
		return
	}
	b.device.Release()
	b.adapter.Release()
	b.instance.Release()
	b.device = nil
	b.adapter = nil
	b.instance = nil
	klog.V(1).Infof("backend %q finalized", BackendName)
}

// Device is the WebGPU backend's concrete backends.Device.
type Device struct {
	backend *Backend
}

var _ backends.Device = &Device{}

// DeviceNum always returns 0.
func (d *Device) DeviceNum() backends.DeviceNum { return 0 }

// Description returns the adapter description.
func (d *Device) Description() string { return d.backend.Description() }

// Native returns the native wgpu device.
func (d *Device) Native() *wgpu.Device { return d.backend.device }

// Queue is the WebGPU backend's concrete backends.Queue, wrapping the device's default
// wgpu queue.
type Queue struct {
	id     uuid.UUID
	device *Device
	native *wgpu.Queue
}

var _ backends.Queue = &Queue{}

// ID is the queue's unique identity.
func (q *Queue) ID() uuid.UUID { return q.id }

// Device returns the device this queue is bound to.
func (q *Queue) Device() backends.Device { return q.device }

// Native returns the native wgpu queue.
func (q *Queue) Native() *wgpu.Queue { return q.native }
