// Package pjrt implements the PJRT (https://openxla.org/) backend glue for AccelRT,
// loading accelerator support as PJRT plugins via github.com/gomlx/gopjrt.
//
// Simply import it with import _ "github.com/accelrt/accelrt/backends/pjrt" to make it
// available in your program. It registers itself during initialization. The
// configuration string selects the plugin, e.g. "pjrt:cuda" or "pjrt:cpu"; empty picks
// the first plugin found in PJRT_PLUGIN_LIBRARY_PATH.
package pjrt

import (
	"fmt"

	"github.com/accelrt/accelrt/backends"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/pjrt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// BackendName to be used in ACCELRT_BACKEND to specify this backend.
const BackendName = "pjrt"

func init() {
	backends.Register(BackendName, New)
}

// New constructs a new PJRT Backend. The config string is the plugin name.
func New(pluginName string) backends.Backend {
	if pluginName == "" {
		plugins := pjrt.AvailablePlugins()
		if len(plugins) == 0 {
			exceptions.Panicf("no PJRT plugins found for backend %q -- set PJRT_PLUGIN_LIBRARY_PATH "+
				"to the directory holding the plugins", BackendName)
		}
		for name := range plugins {
			pluginName = name
			break
		}
	}
	plugin, err := pjrt.GetPlugin(pluginName)
	if err != nil {
		panic(errors.WithMessagef(err, "backend %q: loading plugin %q", BackendName, pluginName))
	}
	client, err := plugin.NewClient(nil)
	if err != nil {
		panic(errors.WithMessagef(err, "backend %q: creating client for plugin %q", BackendName, pluginName))
	}
	return &Backend{
		plugin:     plugin,
		client:     client,
		pluginName: pluginName,
	}
}

// Backend implements backends.Backend over one PJRT client.
type Backend struct {
	plugin     *pjrt.Plugin
	client     *pjrt.Client
	pluginName string
}

var _ backends.Backend = &Backend{}

// AssertValid panics if the backend is nil or was already finalized.
func (b *Backend) AssertValid() {
	if b == nil {
		exceptions.Panicf("%q backend is nil", BackendName)
	}
	if b.client == nil {
		exceptions.Panicf("%q backend already finalized", BackendName)
	}
}

// Name returns "pjrt".
func (b *Backend) Name() string { return BackendName }

// Description is a longer description of the Backend that can be used to pretty-print.
func (b *Backend) Description() string {
	b.AssertValid()
	return fmt.Sprintf("%s:%s - %s", BackendName, b.pluginName, b.plugin)
}

// NumDevices returns the number of addressable devices of the PJRT client.
func (b *Backend) NumDevices() backends.DeviceNum {
	b.AssertValid()
	return backends.DeviceNum(len(b.client.AddressableDevices()))
}

// Device returns the abstract handle for one addressable device.
func (b *Backend) Device(num backends.DeviceNum) backends.Device {
	b.AssertValid()
	devices := b.client.AddressableDevices()
	if num < 0 || int(num) >= len(devices) {
		exceptions.Panicf("backend %q: device %d out of range, %d devices available",
			BackendName, num, len(devices))
	}
	return &Device{backend: b, num: num, native: devices[num]}
}

// NewQueue creates a new queue bound to the given device. PJRT serializes execution per
// device, so the queue is a logical ordering handle.
func (b *Backend) NewQueue(num backends.DeviceNum) backends.Queue {
	device := b.Device(num).(*Device)
	return &Queue{id: uuid.New(), device: device}
}

// Capabilities returns the PJRT backend's capability flags.
func (b *Backend) Capabilities() backends.Capabilities { return Capabilities }

// Interop returns the PJRT backend's native interop descriptor.
func (b *Backend) Interop() backends.Interop { return Interop }

// Finalize destroys the PJRT client and makes the backend invalid.
func (b *Backend) Finalize() {
	if b.client == nil {
		return
	}
	if err := b.client.Destroy(); err != nil {
		klog.Warningf("backend %q: failure while destroying PJRT client: %+v", BackendName, err)
	}
	b.client = nil
	b.plugin = nil
}

// Device is the PJRT backend's concrete backends.Device, wrapping one addressable
// plugin device.
type Device struct {
	backend *Backend
	num     backends.DeviceNum
	native  *pjrt.Device
}

var _ backends.Device = &Device{}

// DeviceNum is the device's ordinal within the client.
func (d *Device) DeviceNum() backends.DeviceNum { return d.num }

// Description returns a human-readable description of the device.
func (d *Device) Description() string {
	return fmt.Sprintf("%s:%s device #%d", BackendName, d.backend.pluginName, d.num)
}

// Native returns the native PJRT device.
func (d *Device) Native() *pjrt.Device { return d.native }

// Queue is the PJRT backend's concrete backends.Queue.
type Queue struct {
	id     uuid.UUID
	device *Device
}

var _ backends.Queue = &Queue{}

// ID is the queue's unique identity.
func (q *Queue) ID() uuid.UUID { return q.id }

// Device returns the device this queue is bound to.
func (q *Queue) Device() backends.Device { return q.device }
