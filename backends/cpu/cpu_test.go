package cpu_test

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/backends/cpu"
	"github.com/accelrt/accelrt/backends/notimplemented"
	"github.com/accelrt/accelrt/types/xcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend(t *testing.T) {
	b := backends.NewWithConfig(cpu.BackendName)
	defer b.Finalize()

	require.Equal(t, cpu.BackendName, b.Name())
	require.Equal(t, backends.DeviceNum(1), b.NumDevices())

	device := b.Device(0)
	require.Equal(t, backends.DeviceNum(0), device.DeviceNum())
	require.NotEmpty(t, device.Description())

	require.Panics(t, func() { b.Device(1) })
}

func TestUseAfterFinalize(t *testing.T) {
	b := cpu.New("")
	q := b.NewQueue(0)
	b.Finalize()

	// A finalized backend is invalid: no new devices or queues.
	require.Panics(t, func() { b.Device(0) })
	require.Panics(t, func() { b.NewQueue(0) })

	// Handles created before Finalize stay readable.
	require.Equal(t, backends.DeviceNum(0), q.Device().DeviceNum())
}

func TestQueueRunsInOrder(t *testing.T) {
	b := cpu.New("")
	defer b.Finalize()

	q := b.NewQueue(0).(*cpu.Queue)
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		q.Submit(func() { got = append(got, i) })
	}
	q.Flush()

	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestOperationWait(t *testing.T) {
	b := cpu.New("")
	defer b.Finalize()

	q := b.NewQueue(0).(*cpu.Queue)
	var ran atomic.Bool
	op := q.Submit(func() { ran.Store(true) })
	op.(*cpu.Operation).Wait()
	require.True(t, ran.Load())
	require.Equal(t, q.ID(), op.Queue().ID())
	require.NotEqual(t, op.ID(), q.ID())
}

func TestCapabilities(t *testing.T) {
	caps := cpu.Capabilities
	require.NotPanics(t, func() { caps.Validate() })
	require.NotPanics(t, func() { cpu.Interop.Validate(caps) })

	assert.True(t, caps.SupportsMake(backends.KindDevice))
	assert.True(t, caps.SupportsExtract(backends.KindBuffer))
	assert.True(t, caps.SupportsExtract(backends.KindStream))
	assert.False(t, caps.SupportsMake(backends.KindKernel))
	assert.False(t, caps.SupportsExtract(backends.KindDeviceEvent))
}

func TestInteropConversions(t *testing.T) {
	b := backends.NewWithConfig(cpu.BackendName)
	defer b.Finalize()
	interop := b.Interop()

	// Device extraction and construction roundtrip through the native ordinal.
	device := b.Device(0)
	nativeID := interop.NativeDevice(device)
	require.Equal(t, 0, nativeID)
	made := interop.MakeDevice(b, nativeID.(int))
	require.Equal(t, device.DeviceNum(), made.DeviceNum())

	// The native stream handle of a queue is the queue itself.
	q := b.NewQueue(0)
	require.Same(t, q, interop.NativeStream(q))

	// Memory extraction goes through the host accessor.
	data := make([]byte, 16)
	accessor := cpu.HostAccessor{Ptr: unsafe.Pointer(&data[0]), Size: 16}
	require.Equal(t, uint64(16), accessor.SizeBytes())
	require.Equal(t, unsafe.Pointer(&data[0]), interop.NativeMem(accessor))
}

func TestDowncastFamily(t *testing.T) {
	b := cpu.New("")
	defer b.Finalize()

	var device backends.Device = b.Device(0).(*cpu.Device)
	require.True(t, xcast.Is[*cpu.Device](device))

	// Another backend's concrete type is a sibling, never a match.
	require.False(t, xcast.Is[notimplemented.Backend](device))

	concrete, ok := xcast.As[*cpu.Device](device)
	require.True(t, ok)
	require.Equal(t, 0, concrete.NativeID())
}
