package webgpu_test

import (
	"reflect"
	"testing"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/backends/webgpu"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests only exercise the backend's static descriptors, so they run without a
// native wgpu library or a GPU.

func TestCapabilities(t *testing.T) {
	caps := webgpu.Capabilities
	require.NotPanics(t, func() { caps.Validate() })
	require.NotPanics(t, func() { webgpu.Interop.Validate(caps) })

	// Extraction-only: the backend owns its adapter and device.
	for _, kind := range backends.ObjectKinds() {
		assert.False(t, caps.SupportsMake(kind), "CanMake[%s]", kind)
	}
	assert.True(t, caps.SupportsExtract(backends.KindDevice))
	assert.True(t, caps.SupportsExtract(backends.KindStream))
	assert.True(t, caps.SupportsExtract(backends.KindBuffer))
	assert.False(t, caps.SupportsExtract(backends.KindKernel))
}

func TestInteropTypes(t *testing.T) {
	require.Equal(t, reflect.TypeOf((*wgpu.Device)(nil)), webgpu.Interop.DeviceType)
	require.Equal(t, reflect.TypeOf((*wgpu.Queue)(nil)), webgpu.Interop.StreamType)
	require.Equal(t, reflect.TypeOf((*wgpu.Buffer)(nil)), webgpu.Interop.MemType)
	require.Nil(t, webgpu.Interop.MakeDevice)
}

func TestNativeMem(t *testing.T) {
	accessor := webgpu.BufferAccessor{Size: 256}
	require.Equal(t, uint64(256), accessor.SizeBytes())
	require.Nil(t, webgpu.Interop.NativeMem(accessor))
}
