package xcast_test

import (
	"testing"

	"github.com/accelrt/accelrt/types/xcast"
	"github.com/stretchr/testify/require"
)

// A small polymorphic family: one abstract interface, two sibling implementations,
// mirroring the backend device family the package is used on.
type device interface {
	description() string
}

type hostDevice struct{ threads int }

func (hostDevice) description() string { return "host" }

type gpuDevice struct{ ordinal int }

func (gpuDevice) description() string { return "gpu" }

func TestIs(t *testing.T) {
	var d device = hostDevice{threads: 8}

	require.True(t, xcast.Is[hostDevice](d))
	require.False(t, xcast.Is[gpuDevice](d))

	// True for any interface the dynamic type implements.
	require.True(t, xcast.Is[device](d))

	// Nil is not anything.
	require.False(t, xcast.Is[hostDevice](nil))
	require.False(t, xcast.Is[device](nil))
}

func TestAs(t *testing.T) {
	var d device = gpuDevice{ordinal: 2}

	gpu, ok := xcast.As[gpuDevice](d)
	require.True(t, ok)
	require.Equal(t, 2, gpu.ordinal)

	_, ok = xcast.As[hostDevice](d)
	require.False(t, ok)
}

func TestCast(t *testing.T) {
	var d device = hostDevice{threads: 4}
	require.Equal(t, 4, xcast.Cast[hostDevice](d).threads)

	// A mismatched Cast is unrecoverable in every build configuration; with the
	// "debug" tag AssertIs adds a diagnostic before the assertion fires.
	require.Panics(t, func() { xcast.Cast[gpuDevice](d) })
}
