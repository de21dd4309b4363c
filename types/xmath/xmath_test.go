package xmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	require.Equal(t, uint64(1), NextPowerOf2(0))
	require.Equal(t, uint64(2), NextPowerOf2(1))
	require.Equal(t, uint64(4), NextPowerOf2(2))
	require.Equal(t, uint64(4), NextPowerOf2(3))
	require.Equal(t, uint64(8), NextPowerOf2(5))
	require.Equal(t, uint64(16), NextPowerOf2(8))
	require.Equal(t, uint64(1)<<63, NextPowerOf2(uint64(1)<<62))

	// Saturation at the top of the domain.
	require.Equal(t, uint64(0), NextPowerOf2(math.MaxUint64))
	require.Equal(t, uint64(0), NextPowerOf2(uint64(1)<<63))
}

func TestPowerOf2Ceil(t *testing.T) {
	require.Equal(t, uint64(0), PowerOf2Ceil(0))
	require.Equal(t, uint64(1), PowerOf2Ceil(1))
	require.Equal(t, uint64(2), PowerOf2Ceil(2))
	require.Equal(t, uint64(4), PowerOf2Ceil(3))
	require.Equal(t, uint64(8), PowerOf2Ceil(5))
	require.Equal(t, uint64(8), PowerOf2Ceil(8))
	require.Equal(t, uint64(1)<<63, PowerOf2Ceil(uint64(1)<<63))
}

func TestCeilDiv(t *testing.T) {
	require.Equal(t, uint64(3), CeilDiv[uint64](7, 3))
	require.Equal(t, uint64(2), CeilDiv[uint64](6, 3))
	require.Equal(t, uint64(1), CeilDiv[uint64](1, 3))
	require.Equal(t, uint64(0), CeilDiv[uint64](0, 3))
	require.Equal(t, uint32(5), CeilDiv[uint32](65, 16))
	require.Equal(t, uint(1), CeilDiv[uint](16, 16))
}

func TestNextMultipleOf(t *testing.T) {
	require.Equal(t, uint64(8), NextMultipleOf[uint64](7, 4))
	require.Equal(t, uint64(8), NextMultipleOf[uint64](8, 4))
	require.Equal(t, uint64(0), NextMultipleOf[uint64](0, 4))
	require.Equal(t, uint64(256), NextMultipleOf[uint64](255, 256))
	require.Equal(t, uint32(96), NextMultipleOf[uint32](65, 32))
}
