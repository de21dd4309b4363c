// Copyright 2026 The AccelRT Authors. SPDX-License-Identifier: Apache-2.0

// Package _default includes the default backends, namely CPU, WebGPU and PJRT.
//
// To use it simply include:
//
//	import _ "github.com/accelrt/accelrt/backends/default"
//
// If you add the tag `nowebgpu` or `nopjrt` the corresponding backend is left out --
// useful if you don't have the native libraries installed.
package _default

import (
	_ "github.com/accelrt/accelrt/backends/cpu"
)
