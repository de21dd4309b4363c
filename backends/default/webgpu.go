//go:build !nowebgpu

package _default

import _ "github.com/accelrt/accelrt/backends/webgpu"
