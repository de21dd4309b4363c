//go:build (linux || darwin) && !nopjrt

// PJRT plugins are distributed for linux and darwin only.

package _default

import _ "github.com/accelrt/accelrt/backends/pjrt"
