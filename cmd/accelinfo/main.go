// accelinfo lists the AccelRT backends compiled into this binary, and for the selected
// backend its devices, native handle types and capability table.
//
// Usage:
//
//	accelinfo                     # default backend (see ACCELRT_BACKEND)
//	accelinfo -backend cpu
//	accelinfo -backend pjrt:cuda -global 1000,1000 -local 16,16
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/accelrt/accelrt/backends"
	_ "github.com/accelrt/accelrt/backends/default"
	"github.com/accelrt/accelrt/types/dims"
)

var (
	flagBackend = flag.String("backend", "", "Backend configuration, formatted as "+
		"\"<name>:<config>\". Empty selects the default (ACCELRT_BACKEND or the first registered).")
	flagGlobal = flag.String("global", "", "Optional global extent (1 to 3 comma-separated sizes) "+
		"to report launch geometry for.")
	flagLocal = flag.String("local", "", "Optional work-group extent, same arity as -global.")
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	cellStyle      = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'accelinfo -help'.", flag.Args())
		os.Exit(1)
	}

	fmt.Printf("Registered backends: %s\n\n", strings.Join(backends.Registered(), ", "))

	var backend backends.Backend
	if *flagBackend != "" {
		backend = backends.NewWithConfig(*flagBackend)
	} else {
		backend = backends.New()
	}
	defer backend.Finalize()

	fmt.Printf("%s: %s\n", backend.Name(), backend.Description())
	for num := backends.DeviceNum(0); num < backend.NumDevices(); num++ {
		fmt.Printf("  device #%d: %s\n", num, backend.Device(num).Description())
	}
	fmt.Println()

	printInterop(backend.Interop())
	printCapabilities(backend.Capabilities())

	if *flagGlobal != "" {
		printGeometry(*flagGlobal, *flagLocal)
	}
}

func printInterop(interop backends.Interop) {
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerRowStyle
			}
			return cellStyle
		})
	table.Headers("Native Handle", "Type")
	table.Row("error", interop.ErrorType.String())
	table.Row("memory", interop.MemType.String())
	table.Row("device", interop.DeviceType.String())
	table.Row("stream", interop.StreamType.String())
	fmt.Println(table.Render())
}

func printCapabilities(caps backends.Capabilities) {
	table := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return headerRowStyle
			}
			return cellStyle
		})
	table.Headers("Object Kind", "Make", "Extract")
	for _, kind := range backends.ObjectKinds() {
		table.Row(kind.String(), mark(caps.SupportsMake(kind)), mark(caps.SupportsExtract(kind)))
	}
	fmt.Println(table.Render())
}

func mark(supported bool) string {
	if supported {
		return "yes"
	}
	return "-"
}

// printGeometry reports the canonical launch geometry for the given extents. The
// vector types are fixed per arity, so each dimensionality builds through its own
// factory.
func printGeometry(globalSpec, localSpec string) {
	global := parseExtent(globalSpec)
	var local []uint64
	if localSpec != "" {
		local = parseExtent(localSpec)
		if len(local) != len(global) {
			klog.Errorf("-local must have the same arity as -global (%d), got %d", len(global), len(local))
			os.Exit(1)
		}
	}

	var r backends.NDRange
	switch len(global) {
	case 1:
		r = backends.NewNDRange(dims.New1(global[0]))
		if local != nil {
			r = backends.NewNDRangeWithLocal(dims.New1(global[0]), dims.New1(local[0]))
		}
	case 2:
		r = backends.NewNDRange(dims.New2(global[0], global[1]))
		if local != nil {
			r = backends.NewNDRangeWithLocal(dims.New2(global[0], global[1]), dims.New2(local[0], local[1]))
		}
	case 3:
		r = backends.NewNDRange(dims.New3(global[0], global[1], global[2]))
		if local != nil {
			r = backends.NewNDRangeWithLocal(dims.New3(global[0], global[1], global[2]), dims.New3(local[0], local[1], local[2]))
		}
	default:
		klog.Errorf("-global must have 1 to 3 components, got %d", len(global))
		os.Exit(1)
	}

	fmt.Printf("Launch geometry: %s\n", r)
	fmt.Printf("  work items: %s\n", humanize.Comma(int64(r.NumWorkItems())))
	if r.HasLocal() {
		fmt.Printf("  groups:     %s\n", r.NumGroups())
		fmt.Printf("  padded:     %s (%s work items)\n", r.PaddedGlobal(),
			humanize.Comma(int64(r.PaddedGlobal().Size())))
	}
}

func parseExtent(spec string) []uint64 {
	parts := strings.Split(spec, ",")
	values := make([]uint64, len(parts))
	for i, part := range parts {
		values[i] = must.M1(strconv.ParseUint(strings.TrimSpace(part), 10, 64))
	}
	return values
}
