// Package backends defines the seam between backend-agnostic runtime code and the
// native accelerator APIs it executes on.
//
// It holds the abstract object family (Backend, Device, Queue, AsyncOperation,
// Accessor), the per-backend capability and interop descriptors, and the canonical
// launch geometry. One glue package exists per accelerator API (see backends/cpu,
// backends/webgpu, backends/pjrt); each registers a constructor during initialization
// and is the only place in the runtime allowed to name that API's native types.
//
// To simplify error handling, misuse of this layer panics with a stack trace instead of
// returning errors. See package github.com/gomlx/exceptions.
package backends

import (
	"os"
	"strings"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// DeviceNum identifies a device within a Backend. It's up to the backend to interpret
// it, but it should be between 0 and Backend.NumDevices.
type DeviceNum int

// Backend is the API each accelerator glue package implements.
//
// A Backend instance owns its native API handles; all instances are safe to query
// concurrently, but Finalize must not race with other calls.
type Backend interface {
	// Name returns the short name the backend was registered under. E.g.: "cpu".
	Name() string

	// Description is a longer description of the Backend that can be used to pretty-print.
	Description() string

	// NumDevices returns the number of devices available for this Backend.
	NumDevices() DeviceNum

	// Device returns the abstract handle for one device, with num in [0, NumDevices).
	Device(num DeviceNum) Device

	// NewQueue creates a new in-order execution queue bound to the given device.
	NewQueue(num DeviceNum) Queue

	// Capabilities returns the backend's immutable capability flags.
	Capabilities() Capabilities

	// Interop returns the backend's native type identifiers and conversion functions.
	Interop() Interop

	// Finalize releases all the associated resources immediately, and makes the backend invalid.
	Finalize()
}

// Constructor takes a config string (optionally empty) and returns a Backend.
type Constructor func(config string) Backend

var (
	registeredConstructors = make(map[string]Constructor)
	firstRegistered        string
)

// Register a backend constructor under the given name. The constructor receives the
// backend-specific part of the configuration string.
//
// To be safe, call Register during initialization of the glue package.
func Register(name string, constructor Constructor) {
	if len(registeredConstructors) == 0 {
		firstRegistered = name
	}
	registeredConstructors[name] = constructor
}

// Registered returns the names of all registered backends, in no particular order.
func Registered() []string {
	names := make([]string, 0, len(registeredConstructors))
	for name := range registeredConstructors {
		names = append(names, name)
	}
	return names
}

// DefaultConfig is the backend configuration to use if none is given by the
// ACCELRT_BACKEND environment variable.
//
// See NewWithConfig for the format of the configuration string.
var DefaultConfig string

// EnvConfig is the environment variable with the default backend configuration.
//
// The format of config is "<backend_name>:<backend_configuration>". The
// "<backend_name>" is the name of a registered backend (e.g.: "cpu") and
// "<backend_configuration>" is backend specific (e.g.: for the pjrt backend, the PJRT
// plugin name).
const EnvConfig = "ACCELRT_BACKEND"

// New returns a new Backend from the default configuration:
//
// 1. The environment ACCELRT_BACKEND is used as a configuration if defined.
// 2. Next, the variable DefaultConfig is used as a configuration if defined.
// 3. The first registered backend is used with an empty configuration.
//
// It panics if no backend was registered.
func New() Backend {
	config, found := os.LookupEnv(EnvConfig)
	if found {
		return NewWithConfig(config)
	}
	if DefaultConfig != "" {
		return NewWithConfig(DefaultConfig)
	}
	return NewWithConfig("")
}

// NewWithConfig creates the backend selected by a "<backend_name>:<backend_configuration>"
// string -- see EnvConfig for the format.
//
// The constructed backend's descriptors are checked for coherence once, here: a glue
// package whose capability flags disagree with its conversion functions is a build
// defect and panics immediately, never later on the dispatch path.
func NewWithConfig(config string) Backend {
	if len(registeredConstructors) == 0 {
		exceptions.Panicf(`no registered backends for AccelRT -- maybe import the CPU one with import _ "github.com/accelrt/accelrt/backends/cpu"?`)
	}
	backendName := config
	backendConfig := ""
	if idx := strings.Index(config, ":"); idx != -1 {
		backendName = config[:idx]
		backendConfig = config[idx+1:]
	}
	if backendName == "" {
		backendName = firstRegistered
	}
	constructor, found := registeredConstructors[backendName]
	if !found {
		exceptions.Panicf("can't find backend %q for configuration %q given", backendName, config)
	}
	klog.V(1).Infof("backends: creating %q with configuration %q", backendName, backendConfig)
	backend := constructor(backendConfig)
	backend.Capabilities().Validate()
	backend.Interop().Validate(backend.Capabilities())
	return backend
}
