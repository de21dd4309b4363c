package backends_test

import (
	"os"
	"testing"

	"github.com/accelrt/accelrt/backends"
	"github.com/accelrt/accelrt/backends/notimplemented"
	"github.com/stretchr/testify/require"
)

func init() {
	backends.Register(notimplemented.BackendName, notimplemented.New)
}

func TestRegistry(t *testing.T) {
	require.Contains(t, backends.Registered(), notimplemented.BackendName)

	b := backends.NewWithConfig(notimplemented.BackendName)
	require.Equal(t, notimplemented.BackendName, b.Name())
	require.Equal(t, backends.DeviceNum(0), b.NumDevices())

	// Unknown backend names are misuse.
	require.Panics(t, func() { backends.NewWithConfig("no-such-backend:config") })
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(backends.EnvConfig, notimplemented.BackendName)
	b := backends.New()
	require.Equal(t, notimplemented.BackendName, b.Name())
}

func TestNewFromDefaultConfig(t *testing.T) {
	// The env var takes precedence, so it must be unset for DefaultConfig to kick in.
	t.Setenv(backends.EnvConfig, "")
	require.NoError(t, os.Unsetenv(backends.EnvConfig))

	backends.DefaultConfig = notimplemented.BackendName + ":some-config"
	defer func() { backends.DefaultConfig = "" }()
	b := backends.New()
	require.Equal(t, notimplemented.BackendName, b.Name())
}

func TestConfigParsing(t *testing.T) {
	// The part after ":" goes to the constructor; the mock ignores it.
	b := backends.NewWithConfig(notimplemented.BackendName + ":some-config")
	require.Equal(t, notimplemented.BackendName, b.Name())
}

func TestMockHasNoDevices(t *testing.T) {
	b := backends.NewWithConfig(notimplemented.BackendName)
	require.Panics(t, func() { b.Device(0) })
	require.Panics(t, func() { b.NewQueue(0) })
	b.Finalize()
}
