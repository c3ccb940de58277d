// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// are located in separate files guarded by build tags.

package affinity

// Pin binds the current OS thread to a given logical CPU on supported
// platforms. The caller must hold runtime.LockOSThread for the pin to
// stay meaningful. On unsupported platforms returns an error.
func Pin(cpuID int) error {
	return pinPlatform(cpuID)
}
