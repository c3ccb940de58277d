//go:build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of thread CPU affinity via sched_setaffinity.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// pinPlatform sets the calling thread's affinity to the given CPU.
func pinPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(%d): %w", cpuID, err)
	}
	return nil
}
