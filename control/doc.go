// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, trace journalling and debug
// introspection for the fibersched scheduler.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry sink for scheduler counters
//   - Bounded trace journal of lifecycle events
//   - State export and debug probe registration
package control
