// Package fiber
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cooperative execution contexts for the fibersched scheduler core.
//
// A Fiber is a goroutine parked on a resume channel. Handing control to
// a fiber delivers a token and unparks it; the outgoing fiber parks on
// its own channel until some other party hands control back. At most one
// fiber per worker runs at any instant, so the pair behaves like a
// stackful coroutine switch: the caller's context is captured at the
// switch point and resumes exactly there.
//
// Ownership is exclusive: a parked fiber is woken by exactly one party.
// Violating that discipline corrupts the hand-off protocol.
package fiber
