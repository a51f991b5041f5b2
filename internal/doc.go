// Package internal contains coordination code that is intentionally private
// to nexAuth.
//
// # Sub-packages
//
//   - audit — async event dispatch (Dispatcher + Sink implementations)
//   - metrics — lock-free counters and latency histograms
//   - stores — Redis-backed token revocation
//
// # What this package must NOT do
//
//   - Export types that appear in the public nexAuth API other than through
//     root-level aliases.
//   - Be imported by any package outside the nexAuth module.
package internal
