// Package nexAuth provides a token engine for console-style account services:
// compact AES-encrypted wire tokens, RSA/HMAC hybrid service tokens, a
// Redis-backed revocation denylist, and signed JWTs for web surfaces.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// nexAuth is the public surface. It exposes [Engine], [Builder], [Config], and value types
// (MetricsSnapshot, VerifyResult, etc.). The wire codec, password digests, key
// providers, and transport encoding live in their own importable packages
// (token, password, keys, nb64); all internal coordination — audit dispatch,
// metric storage, the revocation store — lives under internal/ and is never
// exported.
//
// # What this package must NOT do
//
//   - Expose Redis clients, internal stores, or wire-format internals in its public API.
//   - Perform I/O outside of Engine methods (construction via Builder is allocation-only
//     until Build).
//   - Import any sub-package that re-imports nexAuth (no import cycles).
//
// # Performance contract
//
// VerifyToken is the hot path. Short-format verification is one symmetric key
// lookup and one AES-CBC pass; with key caching enabled and the revocation
// denylist disabled it completes without a Redis round-trip. Issue and revoke
// operations are allowed one Redis round-trip per call.
package nexAuth
