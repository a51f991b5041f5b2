// Package keys defines the key-provider contract the token engine consumes
// and two reference implementations.
//
// # Components
//
//   - [Provider] — per-service lookup of AES keys, RSA key pairs, and HMAC
//     secrets. The token codec pulls material through this interface and
//     propagates provider errors verbatim: no retry, no fallback.
//   - [Static] — in-memory provider constructed from PEM blobs, for tests
//     and single-node deployments.
//   - [Cached] — read-through cache around any Provider. Symmetric material
//     is cached in Redis with a TTL; RSA keys are memoized in-process only,
//     so private keys never leave the process.
//
// # Architecture boundaries
//
// This package owns key lookup and caching. It does NOT generate key
// material and does NOT decide which service a token belongs to.
//
// # What this package must NOT do
//
//   - Import any other nexAuth package.
//   - Swallow lookup failures — [ErrKeyNotFound] must surface unchanged.
//   - Write RSA private keys to any external store.
package keys
