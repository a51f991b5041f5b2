// Package token implements the binary wire codec for legacy console account tokens.
//
// # Wire formats
//
// Two formats share a common field prefix:
//
//   - Short (14-byte payload): AES-128-CBC under a per-service key with a
//     zero IV, used for access, refresh, and password-reset tokens.
//   - Long (23-byte payload): a hybrid envelope — RSA-OAEP(SHA-256) wrapped
//     ephemeral AES key, two IV-derivation offsets, an HMAC-SHA1 signature
//     over the plaintext, and the AES-128-CBC body — used for full service
//     tokens that must stay within a restrictive client string-length limit.
//
// The byte layout is fixed by a deployed legacy client and must be preserved
// exactly: little-endian multi-byte integers, offsets 0x00/0x80/0x81/0x82/0x96
// in the long format, PKCS#7 block padding, and HMAC-SHA1 (not a stronger MAC).
//
// # Architecture boundaries
//
// This package owns payload serialization, the encryption envelope, and
// integrity verification. It does NOT fetch keys (callers supply [Material]
// from a key provider), does NOT enforce expiry or authorization, and never
// persists tokens.
//
// # What this package must NOT do
//
//   - Interpret token semantics — expiry and access-level policy belong to the caller.
//   - Import any other nexAuth package.
//   - Retry or fall back on a failed decrypt or signature check.
package token
