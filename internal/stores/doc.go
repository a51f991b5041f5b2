// Package stores contains Redis-backed persistence helpers private to
// nexAuth. The only store is token revocation: a TTL-bounded denylist keyed
// by the SHA-256 of the wire bytes, so the store never holds a decryptable
// token.
package stores
