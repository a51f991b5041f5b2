// Package jwt manages web-API access tokens for the account dashboard that
// fronts the same accounts the legacy binary tokens serve. Claims carry the
// PID, token type, and access level; signing uses Ed25519 by default with an
// HS256 option, and parsing enforces strict validation semantics suitable
// for low-latency authentication paths.
//
// The legacy binary wire tokens and these JWTs never mix: the token engine
// routes by API surface, and neither format can be verified by the other's
// path.
package jwt
