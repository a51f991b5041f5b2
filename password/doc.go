// Package password implements the two hashing layers of the account subsystem.
//
// # Console digest
//
// [ConsoleDigest] is the deterministic, keyless transform legacy clients
// apply before a password ever leaves the device: SHA-256 over the PID
// (little-endian), a fixed 4-byte marker, and the UTF-8 password bytes,
// conventionally rendered as lowercase hex. It normalizes passwords for
// transport and is NOT an at-rest credential hash.
//
// # At-rest hashing
//
// [Argon2] hashes the console digest with Argon2id for storage, encoded in
// PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// [Argon2.NeedsUpgrade] supports transparent parameter upgrades on the next
// successful verification.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Credential storage and
// login policy belong to the caller.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials.
//   - Import any other nexAuth package.
//   - Log passwords, digests, or hash parameters at runtime.
package password
