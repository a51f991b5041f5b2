package password

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// consoleDigestMarker sits between the PID and the password bytes. The value
// is fixed by the legacy client and has no further meaning.
var consoleDigestMarker = [4]byte{0x02, 0x65, 0x43, 0x46}

// ConsoleDigest describes the consoledigest operation and its observable behavior.
//
// ConsoleDigest does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The digest is SHA-256 over [pid LE][marker][password UTF-8]. It is a
// deterministic, keyless normalization applied before the password travels
// upstream — not an access-control secret on its own. Server-side storage
// hashes this digest again (see [Argon2.HashConsole]).
func ConsoleDigest(password string, pid uint32) [32]byte {
	buf := make([]byte, 0, 8+len(password))

	var pidLE [4]byte
	binary.LittleEndian.PutUint32(pidLE[:], pid)

	buf = append(buf, pidLE[:]...)
	buf = append(buf, consoleDigestMarker[:]...)
	buf = append(buf, password...)

	return sha256.Sum256(buf)
}

// ConsoleDigestHex describes the consoledigesthex operation and its observable behavior.
//
// ConsoleDigestHex does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Upstream account flows consume the digest as an opaque lowercase hex string.
func ConsoleDigestHex(password string, pid uint32) string {
	digest := ConsoleDigest(password, pid)
	return hex.EncodeToString(digest[:])
}
