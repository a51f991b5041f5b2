package nb64

import "encoding/base64"

// alphabet is the standard base64 alphabet with '+' and '/' substituted by
// '.' and '-'; padding uses '*' instead of '='.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.-"

var encoding = base64.NewEncoding(alphabet).WithPadding('*')

// Encode describes the encode operation and its observable behavior.
//
// Encode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// Decode describes the decode operation and its observable behavior.
//
// Decode may return an error when input validation, dependency calls, or security checks fail.
// Decode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Decode(s string) ([]byte, error) {
	return encoding.DecodeString(s)
}
