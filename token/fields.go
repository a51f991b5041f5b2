package token

import (
	"bytes"
	"encoding/binary"
)

const (
	// SystemTypeUnknown is an exported constant or variable used by the token engine.
	SystemTypeUnknown uint8 = 0x00
	// SystemTypeConsole is an exported constant or variable used by the token engine.
	SystemTypeConsole uint8 = 0x0F
)

const (
	// TypeOAuthAccess is an exported constant or variable used by the token engine.
	TypeOAuthAccess uint8 = 0x01
	// TypeOAuthRefresh is an exported constant or variable used by the token engine.
	TypeOAuthRefresh uint8 = 0x02
	// TypeNex is an exported constant or variable used by the token engine.
	TypeNex uint8 = 0x03
	// TypeService is an exported constant or variable used by the token engine.
	TypeService uint8 = 0x04
	// TypePasswordReset is an exported constant or variable used by the token engine.
	TypePasswordReset uint8 = 0x05
)

const (
	shortPayloadLen = 14
	longPayloadLen  = 23
)

// Fields defines a public type used by nexAuth APIs.
//
// Fields instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// AccessLevel and TitleID distinguish the long token variant. They must be
// set together: a zero access level and a zero title ID are both legal wire
// values, so presence cannot be inferred from the value itself.
type Fields struct {
	SystemType uint8
	TokenType  uint8
	PID        uint32
	ExpireTime uint64

	AccessLevel *uint8
	TitleID     *uint64
}

// Uint8 describes the uint8 operation and its observable behavior.
//
// Uint8 does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Uint8(v uint8) *uint8 { return &v }

// Uint64 describes the uint64 operation and its observable behavior.
//
// Uint64 does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Uint64(v uint64) *uint64 { return &v }

// Extended describes the extended operation and its observable behavior.
//
// Extended does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f Fields) Extended() bool {
	return f.AccessLevel != nil && f.TitleID != nil
}

// marshalShort builds the 14-byte short payload:
// [system][type][pid LE][expire LE].
func (f Fields) marshalShort() []byte {
	var buf bytes.Buffer
	buf.Grow(shortPayloadLen)

	buf.WriteByte(f.SystemType)
	buf.WriteByte(f.TokenType)
	_ = binary.Write(&buf, binary.LittleEndian, f.PID)
	_ = binary.Write(&buf, binary.LittleEndian, f.ExpireTime)

	return buf.Bytes()
}

// marshalLong builds the 23-byte long payload:
// [system][type][pid LE][access][title LE][expire LE].
// Callers must have checked Extended first.
func (f Fields) marshalLong() []byte {
	var buf bytes.Buffer
	buf.Grow(longPayloadLen)

	buf.WriteByte(f.SystemType)
	buf.WriteByte(f.TokenType)
	_ = binary.Write(&buf, binary.LittleEndian, f.PID)
	buf.WriteByte(*f.AccessLevel)
	_ = binary.Write(&buf, binary.LittleEndian, *f.TitleID)
	_ = binary.Write(&buf, binary.LittleEndian, f.ExpireTime)

	return buf.Bytes()
}

func unmarshalShort(data []byte) (Fields, error) {
	if len(data) != shortPayloadLen {
		return Fields{}, ErrMalformed
	}

	var f Fields
	f.SystemType = data[0]
	f.TokenType = data[1]
	f.PID = binary.LittleEndian.Uint32(data[2:6])
	f.ExpireTime = binary.LittleEndian.Uint64(data[6:14])

	return f, nil
}

func unmarshalLong(data []byte) (Fields, error) {
	if len(data) != longPayloadLen {
		return Fields{}, ErrMalformed
	}

	var f Fields
	f.SystemType = data[0]
	f.TokenType = data[1]
	f.PID = binary.LittleEndian.Uint32(data[2:6])
	f.AccessLevel = Uint8(data[6])
	f.TitleID = Uint64(binary.LittleEndian.Uint64(data[7:15]))
	f.ExpireTime = binary.LittleEndian.Uint64(data[15:23])

	return f, nil
}
