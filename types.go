package nexAuth

import (
	"io"

	internalaudit "github.com/MrEthical07/nexAuth/internal/audit"
	"github.com/MrEthical07/nexAuth/token"
)

// Wire format labels reported in [VerifyResult] and audit events.
const (
	// FormatShort is an exported constant or variable used by the token engine.
	FormatShort = "short"
	// FormatLong is an exported constant or variable used by the token engine.
	FormatLong = "long"
)

// VerifyResult defines a public type used by nexAuth APIs.
//
// VerifyResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Fields are the decoded token fields exactly as carried on the wire; the
// engine performs expiry and revocation checks before returning them.
type VerifyResult struct {
	Fields token.Fields
	Format string
}

// AuditEvent is the event model delivered to audit sinks.
type AuditEvent = internalaudit.Event

// AuditSink defines a public type used by nexAuth APIs.
//
// AuditSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditSink = internalaudit.Sink

// NoOpSink defines a public type used by nexAuth APIs.
//
// NoOpSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink defines a public type used by nexAuth APIs.
//
// ChannelSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink defines a public type used by nexAuth APIs.
//
// JSONWriterSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink describes the newchannelsink operation and its observable behavior.
//
// NewChannelSink may return an error when input validation, dependency calls, or security checks fail.
// NewChannelSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink describes the newjsonwritersink operation and its observable behavior.
//
// NewJSONWriterSink may return an error when input validation, dependency calls, or security checks fail.
// NewJSONWriterSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
