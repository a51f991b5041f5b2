package nexAuth

import (
	"context"
	"encoding/base64"
	"time"

	internalaudit "github.com/MrEthical07/nexAuth/internal/audit"
	"github.com/MrEthical07/nexAuth/internal/stores"
	"github.com/MrEthical07/nexAuth/jwt"
	"github.com/MrEthical07/nexAuth/keys"
	"github.com/MrEthical07/nexAuth/nb64"
	"github.com/MrEthical07/nexAuth/token"
	"github.com/google/uuid"
)

// Audit event types emitted by the engine.
const (
	auditTokenIssue  = "token.issue"
	auditTokenVerify = "token.verify"
	auditTokenRevoke = "token.revoke"
	auditWebIssue    = "web.issue"
	auditWebVerify   = "web.verify"
)

// Engine defines a public type used by nexAuth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config Config

	keys       keys.Provider
	web        *jwt.Manager
	revocation *stores.RevocationStore

	audit   *internalaudit.Dispatcher
	metrics *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil {
		return MetricsSnapshot{}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricObserve(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}

func (e *Engine) ready() error {
	if e == nil || e.keys == nil {
		return ErrEngineNotReady
	}
	return nil
}

func (e *Engine) auditEmit(ctx context.Context, eventType string, fields token.Fields, format string, success bool, opErr error) {
	if e == nil || e.audit == nil {
		return
	}

	event := internalaudit.Event{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		EventID:   uuid.NewString(),
		PID:       fields.PID,
		TokenType: tokenTypeName(fields.TokenType),
		Format:    format,
		Service:   e.config.Token.Service,
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	e.audit.Emit(ctx, event)
}

// encodeWire renders wire bytes as transport text. The console query-string
// surface cannot carry '+', '/', or '='; QueryEncoding switches to the
// substituted alphabet those clients expect.
func (e *Engine) encodeWire(wire []byte) string {
	if e.config.Token.QueryEncoding {
		return nb64.Encode(wire)
	}
	return base64.StdEncoding.EncodeToString(wire)
}

func (e *Engine) decodeWire(encoded string) ([]byte, error) {
	if e.config.Token.QueryEncoding {
		return nb64.Decode(encoded)
	}
	return base64.StdEncoding.DecodeString(encoded)
}

func tokenTypeName(t uint8) string {
	switch t {
	case token.TypeOAuthAccess:
		return "oauth_access"
	case token.TypeOAuthRefresh:
		return "oauth_refresh"
	case token.TypeNex:
		return "nex"
	case token.TypeService:
		return "service"
	case token.TypePasswordReset:
		return "password_reset"
	default:
		return "unknown"
	}
}
