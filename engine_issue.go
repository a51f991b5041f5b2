package nexAuth

import (
	"context"
	"fmt"
	"time"

	"github.com/MrEthical07/nexAuth/token"
)

// IssueAccessToken describes the issueaccesstoken operation and its observable behavior.
//
// IssueAccessToken may return an error when input validation, dependency calls, or security checks fail.
// IssueAccessToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueAccessToken(ctx context.Context, systemType uint8, pid uint32) (string, error) {
	return e.issueShort(ctx, systemType, token.TypeOAuthAccess, pid, e.config.Token.AccessTTL)
}

// IssueRefreshToken describes the issuerefreshtoken operation and its observable behavior.
//
// IssueRefreshToken may return an error when input validation, dependency calls, or security checks fail.
// IssueRefreshToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueRefreshToken(ctx context.Context, systemType uint8, pid uint32) (string, error) {
	return e.issueShort(ctx, systemType, token.TypeOAuthRefresh, pid, e.config.Token.RefreshTTL)
}

// IssueNexToken describes the issuenextoken operation and its observable behavior.
//
// IssueNexToken may return an error when input validation, dependency calls, or security checks fail.
// IssueNexToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueNexToken(ctx context.Context, systemType uint8, pid uint32) (string, error) {
	return e.issueShort(ctx, systemType, token.TypeNex, pid, e.config.Token.NexTTL)
}

// IssuePasswordResetToken describes the issuepasswordresettoken operation and its observable behavior.
//
// IssuePasswordResetToken may return an error when input validation, dependency calls, or security checks fail.
// IssuePasswordResetToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssuePasswordResetToken(ctx context.Context, systemType uint8, pid uint32) (string, error) {
	return e.issueShort(ctx, systemType, token.TypePasswordReset, pid, e.config.Token.PasswordResetTTL)
}

func (e *Engine) issueShort(ctx context.Context, systemType, tokenType uint8, pid uint32, ttl time.Duration) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}

	fields := token.Fields{
		SystemType: systemType,
		TokenType:  tokenType,
		PID:        pid,
		ExpireTime: uint64(time.Now().Add(ttl).UnixMilli()),
	}

	aesKey, err := e.keys.SymmetricKey(ctx, e.config.Token.Service)
	if err != nil {
		e.metricInc(MetricIssueKeyFailure)
		e.auditEmit(ctx, auditTokenIssue, fields, FormatShort, false, err)
		return "", fmt.Errorf("issue: %w", err)
	}

	wire, err := token.Encode(fields, token.Material{AESKey: aesKey})
	if err != nil {
		e.metricInc(MetricIssueKeyFailure)
		e.auditEmit(ctx, auditTokenIssue, fields, FormatShort, false, err)
		return "", fmt.Errorf("issue: %w", err)
	}

	e.metricInc(MetricIssueShort)
	e.auditEmit(ctx, auditTokenIssue, fields, FormatShort, true, nil)

	return e.encodeWire(wire), nil
}

// IssueServiceToken describes the issueservicetoken operation and its observable behavior.
//
// IssueServiceToken may return an error when input validation, dependency calls, or security checks fail.
// IssueServiceToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Service tokens always use the long format: the payload carries the access
// level and title ID, and the envelope wraps a fresh AES key under the
// service RSA public key with an HMAC-SHA1 signature over the payload.
func (e *Engine) IssueServiceToken(ctx context.Context, systemType uint8, pid uint32, accessLevel uint8, titleID uint64) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}

	fields := token.Fields{
		SystemType:  systemType,
		TokenType:   token.TypeService,
		PID:         pid,
		ExpireTime:  uint64(time.Now().Add(e.config.Token.ServiceTTL).UnixMilli()),
		AccessLevel: token.Uint8(accessLevel),
		TitleID:     token.Uint64(titleID),
	}

	publicKey, err := e.keys.PublicKey(ctx, e.config.Token.Service)
	if err != nil {
		e.metricInc(MetricIssueKeyFailure)
		e.auditEmit(ctx, auditTokenIssue, fields, FormatLong, false, err)
		return "", fmt.Errorf("issue: %w", err)
	}

	hmacSecret, err := e.keys.HMACSecret(ctx, e.config.Token.Service)
	if err != nil {
		e.metricInc(MetricIssueKeyFailure)
		e.auditEmit(ctx, auditTokenIssue, fields, FormatLong, false, err)
		return "", fmt.Errorf("issue: %w", err)
	}

	wire, err := token.Encode(fields, token.Material{RSAPublicKey: publicKey, HMACSecret: hmacSecret})
	if err != nil {
		e.metricInc(MetricIssueValidationFailure)
		e.auditEmit(ctx, auditTokenIssue, fields, FormatLong, false, err)
		return "", fmt.Errorf("issue: %w", err)
	}

	e.metricInc(MetricIssueLong)
	e.auditEmit(ctx, auditTokenIssue, fields, FormatLong, true, nil)

	return e.encodeWire(wire), nil
}
