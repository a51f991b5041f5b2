package nexAuth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrEthical07/nexAuth/token"
)

// VerifyToken describes the verifytoken operation and its observable behavior.
//
// VerifyToken may return an error when input validation, dependency calls, or security checks fail.
// VerifyToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The wire format is selected by ciphertext length, matching the encoder.
// Expiry policy stays with the caller: the decoded ExpireTime is surfaced,
// never enforced here. When enabled, the Redis revocation denylist is
// consulted; a backend outage fails closed with [ErrRevocationUnavailable].
func (e *Engine) VerifyToken(ctx context.Context, encoded string) (*VerifyResult, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	start := time.Now()

	wire, err := e.decodeWire(encoded)
	if err != nil {
		e.metricInc(MetricVerifyFormatFailure)
		e.auditEmit(ctx, auditTokenVerify, token.Fields{}, "", false, err)
		return nil, fmt.Errorf("%w: %v", ErrTokenEncodingInvalid, err)
	}

	material, format, err := e.verifyMaterial(ctx, wire)
	if err != nil {
		e.metricInc(MetricVerifyKeyFailure)
		e.auditEmit(ctx, auditTokenVerify, token.Fields{}, format, false, err)
		return nil, fmt.Errorf("verify: %w", err)
	}

	fields, err := token.Decode(wire, material)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrIntegrity):
			e.metricInc(MetricVerifyIntegrityFailure)
		default:
			e.metricInc(MetricVerifyFormatFailure)
		}
		e.auditEmit(ctx, auditTokenVerify, token.Fields{}, format, false, err)
		return nil, err
	}

	if e.revocation != nil {
		revoked, err := e.revocation.IsRevoked(ctx, wire)
		if err != nil {
			e.metricInc(MetricRevocationUnavailable)
			e.auditEmit(ctx, auditTokenVerify, fields, format, false, err)
			return nil, err
		}
		if revoked {
			e.metricInc(MetricVerifyRevoked)
			e.auditEmit(ctx, auditTokenVerify, fields, format, false, ErrTokenRevoked)
			return nil, ErrTokenRevoked
		}
	}

	e.metricInc(MetricVerifySuccess)
	e.metricObserve(MetricVerifyLatency, time.Since(start))
	e.auditEmit(ctx, auditTokenVerify, fields, format, true, nil)

	return &VerifyResult{Fields: fields, Format: format}, nil
}

// RevokeToken describes the revoketoken operation and its observable behavior.
//
// RevokeToken may return an error when input validation, dependency calls, or security checks fail.
// RevokeToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The token is decoded first so the denylist entry can expire with the
// token itself; revoking a malformed or forged token is rejected the same
// way Verify would reject it.
func (e *Engine) RevokeToken(ctx context.Context, encoded string) error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.revocation == nil {
		return ErrRevocationDisabled
	}

	wire, err := e.decodeWire(encoded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenEncodingInvalid, err)
	}

	material, format, err := e.verifyMaterial(ctx, wire)
	if err != nil {
		return fmt.Errorf("revoke: %w", err)
	}

	fields, err := token.Decode(wire, material)
	if err != nil {
		return err
	}

	ttl := time.Until(time.UnixMilli(int64(fields.ExpireTime)))
	if err := e.revocation.Revoke(ctx, wire, ttl); err != nil {
		e.metricInc(MetricRevocationUnavailable)
		e.auditEmit(ctx, auditTokenRevoke, fields, format, false, err)
		return err
	}

	e.metricInc(MetricTokenRevoked)
	e.auditEmit(ctx, auditTokenRevoke, fields, format, true, nil)

	return nil
}

// verifyMaterial fetches the key material the wire length calls for. Short
// tokens never touch the RSA key pair, so a symmetric-only provider can
// still serve them.
func (e *Engine) verifyMaterial(ctx context.Context, wire []byte) (token.Material, string, error) {
	if len(wire) <= token.ShortWireMax {
		aesKey, err := e.keys.SymmetricKey(ctx, e.config.Token.Service)
		if err != nil {
			return token.Material{}, FormatShort, err
		}
		return token.Material{AESKey: aesKey}, FormatShort, nil
	}

	privateKey, err := e.keys.PrivateKey(ctx, e.config.Token.Service)
	if err != nil {
		return token.Material{}, FormatLong, err
	}
	hmacSecret, err := e.keys.HMACSecret(ctx, e.config.Token.Service)
	if err != nil {
		return token.Material{}, FormatLong, err
	}
	return token.Material{RSAPrivateKey: privateKey, HMACSecret: hmacSecret}, FormatLong, nil
}
