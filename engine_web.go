package nexAuth

import (
	"context"
	"fmt"

	"github.com/MrEthical07/nexAuth/jwt"
	"github.com/MrEthical07/nexAuth/token"
)

// IssueWebToken describes the issuewebtoken operation and its observable behavior.
//
// IssueWebToken may return an error when input validation, dependency calls, or security checks fail.
// IssueWebToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Web tokens are signed JWTs for browser-facing surfaces; they never enter
// the binary wire formats and are not subject to the revocation denylist.
func (e *Engine) IssueWebToken(ctx context.Context, pid uint32, tokenType string, accessLevel uint8) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}
	if e.web == nil {
		return "", ErrWebTokensDisabled
	}

	tokenStr, err := e.web.CreateAccess(pid, tokenType, accessLevel)
	if err != nil {
		e.auditEmit(ctx, auditWebIssue, token.Fields{PID: pid}, "", false, err)
		return "", err
	}

	e.metricInc(MetricWebIssue)
	e.auditEmit(ctx, auditWebIssue, token.Fields{PID: pid}, "", true, nil)

	return tokenStr, nil
}

// VerifyWebToken describes the verifywebtoken operation and its observable behavior.
//
// VerifyWebToken may return an error when input validation, dependency calls, or security checks fail.
// VerifyWebToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) VerifyWebToken(ctx context.Context, tokenStr string) (*jwt.AccessClaims, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if e.web == nil {
		return nil, ErrWebTokensDisabled
	}

	claims, err := e.web.ParseAccess(tokenStr)
	if err != nil {
		e.metricInc(MetricWebRejected)
		e.auditEmit(ctx, auditWebVerify, token.Fields{}, "", false, err)
		return nil, fmt.Errorf("%w: %v", ErrWebTokenInvalid, err)
	}

	e.auditEmit(ctx, auditWebVerify, token.Fields{PID: claims.PID}, "", true, nil)

	return claims, nil
}
