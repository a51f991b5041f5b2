package internaldefs

import (
	nexAuth "github.com/MrEthical07/nexAuth"
)

// CounterDef defines a public type used by nexAuth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   nexAuth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by nexAuth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   nexAuth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the token engine.
var CounterDefs = []CounterDef{
	{ID: nexAuth.MetricIssueShort, Name: "nexauth_issue_short_total", Help: "Issued short-format tokens."},
	{ID: nexAuth.MetricIssueLong, Name: "nexauth_issue_long_total", Help: "Issued long-format service tokens."},
	{ID: nexAuth.MetricIssueValidationFailure, Name: "nexauth_issue_validation_failure_total", Help: "Issue attempts rejected during field validation."},
	{ID: nexAuth.MetricIssueKeyFailure, Name: "nexauth_issue_key_failure_total", Help: "Issue attempts failed on key provider lookups."},
	{ID: nexAuth.MetricVerifySuccess, Name: "nexauth_verify_success_total", Help: "Successful token verifications."},
	{ID: nexAuth.MetricVerifyFormatFailure, Name: "nexauth_verify_format_failure_total", Help: "Verifications rejected as malformed or misencoded."},
	{ID: nexAuth.MetricVerifyIntegrityFailure, Name: "nexauth_verify_integrity_failure_total", Help: "Verifications rejected on signature mismatch."},
	{ID: nexAuth.MetricVerifyKeyFailure, Name: "nexauth_verify_key_failure_total", Help: "Verifications failed on key provider lookups."},
	{ID: nexAuth.MetricVerifyRevoked, Name: "nexauth_verify_revoked_total", Help: "Verifications rejected by the revocation denylist."},
	{ID: nexAuth.MetricTokenRevoked, Name: "nexauth_token_revoked_total", Help: "Tokens added to the revocation denylist."},
	{ID: nexAuth.MetricRevocationUnavailable, Name: "nexauth_revocation_unavailable_total", Help: "Revocation denylist operations failed on backend errors."},
	{ID: nexAuth.MetricWebIssue, Name: "nexauth_web_issue_total", Help: "Issued web JWTs."},
	{ID: nexAuth.MetricWebRejected, Name: "nexauth_web_rejected_total", Help: "Rejected web JWTs."},
}

// HistogramDefs is an exported constant or variable used by the token engine.
var HistogramDefs = []HistogramDef{
	{ID: nexAuth.MetricVerifyLatency, Name: "nexauth_verify_latency_seconds", Help: "Verify latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the token engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the token engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
