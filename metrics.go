package nexAuth

import (
	internalmetrics "github.com/MrEthical07/nexAuth/internal/metrics"
)

// MetricID defines a public type used by nexAuth APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID = internalmetrics.MetricID

const (
	// MetricIssueShort is an exported constant or variable used by the token engine.
	MetricIssueShort = internalmetrics.MetricIssueShort
	// MetricIssueLong is an exported constant or variable used by the token engine.
	MetricIssueLong = internalmetrics.MetricIssueLong
	// MetricIssueValidationFailure is an exported constant or variable used by the token engine.
	MetricIssueValidationFailure = internalmetrics.MetricIssueValidationFailure
	// MetricIssueKeyFailure is an exported constant or variable used by the token engine.
	MetricIssueKeyFailure = internalmetrics.MetricIssueKeyFailure
	// MetricVerifySuccess is an exported constant or variable used by the token engine.
	MetricVerifySuccess = internalmetrics.MetricVerifySuccess
	// MetricVerifyFormatFailure is an exported constant or variable used by the token engine.
	MetricVerifyFormatFailure = internalmetrics.MetricVerifyFormatFailure
	// MetricVerifyIntegrityFailure is an exported constant or variable used by the token engine.
	MetricVerifyIntegrityFailure = internalmetrics.MetricVerifyIntegrityFailure
	// MetricVerifyKeyFailure is an exported constant or variable used by the token engine.
	MetricVerifyKeyFailure = internalmetrics.MetricVerifyKeyFailure
	// MetricVerifyRevoked is an exported constant or variable used by the token engine.
	MetricVerifyRevoked = internalmetrics.MetricVerifyRevoked
	// MetricTokenRevoked is an exported constant or variable used by the token engine.
	MetricTokenRevoked = internalmetrics.MetricTokenRevoked
	// MetricRevocationUnavailable is an exported constant or variable used by the token engine.
	MetricRevocationUnavailable = internalmetrics.MetricRevocationUnavailable
	// MetricWebIssue is an exported constant or variable used by the token engine.
	MetricWebIssue = internalmetrics.MetricWebIssue
	// MetricWebRejected is an exported constant or variable used by the token engine.
	MetricWebRejected = internalmetrics.MetricWebRejected
	// MetricVerifyLatency is an exported constant or variable used by the token engine.
	MetricVerifyLatency = internalmetrics.MetricVerifyLatency
	// MetricIDCount is an exported constant or variable used by the token engine.
	MetricIDCount = internalmetrics.MetricIDCount
)

// Metrics defines a public type used by nexAuth APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot defines a public type used by nexAuth APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics may return an error when input validation, dependency calls, or security checks fail.
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
