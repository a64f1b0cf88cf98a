package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncQuoteCalculated is a no-op.
func (n *NoopRecorder) IncQuoteCalculated(region string) {}

// IncQuoteRejected is a no-op.
func (n *NoopRecorder) IncQuoteRejected(reason string) {}

// ObserveQuotePremium is a no-op.
func (n *NoopRecorder) ObserveQuotePremium(region string, premium int64) {}

// IncContactSubmitted is a no-op.
func (n *NoopRecorder) IncContactSubmitted(status string) {}

// IncPageRendered is a no-op.
func (n *NoopRecorder) IncPageRendered() {}

// ObserveHTTPRequest is a no-op.
func (n *NoopRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {}
