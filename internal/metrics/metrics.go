// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory for tests.
type Recorder interface {
	// Calculator metrics
	IncQuoteCalculated(region string)
	IncQuoteRejected(reason string) // reason: "incomplete", "invalid"
	ObserveQuotePremium(region string, premium int64)

	// Contact form metrics
	IncContactSubmitted(status string) // status: "accepted" or "rejected"

	// Page metrics
	IncPageRendered()
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

