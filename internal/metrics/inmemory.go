package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	QuotesCalculated    map[string]uint64
	QuotesRejected      map[string]uint64
	PremiumTotal        int64
	ContactsSubmitted   map[string]uint64
	PagesRendered       uint64
	HTTPRequests        uint64
	HTTPDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu                sync.Mutex
	quotesCalculated  map[string]uint64
	quotesRejected    map[string]uint64
	contactsSubmitted map[string]uint64

	premiumTotal        int64
	pagesRendered       uint64
	httpRequests        uint64
	httpDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		quotesCalculated:  make(map[string]uint64),
		quotesRejected:    make(map[string]uint64),
		contactsSubmitted: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		QuotesCalculated:    copyCounts(m.quotesCalculated),
		QuotesRejected:      copyCounts(m.quotesRejected),
		PremiumTotal:        atomic.LoadInt64(&m.premiumTotal),
		ContactsSubmitted:   copyCounts(m.contactsSubmitted),
		PagesRendered:       atomic.LoadUint64(&m.pagesRendered),
		HTTPRequests:        atomic.LoadUint64(&m.httpRequests),
		HTTPDurationTotalNs: atomic.LoadInt64(&m.httpDurationTotalNs),
	}
}

// IncQuoteCalculated increments the calculated quote counter for region.
func (m *InMemoryRecorder) IncQuoteCalculated(region string) {
	m.mu.Lock()
	m.quotesCalculated[region]++
	m.mu.Unlock()
}

// IncQuoteRejected increments the rejected quote counter for reason.
func (m *InMemoryRecorder) IncQuoteRejected(reason string) {
	m.mu.Lock()
	m.quotesRejected[reason]++
	m.mu.Unlock()
}

// ObserveQuotePremium adds premium to the running total.
func (m *InMemoryRecorder) ObserveQuotePremium(region string, premium int64) {
	atomic.AddInt64(&m.premiumTotal, premium)
}

// IncContactSubmitted increments the contact counter for status.
func (m *InMemoryRecorder) IncContactSubmitted(status string) {
	m.mu.Lock()
	m.contactsSubmitted[status]++
	m.mu.Unlock()
}

// IncPageRendered increments the rendered page counter.
func (m *InMemoryRecorder) IncPageRendered() {
	atomic.AddUint64(&m.pagesRendered, 1)
}

// ObserveHTTPRequest records request count and duration.
func (m *InMemoryRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	atomic.AddUint64(&m.httpRequests, 1)
	atomic.AddInt64(&m.httpDurationTotalNs, duration.Nanoseconds())
}

func copyCounts(src map[string]uint64) map[string]uint64 {
	dst := make(map[string]uint64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
