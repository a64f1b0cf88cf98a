package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheus(reg)
	if err != nil {
		t.Fatalf("NewPrometheus: %v", err)
	}

	rec.IncQuoteCalculated("moscow")
	rec.IncQuoteCalculated("moscow")
	rec.IncQuoteRejected("incomplete")
	rec.IncContactSubmitted("accepted")
	rec.IncPageRendered()
	rec.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, 3*time.Millisecond)

	if got := testutil.ToFloat64(rec.QuotesCalculated.WithLabelValues("moscow")); got != 2 {
		t.Errorf("landing_quotes_calculated_total{region=moscow} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.QuotesRejected.WithLabelValues("incomplete")); got != 1 {
		t.Errorf("landing_quotes_rejected_total{reason=incomplete} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.ContactsSubmitted.WithLabelValues("accepted")); got != 1 {
		t.Errorf("landing_contacts_submitted_total{status=accepted} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.PagesRendered); got != 1 {
		t.Errorf("landing_pages_rendered_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.HTTPRequests.WithLabelValues("GET", "/", "200")); got != 1 {
		t.Errorf("landing_http_requests_total = %v, want 1", got)
	}
}

func TestPrometheusRecorder_ReRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPrometheus(reg)
	if err != nil {
		t.Fatalf("first NewPrometheus: %v", err)
	}
	second, err := NewPrometheus(reg)
	if err != nil {
		t.Fatalf("second NewPrometheus: %v", err)
	}

	first.IncQuoteCalculated("other")
	if got := testutil.ToFloat64(second.QuotesCalculated.WithLabelValues("other")); got != 1 {
		t.Errorf("second recorder should share collectors, got %v", got)
	}
}

func TestPrometheusRecorder_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheus(reg)
	if err != nil {
		t.Fatalf("NewPrometheus: %v", err)
	}
	rec.ObserveQuotePremium("saint-petersburg", 15210)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `landing_quote_premium_rubles_count{region="saint-petersburg"} 1`) {
		t.Errorf("metrics output missing premium histogram:\n%s", body)
	}
}

func TestInMemoryRecorder_Snapshot(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()
	rec.IncQuoteCalculated("other")
	rec.IncQuoteRejected("invalid")
	rec.ObserveQuotePremium("other", 6500)
	rec.ObserveQuotePremium("other", 6500)
	rec.IncContactSubmitted("rejected")
	rec.IncPageRendered()
	rec.ObserveHTTPRequest("POST", "/contact", 200, time.Second)

	snap := rec.Snapshot()
	if snap.QuotesCalculated["other"] != 1 {
		t.Errorf("QuotesCalculated[other] = %d, want 1", snap.QuotesCalculated["other"])
	}
	if snap.QuotesRejected["invalid"] != 1 {
		t.Errorf("QuotesRejected[invalid] = %d, want 1", snap.QuotesRejected["invalid"])
	}
	if snap.PremiumTotal != 13000 {
		t.Errorf("PremiumTotal = %d, want 13000", snap.PremiumTotal)
	}
	if snap.ContactsSubmitted["rejected"] != 1 {
		t.Errorf("ContactsSubmitted[rejected] = %d, want 1", snap.ContactsSubmitted["rejected"])
	}
	if snap.PagesRendered != 1 || snap.HTTPRequests != 1 {
		t.Errorf("PagesRendered = %d, HTTPRequests = %d, want 1 and 1", snap.PagesRendered, snap.HTTPRequests)
	}
	if snap.HTTPDurationTotalNs != int64(time.Second) {
		t.Errorf("HTTPDurationTotalNs = %d", snap.HTTPDurationTotalNs)
	}
}

func TestNoop_ImplementsRecorder(t *testing.T) {
	t.Parallel()

	var r Recorder = NewNoop()
	r.IncQuoteCalculated("moscow")
	r.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
}
