package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder on top of Prometheus collectors.
type PrometheusRecorder struct {
	gatherer prometheus.Gatherer

	QuotesCalculated  *prometheus.CounterVec
	QuotesRejected    *prometheus.CounterVec
	QuotePremium      *prometheus.HistogramVec
	ContactsSubmitted *prometheus.CounterVec
	PagesRendered     prometheus.Counter
	HTTPRequests      *prometheus.CounterVec
	HTTPDurations     *prometheus.HistogramVec
}

// NewPrometheus registers the landing metrics against reg,
// defaulting to the global Prometheus registry when nil.
func NewPrometheus(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	quotes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_quotes_calculated_total",
		Help: "Number of premiums calculated, labeled by region.",
	}, []string{"region"}), "landing_quotes_calculated_total")
	if err != nil {
		return nil, err
	}

	rejected, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_quotes_rejected_total",
		Help: "Number of calculator submissions that could not be priced, labeled by reason.",
	}, []string{"reason"}), "landing_quotes_rejected_total")
	if err != nil {
		return nil, err
	}

	premium, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "landing_quote_premium_rubles",
		Help:    "Distribution of calculated premiums in rubles.",
		Buckets: []float64{5000, 7500, 10000, 15000, 20000, 30000, 40000, 50000},
	}, []string{"region"}), "landing_quote_premium_rubles")
	if err != nil {
		return nil, err
	}

	contacts, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_contacts_submitted_total",
		Help: "Number of contact form submissions, labeled by status.",
	}, []string{"status"}), "landing_contacts_submitted_total")
	if err != nil {
		return nil, err
	}

	pages, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landing_pages_rendered_total",
		Help: "Number of landing page renders.",
	}), "landing_pages_rendered_total")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_http_requests_total",
		Help: "Handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "landing_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "landing_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"}), "landing_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &PrometheusRecorder{
		gatherer:          gatherer,
		QuotesCalculated:  quotes,
		QuotesRejected:    rejected,
		QuotePremium:      premium,
		ContactsSubmitted: contacts,
		PagesRendered:     pages,
		HTTPRequests:      requests,
		HTTPDurations:     durations,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

// IncQuoteCalculated increments the calculated quote counter.
func (p *PrometheusRecorder) IncQuoteCalculated(region string) {
	p.QuotesCalculated.WithLabelValues(region).Inc()
}

// IncQuoteRejected increments the rejected quote counter.
func (p *PrometheusRecorder) IncQuoteRejected(reason string) {
	p.QuotesRejected.WithLabelValues(reason).Inc()
}

// ObserveQuotePremium records a calculated premium.
func (p *PrometheusRecorder) ObserveQuotePremium(region string, premium int64) {
	p.QuotePremium.WithLabelValues(region).Observe(float64(premium))
}

// IncContactSubmitted increments the contact submission counter.
func (p *PrometheusRecorder) IncContactSubmitted(status string) {
	p.ContactsSubmitted.WithLabelValues(status).Inc()
}

// IncPageRendered increments the page render counter.
func (p *PrometheusRecorder) IncPageRendered() {
	p.PagesRendered.Inc()
}

// ObserveHTTPRequest records request count and latency.
func (p *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	p.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.HTTPDurations.WithLabelValues(method, route).Observe(duration.Seconds())
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
