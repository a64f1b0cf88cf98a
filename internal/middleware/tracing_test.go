package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTracedRouter(t *testing.T, status int) (http.Handler, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := chi.NewRouter()
	r.Use(Tracing(tp.Tracer("test"), propagation.TraceContext{}))
	r.Post("/api/v1/quotes", func(w http.ResponseWriter, r *http.Request) {
		if GetTraceID(r.Context()) == "" {
			t.Error("trace id missing from handler context")
		}
		w.WriteHeader(status)
	})
	return r, sr
}

func TestTracing_SpanPerRequest(t *testing.T) {
	t.Parallel()

	handler, sr := newTracedRouter(t, http.StatusOK)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}

	span := spans[0]
	if span.Name() != "POST /api/v1/quotes" {
		t.Errorf("span name = %q", span.Name())
	}
	if got := rec.Header().Get(TraceIDHeader); got != span.SpanContext().TraceID().String() {
		t.Errorf("X-Trace-ID = %q, want %q", got, span.SpanContext().TraceID())
	}

	want := attribute.Int("http.response.status_code", http.StatusOK)
	found := false
	for _, kv := range span.Attributes() {
		if kv == want {
			found = true
		}
	}
	if !found {
		t.Errorf("status attribute missing: %v", span.Attributes())
	}
}

func TestTracing_ContinuesIncomingTrace(t *testing.T) {
	t.Parallel()

	handler, sr := newTracedRouter(t, http.StatusOK)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if got := spans[0].SpanContext().TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
	if !spans[0].Parent().IsRemote() {
		t.Error("parent span context is not remote")
	}
}

func TestTracing_ServerErrorMarksSpan(t *testing.T) {
	t.Parallel()

	handler, sr := newTracedRouter(t, http.StatusInternalServerError)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil))

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status())
	}
}
