package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewCollector(t *testing.T) {
	registry := prometheus.NewRegistry()

	collector := NewCollector(registry)

	if collector == nil {
		t.Fatal("expected non-nil collector")
	}
	if collector.Registry() != registry {
		t.Error("collector registry not set correctly")
	}
}

func TestNewCollector_NilRegistry(t *testing.T) {
	collector := NewCollector(nil)

	if collector.Registry() == nil {
		t.Error("expected a fresh registry when nil is passed")
	}
}

func TestCollector_RecordValidation(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	tests := []struct {
		name     string
		format   string
		result   string
		duration time.Duration
	}{
		{
			name:     "valid json file",
			format:   "json",
			result:   ResultValid,
			duration: 2 * time.Millisecond,
		},
		{
			name:     "invalid env file",
			format:   "env",
			result:   ResultInvalid,
			duration: time.Millisecond,
		},
		{
			name:     "unreadable file",
			format:   "json",
			result:   ResultError,
			duration: 100 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector.RecordValidation(tt.format, tt.result, tt.duration)

			count := testutil.ToFloat64(collector.validationMetrics.validationsTotal.WithLabelValues(tt.format, tt.result))
			if count < 1 {
				t.Errorf("expected validation counter >= 1, got %f", count)
			}
		})
	}
}

func TestCollector_RecordIssue(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	collector.RecordIssue("ERROR", "hardcoded-secret")
	collector.RecordIssue("ERROR", "hardcoded-secret")
	collector.RecordIssue("WARNING", "weak-password")

	count := testutil.ToFloat64(collector.validationMetrics.issuesTotal.WithLabelValues("ERROR", "hardcoded-secret"))
	if count != 2 {
		t.Errorf("expected issue counter 2, got %f", count)
	}

	count = testutil.ToFloat64(collector.validationMetrics.issuesTotal.WithLabelValues("WARNING", "weak-password"))
	if count != 1 {
		t.Errorf("expected issue counter 1, got %f", count)
	}
}

func TestCollector_RecordPass(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	collector.RecordPass(TriggerInitial, 3)
	collector.RecordPass(TriggerFSEvent, 1)
	collector.RecordPass(TriggerFSEvent, 2)

	count := testutil.ToFloat64(collector.passMetrics.passesTotal.WithLabelValues(TriggerFSEvent))
	if count != 2 {
		t.Errorf("expected pass counter 2, got %f", count)
	}

	ts := testutil.ToFloat64(collector.passMetrics.lastPassTimestamp)
	if ts <= 0 {
		t.Errorf("expected last pass timestamp to be set, got %f", ts)
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())
	collector.RecordValidation("json", ResultValid, time.Millisecond)
	collector.RecordPass(TriggerInitial, 1)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"confvet_validations_total",
		"confvet_validation_duration_seconds",
		"confvet_passes_total",
		"confvet_last_pass_timestamp_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metric %q in exposition output", want)
		}
	}
}
