package metrics

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/agbru/tryfib/internal/fibonacci"
)

func findFamily(t *testing.T, r *Recorder, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func counterValue(t *testing.T, r *Recorder, name, label, value string) float64 {
	t.Helper()
	mf := findFamily(t, r, name)
	if mf == nil {
		return 0
	}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestOutcome(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeSuccess},
		{"unsupported", fmt.Errorf("wrap: %w", fibonacci.ErrUnsupportedInput), OutcomeUnsupported},
		{"out of range", &fibonacci.IndexError{Index: -1, Max: fibonacci.MaxIndex}, OutcomeOutOfRange},
		{"other", errors.New("boom"), OutcomeOther},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Outcome(tt.err); got != tt.want {
				t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRecorder_ObserveResolution(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	_, err := fibonacci.Resolve(fibonacci.StringValue("abc"))
	r.ObserveResolution(err)
	r.ObserveResolution(nil)
	r.ObserveResolution(nil)

	if got := counterValue(t, r, "tryfib_resolutions_total", "outcome", OutcomeSuccess); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := counterValue(t, r, "tryfib_resolutions_total", "outcome", OutcomeUnsupported); got != 1 {
		t.Errorf("unsupported count = %v, want 1", got)
	}
}

func TestRecorder_ObserveCalculation(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveCalculation("recursive", 3*time.Microsecond, nil)
	r.ObserveCalculation("doubling", time.Microsecond, errors.New("canceled"))

	mf := findFamily(t, r, "tryfib_calculation_duration_seconds")
	if mf == nil {
		t.Fatal("duration histogram not gathered")
	}
	if len(mf.GetMetric()) != 2 {
		t.Errorf("expected 2 histogram series, got %d", len(mf.GetMetric()))
	}
	if got := counterValue(t, r, "tryfib_calculation_errors_total", "algorithm", "doubling"); got != 1 {
		t.Errorf("doubling errors = %v, want 1", got)
	}
	if got := counterValue(t, r, "tryfib_calculation_errors_total", "algorithm", "recursive"); got != 0 {
		t.Errorf("recursive errors = %v, want 0", got)
	}
}

func TestRecorder_Isolation(t *testing.T) {
	t.Parallel()
	a, b := NewRecorder(), NewRecorder()
	a.ObserveResolution(nil)

	if got := counterValue(t, b, "tryfib_resolutions_total", "outcome", OutcomeSuccess); got != 0 {
		t.Errorf("second recorder saw %v resolutions from the first", got)
	}
}

func TestRecorder_WriteText(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveResolution(nil)
	r.ObserveCalculation("recursive", time.Microsecond, nil)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	body := buf.String()

	for _, want := range []string{
		"# TYPE tryfib_resolutions_total counter",
		`tryfib_resolutions_total{outcome="success"} 1`,
		"tryfib_calculation_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("text output should contain %q", want)
		}
	}
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveResolution(nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tryfib_resolutions_total") {
		t.Error("handler output should contain tryfib_resolutions_total")
	}
}
