package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerStub struct {
	err error
}

func (p *pingerStub) Ping(context.Context) error { return p.err }

func countProbe(n string, err error) Probe {
	return Probe{
		Name: "to_do_items",
		Check: func(context.Context) (string, error) {
			return n, err
		},
	}
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestLive_IgnoresProbes(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("todoApp", "v1", PingProbe("database", &pingerStub{err: errors.New("down")}))

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != statusOK || resp.Timestamp.IsZero() {
		t.Errorf("unexpected body %+v", resp)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		countErr   error
		wantCode   int
		wantStatus string
	}{
		{"all up", nil, nil, http.StatusOK, statusOK},
		{"database down", errors.New("connection refused"), nil, http.StatusServiceUnavailable, statusDown},
		{"non-critical failure is ignored", nil, errors.New("relation missing"), http.StatusOK, statusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler("todoApp", "v1",
				PingProbe("database", &pingerStub{err: tt.pingErr}),
				countProbe("3 rows", tt.countErr),
			)

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			resp := decodeHealth(t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.Components != nil {
				t.Errorf("readiness must not report components, got %v", resp.Components)
			}
		})
	}
}

func TestHealth_AllUp(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("todoApp", "1.2.0 (commit: abc)",
		PingProbe("database", &pingerStub{}),
		countProbe("12 rows", nil),
	)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != statusOK {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.App != "todoApp" || resp.Version != "1.2.0 (commit: abc)" {
		t.Errorf("app/version = %q/%q", resp.App, resp.Version)
	}

	db, ok := resp.Components["database"]
	if !ok || db.Status != statusOK || db.Latency == "" {
		t.Errorf("database component = %+v", db)
	}
	items := resp.Components["to_do_items"]
	if items.Detail != "12 rows" {
		t.Errorf("to_do_items detail = %q, want %q", items.Detail, "12 rows")
	}
}

func TestHealth_Degraded(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("todoApp", "v1",
		PingProbe("database", &pingerStub{}),
		countProbe("", errors.New("relation does not exist")),
	)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a degraded service", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != statusDegraded {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if got := resp.Components["to_do_items"]; got.Status != statusDown || got.Latency != "" {
		t.Errorf("failed component = %+v", got)
	}
}

func TestHealth_CriticalDownWins(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("todoApp", "v1",
		countProbe("", errors.New("boom")),
		PingProbe("database", &pingerStub{err: errors.New("connection refused")}),
	)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if resp := decodeHealth(t, rec); resp.Status != statusDown {
		t.Errorf("status = %q, want down", resp.Status)
	}
}

func TestHealth_ProbeSeesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	h := NewHealthHandler("todoApp", "v1", Probe{
		Name: "deadline",
		Check: func(ctx context.Context) (string, error) {
			_, hasDeadline = ctx.Deadline()
			return "", nil
		},
	})

	h.Health(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if !hasDeadline {
		t.Error("probes must run under a timeout")
	}
}
