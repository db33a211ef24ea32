package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Probe checks one dependency. Detail is reported when the check passes.
// A failing critical probe takes the service down; any other failure only
// degrades it.
type Probe struct {
	Name     string
	Critical bool
	Check    func(ctx context.Context) (detail string, err error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// PingProbe is a critical probe backed by a Ping call.
func PingProbe(name string, db pinger) Probe {
	return Probe{
		Name:     name,
		Critical: true,
		Check: func(ctx context.Context) (string, error) {
			return "", db.Ping(ctx)
		},
	}
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	app     string
	version string
	probes  []Probe
}

func NewHealthHandler(app, version string, probes ...Probe) *HealthHandler {
	return &HealthHandler{app: app, version: version, probes: probes}
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                 `json:"status"`
	App        string                 `json:"app,omitempty"`
	Version    string                 `json:"version,omitempty"`
	Components map[string]ProbeResult `json:"components,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

type ProbeResult struct {
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Latency string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready runs only the critical probes. 503 when any of them fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.run(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health runs every probe and reports each one with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.run(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		App:        h.app,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) (string, map[string]ProbeResult) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	overall := statusOK
	results := make(map[string]ProbeResult, len(h.probes))
	for _, p := range h.probes {
		if criticalOnly && !p.Critical {
			continue
		}

		start := time.Now()
		detail, err := p.Check(ctx)
		if err != nil {
			results[p.Name] = ProbeResult{Status: statusDown}
			if p.Critical {
				overall = statusDown
			} else if overall == statusOK {
				overall = statusDegraded
			}
			continue
		}
		results[p.Name] = ProbeResult{Status: statusOK, Detail: detail, Latency: time.Since(start).String()}
	}
	return overall, results
}

func httpStatus(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
