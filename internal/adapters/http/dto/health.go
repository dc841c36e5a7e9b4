package dto

// Health statuses reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each store component to "ok" or its failure message and is omitted
// by the liveness probe.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewReadinessResponse summarises per-component check results. The service
// is ready only when every component reports nil.
func NewReadinessResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	ready = true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
