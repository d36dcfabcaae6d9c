package health

import (
	"encoding/json"
	"net/http"
)

// LivenessHandler serves the liveness probe. It always answers 200 while
// the process runs.
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.Liveness(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}

// ReadinessHandler serves the readiness probe: 200 when every registered
// probe passes, 503 when the session is degraded.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := c.Readiness(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if status.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		if r.Method != http.MethodHead {
			_ = json.NewEncoder(w).Encode(status)
		}
	}
}

// Mount registers the probe endpoints on a mux under the conventional
// paths /health and /ready.
func (c *Checker) Mount(mux *http.ServeMux) {
	mux.HandleFunc("/health", c.LivenessHandler())
	mux.HandleFunc("/ready", c.ReadinessHandler())
}
