package health

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes one component. A nil return means healthy.
type CheckFunc func(ctx context.Context) error

// CheckResult is the outcome of a single component probe.
type CheckResult struct {
	// Status is "ok" or "unhealthy".
	Status string `json:"status"`

	// Message carries the failure detail for unhealthy components.
	Message string `json:"message,omitempty"`

	// Duration is how long the probe took.
	Duration time.Duration `json:"duration_ms,omitempty"`
}

// Status is the aggregated probe outcome served by the HTTP handlers.
type Status struct {
	// Status is "ok" for liveness, "ready" or "degraded" for readiness.
	Status string `json:"status"`

	// Checks holds the per-component results of a readiness probe.
	Checks map[string]CheckResult `json:"checks,omitempty"`

	// Timestamp is when the probe ran.
	Timestamp time.Time `json:"timestamp"`
}

// Checker runs named component probes for the watch session's health
// endpoints. It is safe for concurrent use.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc

	timeout time.Duration
}

// New creates a checker. A zero timeout defaults to 5 seconds per probe.
func New(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
	}
}

// Register adds a probe under a component name, replacing any probe
// already registered under the same name.
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Liveness reports that the process is alive. It never runs probes, so it
// stays fast enough for tight probe intervals.
func (c *Checker) Liveness(ctx context.Context) Status {
	return Status{
		Status:    "ok",
		Timestamp: time.Now(),
	}
}

// Readiness runs every registered probe concurrently and aggregates the
// results: "ready" when all pass, "degraded" when any fails. With no
// probes registered the session is ready by definition.
func (c *Checker) Readiness(ctx context.Context) Status {
	c.mu.RLock()
	checks := make(map[string]CheckFunc, len(c.checks))
	for name, check := range c.checks {
		checks[name] = check
	}
	c.mu.RUnlock()

	results := make(map[string]CheckResult, len(checks))
	if len(checks) == 0 {
		return Status{
			Status:    "ready",
			Checks:    results,
			Timestamp: time.Now(),
		}
	}

	var resultMu sync.Mutex
	var wg sync.WaitGroup
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check CheckFunc) {
			defer wg.Done()
			result := c.run(ctx, check)
			resultMu.Lock()
			results[name] = result
			resultMu.Unlock()
		}(name, check)
	}
	wg.Wait()

	status := "ready"
	for _, result := range results {
		if result.Status == "unhealthy" {
			status = "degraded"
		}
	}

	return Status{
		Status:    status,
		Checks:    results,
		Timestamp: time.Now(),
	}
}

// run executes one probe under the checker's timeout.
func (c *Checker) run(ctx context.Context, check CheckFunc) CheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	errChan := make(chan error, 1)
	go func() {
		errChan <- check(checkCtx)
	}()

	select {
	case err := <-errChan:
		duration := time.Since(start)
		if err != nil {
			return CheckResult{
				Status:   "unhealthy",
				Message:  err.Error(),
				Duration: duration,
			}
		}
		return CheckResult{Status: "ok", Duration: duration}

	case <-checkCtx.Done():
		return CheckResult{
			Status:   "unhealthy",
			Message:  "probe timed out",
			Duration: time.Since(start),
		}
	}
}
